package tick

import (
	"context"
	"errors"
	"math"
	"testing"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/pickup"
)

func TestUseCase_RejectsInvalidRequests(t *testing.T) {
	runner, _, _ := seededRunner(t)
	uc := UseCase{Runner: runner}
	ctx := context.Background()

	cases := []Request{
		{CharacterID: "", DeltaSeconds: 0.1},
		{CharacterID: "c1", DeltaSeconds: 0},
		{CharacterID: "c1", DeltaSeconds: -0.1},
		{CharacterID: "c1", DeltaSeconds: math.NaN()},
		{CharacterID: "c1", DeltaSeconds: math.Inf(1)},
	}
	for _, req := range cases {
		if _, err := uc.Execute(ctx, req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest for %+v, got %v", req, err)
		}
	}
}

func TestUseCase_ClampsLargeDelta(t *testing.T) {
	runner, _, _ := seededRunner(t)
	uc := UseCase{Runner: runner, MaxDelta: 0.5}

	resp, err := uc.Execute(context.Background(), Request{CharacterID: "c1", DeltaSeconds: 5})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !resp.Clamped || resp.AppliedDeltaSecs != 0.5 {
		t.Fatalf("expected clamp to 0.5, got %+v", resp)
	}
}

func TestUseCase_UnknownCharacter(t *testing.T) {
	runner, _, _ := seededRunner(t)
	uc := UseCase{Runner: runner}
	if _, err := uc.Execute(context.Background(), Request{CharacterID: "ghost", DeltaSeconds: 0.1}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseCase_ExpiresEffectAndRestoresSpeed(t *testing.T) {
	runner, c, _ := seededRunner(t)
	uc := UseCase{Runner: runner}
	ctx := context.Background()

	boost, err := pickup.DefaultCatalog().Create(pickup.KindSpeedBoost)
	if err != nil {
		t.Fatalf("create boost: %v", err)
	}
	if err := c.AddEffect(boost); err != nil {
		t.Fatalf("add boost: %v", err)
	}

	var sawExpired bool
	var last Response
	for i := 0; i < 12; i++ {
		last, err = uc.Execute(ctx, Request{CharacterID: "c1", DeltaSeconds: DefaultMaxDelta})
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		for _, e := range last.Events {
			if e.Type == string(character.EventEffectExpired) {
				sawExpired = true
			}
		}
	}
	if !sawExpired {
		t.Fatalf("expected speed boost to expire after its duration")
	}
	if c.HasEffect(pickup.KindSpeedBoost) {
		t.Fatalf("expected boost removed")
	}
	if last.State.TargetSpeed != character.DefaultStartSpeed {
		t.Fatalf("expected target speed restored to %v, got %v", character.DefaultStartSpeed, last.State.TargetSpeed)
	}
}

func TestUseCase_EndHookFailureIsReportedNotFailed(t *testing.T) {
	runner, c, metrics := seededRunner(t)
	uc := UseCase{Runner: runner}
	if err := c.AddEffect(brittleEffect{duration: 0.1}); err != nil {
		t.Fatalf("add effect: %v", err)
	}

	resp, err := uc.Execute(context.Background(), Request{CharacterID: "c1", DeltaSeconds: 0.2})
	if err != nil {
		t.Fatalf("expected hook failure in response, got error %v", err)
	}
	if resp.HookError == "" {
		t.Fatalf("expected hook error message")
	}
	if c.HasEffect("brittle") {
		t.Fatalf("expected failing effect removed anyway")
	}
	if metrics.Snapshot().HookFailure != 1 {
		t.Fatalf("expected hook failure counted")
	}
}

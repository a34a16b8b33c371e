package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"larryrun/internal/app/observe"
	"larryrun/internal/app/pickup"
	"larryrun/internal/app/ports"
	"larryrun/internal/app/replay"
	"larryrun/internal/app/run"
	"larryrun/internal/app/spawn"
	"larryrun/internal/app/status"
	"larryrun/internal/app/tick"
	"larryrun/internal/app/vitals"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SpawnUC   spawn.UseCase
	ListUC    status.ListUseCase
	StatusUC  status.UseCase
	TickUC    tick.UseCase
	RunUC     run.UseCase
	PickupUC  pickup.UseCase
	VitalsUC  vitals.UseCase
	ObserveUC observe.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.POST("/api/characters", h.spawn)
	s.GET("/api/characters", h.list)

	c := s.Group("/api/characters/:id")
	c.GET("/status", h.status)
	c.GET("/observe", h.observe)
	c.GET("/replay", h.replay)
	c.POST("/tick", h.tick)
	c.POST("/run", h.run)
	c.POST("/pickup", h.pickup)
	c.POST("/damage", h.damage)
	c.POST("/heal", h.heal)

	s.GET("/api/pickups", h.pickupKinds)
	s.GET("/ops/kpi", h.kpi)
}

type spawnRequest struct {
	StartSpeed  *float64 `json:"start_speed,omitempty"`
	StartHealth *int     `json:"start_health,omitempty"`
	Smoothing   *float64 `json:"smoothing,omitempty"`
}

type tickRequest struct {
	DeltaSeconds float64 `json:"dt"`
}

type runRequest struct {
	DeltaSeconds float64 `json:"dt"`
	Lane         int     `json:"lane"`
}

type pickupRequest struct {
	Kind     string   `json:"kind"`
	Duration *float64 `json:"duration,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
}

type amountRequest struct {
	Amount int `json:"amount"`
}

func (h Handler) spawn(c context.Context, ctx *app.RequestContext) {
	var body spawnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SpawnUC.Execute(c, spawn.Request{
		StartSpeed:  body.StartSpeed,
		StartHealth: body.StartHealth,
		Smoothing:   body.Smoothing,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) list(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ListUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{CharacterID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	ahead, _ := strconv.Atoi(string(ctx.Query("ahead")))
	resp, err := h.ObserveUC.Execute(c, observe.Request{CharacterID: ctx.Param("id"), Ahead: ahead})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	var types []string
	for _, t := range strings.Split(string(ctx.Query("types")), ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		CharacterID: ctx.Param("id"),
		Limit:       limit,
		Types:       types,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TickUC.Execute(c, tick.Request{CharacterID: ctx.Param("id"), DeltaSeconds: body.DeltaSeconds})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) run(c context.Context, ctx *app.RequestContext) {
	var body runRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	// lane 0 is a real lane, so it has to be explicit.
	if !hasJSONField(ctx.Request.Body(), "lane") {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_lane", "lane is required")
		return
	}
	resp, err := h.RunUC.Execute(c, run.Request{
		CharacterID:  ctx.Param("id"),
		DeltaSeconds: body.DeltaSeconds,
		Lane:         body.Lane,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) pickup(c context.Context, ctx *app.RequestContext) {
	var body pickupRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PickupUC.Execute(c, pickup.Request{
		CharacterID: ctx.Param("id"),
		Kind:        body.Kind,
		Duration:    body.Duration,
		Amount:      body.Amount,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) damage(c context.Context, ctx *app.RequestContext) {
	h.vitals(c, ctx, vitals.OpDamage)
}

func (h Handler) heal(c context.Context, ctx *app.RequestContext) {
	h.vitals(c, ctx, vitals.OpHeal)
}

func (h Handler) vitals(c context.Context, ctx *app.RequestContext, op vitals.Op) {
	var body amountRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.VitalsUC.Execute(c, vitals.Request{CharacterID: ctx.Param("id"), Op: op, Amount: body.Amount})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) pickupKinds(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"kinds": h.PickupUC.Kinds()})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func hasJSONField(body []byte, key string) bool {
	if len(body) == 0 {
		return false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, spawn.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, run.ErrInvalidRequest),
		errors.Is(err, pickup.ErrInvalidRequest),
		errors.Is(err, vitals.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

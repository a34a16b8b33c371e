package character

import (
	"errors"
	"fmt"
)

var (
	ErrNilEffect       = errors.New("nil effect")
	ErrInvalidDuration = errors.New("effect duration must be positive")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidConfig   = errors.New("invalid character config")
)

type HookStage string

const (
	HookBegin HookStage = "begin"
	HookEnd   HookStage = "end"
)

// HookError wraps a failure returned by an effect's Begin or End hook.
type HookError struct {
	Kind  string
	Stage HookStage
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("effect %s %s hook: %v", e.Kind, e.Stage, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

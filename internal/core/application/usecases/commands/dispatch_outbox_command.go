package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrDispatchOutboxCommandIsNotConstructed = errors.New(
		"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
	)
)

// DispatchOutboxCommand requests a delivery attempt for pending integration
// events. It is parameterless; the handler drains the unpublished backlog in
// batches.
type DispatchOutboxCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOutboxCommand creates a command to dispatch pending events.
func NewDispatchOutboxCommand() DispatchOutboxCommand {
	return DispatchOutboxCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOutboxCommandIsNotConstructed)
}

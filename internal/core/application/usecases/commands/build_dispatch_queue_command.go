package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrBuildDispatchQueueCommandIsNotConstructed = errors.New(
	"BuildDispatchQueueCommand must be created via NewBuildDispatchQueueCommand constructor",
)

// BuildDispatchQueueCommand requests the courier-facing dispatch queue
// for a single market.
type BuildDispatchQueueCommand struct { //nolint:recvcheck //using for validation
	marketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBuildDispatchQueueCommand creates a command for one market queue build.
func NewBuildDispatchQueueCommand(marketID kernel.UUID) (BuildDispatchQueueCommand, error) {
	cmd := BuildDispatchQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMarketID(marketID); err != nil {
		return BuildDispatchQueueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BuildDispatchQueueCommand) Validate() error {
	return c.guard.Validate(ErrBuildDispatchQueueCommandIsNotConstructed)
}

// MarketID returns the market to build the queue for.
func (c BuildDispatchQueueCommand) MarketID() kernel.UUID {
	return c.marketID
}

func (c *BuildDispatchQueueCommand) setMarketID(marketID kernel.UUID) error {
	if err := marketID.Validate(); err != nil {
		return err
	}

	c.marketID = marketID
	return nil
}

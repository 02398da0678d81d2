package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrEvaluateFallbackCommandIsNotConstructed = errors.New(
	"EvaluateFallbackCommand must be created via NewEvaluateFallbackCommand constructor",
)

// EvaluateFallbackCommand requests a fallback evaluation sweep over a
// single market's open orders.
type EvaluateFallbackCommand struct { //nolint:recvcheck //using for validation
	marketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEvaluateFallbackCommand creates a command for one market sweep.
func NewEvaluateFallbackCommand(marketID kernel.UUID) (EvaluateFallbackCommand, error) {
	cmd := EvaluateFallbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMarketID(marketID); err != nil {
		return EvaluateFallbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EvaluateFallbackCommand) Validate() error {
	return c.guard.Validate(ErrEvaluateFallbackCommandIsNotConstructed)
}

// MarketID returns the market to evaluate.
func (c EvaluateFallbackCommand) MarketID() kernel.UUID {
	return c.marketID
}

func (c *EvaluateFallbackCommand) setMarketID(marketID kernel.UUID) error {
	if err := marketID.Validate(); err != nil {
		return err
	}

	c.marketID = marketID
	return nil
}

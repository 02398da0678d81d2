package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// fallbackSweepSchedule runs the sweep every 30 seconds, well inside the
// shortest fallback window the policy allows.
const fallbackSweepSchedule = "*/30 * * * * *"

// FallbackEvaluationJob periodically sweeps every market and moves overdue
// tenant-assigned delivery orders to market delivery responsibility.
type FallbackEvaluationJob struct {
	evaluateHandler   commands.EvaluateFallbackCommandHandler
	getMarketsHandler queries.GetMarketsQueryHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewFallbackEvaluationJob creates a new job for fallback evaluation sweeps.
// Fans out over GetMarketsQuery and runs EvaluateFallbackCommand per market.
func NewFallbackEvaluationJob(
	evaluateHandler commands.EvaluateFallbackCommandHandler,
	getMarketsHandler queries.GetMarketsQueryHandler,
	logger *slog.Logger,
) *FallbackEvaluationJob {
	return &FallbackEvaluationJob{
		evaluateHandler:   evaluateHandler,
		getMarketsHandler: getMarketsHandler,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "fallback_evaluation_job"),
	}
}

// Start begins the fallback evaluation job to run every 30 seconds.
func (j *FallbackEvaluationJob) Start() error {
	_, err := j.cron.AddFunc(fallbackSweepSchedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fallback evaluation job started (running every 30 seconds)")
	return nil
}

// Stop stops the fallback evaluation job.
func (j *FallbackEvaluationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fallback evaluation job stopped")
}

// sweep runs one fallback evaluation over every known market.
// A failing market does not stop the sweep for the remaining ones.
func (j *FallbackEvaluationJob) sweep() {
	ctx := context.Background()

	markets, err := j.getMarketsHandler.Handle(ctx, queries.NewGetMarketsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fallback sweep failed to list markets", "error", err)
		return
	}

	for _, market := range markets {
		cmd, err := commands.NewEvaluateFallbackCommand(market.MarketID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fallback sweep built an invalid command",
				"market_id", market.MarketID.String(), "error", err)
			continue
		}

		if err := j.evaluateHandler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoTenantsInMarket) {
				j.logger.ErrorContext(ctx, "Fallback evaluation failed",
					"market_id", market.MarketID.String(), "error", err)
			}
		}
	}
}

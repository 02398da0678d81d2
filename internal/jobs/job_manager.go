package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fallbackEvaluationJob *FallbackEvaluationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	evaluateFallbackHandler commands.EvaluateFallbackCommandHandler,
	getMarketsHandler queries.GetMarketsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fallbackEvaluationJob: NewFallbackEvaluationJob(evaluateFallbackHandler, getMarketsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fallbackEvaluationJob.Start(); err != nil {
		return fmt.Errorf("failed to start fallback evaluation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fallbackEvaluationJob.Stop()
}

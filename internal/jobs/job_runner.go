package jobs

import (
	"spacebook-backend/internal/config"
	"spacebook-backend/internal/logger"
	"spacebook-backend/internal/media"
	"spacebook-backend/internal/repository/postgres"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store      *postgres.Store
	mediaStore *media.Store
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, mediaStore *media.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:      store,
		mediaStore: mediaStore,
		config:     cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dailySalesReportJob *DailySalesReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reportHandler DailySalesReportHandler,
	reportSettings DailySalesReportSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailySalesReportJob: NewDailySalesReportJob(reportHandler, reportSettings, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dailySalesReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily sales report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.dailySalesReportJob.Stop()
}

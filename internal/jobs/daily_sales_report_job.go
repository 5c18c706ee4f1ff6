package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultDailySalesReportSchedule runs the report at 00:05:00 every day.
const DefaultDailySalesReportSchedule = "0 5 0 * * *"

// DailySalesReportHandler builds the sales report of one day.
type DailySalesReportHandler interface {
	Handle(ctx context.Context, query queries.GetDailySalesReportQuery) (services.SalesReport, error)
}

// DailySalesReportSettings configures DailySalesReportJob. Zero values select
// DefaultDailySalesReportSchedule, the default popular items limit and UTC.
type DailySalesReportSettings struct {
	Schedule string
	Limit    int
	Location *time.Location
}

// DailySalesReportJob logs the sales report of the previous day on a cron
// schedule with a seconds field.
type DailySalesReportJob struct {
	handler  DailySalesReportHandler
	settings DailySalesReportSettings
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailySalesReportJob creates a report job.
func NewDailySalesReportJob(
	handler DailySalesReportHandler,
	settings DailySalesReportSettings,
	logger *slog.Logger,
) *DailySalesReportJob {
	if settings.Schedule == "" {
		settings.Schedule = DefaultDailySalesReportSchedule
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &DailySalesReportJob{
		handler:  handler,
		settings: settings,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(settings.Location)),
		logger:   logger.With("component", "daily_sales_report_job"),
	}
}

// Start schedules the job.
func (j *DailySalesReportJob) Start() error {
	_, err := j.cron.AddFunc(j.settings.Schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily sales report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started",
		"schedule", j.settings.Schedule,
		"location", j.settings.Location.String(),
	)
	return nil
}

// Run builds and logs the report of the day before now.
func (j *DailySalesReportJob) Run(ctx context.Context) (services.SalesReport, error) {
	day := j.now().In(j.settings.Location).AddDate(0, 0, -1)

	query, err := queries.NewGetDailySalesReportQuery(day, j.settings.Limit)
	if err != nil {
		return services.SalesReport{}, err
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		return services.SalesReport{}, err
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"date", report.Date.Format(time.DateOnly),
		"orders", report.OrderCount,
		"items", report.ItemCount,
		"revenue", report.Revenue.StringFixed(2),
		"report", report.String(),
	)
	return report, nil
}

// Stop stops the scheduler. A run in progress is not interrupted.
func (j *DailySalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}

package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDailySalesReportHandler struct {
	mock.Mock
}

func (m *MockDailySalesReportHandler) Handle(
	ctx context.Context,
	query queries.GetDailySalesReportQuery,
) (services.SalesReport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.SalesReport), args.Error(1)
}

func newJob(handler DailySalesReportHandler, settings DailySalesReportSettings, out *bytes.Buffer) *DailySalesReportJob {
	return NewDailySalesReportJob(handler, settings, slog.New(slog.NewJSONHandler(out, nil)))
}

func TestNewDailySalesReportJob(t *testing.T) {
	job := newJob(new(MockDailySalesReportHandler), DailySalesReportSettings{}, new(bytes.Buffer))

	assert.Equal(t, DefaultDailySalesReportSchedule, job.settings.Schedule)
	assert.Equal(t, time.UTC, job.settings.Location)
}

func TestDailySalesReportJob_Run(t *testing.T) {
	location := time.FixedZone("UTC-5", -5*60*60)

	t.Run("should report the previous day in the configured location", func(t *testing.T) {
		handler := new(MockDailySalesReportHandler)
		out := new(bytes.Buffer)
		job := newJob(handler, DailySalesReportSettings{Limit: 3, Location: location}, out)
		// 03:00 UTC on March 15 is still March 14 in UTC-5.
		job.now = func() time.Time { return time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC) }

		day := time.Date(2026, 3, 13, 0, 0, 0, 0, location)
		report := services.SalesReport{Date: day, OrderCount: 2, ItemCount: 4, Revenue: kernel.MustMoney("21.60")}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDailySalesReportQuery) bool {
			y, m, d := q.Day().Date()
			return y == 2026 && m == time.March && d == 13 && q.Limit() == 3 && q.Day().Location() == location
		})).Return(report, nil).Once()

		got, err := job.Run(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 2, got.OrderCount)
		handler.AssertExpectations(t)

		var record map[string]any
		require.NoError(t, json.Unmarshal(lastLine(out.Bytes()), &record))
		assert.Equal(t, "Daily sales report", record["msg"])
		assert.Equal(t, "daily_sales_report_job", record["component"])
		assert.Equal(t, "2026-03-13", record["date"])
		assert.Equal(t, "21.60", record["revenue"])
		assert.Contains(t, record["report"], "Daily sales report for 2026-03-13")
	})

	t.Run("should return handler errors", func(t *testing.T) {
		handler := new(MockDailySalesReportHandler)
		job := newJob(handler, DailySalesReportSettings{}, new(bytes.Buffer))
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(services.SalesReport{}, errors.New("database is down")).Once()

		_, err := job.Run(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is down")
	})
}

func TestDailySalesReportJob_StartStop(t *testing.T) {
	t.Run("should start and stop with a valid schedule", func(t *testing.T) {
		job := newJob(new(MockDailySalesReportHandler), DailySalesReportSettings{Schedule: "0 0 1 * * *"}, new(bytes.Buffer))

		require.NoError(t, job.Start())
		job.Stop()
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := newJob(new(MockDailySalesReportHandler), DailySalesReportSettings{Schedule: "every day"}, new(bytes.Buffer))

		assert.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(new(bytes.Buffer), nil))

	t.Run("should start and stop all jobs", func(t *testing.T) {
		jm := NewJobManager(new(MockDailySalesReportHandler), DailySalesReportSettings{}, logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("should name the job that failed to start", func(t *testing.T) {
		jm := NewJobManager(new(MockDailySalesReportHandler), DailySalesReportSettings{Schedule: "* *"}, logger)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "daily sales report job")
	})
}

func lastLine(b []byte) []byte {
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	return lines[len(lines)-1]
}

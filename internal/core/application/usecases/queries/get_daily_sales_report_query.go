package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetDailySalesReportQueryIsNotConstructed = errors.New(
	"GetDailySalesReportQuery must be created via NewGetDailySalesReportQuery constructor",
)

// GetDailySalesReportQuery asks for the sales of one calendar day.
// The day is interpreted in the location of the given time.
type GetDailySalesReportQuery struct {
	day   time.Time
	limit int
	guard guard.ConstructorGuard
}

// NewGetDailySalesReportQuery creates a report query. limit caps the most
// popular items list; non-positive selects the default.
func NewGetDailySalesReportQuery(day time.Time, limit int) (GetDailySalesReportQuery, error) {
	if day.IsZero() {
		return GetDailySalesReportQuery{}, errs.NewValueIsRequiredError("day")
	}
	return GetDailySalesReportQuery{day: day, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailySalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesReportQueryIsNotConstructed)
}

func (q GetDailySalesReportQuery) Day() time.Time { return q.day }
func (q GetDailySalesReportQuery) Limit() int     { return q.limit }

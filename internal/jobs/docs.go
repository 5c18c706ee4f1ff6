// Package jobs provides scheduled background tasks for the restaurant.
//
// Jobs run on github.com/robfig/cron/v3 with a leading seconds field.
//
// # Available Jobs
//
// DailySalesReportJob runs once a day (DefaultDailySalesReportSchedule,
// 00:05:00 in the configured location) and logs the sales report of the
// previous day: order count, revenue, most popular items and revenue by
// category.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, jobs.DailySalesReportSettings{
//		Schedule: "0 5 0 * * *",
//		Limit:    5,
//		Location: location,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule continues. An invalid cron
// expression is reported by StartAll.
package jobs

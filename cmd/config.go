package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ReportSchedule is a cron expression with a seconds field.
	ReportSchedule    string
	ReportTimeZone    string
	PopularItemsLimit int

	NotificationSender string
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location resolves ReportTimeZone. An empty zone is UTC.
func (c Config) Location() (*time.Location, error) {
	if c.ReportTimeZone == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(c.ReportTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid report time zone %q: %w", c.ReportTimeZone, err)
	}
	return location, nil
}

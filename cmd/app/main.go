package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"restaurant/cmd"
	httpapi "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	location, err := configs.Location()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, location, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ReportSchedule:     goDotEnvVariable("REPORT_SCHEDULE"),
		ReportTimeZone:     goDotEnvVariable("REPORT_TIME_ZONE"),
		NotificationSender: goDotEnvVariable("NOTIFICATION_SENDER"),
	}

	if raw := goDotEnvVariable("POPULAR_ITEMS_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("POPULAR_ITEMS_LIMIT must be an integer: %v", err)
		}
		config.PopularItemsLimit = limit
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.CustomizationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpapi.NewEcho(logger)
	httpapi.RegisterHandlers(e, app.CreateHTTPServer())
	if err := httpapi.RegisterDocs(e); err != nil {
		log.Fatalf("Failed to register API docs: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", "error", err)
	}
}

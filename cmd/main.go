package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employee_portal/internal/handlers"
	"employee_portal/internal/logger"
	"employee_portal/internal/repository"
	"employee_portal/internal/repository/db"
	"employee_portal/internal/server"
	"employee_portal/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultPort   = "5000"
	defaultDBPath = "app.db"
)

func main() {
	// load config.yml + env overrides
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"))

	signingKey := viper.GetString("signing_key")
	if signingKey == "" {
		log.Fatalw("signing_key is not set; provide it via config or SIGNING_KEY")
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)

	// load demo data; per-row failures are logged inside and do not abort startup
	if err := repository.SeedDemoData(repos, log); err != nil {
		log.Fatalw("failed to seed database", "err", err)
	}

	services := service.NewService(repos, signingKey)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("log.level", logger.InfoLevel)

	// environment overrides: PORT, SIGNING_KEY, DB_PATH
	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("signing_key", "SIGNING_KEY")
	_ = viper.BindEnv("db.path", "DB_PATH")

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		// the file is optional as long as env supplies the values
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

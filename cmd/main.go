package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily_companion/internal/handlers"
	"daily_companion/internal/logger"
	"daily_companion/internal/repository"
	"daily_companion/internal/server"
	"daily_companion/internal/service"
	"daily_companion/internal/session"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first so the log level can come from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// session store on the filesystem
	sessions, err := openSessions()
	if err != nil {
		log.Fatalw("failed to init session store", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos)
	webHandler := handlers.NewHandler(services, sessions, log)

	router := webHandler.InitRoutes()
	router.LoadHTMLGlob(templatesGlob())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), router, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "companion.db")
		dbPath = "companion.db"
	}
	return repository.InitDB(dbPath)
}

// openSessions builds the filesystem session store, creating its directory.
func openSessions() (*session.Manager, error) {
	dir := viper.GetString("session.dir")
	if dir == "" {
		dir = "./sessions"
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return session.NewManager(dir, viper.GetString("session.secret")), nil
}

func templatesGlob() string {
	if glob := viper.GetString("templates.glob"); glob != "" {
		return glob
	}
	return "web/templates/*.html"
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler); err != nil {
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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

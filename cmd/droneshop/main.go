package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"droneshop/internal/config"
	applog "droneshop/internal/log"
	"droneshop/internal/repos"
	"droneshop/internal/server"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	var sink io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Error(nil, "logfile.open", err, map[string]any{"path": cfg.LogFile})
		} else {
			defer f.Close()
			sink = io.MultiWriter(os.Stdout, f)
			applog.SetOutput(sink)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		applog.Error(nil, "db.open", err, nil)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.SeedDemo {
		if err := repos.Seed(db); err != nil {
			applog.Error(nil, "seed.demo", err, nil)
			os.Exit(1)
		}
	}

	app := server.New(cfg, db, server.Options{AccessLog: sink})

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		applog.Info(nil, "server.shutdown", nil)
		_ = app.Shutdown()
	}()

	applog.Info(nil, "server.listen", map[string]any{"addr": ":" + cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		applog.Error(nil, "server.listen", err, nil)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/shell"
	"elevsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", "", ".env file with ELEVSIM_* overrides")
	floors := flag.Int("floors", 0, "number of floors, overrides the config")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envPath, *floors)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The status line owns stdout; logs go to the log file when there is one.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logOut = io.Discard
	}
	logCloser, err := elev.InitLogger(logOut, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	elevMgr := elev.StartStateMgr(ctx, cfg, elev.Options{
		MaxPeople:       cfg.MaxPeople,
		EnforceCapacity: cfg.EnforceCapacity,
	}, cfg.TickInterval)
	slog.Info("Elevator started", "floors", cfg.NumFloors, "tick", cfg.TickInterval)

	events := elevMgr.Subscribe(16)
	go func() {
		for event := range events {
			utils.PrintStatus(os.Stdout, event.State)
		}
	}()
	utils.PrintStatus(os.Stdout, elevMgr.GetState())

	err = shell.New(elevMgr, os.Stdout, cfg.TickInterval).Run(ctx)
	stop()
	<-elevMgr.Done()
	fmt.Println()
	if err != nil {
		slog.Error("Shell stopped", "err", err)
		os.Exit(1)
	}
}

func loadConfig(configPath, envPath string, floors int) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if cfg, err = config.LoadEnv(cfg, envPath); err != nil {
		return cfg, err
	}
	if floors > 0 {
		cfg.NumFloors = floors
	}
	return cfg, cfg.Validate()
}

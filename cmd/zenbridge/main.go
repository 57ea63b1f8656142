package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/Chernika535/Zen-RSS-pro/pkg/config"
	"github.com/Chernika535/Zen-RSS-pro/pkg/feed"
	"github.com/Chernika535/Zen-RSS-pro/pkg/proc"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
	"github.com/Chernika535/Zen-RSS-pro/pkg/scheduler"
	"github.com/Chernika535/Zen-RSS-pro/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

const userAgent = "ZenBridge/1.0"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	lgr.Printf("[INFO] starting zenbridge version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, &opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

func run(ctx context.Context, opts *Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if err := seedFeedConfig(ctx, repos.Config, cfg); err != nil {
		return fmt.Errorf("seed feed config: %w", err)
	}

	parser := feed.NewParser(cfg.Processing.Timeout, userAgent)
	processor := proc.NewProcessor(repos.Article, cfg.Processing.Delay)
	pipeline := proc.NewPipeline(repos.Article, repos.Config, parser, processor)

	sched := scheduler.NewScheduler(pipeline, repos.Config,
		time.Duration(cfg.Schedule.CheckInterval)*time.Minute)
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, repos.Article, repos.Config, sched, pipeline,
		feed.NewGenerator(), revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// seedFeedConfig stores the feed section of the YAML config on first run.
// An existing stored configuration always wins, the file is not re-applied.
func seedFeedConfig(ctx context.Context, configs *repository.ConfigRepository, cfg *config.Config) error {
	exists, err := configs.HasConfig(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	seed := cfg.FeedConfig()
	if err := configs.CreateConfig(ctx, seed); err != nil {
		return err
	}
	lgr.Printf("[INFO] seeded feed configuration for %s", seed.SourceURL)
	return nil
}

func setupLog(dbg, noColor bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

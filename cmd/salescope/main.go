package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/salescope/pkg/config"
	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/newsapi"
	"github.com/umputun/salescope/pkg/quota"
	"github.com/umputun/salescope/pkg/repository"
	"github.com/umputun/salescope/pkg/scheduler"
	"github.com/umputun/salescope/pkg/trigger"
	"github.com/umputun/salescope/server"
)

// usageRetentionDays limits how far back persisted quota counts are kept
const usageRetentionDays = 7

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// optional .env next to the binary, same convention the dashboard uses
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config from %s: %v", opts.Config, err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.NewsAPI.APIKey)

	log.Printf("[INFO] starting salescope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] salescope failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the retrieval engine together and blocks until the context is done
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	// prune stale usage rows, only a short history is worth keeping
	cutoff := time.Now().AddDate(0, 0, -usageRetentionDays).Format("2006-01-02")
	if err := repos.Usage.Cleanup(ctx, cutoff); err != nil {
		log.Printf("[WARN] failed to cleanup usage history: %v", err)
	}

	tracker := quota.New(cfg.NewsAPI.DailyLimit, quota.WithStore(repos.Usage))
	log.Printf("[INFO] daily quota %d calls, %d remaining today", cfg.NewsAPI.DailyLimit, tracker.Remaining())

	client := newsapi.NewClient(newsapi.Config{
		Endpoint:  cfg.NewsAPI.Endpoint,
		APIKey:    cfg.NewsAPI.APIKey,
		Timeout:   cfg.NewsAPI.Timeout,
		RateLimit: cfg.NewsAPI.RateLimit,
	}, tracker)

	catalog := buildCatalog(cfg)
	orch, err := trigger.NewOrchestrator(client, catalog, trigger.Config{
		DaysBack:       cfg.Triggers.DaysBack,
		ExcludeDomains: cfg.NewsAPI.ExcludeDomains,
	})
	if err != nil {
		return fmt.Errorf("init orchestrator: %w", err)
	}
	log.Printf("[INFO] trigger catalog: %v", catalog.Names())

	sched := scheduler.New(orch, scheduler.Config{
		RefreshInterval: cfg.Schedule.RefreshInterval,
		SnapshotTTL:     cfg.Schedule.SnapshotTTL,
		Region:          cfg.Triggers.Region,
	})

	srv := server.New(cfg, client, orch, tracker, sched, revision, debug)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return sched.Run(ctx) })
	return g.Wait()
}

// buildCatalog converts configured triggers into the catalog, falling back to
// the stock catalog when none are configured
func buildCatalog(cfg *config.Config) trigger.Catalog {
	if len(cfg.Triggers.Catalog) == 0 {
		return trigger.DefaultCatalog()
	}

	catalog := make(trigger.Catalog, 0, len(cfg.Triggers.Catalog))
	for _, t := range cfg.Triggers.Catalog {
		catalog = append(catalog, domain.TriggerType{
			Name: t.Name,
			Query: domain.SearchQuery{
				BooleanExpression: t.Query,
				Language:          cfg.NewsAPI.Language,
				SortBy:            domain.SortBy(cfg.NewsAPI.SortBy),
			},
		})
	}
	return catalog
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

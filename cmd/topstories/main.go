package main

import (
	"context"
	"fmt"
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

	"github.com/umputun/topstories/pkg/config"
	"github.com/umputun/topstories/pkg/coordinator"
	"github.com/umputun/topstories/pkg/nyt"
	"github.com/umputun/topstories/pkg/repository"
	"github.com/umputun/topstories/pkg/store"
	"github.com/umputun/topstories/server"
)

// Opts with all CLI options
type Opts struct {
	Config     string `short:"c" long:"config" env:"CONFIG" default:"topstories.yml" description:"configuration file"`
	EnvFile    string `long:"env-file" env:"ENV_FILE" default:".env" description:"optional env file with config variables"`
	Listen     string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	ClearCache bool   `long:"clear-cache" description:"drop cached articles on start"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
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

	SetupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting topstories version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	if err := loadEnv(opts.EnvFile); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// api key must never show up in logs
	SetupLog(opts.Debug, opts.NoColor, cfg.API.APIKey)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	log.Printf("[DEBUG] state namespace %s", repos.State.Namespace())

	articles := store.NewArticleStore(repos.State)
	if err := articles.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore articles: %w", err)
	}
	if opts.ClearCache {
		if err := articles.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		log.Print("[INFO] articles cache cleared")
	}

	prefs := store.NewPreferenceStore(repos.State)
	if err := prefs.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore preferences: %w", err)
	}

	client := nyt.New(nyt.Config{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.APIKey,
		Timeout:    cfg.API.Timeout,
		Attempts:   cfg.API.RetryAttempts,
		RetryDelay: cfg.API.RetryDelay,
		PerMinute:  cfg.API.RateLimit,
	})
	coord := coordinator.New(client, articles, coordinator.Config{Section: prefs.Get().SelectedSection})
	srv := server.New(cfg, coord, prefs, articles, revision, opts.Debug)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx)
	})
	g.Go(func() error {
		section := prefs.Get().SelectedSection
		log.Printf("[INFO] initial load of %s", section)
		coord.LoadArticles(gCtx, section, false)
		return nil
	})

	return g.Wait()
}

// loadEnv sets variables from env file, already defined ones are kept. Missing file is fine.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	log.Printf("[DEBUG] loaded env from %s", path)
	return nil
}

// SetupLog configures lgr and the std logger, secrets are masked in the output
func SetupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

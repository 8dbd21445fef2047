// main is the entry point for the timerclock daemon
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/cirocosta/timerclock/internal/api"
	"github.com/cirocosta/timerclock/internal/clock"
	"github.com/cirocosta/timerclock/internal/config"
	"github.com/cirocosta/timerclock/internal/persistence"
	"github.com/cirocosta/timerclock/internal/repository"
	"github.com/cirocosta/timerclock/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	os.Args = os.Args[1:]

	var err error
	switch cmd {
	case "run":
		err = runServer()
	case "status":
		err = printStatus()
	case "openapi-gen":
		err = generateOpenAPI()
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "timerclock %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`
Usage: timerclock <command> [options]

Commands:
  run          Restore history, run the tick loop and serve the HTTP API
  status       Print the restored state as JSON
  openapi-gen  Generate OpenAPI documentation

Run 'timerclock <command> -h' for more information on a command.
`)
}

func loadConfig() (config.Config, error) {
	path := flag.String("config", "timerclock.yml", "path to the YAML config file")
	flag.Parse()

	return config.Load(*path)
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := cfg.Level() // validated by config.Load
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// restore loads the history file. An undecodable file is moved aside so the
// periodic save cannot overwrite it and the daemon starts empty. A file that
// cannot be read at all stops the start.
func restore(logger *slog.Logger, files *persistence.FileStore, now time.Time) (*repository.Store, error) {
	store, err := files.Load(now)

	var perr *persistence.Error
	switch {
	case err == nil:
	case errors.As(err, &perr) && perr.Kind == persistence.ParseFailure:
		moved, qerr := files.Quarantine()
		if qerr != nil {
			return nil, fmt.Errorf("quarantine unreadable history: %w", qerr)
		}
		logger.Error("history unreadable, starting empty",
			"path", files.Path,
			"moved_to", moved,
			"error", err,
		)
		return store, nil
	default:
		return nil, err
	}

	n := store.Len()
	logger.Info("history restored",
		"path", files.Path,
		"timers", n[repository.KindTimer],
		"alarms", n[repository.KindAlarm],
		"countdowns", n[repository.KindCountdown],
		"todos", n[repository.KindTodo],
	)
	return store, nil
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	c := clock.Real{}
	files := persistence.NewFileStore(cfg.HistoryFile)
	store, err := restore(logger, files, c.Now())
	if err != nil {
		return err
	}

	svc := service.New(store, service.Options{
		Clock:   c,
		Windows: cfg.Windows(),
		Saver:   files,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: api.NewRouter(svc),
	}

	// create context that listens for interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		service.Run(ctx, c, cfg.TickInterval, func(now time.Time) {
			svc.TickAt(ctx, now)
		})
	}()

	go func() {
		defer wg.Done()
		t := time.NewTicker(cfg.SaveInterval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := svc.Save(ctx); err != nil {
					logger.Error("save history", "path", files.Path, "error", err)
				}
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
		stop()
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	wg.Wait()

	if err := svc.Save(context.Background()); err != nil {
		return fmt.Errorf("final save: %w", err)
	}

	logger.Info("history saved", "path", files.Path)
	return runErr
}

func printStatus() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	store, err := persistence.NewFileStore(cfg.HistoryFile).Load(now)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(service.BuildView(store, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func generateOpenAPI() error {
	output := flag.String("o", "openapi.json", "Output file path")
	flag.Parse()

	// routes only; the service is never called
	svc := service.New(repository.NewStore(), service.Options{})

	data, err := api.NewRouter(svc).OpenAPIJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write openapi document to file '%s': %w", *output, err)
	}

	fmt.Printf("OpenAPI document generated at %s\n", *output)
	return nil
}

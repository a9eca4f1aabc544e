package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/pkg/api"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/realtime"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/search/sources"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the search API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Listen address (overrides config)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c.String("config"), c.String("listen"))
		},
	}
}

func serve(ctx context.Context, configPath, listenOverride string) error {
	logger := log.ForSource("serve")

	cfg, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf("closing database: %v", err)
		}
	}()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	listenAddr := cfg.ListenAddr
	if listenOverride != "" {
		listenAddr = listenOverride
	}

	hub := realtime.NewHub(16)
	cache := search.NewCache(cfg.CacheTTL.Duration)
	service := search.NewService(sources.All(store), cache)
	server := api.NewServer(service, store, hub)

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", listenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Watch the config and database files. Imports land through a separate
	// process, so a database write is the only signal the cache is stale.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warnf("failed to create file watcher: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warnf("closing file watcher: %v", err)
			}
		}()
		for _, path := range []string{configPath, cfg.DBPath} {
			if err := watcher.Add(path); err != nil {
				logger.Warnf("failed to watch %s: %v", path, err)
			} else {
				logger.Infof("watching %s for changes", path)
			}
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		select {
		case err := <-serverErr:
			return fmt.Errorf("http server: %w", err)

		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				logger.Infof("received SIGHUP, clearing search cache")
				service.ClearCache()
				hub.Publish(realtime.ChangeEvent{Entity: "all", Action: realtime.ActionReload})
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Infof("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}

		case event, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			if !cfg.WatchChanges {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debugf("file changed: %s (%s)", event.Name, event.Op)
				service.ClearCache()
				entity := "all"
				if event.Name == configPath {
					entity = "config"
				}
				hub.Publish(realtime.ChangeEvent{Entity: entity, Action: realtime.ActionReload})
				// Atomic writes replace the file; re-add it so further
				// changes keep arriving.
				if event.Has(fsnotify.Rename) {
					time.Sleep(200 * time.Millisecond)
					if _, err := os.Stat(event.Name); err == nil {
						if err := watcher.Add(event.Name); err != nil {
							logger.Warnf("re-adding %s to watcher: %v", event.Name, err)
						}
					}
				}
			}

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			logger.Warnf("file watcher error: %v", err)

		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}
	}
}

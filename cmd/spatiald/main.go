// spatiald is an example front-end for the quadtree: it loads a set of named
// places from a CSV file, indexes them, and answers rectangle queries and
// inserts over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-spatial/pkg/logger"
	"github.com/huynhanx03/go-spatial/pkg/quadtree"
	"github.com/huynhanx03/go-spatial/pkg/settings"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := settings.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(cfg.Logger)
	defer func() { _ = lg.Sync() }()

	bounds := quadtree.Between(
		quadtree.Pt(cfg.Index.MinX, cfg.Index.MinY),
		quadtree.Pt(cfg.Index.MaxX, cfg.Index.MaxY),
	)
	tree := quadtree.NewLocked[float64, Place](bounds, cfg.Index.Capacity)
	lg.Info("index ready",
		zap.String("boundary", bounds.String()),
		zap.Int("capacity", tree.Capacity()),
	)

	if cfg.Data.PlacesFile != "" {
		places, err := LoadPlaces(cfg.Data.PlacesFile)
		if err != nil {
			lg.Fatal("failed to load places", zap.Error(err))
		}
		loaded, skipped := 0, 0
		for _, p := range places {
			if err := tree.InsertAt(p.AsPoint(), p); err != nil {
				skipped++
				continue
			}
			loaded++
		}
		lg.Info("loaded places",
			zap.String("file", cfg.Data.PlacesFile),
			zap.Int("loaded", loaded),
			zap.Int("out_of_bounds", skipped),
		)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	srv := NewServer(tree, lg)
	srv.RegisterRoutes(engine)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
	lg.Info("shut down")
}

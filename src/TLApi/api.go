// File: src/TLApi/api.go

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/truthlens/truthlens/src/TLApi/config"
	"github.com/truthlens/truthlens/src/TLApi/data"
	"github.com/truthlens/truthlens/src/TLApi/webserver"
	"github.com/truthlens/truthlens/src/ai/core"
	_ "github.com/truthlens/truthlens/src/ai/providers"
	"github.com/truthlens/truthlens/src/factcheck"
	"github.com/truthlens/truthlens/src/search/tavily"
)

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Settings are optional overrides; env fallbacks cover a fresh database.
	if err := data.LoadSettings(db); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	rdb := data.MustRedis(cfg.RedisURL)

	aiClient, err := core.NewClient(core.FactoryConfig{
		Provider:  cfg.AIProvider,
		Model:     cfg.AIModel,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("ai: %v", err)
	}
	log.Printf("Using AI provider %s (model %s)", cfg.AIProvider, core.ResolveModelName(cfg.AIProvider, cfg.AIModel))

	searchClient := tavily.NewClient(cfg.TavilyKey, data.GetSetting("tavily_api"))
	pipeline := factcheck.NewService(aiClient, searchClient)

	router := webserver.New(cfg, db, rdb, pipeline)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("TruthLens API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}

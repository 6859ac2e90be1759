package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/service"
	"github.com/karimnagy/shopify-chat-gateway/internal/infra/adapters/openai"
	"github.com/karimnagy/shopify-chat-gateway/internal/infra/adapters/shopify"
	"github.com/karimnagy/shopify-chat-gateway/internal/infra/httpx"
	"github.com/karimnagy/shopify-chat-gateway/internal/pkg/config"
	"github.com/karimnagy/shopify-chat-gateway/internal/pkg/telemetry"
)

const staticDir = "./public"

func main() {
	telemetry.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	store := shopify.New(cfg.ShopifyStoreURL, cfg.ShopifyAPIToken)
	llm := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIMaxTokens)
	assistant := service.NewAssistant(store, llm)

	handler := httpx.NewHandler(store, assistant)
	router := httpx.NewRouter(handler, staticDir)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("server running", "port", cfg.Port, "store_url", cfg.ShopifyStoreURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}

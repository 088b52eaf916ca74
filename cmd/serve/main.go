package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/internal/config"
	"github.com/ashmarin/vault-serve/internal/crypto"
	httphandler "github.com/ashmarin/vault-serve/internal/handler/http"
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/service"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-serve")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.OpenSQLite(cfg.Storage.CachePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local cache")
	}
	defer db.Close()

	accounts := store.NewFileAccountStore(cfg.Storage.AccountPath)

	account, err := accounts.Load(context.Background())
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		log.Fatal().Err(err).Msg("error loading account profile")
	}

	gateway := adapter.NewHTTPGateway(adapter.HTTPClientConfig{
		BaseURL:     firstNonEmpty(account.ServerURL, cfg.Remote.BaseURL),
		Timeout:     cfg.Remote.RequestTimeout,
		AccessToken: account.AccessToken,
	})

	// The session state is the single composition-root-owned instance;
	// every handler and service receives it by reference.
	state := session.New()

	services := service.NewServices(service.Deps{
		State:     state,
		Accounts:  accounts,
		KeyHashes: store.NewKeyringKeyHashStore(account.Email),
		Vault:     store.NewCipherRepository(db, log),
		Gateway:   gateway,
		KeyChain:  crypto.NewKeyChainService(),
		Logger:    log,
	})

	handler := httphandler.NewHandler(services, state, log)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: handler.Init(),
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("serve API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Err(err).Msg("http server shutdown")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

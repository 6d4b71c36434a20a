package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SahakyanGor98/iqos/internal/cart"
	"github.com/SahakyanGor98/iqos/internal/config"
	"github.com/SahakyanGor98/iqos/internal/db"
	"github.com/SahakyanGor98/iqos/internal/email"
	"github.com/SahakyanGor98/iqos/internal/httpserver"
	contactrepo "github.com/SahakyanGor98/iqos/internal/repository/contact"
	orderrepo "github.com/SahakyanGor98/iqos/internal/repository/order"
	productrepo "github.com/SahakyanGor98/iqos/internal/repository/product"
	"github.com/SahakyanGor98/iqos/internal/service/catalog"
	"github.com/SahakyanGor98/iqos/internal/service/checkout"
	"github.com/SahakyanGor98/iqos/internal/service/contact"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	carts, err := cart.Open(cfg.CartStoreDir, logger)
	if err != nil {
		logger.Fatalf("open cart store: %v", err)
	}

	var sender email.Sender
	if cfg.ResendAPIKey != "" {
		sender = email.NewResend(cfg.ResendAPIKey)
	} else {
		logger.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	products := productrepo.NewPostgres(pool, logger)
	orders := orderrepo.NewPostgres(pool, logger)
	contacts := contactrepo.NewPostgres(pool, logger)

	catalogSvc := catalog.New(products, logger)
	checkoutSvc := checkout.New(orders, products, sender, cfg.InternalEmail, logger)
	contactSvc := contact.New(contacts, sender, cfg.InternalEmail, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:           catalogSvc,
		Checkout:          checkoutSvc,
		Contact:           contactSvc,
		Carts:             carts,
		AllowedOrigins:    cfg.AllowedOrigins,
		ProxyAllowedHosts: cfg.ProxyAllowedHosts,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		logger.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-api/internal/config"
	"ecommerce-api/internal/db"
	"ecommerce-api/internal/httpserver"
	cartrepo "ecommerce-api/internal/repository/cart"
	orderrepo "ecommerce-api/internal/repository/order"
	paymentrepo "ecommerce-api/internal/repository/payment"
	productrepo "ecommerce-api/internal/repository/product"
	userrepo "ecommerce-api/internal/repository/user"
	authsvc "ecommerce-api/internal/service/auth"
	cartsvc "ecommerce-api/internal/service/cart"
	ordersvc "ecommerce-api/internal/service/order"
	paymentsvc "ecommerce-api/internal/service/payment"
	productsvc "ecommerce-api/internal/service/product"
	usersvc "ecommerce-api/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	paymentRepo := paymentrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := usersvc.New(userRepo)
	productService := productsvc.New(productRepo)
	orderService := ordersvc.New(orderRepo)
	paymentService := paymentsvc.New(paymentRepo)
	cartService := cartsvc.New(cartRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:    authService,
		CartSvc:    cartService,
		UserSvc:    userService,
		ProductSvc: productService,
		OrderSvc:   orderService,
		PaymentSvc: paymentService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"shippinghub/internal/routers"
)

func main() {
	configRouter := routers.AppConfigRouter()
	configServer := &http.Server{
		Addr:    ":8004",
		Handler: configRouter,
	}

	shippingRouter := routers.ShippingRouter()
	shippingServer := &http.Server{
		Addr:    ":8003",
		Handler: shippingRouter,
	}

	go func() {
		log.Info("Starting HTTP Server on port 8004 for app config")
		if err := configServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()
	go func() {
		shippingServer.SetKeepAlivesEnabled(true)
		log.Info("Starting HTTP Server on port 8003 for shipping integration")
		if err := shippingServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()

	//Listen for SIGINT/SIGTERM signal to trigger shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Wait for all active requests to complete
	_ = configServer.Shutdown(ctx)
	_ = shippingServer.Shutdown(ctx)

	log.Info("Server gracefully stopped")
}

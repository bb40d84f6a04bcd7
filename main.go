package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/drivescout/car-compare-api/api"
	"github.com/drivescout/car-compare-api/api/handlers"
	"github.com/drivescout/car-compare-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database and router
		zap.S().With(err).Fatal("failed to initialize")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", a.Config.Port),
		Handler: api.CORS(a.Config.CorsOrigins)(a.Router),
	}

	go func() {
		zap.S().Infow("car-compare-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().With(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().With(err).Error("failed to shut down server")
	}
	if err := a.Shutdown(ctx); err != nil {
		zap.S().With(err).Error("failed to disconnect from database")
	}
	zap.S().Info("car-compare-api has shut down")
}

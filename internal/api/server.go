package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/api/handler"
	"github.com/vfg2006/analytico-api/internal/api/handler/router"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/usecases/alerting"
	"github.com/vfg2006/analytico-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	"github.com/vfg2006/analytico-api/internal/usecases/reporting"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"github.com/vfg2006/analytico-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Catalog       catalog.Cataloger
	Forecaster    forecasting.Forecaster
	Alerter       alerting.Alerter
	Reporter      reporting.Reporter
	Importer      importing.Importer
	Biller        billing.Biller
	Storage       storage.Storage
	Cron          handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Companies(services.Catalog)...),
		router.WithRoutes(handler.Forecasts(services.Catalog, services.Forecaster)...),
		router.WithRoutes(handler.Alerts(services.Catalog, services.Alerter)...),
		router.WithRoutes(handler.Reports(services.Catalog, services.Reporter)...),
		router.WithRoutes(handler.Uploads(services.Catalog, services.Importer)...),
		router.WithRoutes(handler.Billing(services.Biller)...),
		router.WithRoutes(handler.Files(services.Catalog, services.Storage)...),
		router.WithRoutes(handler.CronJobs(services.Cron)...),
	}
	if cfg.Metrics.Enabled {
		routes = append(routes, router.WithRoutes(handler.Metrics()...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}
	if cfg.Metrics.Enabled {
		middlewares = append(middlewares, metrics.Middleware())
	}
	middlewares = append(middlewares,
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa; usado pelos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

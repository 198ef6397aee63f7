package main

import (
	"context"

	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/analytico-api/infrastructure/integrator/payment"
	"github.com/vfg2006/analytico-api/infrastructure/integrator/payment/stripeclient"
	"github.com/vfg2006/analytico-api/infrastructure/migration"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/infrastructure/storage"
	"github.com/vfg2006/analytico-api/internal/api"
	"github.com/vfg2006/analytico-api/internal/api/handler"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/scheduler"
	"github.com/vfg2006/analytico-api/internal/usecases/alerting"
	"github.com/vfg2006/analytico-api/internal/usecases/authenticating"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/internal/usecases/importing"
	"github.com/vfg2006/analytico-api/internal/usecases/reporting"
	"github.com/vfg2006/analytico-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(log.Options{
		Level:       cfg.App.LogLevel,
		File:        cfg.App.LogFile,
		Environment: cfg.App.Environment,
	})
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	if cfg.SecretKey == "" {
		log.L.Fatal("SECRET_KEY não configurada")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migration.Up(pgConn.DB); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	stockEntryRepo := repository.NewStockEntryRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	uploadRepo := repository.NewUploadRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)

	store := storage.NewLocalStorage(cfg.Storage.BaseDir, cfg.Storage.PublicURL)
	mail := mailer.NewMailer(cfg.Mail)
	billingIntegrator := payment.New(stripeclient.NewClient(cfg.Stripe))

	authenticator := authenticating.NewService(userRepo, cfg)
	catalogService := catalog.NewService(companyRepo, productRepo, saleRepo, stockEntryRepo, goalRepo)
	forecastService := forecasting.NewService(saleRepo, forecastRepo, cfg.Forecast)
	alertService := alerting.NewService(productRepo, saleRepo, goalRepo)
	reportService := reporting.NewService(
		companyRepo,
		saleRepo,
		reportRepo,
		store,
		mail,
		reporting.NewPDFRenderer(cfg.Report.FontPath, cfg.Report.BoldFontPath),
	)
	importService := importing.NewService(productRepo, saleRepo, uploadRepo, store)
	billingService := billing.NewService(billingIntegrator, subscriptionRepo, cfg.Stripe)

	forecastSyncService := scheduler.NewForecastSyncService(companyRepo, forecastService, cfg)
	if err := forecastSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de previsões")
	} else {
		log.L.Info("Agendador de previsões iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Catalog:       catalogService,
		Forecaster:    forecastService,
		Alerter:       alertService,
		Reporter:      reportService,
		Importer:      importService,
		Biller:        billingService,
		Storage:       store,
		Cron: handler.CronJobServices{
			ForecastSyncService: forecastSyncService,
		},
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

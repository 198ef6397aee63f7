// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/usecases/forecasting"
	"github.com/vfg2006/analytico-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Empresas processadas em paralelo por execução
const forecastSyncConcurrency = 4

type ForecastSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ForecastSyncService regenera as previsões de todas as empresas
type ForecastSyncService struct {
	scheduler   *gocron.Scheduler
	companyRepo repository.CompanyRepository
	forecaster  forecasting.Forecaster
	config      ForecastSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSucceeded   int
	lastSyncFailed      int
}

func NewForecastSyncService(
	companyRepo repository.CompanyRepository,
	forecaster forecasting.Forecaster,
	cfg *config.Config,
) *ForecastSyncService {
	syncConfig := ForecastSyncConfig{
		CronSchedule: cfg.ForecastSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.ForecastSync.Enabled,      // Default: desabilitado
	}

	log.L.WithField("cron_schedule", syncConfig.CronSchedule).Info("Configuração do agendador de previsões carregada")

	return &ForecastSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		forecaster:  forecaster,
		config:      syncConfig,
	}
}

func (s *ForecastSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron de previsões desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunForecastSync(context.Background()); err != nil {
			log.L.WithError(err).Error("Erro na regeneração agendada das previsões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// tryStart marca a execução como iniciada; devolve false se já houver outra em andamento
func (s *ForecastSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ForecastSyncService) finish(succeeded, failed int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSucceeded = succeeded
	s.lastSyncFailed = failed
}

// RunForecastSync gera a previsão de cada empresa. Falha de uma empresa não interrompe as demais.
func (s *ForecastSyncService) RunForecastSync(ctx context.Context) error {
	if !s.tryStart() {
		log.L.Warn("Regeneração de previsões já está em execução")
		return nil
	}

	var succeeded, failed atomic.Int64
	defer func() { s.finish(int(succeeded.Load()), int(failed.Load())) }()

	companies, err := s.companyRepo.ListAll(ctx)
	if err != nil {
		log.L.WithError(err).Error("Erro ao listar empresas para regeneração de previsões")
		return err
	}

	log.L.WithField("companies", len(companies)).Info("Iniciando regeneração de previsões")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(forecastSyncConcurrency)

	for _, company := range companies {
		companyID := company.ID
		g.Go(func() error {
			if _, err := s.forecaster.Generate(gctx, companyID); err != nil {
				failed.Add(1)
				log.L.WithError(err).WithField("company_id", companyID).Error("Erro ao regenerar previsão da empresa")
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	log.L.WithFields(log.Fields{
		"succeeded": succeeded.Load(),
		"failed":    failed.Load(),
	}).Info("Regeneração de previsões concluída")

	return nil
}

// TriggerManualSync inicia manualmente a regeneração das previsões
func (s *ForecastSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Regeneração de previsões já em andamento, ignorando solicitação manual")
		return
	}

	log.L.Info("Iniciando regeneração manual de previsões")
	go func() {
		if err := s.RunForecastSync(context.Background()); err != nil {
			log.L.WithError(err).Error("Erro na regeneração manual de previsões")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ForecastSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_succeeded":    s.lastSyncSucceeded,
		"last_sync_failed":       s.lastSyncFailed,
	}
}

package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/domain"
	forecastmocks "github.com/vfg2006/analytico-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSync(t *testing.T) (*ForecastSyncService, *mocks.MockCompanyRepository, *forecastmocks.MockForecaster) {
	ctrl := gomock.NewController(t)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	forecaster := forecastmocks.NewMockForecaster(ctrl)

	cfg := &config.Config{ForecastSync: config.ForecastSync{CronSchedule: "0 2 * * *"}}
	return NewForecastSyncService(companyRepo, forecaster, cfg), companyRepo, forecaster
}

func TestForecastSyncService_RunForecastSync(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(companyRepo *mocks.MockCompanyRepository, forecaster *forecastmocks.MockForecaster)
		wantErr       bool
		wantSucceeded int
		wantFailed    int
	}{
		{
			name: "gera previsão de todas as empresas",
			setup: func(companyRepo *mocks.MockCompanyRepository, forecaster *forecastmocks.MockForecaster) {
				companyRepo.EXPECT().ListAll(gomock.Any()).Return([]*domain.Company{{ID: "emp-1"}, {ID: "emp-2"}, {ID: "emp-3"}}, nil)
				forecaster.EXPECT().Generate(gomock.Any(), "emp-1").Return(&domain.ForecastResult{Success: true}, nil)
				forecaster.EXPECT().Generate(gomock.Any(), "emp-2").Return(nil, errors.New("banco fora"))
				forecaster.EXPECT().Generate(gomock.Any(), "emp-3").Return(&domain.ForecastResult{Success: true}, nil)
			},
			wantSucceeded: 2,
			wantFailed:    1,
		},
		{
			name: "sem empresas",
			setup: func(companyRepo *mocks.MockCompanyRepository, _ *forecastmocks.MockForecaster) {
				companyRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "erro ao listar empresas",
			setup: func(companyRepo *mocks.MockCompanyRepository, _ *forecastmocks.MockForecaster) {
				companyRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, companyRepo, forecaster := newTestSync(t)
			tt.setup(companyRepo, forecaster)

			err := service.RunForecastSync(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantSucceeded, status["last_sync_succeeded"])
			assert.Equal(t, tt.wantFailed, status["last_sync_failed"])
		})
	}
}

func TestForecastSyncService_SkipsOverlappingRun(t *testing.T) {
	service, _, _ := newTestSync(t)
	require.True(t, service.tryStart())

	// nenhuma chamada aos mocks: a execução concorrente é ignorada
	require.NoError(t, service.RunForecastSync(context.Background()))
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	service.finish(0, 0)
	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestForecastSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestSync(t)
	assert.NoError(t, service.Start(context.Background()))
}

package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/pkg/apiErrors"
)

type fakeCronJob struct {
	started  bool
	triggers int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggers++
	return f.started
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.started}
}

var serviceUser = &domain.Claims{Role: domain.RoleService}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name         string
		claims       *domain.Claims
		target       string
		started      bool
		wantStatus   int
		wantCode     string
		wantTriggers int
	}{
		{
			name:         "dispara a consolidação",
			claims:       serviceUser,
			target:       "/v1/cron/offer-metrics-rollup/run",
			started:      true,
			wantStatus:   http.StatusAccepted,
			wantTriggers: 1,
		},
		{
			name:         "consolidação já em execução",
			claims:       serviceUser,
			target:       "/v1/cron/offer-metrics-rollup/run",
			started:      false,
			wantStatus:   http.StatusAccepted,
			wantTriggers: 1,
		},
		{
			name:       "tipo desconhecido",
			claims:     serviceUser,
			target:     "/v1/cron/meta/run",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "usuário do painel não pode disparar",
			claims:     panelUser,
			target:     "/v1/cron/offer-metrics-rollup/run",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{started: tt.started}

			rec := serve(CronJobs(CronJobServices{OfferMetricsRollup: job}), tt.claims, http.MethodPost, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggers, job.triggers)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	job := &fakeCronJob{}

	rec := serve(CronJobs(CronJobServices{OfferMetricsRollup: job}), serviceUser, http.MethodGet, "/v1/cron/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"offer-metrics-rollup":{"sync_running":true}}`, rec.Body.String())
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_resolve(t *testing.T) {
	cfg := &Config{
		App: App{Timezone: "America/Sao_Paulo"},
		Database: Database{
			Driver:   "postgres",
			User:     "dash",
			Password: "secret",
			URL:      "db:5432/ofertas?sslmode=disable",
		},
	}

	require.NoError(t, cfg.resolve())

	assert.Equal(t, "postgres://dash:secret@db:5432/ofertas?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Location.String())
	assert.Equal(t, 1, cfg.OfferMetricsRollup.LookbackDays)
}

func TestConfig_resolve_InvalidTimezone(t *testing.T) {
	cfg := &Config{App: App{Timezone: "Marte/Olympus"}}
	assert.Error(t, cfg.resolve())
}

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	assert.True(t, viper.GetBool("OFFER_METRICS_ROLLUP_ENABLED"))
	assert.Equal(t, "*/30 * * * *", viper.GetString("OFFER_METRICS_ROLLUP_CRON"))
	assert.Equal(t, 3, viper.GetInt("OFFER_METRICS_ROLLUP_LOOKBACK_DAYS"))
	assert.False(t, viper.GetBool("REDIS_ENABLED"))
}

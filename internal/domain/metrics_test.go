package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThresholds(t *testing.T) {
	defaults := DefaultThresholds()

	t.Run("vazio usa padrão", func(t *testing.T) {
		assert.Equal(t, defaults, ParseThresholds(nil))
	})

	t.Run("não objeto usa padrão", func(t *testing.T) {
		assert.Equal(t, defaults, ParseThresholds([]byte(`"abc"`)))
		assert.Equal(t, defaults, ParseThresholds([]byte(`[1,2]`)))
		assert.Equal(t, defaults, ParseThresholds([]byte(`null`)))
	})

	t.Run("cada indicador cai no padrão separadamente", func(t *testing.T) {
		got := ParseThresholds([]byte(`{"roas":{"verde":2,"amarelo":1.5}}`))
		assert.Equal(t, Bound{Good: 2, Warning: 1.5}, got.ROAS)
		assert.Equal(t, defaults.IC, got.IC)
		assert.Equal(t, defaults.CPC, got.CPC)
	})

	t.Run("scan de jsonb", func(t *testing.T) {
		var th Thresholds
		require.NoError(t, th.Scan([]byte(`{"cpc":{"verde":1,"amarelo":1.2}}`)))
		assert.Equal(t, Bound{Good: 1, Warning: 1.2}, th.CPC)
		assert.Equal(t, defaults.ROAS, th.ROAS)

		require.NoError(t, th.Scan(nil))
		assert.Equal(t, defaults, th)

		assert.Error(t, th.Scan(42))
	})
}

func TestAggregatedMetrics_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		measures Measures
		wantROAS float64
		wantCPC  float64
		wantIC   float64
		want     Classification
	}{
		{
			name: "tudo verde",
			measures: Measures{
				Spend:              decimal.NewFromInt(100),
				Revenue:            decimal.NewFromInt(150),
				Clicks:             100,
				InitiatedCheckouts: 4,
			},
			wantROAS: 1.5,
			wantCPC:  1,
			wantIC:   25,
			want:     Classification{ROAS: LevelGood, CPC: LevelGood, IC: LevelGood},
		},
		{
			name: "tudo amarelo",
			measures: Measures{
				Spend:              decimal.NewFromInt(110),
				Revenue:            decimal.NewFromInt(132),
				Clicks:             60,
				InitiatedCheckouts: 2,
			},
			wantROAS: 1.2,
			wantCPC:  1.83,
			wantIC:   55,
			want:     Classification{ROAS: LevelWarning, CPC: LevelWarning, IC: LevelWarning},
		},
		{
			name: "tudo vermelho",
			measures: Measures{
				Spend:              decimal.NewFromInt(300),
				Revenue:            decimal.NewFromInt(150),
				Clicks:             100,
				InitiatedCheckouts: 3,
			},
			wantROAS: 0.5,
			wantCPC:  3,
			wantIC:   100,
			want:     Classification{ROAS: LevelBad, CPC: LevelBad, IC: LevelBad},
		},
		{
			name:     "sem investimento fica sem classificação",
			measures: Measures{Revenue: decimal.NewFromInt(10)},
			want:     Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &AggregatedMetrics{OfferID: "of1", Measures: tt.measures}
			agg.Evaluate(DefaultThresholds())

			assert.Equal(t, tt.wantROAS, agg.ROAS)
			assert.Equal(t, tt.wantCPC, agg.CPC)
			assert.Equal(t, tt.wantIC, agg.IC)
			assert.Equal(t, tt.want, agg.Classification)
		})
	}
}

func TestMeasures_Add(t *testing.T) {
	a := Measures{Spend: decimal.RequireFromString("10.50"), Clicks: 3, Sales: 1}
	b := Measures{Spend: decimal.RequireFromString("0.25"), Revenue: decimal.NewFromInt(40), Clicks: 2}

	sum := a.Add(b)
	assert.True(t, decimal.RequireFromString("10.75").Equal(sum.Spend))
	assert.True(t, decimal.NewFromInt(40).Equal(sum.Revenue))
	assert.Equal(t, int64(5), sum.Clicks)
	assert.Equal(t, int64(1), sum.Sales)
}

package domain

import (
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Bound guarda os limites de coloração de um indicador
type Bound struct {
	Good    float64 `json:"verde"`
	Warning float64 `json:"amarelo"`
}

// Thresholds são os limites de coloração de performance de uma oferta
type Thresholds struct {
	ROAS Bound `json:"roas"`
	IC   Bound `json:"ic"`
	CPC  Bound `json:"cpc"`
}

// DefaultThresholds são usados quando a oferta não tem configuração própria
func DefaultThresholds() Thresholds {
	return Thresholds{
		ROAS: Bound{Good: 1.3, Warning: 1.1},
		IC:   Bound{Good: 50, Warning: 60},
		CPC:  Bound{Good: 1.5, Warning: 2.0},
	}
}

type rawThresholds struct {
	ROAS *Bound `json:"roas"`
	IC   *Bound `json:"ic"`
	CPC  *Bound `json:"cpc"`
}

// ParseThresholds interpreta o blob armazenado. Qualquer coisa que não seja um
// objeto JSON resulta nos valores padrão, e cada indicador ausente cai no seu
// padrão individualmente.
func ParseThresholds(data []byte) Thresholds {
	t := DefaultThresholds()
	if len(data) == 0 {
		return t
	}

	var raw rawThresholds
	if err := json.Unmarshal(data, &raw); err != nil {
		return t
	}

	if raw.ROAS != nil {
		t.ROAS = *raw.ROAS
	}
	if raw.IC != nil {
		t.IC = *raw.IC
	}
	if raw.CPC != nil {
		t.CPC = *raw.CPC
	}

	return t
}

// Value grava como texto para o driver enviar o parâmetro como jsonb e não bytea
func (t Thresholds) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Thresholds) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = DefaultThresholds()
	case []byte:
		*t = ParseThresholds(v)
	case string:
		*t = ParseThresholds([]byte(v))
	default:
		return fmt.Errorf("thresholds: tipo inesperado %T", value)
	}
	return nil
}

func (t *Thresholds) UnmarshalJSON(data []byte) error {
	*t = ParseThresholds(data)
	return nil
}

package domain

import (
	"errors"
	"time"
)

type PeriodTag string

const (
	PeriodToday  PeriodTag = "today"
	Period7Days  PeriodTag = "7d"
	Period30Days PeriodTag = "30d"
	PeriodCustom PeriodTag = "custom"
	PeriodAll    PeriodTag = "all"
)

var ErrInvalidPeriod = errors.New("período inválido")

// Period é um intervalo fechado [Start, End] de dias
type Period struct {
	Tag   PeriodTag `json:"tipo"`
	Start Date      `json:"data_inicio"`
	End   Date      `json:"data_fim"`
}

// ParsePeriodTag valida a tag recebida. Vazio é tratado como "all".
func ParsePeriodTag(s string) (PeriodTag, error) {
	switch tag := PeriodTag(s); tag {
	case PeriodToday, Period7Days, Period30Days, PeriodCustom, PeriodAll:
		return tag, nil
	case "":
		return PeriodAll, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// RangeFor calcula o intervalo de uma tag relativa a now. O fim é sempre o dia
// de now no fuso de now. Para "custom" use NewCustomPeriod; aqui ela cai em
// "today", como o seletor faz antes de o usuário escolher as datas.
func RangeFor(tag PeriodTag, now time.Time) Period {
	today := NewDate(now)

	switch tag {
	case Period7Days:
		return Period{Tag: tag, Start: today.AddDays(-6), End: today}
	case Period30Days:
		return Period{Tag: tag, Start: today.AddDays(-29), End: today}
	case PeriodAll:
		start := Date{Time: time.Date(2020, time.January, 1, 0, 0, 0, 0, now.Location())}
		return Period{Tag: tag, Start: start, End: today}
	default:
		return Period{Tag: tag, Start: today, End: today}
	}
}

// NewCustomPeriod monta um período escolhido pelo usuário. Sem fim, o período
// é de um único dia. Não valida se o início é anterior ao fim.
func NewCustomPeriod(start Date, end *Date) Period {
	p := Period{Tag: PeriodCustom, Start: start, End: start}
	if end != nil && !end.IsZero() {
		p.End = *end
	}
	return p
}

// Contains informa se t está no período, considerando o fim do último dia.
// Os limites dos dias são calculados no fuso da data de início.
func (p Period) Contains(t time.Time) bool {
	loc := p.Start.Location()
	return !t.Before(p.Start.StartOfDay(loc)) && !t.After(p.End.EndOfDay(loc))
}

// Days é a quantidade de dias do período (inclusivo)
func (p Period) Days() int {
	return int(p.End.StartOfDay(time.UTC).Sub(p.Start.StartOfDay(time.UTC)).Hours()/24) + 1
}

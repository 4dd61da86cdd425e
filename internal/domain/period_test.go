package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFor(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 42, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tag       PeriodTag
		wantStart string
		wantEnd   string
	}{
		{name: "hoje", tag: PeriodToday, wantStart: "2024-03-10", wantEnd: "2024-03-10"},
		{name: "últimos 7 dias", tag: Period7Days, wantStart: "2024-03-04", wantEnd: "2024-03-10"},
		{name: "últimos 30 dias atravessando fevereiro bissexto", tag: Period30Days, wantStart: "2024-02-10", wantEnd: "2024-03-10"},
		{name: "todos os períodos", tag: PeriodAll, wantStart: "2020-01-01", wantEnd: "2024-03-10"},
		{name: "custom sem datas cai em hoje", tag: PeriodCustom, wantStart: "2024-03-10", wantEnd: "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RangeFor(tt.tag, now)
			assert.Equal(t, tt.tag, p.Tag)
			assert.Equal(t, tt.wantStart, p.Start.String())
			assert.Equal(t, tt.wantEnd, p.End.String())
		})
	}
}

func TestRangeFor_SevenDaysAlwaysSevenDaysEndingToday(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2023, time.December, 20, 0, 30, 0, 0, loc)

	for i := 0; i < 400; i++ {
		now := start.AddDate(0, 0, i).Add(time.Duration(i%24) * time.Hour)
		p := RangeFor(Period7Days, now)

		assert.Equal(t, 7, p.Days(), "now=%s", now)
		assert.Equal(t, NewDate(now).String(), p.End.String(), "now=%s", now)
	}
}

func TestRangeFor_UsesLocalDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC do dia 11 ainda é dia 10 em BRT
	now := time.Date(2024, time.March, 11, 1, 0, 0, 0, time.UTC).In(loc)

	p := RangeFor(PeriodToday, now)
	assert.Equal(t, "2024-03-10", p.Start.String())
	assert.Equal(t, "2024-03-10", p.End.String())
}

func TestParsePeriodTag(t *testing.T) {
	tag, err := ParsePeriodTag("30d")
	require.NoError(t, err)
	assert.Equal(t, Period30Days, tag)

	tag, err = ParsePeriodTag("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, tag)

	_, err = ParsePeriodTag("90d")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestNewCustomPeriod(t *testing.T) {
	start, _ := ParseDate("2024-05-01")
	end, _ := ParseDate("2024-05-03")

	p := NewCustomPeriod(start, &end)
	assert.Equal(t, PeriodCustom, p.Tag)
	assert.Equal(t, "2024-05-01", p.Start.String())
	assert.Equal(t, "2024-05-03", p.End.String())
	assert.Equal(t, 3, p.Days())

	single := NewCustomPeriod(start, nil)
	assert.Equal(t, "2024-05-01", single.End.String())

	// início depois do fim é aceito sem validação
	inverted := NewCustomPeriod(end, &start)
	assert.Equal(t, "2024-05-03", inverted.Start.String())
	assert.Equal(t, "2024-05-01", inverted.End.String())
}

func TestPeriod_Contains(t *testing.T) {
	start, _ := ParseDate("2024-05-01")
	end, _ := ParseDate("2024-05-03")
	p := NewCustomPeriod(start, &end)

	assert.True(t, p.Contains(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.May, 3, 23, 30, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.May, 3, 23, 59, 59, int(999*time.Millisecond), time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.April, 30, 23, 59, 59, 0, time.UTC)))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-07-09"`)))
	assert.Equal(t, "2024-07-09", d.String())

	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-07-10T13:00:00Z"`)))
	assert.Equal(t, "2024-07-10", d.String())

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-10"`, string(out))

	assert.Error(t, d.UnmarshalJSON([]byte(`"10/07/2024"`)))
}

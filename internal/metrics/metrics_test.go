package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func figures(sales string, tickets int64, tax string) domain.ChannelFigures {
	return domain.ChannelFigures{
		Sales:      decimal.RequireFromString(sales),
		Tickets:    tickets,
		ServiceTax: decimal.RequireFromString(tax),
	}
}

func record(year, month int, last *time.Time, f map[domain.Channel]domain.ChannelFigures) domain.MonthlyRecord {
	return domain.MonthlyRecord{Year: year, Month: month, LastRecordedDate: last, Figures: f}
}

func TestSeries_Variation(t *testing.T) {
	series := NewSeries([]domain.MonthlyRecord{
		record(2025, 1, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("500", 25, "0")}),
		record(2025, 2, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("800", 40, "0")}),
		record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("1000", 50, "0")}),
		record(2025, 4, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("0", 0, "0")}),
		record(2025, 5, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 2, "0")}),
	})

	tests := []struct {
		name     string
		month    int
		field    domain.Field
		expected *float64
	}{
		{name: "janeiro sempre nulo", month: 1, field: domain.FieldSales, expected: nil},
		{name: "vendas de fevereiro para março", month: 3, field: domain.FieldSales, expected: ptr(25.0)},
		{name: "tickets de fevereiro para março", month: 3, field: domain.FieldTickets, expected: ptr(25.0)},
		{name: "queda para zero", month: 4, field: domain.FieldSales, expected: ptr(-100.0)},
		{name: "mês anterior zerado", month: 5, field: domain.FieldSales, expected: nil},
		{name: "mês sem registro contra mês com valor", month: 6, field: domain.FieldSales, expected: ptr(-100.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := series.Variation(domain.Period{Year: 2025, Month: tt.month}, domain.ChannelBalcao, tt.field)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestSeries_VariationFormula(t *testing.T) {
	values := []string{"120", "90", "0", "45.5", "45.5", "300", "12", "0", "0", "7", "1000", "999.99"}
	records := make([]domain.MonthlyRecord, 0, 12)
	for i, v := range values {
		records = append(records, record(2024, i+1, nil, map[domain.Channel]domain.ChannelFigures{
			domain.ChannelIfood: figures(v, 0, "0"),
		}))
	}
	series := NewSeries(records)

	for month := 2; month <= 12; month++ {
		cur := decimal.RequireFromString(values[month-1]).InexactFloat64()
		prev := decimal.RequireFromString(values[month-2]).InexactFloat64()

		got := series.Variation(domain.Period{Year: 2024, Month: month}, domain.ChannelIfood, domain.FieldSales)
		if prev == 0 {
			assert.Nil(t, got, "mês %d", month)
			continue
		}
		require.NotNil(t, got, "mês %d", month)
		assert.InDelta(t, (cur-prev)/prev*100, *got, 1e-9, "mês %d", month)
	}
}

func TestVariation_PreviousZero(t *testing.T) {
	assert.Nil(t, Variation(100, 0))
	assert.Nil(t, Variation(0, 0))

	v := Variation(0, 50)
	require.NotNil(t, v)
	assert.Equal(t, -100.0, *v)
}

func TestSeries_Value(t *testing.T) {
	series := NewSeries([]domain.MonthlyRecord{
		record(2025, 2, nil, map[domain.Channel]domain.ChannelFigures{
			domain.ChannelMesa:  figures("10.5", 3, "4"),
			domain.ChannelOlga:  figures("20", 2, "1.25"),
			domain.ChannelIfood: figures("0", 0, "0"),
		}),
	})

	p := domain.Period{Year: 2025, Month: 2}
	assert.Equal(t, 10.5, series.Value(p, domain.ChannelMesa, domain.FieldSales))
	assert.Equal(t, 3.0, series.Value(p, domain.ChannelMesa, domain.FieldTickets))
	assert.Equal(t, 0.0, series.Value(p, domain.ChannelMesa, domain.FieldServiceTax), "mesa não cobra taxa")
	assert.Equal(t, 1.25, series.Value(p, domain.ChannelOlga, domain.FieldServiceTax))
	assert.Equal(t, 0.0, series.Value(p, domain.ChannelBalcao, domain.FieldSales), "canal ausente")
	assert.Equal(t, 0.0, series.Value(domain.Period{Year: 2025, Month: 3}, domain.ChannelMesa, domain.FieldSales), "mês ausente")
}

func TestNewSeries_FirstRecordWins(t *testing.T) {
	current := []domain.MonthlyRecord{
		record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 1, "0")}),
		record(2025, 1, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("10", 1, "0")}),
		record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("999", 1, "0")}),
	}
	previous := []domain.MonthlyRecord{
		record(2024, 12, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("50", 1, "0")}),
	}

	series := NewSeries(current, previous)

	assert.Equal(t, []domain.Period{{Year: 2024, Month: 12}, {Year: 2025, Month: 1}, {Year: 2025, Month: 3}}, series.Periods())
	assert.Equal(t, []int{2024, 2025}, series.Years())
	assert.Equal(t, 100.0, series.Value(domain.Period{Year: 2025, Month: 3}, domain.ChannelBalcao, domain.FieldSales))
}

func TestTotal(t *testing.T) {
	rec := record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{
		domain.ChannelBalcao: figures("1000", 50, "0"),
		domain.ChannelMesa:   figures("600", 10, "0"),
		domain.ChannelIfood:  figures("400", 0, "30"),
	})
	all := domain.AllChannels()

	tests := []struct {
		name     string
		rec      *domain.MonthlyRecord
		metric   domain.Metric
		channels []domain.Channel
		expected float64
	}{
		{name: "vendas de todos os canais", rec: &rec, metric: domain.MetricSales, channels: all, expected: 2000},
		{name: "tickets de todos os canais", rec: &rec, metric: domain.MetricTickets, channels: all, expected: 60},
		{name: "ticket médio é razão das somas", rec: &rec, metric: domain.MetricAverageTicket, channels: all, expected: 2000.0 / 60.0},
		{name: "ticket médio de um canal", rec: &rec, metric: domain.MetricAverageTicket, channels: []domain.Channel{domain.ChannelBalcao}, expected: 20},
		{name: "ticket médio sem tickets", rec: &rec, metric: domain.MetricAverageTicket, channels: []domain.Channel{domain.ChannelIfood}, expected: 0},
		{name: "registro ausente", rec: nil, metric: domain.MetricSales, channels: all, expected: 0},
		{name: "sem canais", rec: &rec, metric: domain.MetricSales, channels: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Total(tt.rec, tt.metric, tt.channels), 1e-9)
		})
	}
}

func TestAnnualTotal(t *testing.T) {
	records := make([]domain.MonthlyRecord, 0, 12)
	var expected float64
	for month := 1; month <= 12; month++ {
		sales := decimal.NewFromInt(int64(month * 100))
		expected += sales.InexactFloat64()
		records = append(records, record(2024, month, nil, map[domain.Channel]domain.ChannelFigures{
			domain.ChannelTelefone: {Sales: sales, Tickets: int64(month), ServiceTax: decimal.NewFromInt(10)},
		}))
	}
	series := NewSeries(records)

	var sum float64
	for month := 1; month <= 12; month++ {
		sum += series.Value(domain.Period{Year: 2024, Month: month}, domain.ChannelTelefone, domain.FieldSales)
	}

	assert.Equal(t, expected, AnnualTotal(series, 2024, domain.ChannelTelefone, domain.FieldSales))
	assert.Equal(t, sum, AnnualTotal(series, 2024, domain.ChannelTelefone, domain.FieldSales))
	assert.Equal(t, 78.0, AnnualTotal(series, 2024, domain.ChannelTelefone, domain.FieldTickets))
	assert.Equal(t, 120.0, AnnualTotal(series, 2024, domain.ChannelTelefone, domain.FieldServiceTax))
	assert.Equal(t, 0.0, AnnualTotal(series, 2023, domain.ChannelTelefone, domain.FieldSales))
	assert.InDelta(t, 7800.0/78.0, AnnualAverageTicket(series, 2024, domain.ChannelTelefone), 1e-9)
}

func TestAverageTicketAndGrossTotal(t *testing.T) {
	series := NewSeries([]domain.MonthlyRecord{
		record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{
			domain.ChannelBalcao:   figures("1000", 50, "99"),
			domain.ChannelTelefone: figures("300", 0, "45"),
		}),
	})
	p := domain.Period{Year: 2025, Month: 3}

	assert.Equal(t, 20.0, AverageTicket(series, p, domain.ChannelBalcao))
	assert.Equal(t, 0.0, AverageTicket(series, p, domain.ChannelTelefone))
	assert.Equal(t, 1000.0, GrossTotal(series, p, domain.ChannelBalcao), "taxa ignorada em canal sem taxa")
	assert.Equal(t, 345.0, GrossTotal(series, p, domain.ChannelTelefone))
}

func TestSumPeriods(t *testing.T) {
	series := NewSeries([]domain.MonthlyRecord{
		record(2025, 1, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 4, "0"), domain.ChannelMesa: figures("50", 1, "0")}),
		record(2025, 2, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("200", 6, "0"), domain.ChannelMesa: figures("50", 9, "0")}),
	})

	totals := SumPeriods(series, []domain.Period{{Year: 2025, Month: 1}, {Year: 2025, Month: 2}, {Year: 2025, Month: 3}}, domain.AllChannels())
	assert.True(t, totals.Sales.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, int64(20), totals.Tickets)
	assert.Equal(t, 20.0, totals.AverageTicket())
	assert.Equal(t, 400.0, totals.Metric(domain.MetricSales))
	assert.Equal(t, 20.0, totals.Metric(domain.MetricTickets))

	empty := SumPeriods(series, nil, domain.AllChannels())
	assert.Equal(t, 0.0, empty.AverageTicket())
}

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		rec      *domain.MonthlyRecord
		metric   domain.Metric
		expected float64
	}{
		{
			name:     "dia 10 de um mês de 30 dias",
			rec:      ptr(record(2025, 4, date(2025, 4, 10), map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("300", 7, "0")})),
			metric:   domain.MetricSales,
			expected: 900,
		},
		{
			name:     "vendas não são arredondadas",
			rec:      ptr(record(2025, 3, date(2025, 3, 3), map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 7, "0")})),
			metric:   domain.MetricSales,
			expected: 100.0 / 3.0 * 31.0,
		},
		{
			name:     "tickets arredondados para inteiro",
			rec:      ptr(record(2025, 3, date(2025, 3, 3), map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 7, "0")})),
			metric:   domain.MetricTickets,
			expected: 72, // 7 / 3 * 31 = 72.33
		},
		{
			name:     "fevereiro bissexto",
			rec:      ptr(record(2024, 2, date(2024, 2, 14), map[domain.Channel]domain.ChannelFigures{domain.ChannelMesa: figures("1400", 14, "0")})),
			metric:   domain.MetricSales,
			expected: 2900,
		},
		{
			name:     "sem data de registro",
			rec:      ptr(record(2025, 3, nil, map[domain.Channel]domain.ChannelFigures{domain.ChannelBalcao: figures("100", 7, "0")})),
			metric:   domain.MetricSales,
			expected: 0,
		},
		{
			name:     "registro ausente",
			rec:      nil,
			metric:   domain.MetricTickets,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Project(tt.rec, tt.metric, domain.AllChannels()), 1e-9)
		})
	}
}

func TestProject_TicketsAlwaysInteger(t *testing.T) {
	for day := 1; day <= 31; day++ {
		rec := record(2025, 1, date(2025, 1, day), map[domain.Channel]domain.ChannelFigures{
			domain.ChannelBalcao: figures("123.45", 17, "0"),
			domain.ChannelIfood:  figures("10", 4, "2"),
		})
		got := Project(&rec, domain.MetricTickets, domain.AllChannels())
		assert.Equal(t, float64(int64(got)), got, "dia %d", day)
	}
}

func TestPureFunctionsAreIdempotent(t *testing.T) {
	rec := record(2025, 3, date(2025, 3, 12), map[domain.Channel]domain.ChannelFigures{
		domain.ChannelBalcao: figures("1000", 50, "0"),
		domain.ChannelOlga:   figures("321.77", 9, "12.5"),
	})
	series := NewSeries([]domain.MonthlyRecord{rec})

	for _, m := range []domain.Metric{domain.MetricSales, domain.MetricTickets, domain.MetricAverageTicket} {
		assert.Equal(t, Total(&rec, m, domain.AllChannels()), Total(&rec, m, domain.AllChannels()))
		assert.Equal(t, Project(&rec, m, domain.AllChannels()), Project(&rec, m, domain.AllChannels()))
	}
	assert.Equal(t,
		AnnualTotal(series, 2025, domain.ChannelOlga, domain.FieldServiceTax),
		AnnualTotal(series, 2025, domain.ChannelOlga, domain.FieldServiceTax),
	)
}

func TestScope(t *testing.T) {
	snapshot := &domain.Snapshot{
		LoadedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Current: []domain.MonthlyRecord{
			record(2025, 1, nil, nil),
			record(2025, 2, nil, nil),
		},
		Previous: []domain.MonthlyRecord{
			record(2024, 12, nil, nil),
		},
	}

	current := NewScope(snapshot, domain.ScopeCurrent)
	assert.Equal(t, 2025, current.Year)
	assert.Len(t, current.DefaultPeriods(), 12)
	assert.Equal(t, "Fevereiro", current.Label(domain.Period{Year: 2025, Month: 2}))

	combined := NewScope(snapshot, domain.ScopeCombined)
	assert.Equal(t, []domain.Period{{Year: 2024, Month: 12}, {Year: 2025, Month: 1}, {Year: 2025, Month: 2}}, combined.DefaultPeriods())
	assert.Equal(t, "2024 - Dezembro", combined.Label(domain.Period{Year: 2024, Month: 12}))

	// sem registros o ano vem da data da carga
	empty := NewScope(&domain.Snapshot{LoadedAt: snapshot.LoadedAt}, domain.ScopeCombined)
	assert.Equal(t, 2025, empty.Year)
	assert.Empty(t, empty.DefaultPeriods())
}

func TestScope_ResolvePeriods(t *testing.T) {
	snapshot := &domain.Snapshot{
		Current: []domain.MonthlyRecord{
			record(2025, 1, nil, nil),
			record(2025, 3, date(2025, 3, 10), nil),
		},
		Previous: []domain.MonthlyRecord{
			record(2024, 12, date(2024, 12, 31), nil),
		},
	}

	tests := []struct {
		name      string
		kind      domain.Scope
		selected  []domain.Period
		expected  []domain.Period
		expectErr bool
	}{
		{
			name:     "mês repetido conta uma vez",
			kind:     domain.ScopeCurrent,
			selected: []domain.Period{{Month: 3}, {Month: 3}},
			expected: []domain.Period{{Year: 2025, Month: 3}},
		},
		{
			name:     "mês com e sem ano são o mesmo período",
			kind:     domain.ScopeCurrent,
			selected: []domain.Period{{Month: 3}, {Year: 2025, Month: 3}, {Month: 1}},
			expected: []domain.Period{{Year: 2025, Month: 1}, {Year: 2025, Month: 3}},
		},
		{
			name:     "seleção fora de ordem sai em ordem cronológica",
			kind:     domain.ScopeCombined,
			selected: []domain.Period{{Year: 2025, Month: 1}, {Year: 2024, Month: 12}},
			expected: []domain.Period{{Year: 2024, Month: 12}, {Year: 2025, Month: 1}},
		},
		{
			name:      "mês de outro ano no escopo atual",
			kind:      domain.ScopeCurrent,
			selected:  []domain.Period{{Month: 3}, {Year: 2024, Month: 4}},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := NewScope(snapshot, tt.kind).ResolvePeriods(tt.selected)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrPeriodOutOfScope)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, periods)
		})
	}
}

func TestScope_LastRecordedDate(t *testing.T) {
	snapshot := &domain.Snapshot{
		Previous: []domain.MonthlyRecord{
			record(2024, 11, date(2024, 11, 30), nil),
			record(2024, 12, date(2024, 12, 20), nil),
		},
	}

	assert.Nil(t, NewScope(snapshot, domain.ScopeCurrent).LastRecordedDate())
	assert.Equal(t, date(2024, 12, 20), NewScope(snapshot, domain.ScopeCombined).LastRecordedDate())
}

func ptr[T any](v T) *T {
	return &v
}

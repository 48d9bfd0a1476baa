package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Totals acumula vendas e tickets de um conjunto de canais e meses
type Totals struct {
	Sales   decimal.Decimal
	Tickets int64
}

// Add soma os canais informados de um registro
func (t *Totals) Add(rec *domain.MonthlyRecord, channels []domain.Channel) {
	if rec == nil {
		return
	}
	for _, c := range channels {
		figures := rec.Channel(c)
		t.Sales = t.Sales.Add(figures.Sales)
		t.Tickets += figures.Tickets
	}
}

// AverageTicket retorna vendas / tickets, ou zero sem tickets
func (t Totals) AverageTicket() float64 {
	if t.Tickets <= 0 {
		return 0
	}
	return t.Sales.Div(decimal.NewFromInt(t.Tickets)).InexactFloat64()
}

// Metric retorna o valor acumulado da métrica
func (t Totals) Metric(m domain.Metric) float64 {
	switch m {
	case domain.MetricSales:
		return t.Sales.InexactFloat64()
	case domain.MetricTickets:
		return float64(t.Tickets)
	case domain.MetricAverageTicket:
		return t.AverageTicket()
	}
	return 0
}

// Total calcula a métrica de um registro somando os canais informados.
// Ticket médio é a razão das somas e vale zero quando não há tickets.
func Total(rec *domain.MonthlyRecord, m domain.Metric, channels []domain.Channel) float64 {
	if rec == nil {
		return 0
	}
	var t Totals
	t.Add(rec, channels)
	return t.Metric(m)
}

// SumPeriods acumula os canais informados sobre um conjunto de meses
func SumPeriods(s *Series, periods []domain.Period, channels []domain.Channel) Totals {
	var t Totals
	for _, p := range periods {
		t.Add(s.Record(p), channels)
	}
	return t
}

// AnnualTotal soma um campo de um canal nos meses 1 a 12 do ano
func AnnualTotal(s *Series, year int, c domain.Channel, f domain.Field) float64 {
	var total float64
	for month := 1; month <= 12; month++ {
		total += s.Value(domain.Period{Year: year, Month: month}, c, f)
	}
	return total
}

// AnnualAverageTicket é o ticket médio anual de um canal
func AnnualAverageTicket(s *Series, year int, c domain.Channel) float64 {
	tickets := AnnualTotal(s, year, c, domain.FieldTickets)
	if tickets <= 0 {
		return 0
	}
	return AnnualTotal(s, year, c, domain.FieldSales) / tickets
}

// AverageTicket é o ticket médio de um canal em um mês
func AverageTicket(s *Series, p domain.Period, c domain.Channel) float64 {
	tickets := s.Value(p, c, domain.FieldTickets)
	if tickets <= 0 {
		return 0
	}
	return s.Value(p, c, domain.FieldSales) / tickets
}

// GrossTotal é vendas mais taxa de serviço, para canais que a cobram
func GrossTotal(s *Series, p domain.Period, c domain.Channel) float64 {
	total := s.Value(p, c, domain.FieldSales)
	if c.HasServiceTax() {
		total += s.Value(p, c, domain.FieldServiceTax)
	}
	return total
}

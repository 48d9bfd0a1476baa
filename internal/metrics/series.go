// Package metrics concentra os cálculos do dashboard: consulta de valores,
// variação entre meses, totais, ticket médio e projeção do mês em andamento.
// Todas as funções são puras sobre registros imutáveis.
package metrics

import (
	"sort"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Series indexa registros mensais por (ano, mês)
type Series struct {
	records map[domain.Period]*domain.MonthlyRecord
	periods []domain.Period
}

// NewSeries monta a série a partir de um ou mais conjuntos de registros.
// Em caso de período repetido vale o primeiro registro encontrado.
func NewSeries(sets ...[]domain.MonthlyRecord) *Series {
	s := &Series{records: make(map[domain.Period]*domain.MonthlyRecord)}
	for _, set := range sets {
		for i := range set {
			rec := &set[i]
			p := rec.Period()
			if _, exists := s.records[p]; exists {
				continue
			}
			s.records[p] = rec
			s.periods = append(s.periods, p)
		}
	}

	sort.Slice(s.periods, func(i, j int) bool {
		return s.periods[i].Before(s.periods[j])
	})

	return s
}

// Record retorna o registro do período, ou nil
func (s *Series) Record(p domain.Period) *domain.MonthlyRecord {
	if s == nil {
		return nil
	}
	return s.records[p]
}

// Periods retorna os períodos presentes, em ordem cronológica
func (s *Series) Periods() []domain.Period {
	if s == nil {
		return nil
	}
	out := make([]domain.Period, len(s.periods))
	copy(out, s.periods)
	return out
}

// Years retorna os anos presentes, em ordem crescente
func (s *Series) Years() []int {
	years := make([]int, 0)
	seen := make(map[int]bool)
	for _, p := range s.Periods() {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	return years
}

// Value retorna o campo de um canal no período. Registro ou campo ausente
// valem zero: o chamador não distingue "sem dados" de um zero registrado.
func (s *Series) Value(p domain.Period, c domain.Channel, f domain.Field) float64 {
	return s.Record(p).Value(c, f)
}

// Variation retorna a variação percentual em relação ao mês anterior do
// mesmo ano. É nil em janeiro e quando o mês anterior vale zero.
func (s *Series) Variation(p domain.Period, c domain.Channel, f domain.Field) *float64 {
	if p.Month == 1 {
		return nil
	}
	prev := domain.Period{Year: p.Year, Month: p.Month - 1}
	return Variation(s.Value(p, c, f), s.Value(prev, c, f))
}

// Variation calcula (atual - anterior) / anterior * 100, ou nil se anterior é zero
func Variation(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	v := (current - previous) / previous * 100
	return &v
}

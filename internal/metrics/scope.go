package metrics

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// ErrPeriodOutOfScope indica um mês de outro ano selecionado no escopo atual
var ErrPeriodOutOfScope = errors.New("mês fora do escopo selecionado")

// Scope liga uma série de registros às regras de seleção de meses de uma
// visão do dashboard
type Scope struct {
	Kind   domain.Scope
	Series *Series
	Year   int
}

// NewScope monta o escopo a partir do snapshot carregado. O escopo atual usa
// somente o ano corrente; o combinado junta ano corrente e anterior.
func NewScope(snapshot *domain.Snapshot, kind domain.Scope) Scope {
	if kind == domain.ScopeCombined {
		return Scope{
			Kind:   domain.ScopeCombined,
			Series: NewSeries(snapshot.Current, snapshot.Previous),
			Year:   snapshot.CurrentYear(),
		}
	}

	return Scope{
		Kind:   domain.ScopeCurrent,
		Series: NewSeries(snapshot.Current),
		Year:   snapshot.CurrentYear(),
	}
}

// DefaultPeriods são os meses usados quando nenhum é selecionado
func (s Scope) DefaultPeriods() []domain.Period {
	if s.Kind == domain.ScopeCombined {
		return s.Series.Periods()
	}
	return YearPeriods(s.Year)
}

// ResolvePeriods completa o ano dos meses informados sem ano e devolve os
// meses padrão quando a seleção está vazia. A seleção é tratada como
// conjunto: meses repetidos contam uma vez e o resultado sai em ordem
// cronológica.
func (s Scope) ResolvePeriods(selected []domain.Period) ([]domain.Period, error) {
	if len(selected) == 0 {
		return s.DefaultPeriods(), nil
	}

	out := make([]domain.Period, 0, len(selected))
	for _, p := range selected {
		if p.Year == 0 {
			p.Year = s.Year
		}
		if s.Kind == domain.ScopeCurrent && p.Year != s.Year {
			return nil, fmt.Errorf("%w: %s fora de %d", ErrPeriodOutOfScope, p.Key(), s.Year)
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}

	slices.SortFunc(out, func(a, b domain.Period) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return out, nil
}

// LastRecordedDate retorna a data de registro mais recente da série
func (s Scope) LastRecordedDate() *time.Time {
	var last *time.Time
	for _, p := range s.Series.Periods() {
		d := s.Series.Record(p).LastRecordedDate
		if d != nil && (last == nil || d.After(*last)) {
			last = d
		}
	}
	return last
}

// Label retorna o rótulo do mês de acordo com o escopo
func (s Scope) Label(p domain.Period) string {
	if s.Kind == domain.ScopeCombined {
		return p.Label()
	}
	return domain.MonthLabel(p.Month)
}

// YearPeriods retorna os doze meses do ano
func YearPeriods(year int) []domain.Period {
	periods := make([]domain.Period, 0, 12)
	for month := 1; month <= 12; month++ {
		periods = append(periods, domain.Period{Year: year, Month: month})
	}
	return periods
}

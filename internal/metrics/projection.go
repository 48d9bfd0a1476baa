package metrics

import (
	"math"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Project estima o total do mês inteiro a partir do acumulado até a data do
// último registro, supondo ritmo diário constante. Sem data de registro a
// projeção vale zero. Tickets são arredondados para inteiro.
func Project(rec *domain.MonthlyRecord, m domain.Metric, channels []domain.Channel) float64 {
	if rec == nil {
		return 0
	}

	recordedDays := rec.RecordedDays()
	if recordedDays == 0 {
		return 0
	}

	totalDays := rec.Period().DaysInMonth()
	projected := Total(rec, m, channels) / float64(recordedDays) * float64(totalDays)

	if m == domain.MetricTickets {
		return math.Round(projected)
	}
	return projected
}

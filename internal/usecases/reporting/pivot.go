package reporting

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/metrics"
	"github.com/vfg2006/campaign-analytics-api/pkg/format"
)

const emptyCell = "-"

// GetPivotTable monta a tabela detalhada de um ano, com um grupo por canal
func (s *Service) GetPivotTable(ctx context.Context, year int) (*domain.PivotTable, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, domain.ScopeCombined)
	if year == 0 {
		year = scope.Year
	}

	return BuildPivotTable(scope.Series, year), nil
}

// BuildPivotTable calcula as linhas de vendas, tickets, ticket médio, taxa de
// serviço e total de cada canal nos doze meses do ano
func BuildPivotTable(series *metrics.Series, year int) *domain.PivotTable {
	periods := metrics.YearPeriods(year)

	months := make([]string, 0, len(periods))
	for _, p := range periods {
		months = append(months, domain.MonthLabel(p.Month))
	}

	groups := make([]domain.PivotGroup, 0, len(domain.Channels))
	for _, info := range domain.Channels {
		c := info.ID
		rows := []domain.PivotRow{
			fieldRow(series, periods, c, domain.FieldSales, "Vendas", format.Currency),
			fieldRow(series, periods, c, domain.FieldTickets, "Tickets", format.Integer),
			averageTicketRow(series, periods, c),
		}
		if info.HasServiceTax {
			rows = append(rows, serviceTaxRow(series, periods, c))
		}
		rows = append(rows, grossTotalRow(series, periods, c))

		groups = append(groups, domain.PivotGroup{Channel: info, Rows: rows})
	}

	return &domain.PivotTable{
		Year:   year,
		Months: months,
		Groups: groups,
	}
}

func fieldRow(series *metrics.Series, periods []domain.Period, c domain.Channel, f domain.Field, label string, fmtValue func(float64) string) domain.PivotRow {
	cells := make([]domain.PivotCell, 0, len(periods))
	for _, p := range periods {
		cells = append(cells, newCell(p, series.Value(p, c, f), series.Variation(p, c, f), fmtValue))
	}

	total := metrics.AnnualTotal(series, periods[0].Year, c, f)
	return domain.PivotRow{
		Label:      label,
		Cells:      cells,
		Total:      total,
		TotalLabel: fmtValue(total),
	}
}

func averageTicketRow(series *metrics.Series, periods []domain.Period, c domain.Channel) domain.PivotRow {
	cells := make([]domain.PivotCell, 0, len(periods))
	for _, p := range periods {
		value := metrics.AverageTicket(series, p, c)

		var variation *float64
		if p.Month > 1 {
			prev := domain.Period{Year: p.Year, Month: p.Month - 1}
			variation = metrics.Variation(value, metrics.AverageTicket(series, prev, c))
		}

		cells = append(cells, newCell(p, value, variation, format.Currency))
	}

	total := metrics.AnnualAverageTicket(series, periods[0].Year, c)
	return domain.PivotRow{
		Label:      "Ticket Médio",
		Cells:      cells,
		Total:      total,
		TotalLabel: format.Currency(total),
	}
}

// serviceTaxRow exibe "-" no valor e na variação dos meses sem taxa
func serviceTaxRow(series *metrics.Series, periods []domain.Period, c domain.Channel) domain.PivotRow {
	row := fieldRow(series, periods, c, domain.FieldServiceTax, "Tx Serviço", format.Currency)
	for i := range row.Cells {
		if row.Cells[i].Value == 0 {
			row.Cells[i].Variation = nil
			row.Cells[i].ValueLabel = emptyCell
			row.Cells[i].VariationLabel = emptyCell
			row.Cells[i].Negative = false
		}
	}
	return row
}

func grossTotalRow(series *metrics.Series, periods []domain.Period, c domain.Channel) domain.PivotRow {
	cells := make([]domain.PivotCell, 0, len(periods))
	var total float64
	for _, p := range periods {
		value := metrics.GrossTotal(series, p, c)
		total += value

		var variation *float64
		if p.Month > 1 {
			prev := domain.Period{Year: p.Year, Month: p.Month - 1}
			variation = metrics.Variation(value, metrics.GrossTotal(series, prev, c))
		}

		cells = append(cells, newCell(p, value, variation, format.Currency))
	}

	return domain.PivotRow{
		Label:      "Total",
		Cells:      cells,
		Total:      total,
		TotalLabel: format.Currency(total),
		IsTotal:    true,
	}
}

func newCell(p domain.Period, value float64, variation *float64, fmtValue func(float64) string) domain.PivotCell {
	return domain.PivotCell{
		Month:          p.Month,
		Value:          value,
		Variation:      variation,
		ValueLabel:     fmtValue(value),
		VariationLabel: format.Percent(variation),
		Negative:       format.IsNegative(variation),
	}
}

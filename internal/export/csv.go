// Package export serializa as visões do dashboard em CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// WritePivotCSV escreve a tabela detalhada com uma linha por canal e métrica.
// Cada mês ocupa duas colunas: valor e variação percentual.
func WritePivotCSV(w io.Writer, table *domain.PivotTable) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Ano", "Canal", "Métrica"}
	for _, month := range table.Months {
		header = append(header, month, month+" %")
	}
	header = append(header, "Total")
	if err := writer.Write(header); err != nil {
		return err
	}

	year := strconv.Itoa(table.Year)
	for _, group := range table.Groups {
		for _, row := range group.Rows {
			record := []string{year, group.Channel.Label, row.Label}
			for _, cell := range row.Cells {
				record = append(record, cellValue(cell), cellVariation(cell))
			}
			record = append(record, formatFloat(row.Total))

			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteKPICSV escreve os indicadores do topo do dashboard
func WriteKPICSV(w io.Writer, summary *domain.KPISummary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Indicador", "Valor"}); err != nil {
		return err
	}
	records := [][]string{
		{"Total de Vendas", formatFloat(summary.TotalSales)},
		{"Total de Tickets", strconv.FormatFloat(summary.TotalTickets, 'f', 0, 64)},
		{"Ticket Médio", formatFloat(summary.AverageTicket)},
		{"Descrição", summary.Subtitle},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// células marcadas com "-" na tabela continuam com "-" no arquivo
func cellValue(cell domain.PivotCell) string {
	if cell.ValueLabel == "-" {
		return "-"
	}
	return formatFloat(cell.Value)
}

func cellVariation(cell domain.PivotCell) string {
	if cell.VariationLabel == "-" {
		return "-"
	}
	if cell.Variation == nil {
		return ""
	}
	return strconv.FormatFloat(*cell.Variation, 'f', 1, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

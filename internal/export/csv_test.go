package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWritePivotCSV(t *testing.T) {
	variation := 25.0
	telefone, _ := domain.ChannelTelefone.Info()

	table := &domain.PivotTable{
		Year:   2025,
		Months: []string{"Janeiro", "Fevereiro"},
		Groups: []domain.PivotGroup{
			{
				Channel: telefone,
				Rows: []domain.PivotRow{
					{
						Label: "Vendas",
						Cells: []domain.PivotCell{
							{Month: 1, Value: 800, ValueLabel: "R$ 800,00"},
							{Month: 2, Value: 1000, Variation: &variation, ValueLabel: "R$ 1.000,00", VariationLabel: "+25.0%"},
						},
						Total: 1800,
					},
					{
						Label: "Tx Serviço",
						Cells: []domain.PivotCell{
							{Month: 1, Value: 12.5, ValueLabel: "R$ 12,50"},
							{Month: 2, Value: 0, ValueLabel: "-", VariationLabel: "-"},
						},
						Total: 12.5,
					},
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WritePivotCSV(buf, table))

	records := readCSV(t, buf)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Ano", "Canal", "Métrica", "Janeiro", "Janeiro %", "Fevereiro", "Fevereiro %", "Total"}, records[0])
	assert.Equal(t, []string{"2025", "Telefone", "Vendas", "800.00", "", "1000.00", "25.0", "1800.00"}, records[1])
	assert.Equal(t, []string{"2025", "Telefone", "Tx Serviço", "12.50", "", "-", "-", "12.50"}, records[2])
}

func TestWriteKPICSV(t *testing.T) {
	summary := &domain.KPISummary{
		TotalSales:    3400,
		TotalTickets:  150,
		AverageTicket: 3400.0 / 150.0,
		Subtitle:      "for transactions in Março 2025 (Vendas)",
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteKPICSV(buf, summary))

	records := readCSV(t, buf)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"Indicador", "Valor"}, records[0])
	assert.Equal(t, []string{"Total de Vendas", "3400.00"}, records[1])
	assert.Equal(t, []string{"Total de Tickets", "150"}, records[2])
	assert.Equal(t, []string{"Ticket Médio", "22.67"}, records[3])
	assert.Equal(t, "for transactions in Março 2025 (Vendas)", records[4][1])
}

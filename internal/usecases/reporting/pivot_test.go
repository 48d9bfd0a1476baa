package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func rowByLabel(t *testing.T, group domain.PivotGroup, label string) domain.PivotRow {
	t.Helper()
	for _, row := range group.Rows {
		if row.Label == label {
			return row
		}
	}
	require.FailNow(t, "linha não encontrada", label)
	return domain.PivotRow{}
}

func TestService_GetPivotTable(t *testing.T) {
	service := newLoadedService(t, fixedClock(2025, 3, 11))

	table, err := service.GetPivotTable(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2025, table.Year)
	require.Len(t, table.Months, 12)
	assert.Equal(t, "Janeiro", table.Months[0])
	require.Len(t, table.Groups, 5)

	t.Run("canal sem taxa de serviço", func(t *testing.T) {
		balcao := table.Groups[0]
		assert.Equal(t, domain.ChannelBalcao, balcao.Channel.ID)

		labels := make([]string, 0, len(balcao.Rows))
		for _, row := range balcao.Rows {
			labels = append(labels, row.Label)
		}
		assert.Equal(t, []string{"Vendas", "Tickets", "Ticket Médio", "Total"}, labels)

		sales := rowByLabel(t, balcao, "Vendas")
		require.Len(t, sales.Cells, 12)
		assert.Nil(t, sales.Cells[0].Variation)
		assert.Equal(t, "", sales.Cells[0].VariationLabel)
		require.NotNil(t, sales.Cells[2].Variation)
		assert.InDelta(t, 25.0, *sales.Cells[2].Variation, 1e-9)
		assert.Equal(t, 2400.0, sales.Total)
		assert.Equal(t, "R$ 2.400,00", sales.TotalLabel)

		// abril zerado aparece como queda
		assert.True(t, sales.Cells[3].Negative)
		assert.Equal(t, "-100.0%", sales.Cells[3].VariationLabel)

		average := rowByLabel(t, balcao, "Ticket Médio")
		assert.Equal(t, 20.0, average.Cells[0].Value)
		assert.Equal(t, 20.0, average.Cells[2].Value)
		require.NotNil(t, average.Cells[2].Variation)
		assert.Equal(t, 0.0, *average.Cells[2].Variation)
		assert.Equal(t, 20.0, average.Total)

		total := rowByLabel(t, balcao, "Total")
		assert.True(t, total.IsTotal)
		assert.Equal(t, sales.Total, total.Total)
	})

	t.Run("canal com taxa de serviço", func(t *testing.T) {
		telefone := table.Groups[2]
		assert.Equal(t, domain.ChannelTelefone, telefone.Channel.ID)
		require.Len(t, telefone.Rows, 5)

		tax := rowByLabel(t, telefone, "Tx Serviço")
		assert.Equal(t, "R$ 20,00", tax.Cells[0].ValueLabel)
		assert.Equal(t, "-", tax.Cells[1].ValueLabel)
		assert.Equal(t, "-", tax.Cells[1].VariationLabel)
		assert.False(t, tax.Cells[1].Negative)
		assert.Nil(t, tax.Cells[1].Variation)
		assert.Equal(t, 20.0, tax.Total)

		total := rowByLabel(t, telefone, "Total")
		assert.Equal(t, 420.0, total.Cells[0].Value)
		assert.Equal(t, 600.0, total.Cells[1].Value)
		require.NotNil(t, total.Cells[1].Variation)
		assert.InDelta(t, (600.0-420.0)/420.0*100, *total.Cells[1].Variation, 1e-9)
		assert.Equal(t, 1020.0, total.Total)

		average := rowByLabel(t, telefone, "Ticket Médio")
		assert.Equal(t, 0.0, average.Cells[2].Value, "março sem tickets")
		assert.InDelta(t, 1000.0/30.0, average.Total, 1e-9)
	})
}

func TestService_GetPivotTable_PreviousYear(t *testing.T) {
	service := newLoadedService(t, fixedClock(2025, 3, 11))

	table, err := service.GetPivotTable(context.Background(), 2024)
	require.NoError(t, err)

	sales := rowByLabel(t, table.Groups[0], "Vendas")
	assert.Equal(t, 2480.0, sales.Cells[2].Value)
	assert.Equal(t, 1550.0, sales.Cells[11].Value)
	assert.Nil(t, sales.Cells[11].Variation, "novembro zerado")
	assert.Equal(t, 4030.0, sales.Total)
}

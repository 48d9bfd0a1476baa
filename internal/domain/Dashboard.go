package domain

import "time"

// MonthOption é um mês disponível para filtro
type MonthOption struct {
	Key    string `json:"key"`
	Period Period `json:"period"`
	Label  string `json:"label"`
}

// MonthOptions lista os meses do escopo e a data da última carga
type MonthOptions struct {
	Scope            Scope         `json:"scope"`
	Options          []MonthOption `json:"options"`
	YearsLabel       string        `json:"years_label"`
	LastRecordedDate *time.Time    `json:"last_recorded_date,omitempty"`
	LastLoadLabel    string        `json:"last_load_label"`
	SnapshotID       string        `json:"snapshot_id"`
}

// KPISummary são os indicadores do topo do dashboard
type KPISummary struct {
	TotalSales         float64  `json:"total_sales"`
	TotalTickets       float64  `json:"total_tickets"`
	AverageTicket      float64  `json:"average_ticket"`
	TotalSalesLabel    string   `json:"total_sales_label"`
	TotalTicketsLabel  string   `json:"total_tickets_label"`
	AverageTicketLabel string   `json:"average_ticket_label"`
	Subtitle           string   `json:"subtitle"`
	Months             []string `json:"months"`
}

// TimelinePoint é um ponto do gráfico de linhas
type TimelinePoint struct {
	Name           string   `json:"name"`
	Period         Period   `json:"period"`
	Value          float64  `json:"value"`
	Variation      *float64 `json:"variation"`
	ValueLabel     string   `json:"value_label"`
	VariationLabel string   `json:"variation_label"`
}

// RevenueShare é uma fatia do gráfico de pizza
type RevenueShare struct {
	Channel    Channel `json:"channel"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
	ShareLabel string  `json:"share_label"`
}

// ChannelValue é uma barra do gráfico por canal
type ChannelValue struct {
	Channel    Channel `json:"channel"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	Value      float64 `json:"value"`
	ValueLabel string  `json:"value_label"`
}

// Comparison compara o mês corrente projetado com um período de referência
type Comparison struct {
	Metric          string   `json:"metric"`
	CurrentPeriod   Period   `json:"current_period"`
	ReferencePeriod Period   `json:"reference_period"`
	Current         float64  `json:"current"`
	Reference       float64  `json:"reference"`
	Variation       *float64 `json:"variation"`
	VariationLabel  string   `json:"variation_label"`
}

// Comparisons agrupa os gráficos de barras comparativos
type Comparisons struct {
	YearOverYear   *Comparison `json:"year_over_year,omitempty"`
	MonthOverMonth *Comparison `json:"month_over_month,omitempty"`
}

// PivotCell é uma célula (valor, variação) da tabela detalhada
type PivotCell struct {
	Month          int      `json:"month"`
	Value          float64  `json:"value"`
	Variation      *float64 `json:"variation"`
	ValueLabel     string   `json:"value_label"`
	VariationLabel string   `json:"variation_label"`
	Negative       bool     `json:"negative"`
}

// PivotRow é uma linha de métrica de um canal
type PivotRow struct {
	Label      string      `json:"label"`
	Cells      []PivotCell `json:"cells"`
	Total      float64     `json:"total"`
	TotalLabel string      `json:"total_label"`
	IsTotal    bool        `json:"is_total,omitempty"`
}

// PivotGroup são as linhas de um canal
type PivotGroup struct {
	Channel ChannelInfo `json:"channel"`
	Rows    []PivotRow  `json:"rows"`
}

// PivotTable é a tabela detalhada por canal e mês
type PivotTable struct {
	Year   int          `json:"year"`
	Months []string     `json:"months"`
	Groups []PivotGroup `json:"groups"`
}

package domain

import "fmt"

// Field é um campo numérico de um canal no registro mensal
type Field string

const (
	FieldSales      Field = "vendas"
	FieldTickets    Field = "tickets"
	FieldServiceTax Field = "txserv"
)

// Metric é a métrica selecionada nos gráficos e KPIs
type Metric string

const (
	MetricSales         Metric = "vendas"
	MetricTickets       Metric = "tickets"
	MetricAverageTicket Metric = "ticket_medio"
)

// Label retorna o nome de exibição da métrica
func (m Metric) Label() string {
	switch m {
	case MetricSales:
		return "Vendas"
	case MetricTickets:
		return "Tickets"
	case MetricAverageTicket:
		return "Ticket Médio"
	}
	return string(m)
}

// Field retorna o campo somado pela métrica. Ticket médio não tem campo próprio.
func (m Metric) Field() (Field, bool) {
	switch m {
	case MetricSales:
		return FieldSales, true
	case MetricTickets:
		return FieldTickets, true
	}
	return "", false
}

// ParseMetric converte o valor textual, usando vendas quando vazio
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return MetricSales, nil
	case MetricSales, MetricTickets, MetricAverageTicket:
		return Metric(s), nil
	}
	return "", fmt.Errorf("métrica desconhecida: %s", s)
}

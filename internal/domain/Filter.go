package domain

import "slices"

// Scope define quais registros participam da consulta
type Scope string

const (
	// ScopeCurrent usa apenas o ano corrente, meses 1 a 12
	ScopeCurrent Scope = "current"
	// ScopeCombined usa ano corrente e ano anterior, chaveados por ano-mês
	ScopeCombined Scope = "combined"
)

// Filter é a seleção de meses e canais feita no dashboard. Seleção vazia
// significa todos.
type Filter struct {
	Scope    Scope     `validate:"omitempty,oneof=current combined"`
	Periods  []Period  `validate:"dive"`
	Channels []Channel `validate:"dive,channel"`
	Metric   Metric    `validate:"omitempty,oneof=vendas tickets ticket_medio"`
	Year     int       `validate:"omitempty,gte=1900,lte=9999"`
}

// ChannelsOrAll resolve a seleção de canais. Canais repetidos contam uma vez.
func (f Filter) ChannelsOrAll() []Channel {
	if len(f.Channels) == 0 {
		return AllChannels()
	}

	out := make([]Channel, 0, len(f.Channels))
	for _, c := range f.Channels {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// MetricOrDefault retorna a métrica selecionada, ou vendas quando vazia
func (f Filter) MetricOrDefault() Metric {
	if f.Metric == "" {
		return MetricSales
	}
	return f.Metric
}

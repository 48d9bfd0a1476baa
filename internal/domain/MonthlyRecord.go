package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatos aceitos para ultimo_registro_mes
var recordedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// ChannelFigures são os valores de um canal em um mês
type ChannelFigures struct {
	Sales      decimal.Decimal
	Tickets    int64
	ServiceTax decimal.Decimal
}

// MonthlyRecord representa os dados consolidados de um mês, como entregues
// pelos endpoints de análise de campanhas
type MonthlyRecord struct {
	Year             int
	Month            int
	LastRecordedDate *time.Time
	Figures          map[Channel]ChannelFigures
}

// Period retorna o período do registro
func (r *MonthlyRecord) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

// Channel retorna os valores de um canal, zerados quando ausentes
func (r *MonthlyRecord) Channel(c Channel) ChannelFigures {
	if r == nil || r.Figures == nil {
		return ChannelFigures{}
	}
	return r.Figures[c]
}

// Value lê um campo de um canal como float64. Campos ausentes valem zero.
func (r *MonthlyRecord) Value(c Channel, f Field) float64 {
	if r == nil {
		return 0
	}
	figures := r.Channel(c)
	switch f {
	case FieldSales:
		return figures.Sales.InexactFloat64()
	case FieldTickets:
		return float64(figures.Tickets)
	case FieldServiceTax:
		if !c.HasServiceTax() {
			return 0
		}
		return figures.ServiceTax.InexactFloat64()
	}
	return 0
}

// RecordedDays retorna o dia do mês do último registro, ou zero quando a
// data não pôde ser lida
func (r *MonthlyRecord) RecordedDays() int {
	if r == nil || r.LastRecordedDate == nil {
		return 0
	}
	return r.LastRecordedDate.Day()
}

func fieldKey(f Field, c Channel) string {
	return fmt.Sprintf("%s_%s", f, c)
}

// UnmarshalJSON decodifica o formato plano do endpoint. Valores ausentes ou
// não numéricos viram zero em vez de erro.
func (r *MonthlyRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("registro mensal inválido: %w", err)
	}

	r.Year = int(coerceDecimal(raw["ano"]).IntPart())
	r.Month = int(coerceDecimal(raw["mes"]).IntPart())
	r.LastRecordedDate = parseRecordedDate(raw["ultimo_registro_mes"])
	r.Figures = make(map[Channel]ChannelFigures, len(Channels))

	for _, info := range Channels {
		figures := ChannelFigures{
			Sales:   coerceDecimal(raw[fieldKey(FieldSales, info.ID)]),
			Tickets: coerceDecimal(raw[fieldKey(FieldTickets, info.ID)]).Round(0).IntPart(),
		}
		if info.HasServiceTax {
			figures.ServiceTax = coerceDecimal(raw[fieldKey(FieldServiceTax, info.ID)])
		}
		r.Figures[info.ID] = figures
	}

	return nil
}

// MarshalJSON devolve o registro no mesmo formato plano recebido
func (r MonthlyRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3+len(Channels)*3)
	out["ano"] = r.Year
	out["mes"] = r.Month
	if r.LastRecordedDate != nil {
		out["ultimo_registro_mes"] = r.LastRecordedDate.Format(time.DateOnly)
	} else {
		out["ultimo_registro_mes"] = nil
	}

	for _, info := range Channels {
		figures := r.Channel(info.ID)
		out[fieldKey(FieldSales, info.ID)] = json.Number(figures.Sales.String())
		out[fieldKey(FieldTickets, info.ID)] = figures.Tickets
		if info.HasServiceTax {
			out[fieldKey(FieldServiceTax, info.ID)] = json.Number(figures.ServiceTax.String())
		}
	}

	return json.Marshal(out)
}

func coerceDecimal(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return decimal.Zero
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseRecordedDate(raw json.RawMessage) *time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return nil
	}

	for _, layout := range recordedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

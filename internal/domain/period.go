package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthLabels = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthLabel retorna o nome do mês em português, ou "Mês N" fora do intervalo
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Mês %d", month)
	}
	return monthLabels[month-1]
}

// Period identifica um mês de um ano
type Period struct {
	Year  int `json:"year" validate:"gte=0"`
	Month int `json:"month" validate:"gte=1,lte=12"`
}

// Key retorna a chave no formato ano-mes (ex: 2025-3)
func (p Period) Key() string {
	return fmt.Sprintf("%d-%d", p.Year, p.Month)
}

// Label retorna o rótulo "2025 - Março"
func (p Period) Label() string {
	return fmt.Sprintf("%d - %s", p.Year, MonthLabel(p.Month))
}

// Previous retorna o mês imediatamente anterior
func (p Period) Previous() Period {
	if p.Month <= 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Before indica se p vem antes de other
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// DaysInMonth retorna a quantidade de dias do mês
func (p Period) DaysInMonth() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PeriodOf retorna o período de uma data
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// ParsePeriodKey aceita "2025-3" ou apenas "3"; neste caso o ano fica zerado
// e deve ser resolvido pelo escopo da consulta.
func ParsePeriodKey(key string) (Period, error) {
	key = strings.TrimSpace(key)
	yearPart, monthPart, hasYear := strings.Cut(key, "-")
	if !hasYear {
		monthPart, yearPart = yearPart, ""
	}

	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return Period{}, fmt.Errorf("mês inválido em %q: %w", key, err)
	}

	var year int
	if hasYear {
		year, err = strconv.Atoi(yearPart)
		if err != nil {
			return Period{}, fmt.Errorf("ano inválido em %q: %w", key, err)
		}
	}

	return Period{Year: year, Month: month}, nil
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
		return domain.Channel(fl.Field().String()).Valid()
	})
	return v
}

// splitList separa valores por vírgula, ignorando itens vazios
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseFilter lê scope, months, channels, metric e year da query string
func parseFilter(r *http.Request) (domain.Filter, *apiErrors.APIError) {
	query := r.URL.Query()

	filter := domain.Filter{
		Scope: domain.Scope(query.Get("scope")),
	}
	if filter.Scope == "" {
		filter.Scope = domain.ScopeCurrent
	}

	for _, key := range splitList(query.Get("months")) {
		period, err := domain.ParsePeriodKey(key)
		if err != nil {
			return filter, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidFormat,
				Message: "Mês inválido. Use o número do mês (ex: 3) ou ano-mês (ex: 2025-3)",
				Details: err.Error(),
			}
		}
		filter.Periods = append(filter.Periods, period)
	}

	for _, id := range splitList(query.Get("channels")) {
		filter.Channels = append(filter.Channels, domain.Channel(id))
	}

	metric, err := domain.ParseMetric(query.Get("metric"))
	if err != nil {
		return filter, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidRequest,
			Message: "Métrica inválida. Valores aceitos: vendas, tickets, ticket_medio",
			Details: err.Error(),
		}
	}
	filter.Metric = metric

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidFormat,
				Message: "Ano inválido. Use formato de quatro dígitos (ex: 2025)",
			}
		}
		filter.Year = year
	}

	if err := validate.Struct(filter); err != nil {
		return filter, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidRequest,
			Message: "Filtro inválido",
			Details: validationDetails(err),
		}
	}

	return filter, nil
}

func validationDetails(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, fmt.Sprintf("%s: valor %v não atende à regra %s", fieldErr.Namespace(), fieldErr.Value(), fieldErr.Tag()))
	}
	return details
}

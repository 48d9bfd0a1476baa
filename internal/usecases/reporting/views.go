package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/metrics"
	"github.com/vfg2006/campaign-analytics-api/pkg/format"
)

// GetMonthOptions lista os meses disponíveis no escopo
func (s *Service) GetMonthOptions(ctx context.Context, kind domain.Scope) (*domain.MonthOptions, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, kind)

	options := make([]domain.MonthOption, 0)
	for _, p := range scope.Series.Periods() {
		options = append(options, domain.MonthOption{
			Key:    optionKey(scope, p),
			Period: p,
			Label:  scope.Label(p),
		})
	}

	years := make([]string, 0)
	for _, y := range scope.Series.Years() {
		years = append(years, strconv.Itoa(y))
	}

	lastRecorded := scope.LastRecordedDate()

	return &domain.MonthOptions{
		Scope:            scope.Kind,
		Options:          options,
		YearsLabel:       strings.Join(years, "/"),
		LastRecordedDate: lastRecorded,
		LastLoadLabel:    format.Date(lastRecorded),
		SnapshotID:       snapshot.ID,
	}, nil
}

// GetKPISummary soma vendas e tickets dos meses e canais selecionados
func (s *Service) GetKPISummary(ctx context.Context, filter domain.Filter) (*domain.KPISummary, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, filter.Scope)
	periods, err := scope.ResolvePeriods(filter.Periods)
	if err != nil {
		return nil, err
	}
	totals := metrics.SumPeriods(scope.Series, periods, filter.ChannelsOrAll())

	labels := make([]string, 0, len(periods))
	for _, p := range periods {
		labels = append(labels, scope.Label(p))
	}

	sales := totals.Sales.InexactFloat64()
	tickets := float64(totals.Tickets)
	average := totals.AverageTicket()

	return &domain.KPISummary{
		TotalSales:         sales,
		TotalTickets:       tickets,
		AverageTicket:      average,
		TotalSalesLabel:    format.Currency(sales),
		TotalTicketsLabel:  format.Integer(tickets),
		AverageTicketLabel: format.Currency(average),
		Subtitle:           kpiSubtitle(scope, labels, filter.MetricOrDefault()),
		Months:             labels,
	}, nil
}

// GetTimeline calcula a métrica por mês e a variação em relação ao ponto anterior
func (s *Service) GetTimeline(ctx context.Context, filter domain.Filter) ([]domain.TimelinePoint, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, filter.Scope)
	periods, err := scope.ResolvePeriods(filter.Periods)
	if err != nil {
		return nil, err
	}
	channels := filter.ChannelsOrAll()
	metric := filter.MetricOrDefault()

	points := make([]domain.TimelinePoint, 0, len(periods))
	for i, p := range periods {
		value := metrics.Total(scope.Series.Record(p), metric, channels)

		var variation *float64
		if i > 0 {
			variation = metrics.Variation(value, points[i-1].Value)
		}

		points = append(points, domain.TimelinePoint{
			Name:           scope.Label(p),
			Period:         p,
			Value:          value,
			Variation:      variation,
			ValueLabel:     formatMetric(metric, value),
			VariationLabel: format.Percent(variation),
		})
	}

	return points, nil
}

// GetRevenueShare calcula a participação de cada canal nas vendas dos meses
// selecionados
func (s *Service) GetRevenueShare(ctx context.Context, filter domain.Filter) ([]domain.RevenueShare, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, filter.Scope)
	periods, err := scope.ResolvePeriods(filter.Periods)
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return []domain.RevenueShare{}, nil
	}

	channels := filter.ChannelsOrAll()
	shares := make([]domain.RevenueShare, 0, len(channels))
	var total float64
	for _, c := range channels {
		revenue := metrics.SumPeriods(scope.Series, periods, []domain.Channel{c}).Sales.InexactFloat64()
		total += revenue

		info, _ := c.Info()
		shares = append(shares, domain.RevenueShare{
			Channel: c,
			Label:   info.Label,
			Color:   info.Color,
			Revenue: revenue,
		})
	}

	for i := range shares {
		if total > 0 {
			shares[i].Percentage = shares[i].Revenue / total * 100
		}
		shares[i].ShareLabel = format.Share(shares[i].Percentage)
	}

	return shares, nil
}

// GetChannelBreakdown calcula a métrica de cada canal nos meses selecionados
func (s *Service) GetChannelBreakdown(ctx context.Context, filter domain.Filter) ([]domain.ChannelValue, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scope := metrics.NewScope(snapshot, filter.Scope)
	periods, err := scope.ResolvePeriods(filter.Periods)
	if err != nil {
		return nil, err
	}

	channels := filter.ChannelsOrAll()
	metric := filter.MetricOrDefault()
	values := make([]domain.ChannelValue, 0, len(channels))
	for _, c := range channels {
		value := metrics.SumPeriods(scope.Series, periods, []domain.Channel{c}).Metric(metric)

		info, _ := c.Info()
		values = append(values, domain.ChannelValue{
			Channel:    c,
			Label:      info.Label,
			Color:      info.Color,
			Value:      value,
			ValueLabel: formatMetric(metric, value),
		})
	}

	return values, nil
}

// GetComparisons projeta o mês corrente e o compara com o mesmo mês do ano
// anterior e com o mês anterior. Comparações sem registros são omitidas.
func (s *Service) GetComparisons(ctx context.Context, filter domain.Filter) (*domain.Comparisons, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	channels := filter.ChannelsOrAll()
	metric := filter.MetricOrDefault()
	month := int(s.now().Month())

	current := findByMonth(snapshot.Current, month)
	if current == nil {
		return &domain.Comparisons{}, nil
	}

	comparisons := &domain.Comparisons{
		YearOverYear: compare(current, findByMonth(snapshot.Previous, month), metric, channels),
	}

	if month == 1 {
		comparisons.MonthOverMonth = compare(current, findByMonth(snapshot.Previous, 12), metric, channels)
	} else {
		comparisons.MonthOverMonth = compare(current, findByMonth(snapshot.Current, month-1), metric, channels)
	}

	return comparisons, nil
}

func compare(current, reference *domain.MonthlyRecord, m domain.Metric, channels []domain.Channel) *domain.Comparison {
	if current == nil || reference == nil {
		return nil
	}

	currentValue := metrics.Project(current, m, channels)
	referenceValue := metrics.Project(reference, m, channels)
	variation := metrics.Variation(currentValue, referenceValue)

	return &domain.Comparison{
		Metric:          m.Label(),
		CurrentPeriod:   current.Period(),
		ReferencePeriod: reference.Period(),
		Current:         currentValue,
		Reference:       referenceValue,
		Variation:       variation,
		VariationLabel:  format.Percent(variation),
	}
}

// findByMonth retorna o primeiro registro do mês, ignorando o ano
func findByMonth(records []domain.MonthlyRecord, month int) *domain.MonthlyRecord {
	for i := range records {
		if records[i].Month == month {
			return &records[i]
		}
	}
	return nil
}

func optionKey(scope metrics.Scope, p domain.Period) string {
	if scope.Kind == domain.ScopeCombined {
		return p.Key()
	}
	return strconv.Itoa(p.Month)
}

func kpiSubtitle(scope metrics.Scope, labels []string, m domain.Metric) string {
	months := strings.Join(labels, ", ")
	if scope.Kind == domain.ScopeCurrent {
		months = fmt.Sprintf("%s %d", months, scope.Year)
	}
	return fmt.Sprintf("for transactions in %s (%s)", months, m.Label())
}

// formatMetric formata tickets como inteiro e as demais métricas como moeda
func formatMetric(m domain.Metric, v float64) string {
	if m == domain.MetricTickets {
		return format.Integer(v)
	}
	return format.Currency(v)
}

package reporting

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// DatasetLoader carrega um novo snapshot dos endpoints de campanhas
type DatasetLoader interface {
	// Refresh busca os dois conjuntos e substitui o snapshot atual
	Refresh(ctx context.Context) (*domain.Snapshot, error)
}

// Reporter monta as visões do dashboard a partir do snapshot carregado
type Reporter interface {
	DatasetLoader

	// Snapshot retorna o snapshot atual, carregando-o se necessário
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	GetMonthOptions(ctx context.Context, scope domain.Scope) (*domain.MonthOptions, error)
	GetKPISummary(ctx context.Context, filter domain.Filter) (*domain.KPISummary, error)
	GetTimeline(ctx context.Context, filter domain.Filter) ([]domain.TimelinePoint, error)
	GetRevenueShare(ctx context.Context, filter domain.Filter) ([]domain.RevenueShare, error)
	GetChannelBreakdown(ctx context.Context, filter domain.Filter) ([]domain.ChannelValue, error)

	// GetComparisons compara o mês corrente projetado com o mesmo mês do ano
	// anterior e com o mês imediatamente anterior
	GetComparisons(ctx context.Context, filter domain.Filter) (*domain.Comparisons, error)

	// GetPivotTable monta a tabela detalhada por canal de um ano; ano zero usa
	// o ano corrente do snapshot
	GetPivotTable(ctx context.Context, year int) (*domain.PivotTable, error)
}

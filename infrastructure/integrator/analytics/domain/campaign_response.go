package analyticsdomain

import "github.com/vfg2006/campaign-analytics-api/internal/domain"

// CampaignResponse é o envelope devolvido pelos endpoints de análise de campanhas
type CampaignResponse struct {
	Data []domain.MonthlyRecord `json:"data"`
}

// Source identifica de qual endpoint os dados vieram
type Source string

const (
	SourceCurrentYear  Source = "current_year"
	SourcePreviousYear Source = "previous_year"
)

// Datasets são os registros dos dois anos carregados juntos
type Datasets struct {
	Current  []domain.MonthlyRecord
	Previous []domain.MonthlyRecord
}

package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/export"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// newReporter monta o serviço de relatórios a partir das variáveis de ambiente
var newReporter = func() (reporting.Reporter, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	client := analyticsclient.NewClient(cfg)
	return reporting.NewService(analytics.New(cfg, client)), nil
}

func newKPIsCmd() *cobra.Command {
	var months, channels []string
	var format string

	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Imprime total de vendas, tickets e ticket médio",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter(months, channels)
			if err != nil {
				return err
			}

			reporter, err := newReporter()
			if err != nil {
				return err
			}

			summary, err := reporter.GetKPISummary(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, summary, func(w io.Writer) error {
				return export.WriteKPICSV(w, summary)
			})
		},
	}

	cmd.Flags().StringSliceVar(&months, "months", nil, "meses do ano corrente (ex: 1,2,3)")
	cmd.Flags().StringSliceVar(&channels, "channels", nil, "canais (ex: balcao,ifood)")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "formato de saída: json ou csv")
	return cmd
}

func newTableCmd() *cobra.Command {
	var year int
	var format string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Imprime a tabela detalhada por canal e mês",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := newReporter()
			if err != nil {
				return err
			}

			table, err := reporter.GetPivotTable(cmd.Context(), year)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, table, func(w io.Writer) error {
				return export.WritePivotCSV(w, table)
			})
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "ano da tabela (padrão: ano corrente)")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "formato de saída: csv ou json")
	return cmd
}

func newRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Imprime os registros carregados dos dois endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := newReporter()
			if err != nil {
				return err
			}

			snapshot, err := loadSnapshot(cmd.Context(), reporter)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), snapshot)
		},
	}
}

func loadSnapshot(ctx context.Context, reporter reporting.Reporter) (*domain.Snapshot, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return reporter.Snapshot(ctx)
}

func buildFilter(months, channels []string) (domain.Filter, error) {
	filter := domain.Filter{Scope: domain.ScopeCurrent, Metric: domain.MetricSales}

	for _, key := range months {
		period, err := domain.ParsePeriodKey(key)
		if err != nil {
			return filter, err
		}
		if period.Month < 1 || period.Month > 12 {
			return filter, fmt.Errorf("mês fora do intervalo: %s", key)
		}
		filter.Periods = append(filter.Periods, period)
	}

	for _, id := range channels {
		channel, err := domain.ParseChannel(id)
		if err != nil {
			return filter, err
		}
		filter.Channels = append(filter.Channels, channel)
	}

	return filter, nil
}

func render(w io.Writer, format string, v any, csvWriter func(io.Writer) error) error {
	switch format {
	case formatJSON:
		return writeJSON(w, v)
	case formatCSV:
		return csvWriter(w)
	}
	return fmt.Errorf("formato desconhecido: %s", format)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

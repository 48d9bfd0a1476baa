package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "report",
		Short:         "Consulta os dados de campanhas e imprime indicadores, tabela ou registros",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Imprime a versão do report",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	version = "dev"
)

func main() {
	logrus.SetOutput(os.Stderr)
	rootCmd.AddCommand(versionCmd, newKPIsCmd(), newTableCmd(), newRecordsCmd())
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("erro ao executar o report")
		os.Exit(1)
	}
}

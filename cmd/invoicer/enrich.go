package main

import (
	"github.com/spf13/cobra"
	"invoicer/internal/service/pipeline"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Резолвит клиентов по сторам и пишет обогащённую выгрузку",
	Long: `enrich читает входную CSV-выгрузку, находит клиента каждой строки
по базам магазинов и пишет копию выгрузки с колонками FULL_NAME и EMAIL.
Счета не собираются и не отправляются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBatch(cmd, pipeline.Stages{
			Resolve:       true,
			WriteEnriched: true,
		})
	},
}

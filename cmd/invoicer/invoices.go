package main

import (
	"github.com/spf13/cobra"
	"invoicer/internal/service/pipeline"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Собирает и отправляет счета из уже обогащённой выгрузки",
	Long: `invoices ожидает на входе выгрузку, уже содержащую FULL_NAME и
EMAIL (результат enrich), и поэтому не подключается к базам магазинов.
Счета собираются в выбранном режиме агрегации и уходят в рендер-сервис.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBatch(cmd, pipeline.Stages{
			Dispatch: true,
		})
	},
}

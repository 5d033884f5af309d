package main

import (
	"github.com/spf13/cobra"
	"invoicer/internal/service/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Полный прогон: резолв, обогащённая выгрузка, счета",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBatch(cmd, pipeline.Stages{
			Resolve:       true,
			WriteEnriched: true,
			Dispatch:      true,
		})
	},
}

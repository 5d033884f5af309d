package app

import (
	"invoicer/internal/service/pipeline"
)

type Application struct {
	Pipeline *pipeline.Pipeline
}

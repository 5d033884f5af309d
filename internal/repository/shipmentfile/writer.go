package shipmentfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"invoicer/internal/entities"
	"invoicer/internal/pkg/schema"
)

// Writer сохраняет обогащённую выгрузку: исходные колонки схемы плюс
// FULL_NAME, EMAIL и (опционально) DATABASE_NAME ответившего стора.
type Writer struct {
	schema          *schema.Schema
	includeStoreTag bool
}

func NewWriter(s *schema.Schema, includeStoreTag bool) *Writer {
	return &Writer{
		schema:          s,
		includeStoreTag: includeStoreTag,
	}
}

func (w *Writer) WriteEnriched(path string, records []entities.EnrichedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create enriched export: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := make([]string, 0, len(w.schema.Columns)+3)
	header = append(header, w.schema.Columns...)
	header = append(header, "FULL_NAME", "EMAIL")
	if w.includeStoreTag {
		header = append(header, "DATABASE_NAME")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write enriched header: %w", err)
	}

	for i, record := range records {
		row := make([]string, len(w.schema.Columns), len(header))
		copy(row, record.Raw)

		fullName, email, tag := "", "", ""
		if record.Identity != nil {
			fullName = record.Identity.FullName
			email = record.Identity.Email
			tag = record.Identity.SourceTag
		}
		row = append(row, fullName, email)
		if w.includeStoreTag {
			row = append(row, tag)
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write enriched row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush enriched export: %w", err)
	}
	return nil
}

package shipmentfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"invoicer/internal/entities"
	"invoicer/internal/pkg/schema"
)

// Source читает разделённую выгрузку биллинга по версионированной схеме.
// Первая строка файла считается заголовком и отбрасывается: тексту
// заголовков между ревизиями выгрузки доверять нельзя.
type Source struct {
	schema     *schema.Schema
	lazyQuotes bool
}

// New создаёт источник. lazyQuotes включает терпимость к выгрузкам,
// испорченным старым пре-пассом удаления кавычек.
func New(s *schema.Schema, lazyQuotes bool) *Source {
	return &Source{
		schema:     s,
		lazyQuotes: lazyQuotes,
	}
}

func (s *Source) Load(path string) ([]entities.ShipmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shipment export: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = s.lazyQuotes

	records := make([]entities.ShipmentRecord, 0, 64)

	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read shipment export at line %d: %w", line+1, err)
		}
		line++

		// заголовок
		if line == 1 {
			continue
		}

		if len(row) < s.schema.MinFields() {
			return nil, &SchemaMismatchError{
				Line:   line,
				Fields: len(row),
				Want:   s.schema.MinFields(),
			}
		}

		records = append(records, toRecord(s.schema, row))
	}

	return records, nil
}

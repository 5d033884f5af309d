package shipmentfile

import "fmt"

// SchemaMismatchError строка выгрузки короче, чем требуют задействованные
// колонки схемы.
type SchemaMismatchError struct {
	Line   int
	Fields int
	Want   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch at line %d: row has %d fields, schema requires at least %d", e.Line, e.Fields, e.Want)
}

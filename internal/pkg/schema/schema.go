package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"invoicer/internal/entities"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// Field семантическое имя колонки, на которое ссылается пайплайн.
// Привязка к реальной позиции задаётся yaml-описанием версии схемы.
type Field string

const (
	FieldTracking           Field = "tracking"
	FieldInvoiceNumber      Field = "invoice_number"
	FieldInvoiceDate        Field = "invoice_date"
	FieldConsigneeName      Field = "consignee_name"
	FieldConsigneeAttention Field = "consignee_attention"
	FieldConsigneeAddress   Field = "consignee_address"
	FieldBaseCharge         Field = "base_charge"
	FieldBilledWeight       Field = "billed_weight"
	FieldServiceCode        Field = "service_code"
	FieldDatabaseName       Field = "database_name"
	FieldFullName           Field = "full_name"
	FieldEmail              Field = "email"
)

type fileSchema struct {
	Version string            `yaml:"version"`
	Columns []string          `yaml:"columns"`
	Fields  map[string]string `yaml:"fields"`
	Charges []struct {
		Type   string `yaml:"type"`
		Amount string `yaml:"amount"`
	} `yaml:"charges"`
}

// Schema версионированная позиционная схема выгрузки. Разрешение имён
// колонок в индексы происходит один раз при загрузке.
type Schema struct {
	Version string
	Columns []string

	fields    map[Field]int
	charges   [][2]int
	minFields int
}

func Load(version string) (*Schema, error) {
	data, err := schemaFS.ReadFile("schemas/" + version + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown schema version %q (have: %s)", version, strings.Join(Versions(), ", "))
	}

	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", version, err)
	}

	index := make(map[string]int, len(fs.Columns))
	for i, name := range fs.Columns {
		index[name] = i
	}

	s := &Schema{
		Version: fs.Version,
		Columns: fs.Columns,
		fields:  make(map[Field]int, len(fs.Fields)),
	}

	for field, column := range fs.Fields {
		idx, ok := index[column]
		if !ok {
			return nil, fmt.Errorf("schema %s: field %q references unknown column %q", version, field, column)
		}
		s.fields[Field(field)] = idx
		if idx+1 > s.minFields {
			s.minFields = idx + 1
		}
	}

	for _, pair := range fs.Charges {
		typeIdx, ok := index[pair.Type]
		if !ok {
			return nil, fmt.Errorf("schema %s: charge references unknown column %q", version, pair.Type)
		}
		amountIdx, ok := index[pair.Amount]
		if !ok {
			return nil, fmt.Errorf("schema %s: charge references unknown column %q", version, pair.Amount)
		}
		s.charges = append(s.charges, [2]int{typeIdx, amountIdx})
		if amountIdx+1 > s.minFields {
			s.minFields = amountIdx + 1
		}
		if typeIdx+1 > s.minFields {
			s.minFields = typeIdx + 1
		}
	}

	return s, nil
}

// Versions перечисляет доступные версии схем.
func Versions() []string {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(versions)
	return versions
}

// MinFields минимальное число полей в строке, при котором все
// задействованные колонки адресуемы.
func (s *Schema) MinFields() int {
	return s.minFields
}

func (s *Schema) Index(f Field) (int, bool) {
	idx, ok := s.fields[f]
	return idx, ok
}

func (s *Schema) Has(f Field) bool {
	_, ok := s.fields[f]
	return ok
}

// Value возвращает значение семантического поля из строки либо пустую
// строку, если схема это поле не определяет.
func (s *Schema) Value(row []string, f Field) string {
	idx, ok := s.fields[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ChargeSlots извлекает все пары (тип, сумма), определённые схемой.
func (s *Schema) ChargeSlots(row []string) []entities.ChargeSlot {
	slots := make([]entities.ChargeSlot, 0, len(s.charges))
	for _, pair := range s.charges {
		slot := entities.ChargeSlot{}
		if pair[0] < len(row) {
			slot.Type = row[pair[0]]
		}
		if pair[1] < len(row) {
			slot.Amount = row[pair[1]]
		}
		slots = append(slots, slot)
	}
	return slots
}

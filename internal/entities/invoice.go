package entities

import "github.com/shopspring/decimal"

type LineItem struct {
	Name     string
	Quantity int64
	UnitCost decimal.Decimal
}

// Total возвращает Quantity * UnitCost.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitCost.Mul(decimal.NewFromInt(li.Quantity))
}

// Invoice единица отправки в рендер-сервис. Значение иммутабельно:
// собирается агрегатором, живёт до сохранения PDF и выбрасывается.
type Invoice struct {
	From    string
	To      string
	Logo    string
	Number  string
	Date    string
	DueDate string
	Items   []LineItem
	Notes   string
}

type AggregationMode string

const (
	PerRecord   AggregationMode = "per-record"
	PerCustomer AggregationMode = "per-customer"
)

func (m AggregationMode) String() string {
	return string(m)
}

func (m AggregationMode) Valid() bool {
	return m == PerRecord || m == PerCustomer
}

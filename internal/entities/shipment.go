package entities

// ChargeSlot одна пара (тип, сумма) из выгрузки. Значения сырые:
// пустая строка означает отсутствие, а не ноль.
type ChargeSlot struct {
	Type   string
	Amount string
}

// Populated сообщает, является ли слот реальным начислением.
// Слот без типа или без суммы начислением не считается.
func (c ChargeSlot) Populated() bool {
	return c.Type != "" && c.Amount != ""
}

type ShipmentRecord struct {
	TrackingID         string
	InvoiceNumber      string
	InvoiceDate        string
	ConsigneeName      string
	ConsigneeAttention string
	ConsigneeAddress   string
	Charges            []ChargeSlot
	BaseCharge         string
	BilledWeight       string
	ServiceCode        string
	SourceTag          string

	// FullName/Email заполнены только для уже обогащённых выгрузок (схема v76).
	FullName string
	Email    string

	// Raw хранит исходные колонки строки для записи обогащённого CSV.
	Raw []string
}

// EnrichedRecord запись выгрузки вместе с результатом резолва личности.
// Identity == nil означает "владелец не найден" (валидный результат).
type EnrichedRecord struct {
	ShipmentRecord
	Identity *CustomerIdentity
}

package aggregator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"invoicer/internal/entities"
)

const (
	itemWeight          = "Weight"
	itemBaseTransport   = "Base Transportation"
	itemReportingFee    = "Reporting fee"
	itemTotalBaseCharge = "Total Base Charge Amount"
	itemInsuredValue    = "Insured Value"
)

// reportingFee фиксированный сбор 2.50 за отправление.
var reportingFee = decimal.New(250, -2)

type Aggregator struct {
	logos LogoTable
}

func New(logos LogoTable) *Aggregator {
	return &Aggregator{
		logos: logos,
	}
}

// Build превращает обогащённые записи выгрузки в счета. Все суммы
// считаются в decimal; пустая сумма это отсутствие начисления, а не ноль.
func (a *Aggregator) Build(records []entities.EnrichedRecord, mode entities.AggregationMode) ([]entities.Invoice, error) {
	switch mode {
	case entities.PerRecord:
		return a.perRecord(records)
	case entities.PerCustomer:
		return a.perCustomer(records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// perRecord один счёт на строку выгрузки.
func (a *Aggregator) perRecord(records []entities.EnrichedRecord) ([]entities.Invoice, error) {
	invoices := make([]entities.Invoice, 0, len(records))

	for _, record := range records {
		items := make([]entities.LineItem, 0, len(record.Charges)+3)

		for _, slot := range record.Charges {
			if !slot.Populated() {
				continue
			}
			amount, err := parseAmount(record.TrackingID, slot.Type, slot.Amount)
			if err != nil {
				return nil, err
			}
			items = append(items, entities.LineItem{
				Name:     slot.Type,
				Quantity: 1,
				UnitCost: amount,
			})
		}

		if record.BilledWeight != "" {
			weight, err := parseAmount(record.TrackingID, itemWeight, record.BilledWeight)
			if err != nil {
				return nil, err
			}
			items = append(items, entities.LineItem{
				Name:     itemWeight,
				Quantity: 1,
				UnitCost: weight,
			})
		}

		if record.BaseCharge != "" {
			base, err := parseAmount(record.TrackingID, itemBaseTransport, record.BaseCharge)
			if err != nil {
				return nil, err
			}
			items = append(items, entities.LineItem{
				Name:     itemBaseTransport,
				Quantity: 1,
				UnitCost: base,
			})
		}

		items = append(items, entities.LineItem{
			Name:     itemReportingFee,
			Quantity: 1,
			UnitCost: reportingFee,
		})

		identity := identityOf(record)
		from := ""
		if identity != nil {
			from = identity.FullName
		}
		invoices = append(invoices, entities.Invoice{
			From:   from,
			To:     record.ConsigneeName,
			Logo:   a.logos.For(sourceTag(record, identity)),
			Number: record.InvoiceNumber,
			Date:   record.InvoiceDate,
			Items:  items,
		})
	}

	return invoices, nil
}

type customerGroup struct {
	name      string
	first     entities.ShipmentRecord
	tag       string
	totalBase decimal.Decimal
	seen      map[string]struct{}
	airbills  []string
	items     []entities.LineItem
}

// perCustomer один счёт на резолвленного клиента. Строки без личности
// выставить некому — они пропускаются (пайплайн считает их unresolved).
func (a *Aggregator) perCustomer(records []entities.EnrichedRecord) ([]entities.Invoice, error) {
	groups := make(map[string]*customerGroup)
	order := make([]string, 0, 8)

	for _, record := range records {
		identity := identityOf(record)
		if identity.Empty() {
			continue
		}

		group, ok := groups[identity.FullName]
		if !ok {
			group = &customerGroup{
				name:  identity.FullName,
				first: record.ShipmentRecord,
				tag:   sourceTag(record, identity),
				seen:  make(map[string]struct{}),
			}
			groups[identity.FullName] = group
			order = append(order, identity.FullName)
		}

		if record.BaseCharge != "" {
			base, err := parseAmount(record.TrackingID, itemTotalBaseCharge, record.BaseCharge)
			if err != nil {
				return nil, err
			}
			group.totalBase = group.totalBase.Add(base)
		}

		// Метка по первому появлению трекинг-номера в группе; последующие
		// строки группы идут как "Other Charges". Намеренно грубое
		// легаси-правило, воспроизводится как есть.
		label := "Other Charges"
		if record.TrackingID != "" {
			if _, dup := group.seen[record.TrackingID]; !dup {
				group.seen[record.TrackingID] = struct{}{}
				group.airbills = append(group.airbills, record.TrackingID)
				label = "Airbill: " + record.TrackingID
			}
		}

		for _, slot := range record.Charges {
			if !slot.Populated() {
				continue
			}
			amount, err := parseAmount(record.TrackingID, slot.Type, slot.Amount)
			if err != nil {
				return nil, err
			}
			group.items = append(group.items, entities.LineItem{
				Name:     label + " - " + slot.Type,
				Quantity: 1,
				UnitCost: amount,
			})
		}
	}

	invoices := make([]entities.Invoice, 0, len(order))
	for _, name := range order {
		group := groups[name]

		if group.totalBase.IsPositive() {
			group.items = append(group.items, entities.LineItem{
				Name:     itemTotalBaseCharge,
				Quantity: 1,
				UnitCost: group.totalBase,
			})
		}

		if n := len(group.airbills); n > 0 {
			group.items = append(group.items, entities.LineItem{
				Name:     itemReportingFee,
				Quantity: int64(n),
				UnitCost: reportingFee,
			})
		}

		group.items = append(group.items, entities.LineItem{
			Name:     itemInsuredValue,
			Quantity: 1,
			UnitCost: decimal.Zero,
		})

		invoices = append(invoices, entities.Invoice{
			From: group.name,
			To:   group.first.ConsigneeName,
			Logo: a.logos.For(group.tag),
			// Номером счёта легаси ставит тег исходной базы. Странность
			// сохранена сознательно, не чинить без подтверждения.
			Number: group.tag,
			Date:   group.first.InvoiceDate,
			Items:  group.items,
		})
	}

	return invoices, nil
}

func identityOf(record entities.EnrichedRecord) *entities.CustomerIdentity {
	if record.Identity != nil {
		return record.Identity
	}
	if record.FullName != "" {
		// уже обогащённая выгрузка (v76): личность лежит в колонках
		return &entities.CustomerIdentity{
			FullName:  record.FullName,
			Email:     record.Email,
			SourceTag: record.SourceTag,
		}
	}
	return nil
}

func sourceTag(record entities.EnrichedRecord, identity *entities.CustomerIdentity) string {
	if identity != nil && identity.SourceTag != "" {
		return identity.SourceTag
	}
	return record.SourceTag
}

func parseAmount(trackingID, name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &AmountParseError{
			TrackingID: trackingID,
			Name:       name,
			Value:      value,
			Err:        err,
		}
	}
	return amount, nil
}

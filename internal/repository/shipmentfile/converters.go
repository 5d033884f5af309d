package shipmentfile

import (
	"invoicer/internal/entities"
	"invoicer/internal/pkg/schema"
)

func toRecord(s *schema.Schema, row []string) entities.ShipmentRecord {
	raw := make([]string, len(row))
	copy(raw, row)

	return entities.ShipmentRecord{
		TrackingID:         s.Value(row, schema.FieldTracking),
		InvoiceNumber:      s.Value(row, schema.FieldInvoiceNumber),
		InvoiceDate:        s.Value(row, schema.FieldInvoiceDate),
		ConsigneeName:      s.Value(row, schema.FieldConsigneeName),
		ConsigneeAttention: s.Value(row, schema.FieldConsigneeAttention),
		ConsigneeAddress:   s.Value(row, schema.FieldConsigneeAddress),
		Charges:            s.ChargeSlots(row),
		BaseCharge:         s.Value(row, schema.FieldBaseCharge),
		BilledWeight:       s.Value(row, schema.FieldBilledWeight),
		ServiceCode:        s.Value(row, schema.FieldServiceCode),
		SourceTag:          s.Value(row, schema.FieldDatabaseName),
		FullName:           s.Value(row, schema.FieldFullName),
		Email:              s.Value(row, schema.FieldEmail),
		Raw:                raw,
	}
}

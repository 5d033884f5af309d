package invoiceapi

import (
	"encoding/json"

	"invoicer/internal/entities"
)

// invoiceContract внешний контракт рендер-сервиса.
type invoiceContract struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Logo    string         `json:"logo"`
	Number  string         `json:"number"`
	Date    string         `json:"date"`
	DueDate string         `json:"due_date"`
	Items   []itemContract `json:"items"`
	Notes   string         `json:"notes"`
}

type itemContract struct {
	Name     string      `json:"name"`
	Quantity int64       `json:"quantity"`
	UnitCost json.Number `json:"unit_cost"`
}

func toContract(invoice entities.Invoice) invoiceContract {
	items := make([]itemContract, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, itemContract{
			Name:     item.Name,
			Quantity: item.Quantity,
			UnitCost: json.Number(item.UnitCost.String()),
		})
	}

	return invoiceContract{
		From:    invoice.From,
		To:      invoice.To,
		Logo:    invoice.Logo,
		Number:  invoice.Number,
		Date:    invoice.Date,
		DueDate: invoice.DueDate,
		Items:   items,
		Notes:   invoice.Notes,
	}
}

package aggregator

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("unknown aggregation mode")

// AmountParseError сумма в выгрузке не распарсилась как decimal. Молча
// обнулять или выбрасывать начисление нельзя.
type AmountParseError struct {
	TrackingID string
	Name       string
	Value      string
	Err        error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("bad amount %q for %q (airbill %s): %v", e.Value, e.Name, e.TrackingID, e.Err)
}

func (e *AmountParseError) Unwrap() error {
	return e.Err
}

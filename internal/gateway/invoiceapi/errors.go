package invoiceapi

import (
	"errors"
	"fmt"
)

// DispatchError неуспешный ответ рендер-сервиса. Тело ответа сохраняется
// как диагностика; ретраев нет.
type DispatchError struct {
	Status int
	Body   string
}

func (e *DispatchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("invoice render request failed: %s", e.Body)
	}
	return fmt.Sprintf("invoice render rejected with status %d: %s", e.Status, e.Body)
}

func IsDispatchError(err error) bool {
	var dispatchErr *DispatchError
	return errors.As(err, &dispatchErr)
}

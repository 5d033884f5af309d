package resolver

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTrackingID  = errors.New("empty tracking id")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrInvalidPolicy    = errors.New("invalid unavailable-store policy")
)

// StoreUnavailableError ошибка соединения или запроса к стору. Это не
// "не найдено": стор не смог ответить вообще.
type StoreUnavailableError struct {
	Store string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("record store %s unavailable: %v", e.Store, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func IsStoreUnavailable(err error) bool {
	var unavailable *StoreUnavailableError
	return errors.As(err, &unavailable)
}

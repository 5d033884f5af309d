//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoiceapi_test
package invoiceapi

import "net/http"

type client interface {
	Do(req *http.Request) (*http.Response, error)
}

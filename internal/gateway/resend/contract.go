//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resend_test
package resend

import "net/http"

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

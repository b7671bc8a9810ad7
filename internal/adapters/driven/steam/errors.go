package steam

import (
	"fmt"
	"net/http"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// isRateLimitStatus reports whether the store is throttling us.
// The store answers 403 as well as 429 when it does.
func isRateLimitStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusForbidden
}

// checkStatus classifies a response status before its body is read.
func checkStatus(op string, resp *http.Response) error {
	switch {
	case isRateLimitStatus(resp.StatusCode):
		return statusError(domain.KindRateLimited, op, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return statusError(domain.KindOther, op, resp.StatusCode)
	default:
		return nil
	}
}

func statusError(kind domain.RequestErrorKind, op string, code int) *domain.RequestError {
	err := domain.NewRequestError(kind, op, nil)
	err.StatusCode = code
	return err
}

func errMissingField(name string) error {
	return fmt.Errorf("missing %q", name)
}

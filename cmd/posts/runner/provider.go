package runner

import (
	"fmt"
	"net/http"

	"github.com/tomocy/posts/domain"
	"github.com/tomocy/posts/infra"
)

const (
	sourceNetwork = "network"
	sourceMock    = "mock"
)

// newDataService is the only place deciding which DataService is used.
func newDataService(cnf config) (domain.DataService, error) {
	switch cnf.Source {
	case sourceNetwork:
		if cnf.Endpoint == "" {
			return nil, fmt.Errorf("empty endpoint for source %s", cnf.Source)
		}
		return infra.NewNetwork(
			cnf.Endpoint,
			infra.WithHTTPClient(&http.Client{Timeout: cnf.Timeout}),
			infra.WithBearerToken(cnf.Token),
			infra.WithUserAgent(userAgent),
		), nil
	case sourceMock:
		return infra.NewMock(nil), nil
	default:
		return nil, fmt.Errorf("unknown source: %s", cnf.Source)
	}
}

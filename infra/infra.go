package infra

import (
	"context"
	"net/http"
)

type req struct {
	method, url string
	header      http.Header
}

func (r req) do(ctx context.Context, client *http.Client) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, r.method, r.url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return client.Do(httpReq)
}

type withUserAgent struct {
	agent string
	base  http.RoundTripper
}

func (t *withUserAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cloned := r.Clone(r.Context())
	cloned.Header.Set("User-Agent", t.agent)

	return t.transport().RoundTrip(cloned)
}

func (t *withUserAgent) transport() http.RoundTripper {
	if t.base != nil {
		return t.base
	}

	return http.DefaultTransport
}

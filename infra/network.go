package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tomocy/posts/domain"
	"github.com/tomocy/posts/infra/jsonplaceholder"
	"golang.org/x/oauth2"
)

type NetworkOption func(*Network)

func WithHTTPClient(client *http.Client) NetworkOption {
	return func(n *Network) {
		if client != nil {
			n.client = client
		}
	}
}

// WithBearerToken authorizes every request with the given access token.
func WithBearerToken(tok string) NetworkOption {
	return func(n *Network) {
		if tok == "" {
			n.tokenSource = nil
			return
		}
		n.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: tok,
			TokenType:   "Bearer",
		})
	}
}

func WithUserAgent(agent string) NetworkOption {
	return func(n *Network) {
		n.userAgent = agent
	}
}

func NewNetwork(endpoint string, opts ...NetworkOption) *Network {
	n := &Network{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Network fetches posts from a configured endpoint serving a JSON array.
type Network struct {
	endpoint    string
	client      *http.Client
	tokenSource oauth2.TokenSource
	userAgent   string
}

func (n *Network) Endpoint() string {
	return n.endpoint
}

func (n *Network) FetchPosts(ctx context.Context) <-chan domain.Result {
	ch := make(chan domain.Result, 1)
	go func() {
		defer close(ch)
		ps, err := n.fetchPosts(ctx)
		if err != nil {
			ch <- domain.Result{Err: err}
			return
		}

		ch <- domain.Result{Posts: ps}
	}()

	return ch
}

func (n *Network) fetchPosts(ctx context.Context) (domain.Posts, error) {
	body, err := n.do(ctx, req{
		method: http.MethodGet, url: n.endpoint, header: http.Header{
			"Accept": []string{"application/json"},
		},
	})
	if err != nil {
		return nil, domain.TransportError(err)
	}

	ps, err := jsonplaceholder.Decode(body)
	if err != nil {
		return nil, domain.DecodeError(err)
	}

	return ps.Adapt(), nil
}

func (n *Network) do(ctx context.Context, r req) ([]byte, error) {
	resp, err := r.do(ctx, n.httpClient())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || http.StatusMultipleChoices <= resp.StatusCode {
		return nil, errors.New(resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	return body, nil
}

func (n *Network) httpClient() *http.Client {
	if n.userAgent == "" && n.tokenSource == nil {
		return n.client
	}

	var transport http.RoundTripper = n.client.Transport
	if n.userAgent != "" {
		transport = &withUserAgent{agent: n.userAgent, base: transport}
	}
	if n.tokenSource != nil {
		transport = &oauth2.Transport{Source: n.tokenSource, Base: transport}
	}

	return &http.Client{
		Transport:     transport,
		CheckRedirect: n.client.CheckRedirect,
		Jar:           n.client.Jar,
		Timeout:       n.client.Timeout,
	}
}

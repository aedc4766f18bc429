package domain

import "context"

// DataService fetches posts asynchronously. Exactly one Result is delivered
// on the returned channel, which is then closed.
type DataService interface {
	FetchPosts(context.Context) <-chan Result
}

type Result struct {
	Posts Posts
	Err   error
}

// Deliver returns a closed, buffered channel holding r.
func Deliver(r Result) <-chan Result {
	ch := make(chan Result, 1)
	ch <- r
	close(ch)

	return ch
}

// Await receives the single result on ch. A result already delivered wins
// over ctx being done; otherwise ctx.Err() is returned as is.
func Await(ctx context.Context, ch <-chan Result) (Posts, error) {
	select {
	case r, ok := <-ch:
		return received(r, ok)
	default:
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r, ok := <-ch:
		return received(r, ok)
	}
}

func received(r Result, ok bool) (Posts, error) {
	if !ok {
		return nil, errClosedWithoutResult
	}
	if r.Err != nil {
		return nil, r.Err
	}

	return r.Posts, nil
}

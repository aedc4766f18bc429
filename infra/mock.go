package infra

import (
	"context"

	"github.com/tomocy/posts/domain"
)

var samplePosts = domain.Posts{
	{UserID: 1, ID: 1, Title: "One", Body: "one"},
	{UserID: 2, ID: 2, Title: "Two", Body: "two"},
	{UserID: 3, ID: 3, Title: "Three", Body: "three"},
}

func SamplePosts() domain.Posts {
	return samplePosts.Copy()
}

// NewMock returns a Mock serving ps, or the sample posts when ps is nil.
func NewMock(ps domain.Posts) *Mock {
	if ps == nil {
		ps = samplePosts
	}

	return &Mock{
		ps: ps.Copy(),
	}
}

type Mock struct {
	ps domain.Posts
}

func (m *Mock) FetchPosts(context.Context) <-chan domain.Result {
	return domain.Deliver(domain.Result{Posts: m.ps.Copy()})
}

package app

import (
	"context"
	"sync"

	"github.com/tomocy/posts/domain"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Presenter interface {
	ShowPosts(domain.Posts)
}

// FailureHandler receives every failed fetch. Use IgnoreFailure to drop
// failures on purpose.
type FailureHandler func(error)

func IgnoreFailure(error) {}

func NewPostUsecase(svc domain.DataService, presenter Presenter, onFailure FailureHandler) *PostUsecase {
	if svc == nil {
		panic("app: nil data service")
	}
	if onFailure == nil {
		panic("app: nil failure handler: pass app.IgnoreFailure to ignore failures explicitly")
	}

	return &PostUsecase{
		svc:       svc,
		presenter: presenter,
		onFailure: onFailure,
	}
}

type PostUsecase struct {
	svc       domain.DataService
	presenter Presenter
	onFailure FailureHandler

	mu    sync.Mutex
	state State
	posts domain.Posts
	err   error
}

type Snapshot struct {
	State State
	Posts domain.Posts
	Err   error
}

func (u *PostUsecase) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	return Snapshot{
		State: u.state,
		Posts: u.posts.Copy(),
		Err:   u.err,
	}
}

// LoadPosts fetches posts once and routes the result to the presenter or to
// the failure handler. Posts of the last success are kept on failure. If ctx
// is done before any result is delivered, the load is abandoned and
// ctx.Err() is returned. A delivered failure caused by ctx still goes to the
// failure handler.
func (u *PostUsecase) LoadPosts(ctx context.Context) error {
	u.setState(StatePending)

	ps, err := domain.Await(ctx, u.svc.FetchPosts(ctx))
	if ctxErr := ctx.Err(); ctxErr != nil && err == ctxErr {
		u.setState(StateIdle)
		return ctxErr
	}
	if err != nil {
		u.fail(err)
		u.onFailure(err)
		return nil
	}

	u.succeed(ps)
	if u.presenter != nil {
		u.presenter.ShowPosts(ps)
	}

	return nil
}

func (u *PostUsecase) setState(s State) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = s
}

func (u *PostUsecase) succeed(ps domain.Posts) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state, u.posts, u.err = StateSucceeded, ps.Copy(), nil
}

func (u *PostUsecase) fail(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state, u.err = StateFailed, err
}

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tomocy/posts/app"
	"github.com/tomocy/posts/domain"
)

const (
	userAgent       = "posts/1.0"
	defaultEndpoint = "https://jsonplaceholder.typicode.com/posts"
	dotEnvFilename  = ".env"

	formatText  = "text"
	formatColor = "color"
)

type Runner interface {
	Run() error
}

func New() Runner {
	return newRunner(os.Args[1:], os.Stdout, os.Stderr)
}

func newRunner(args []string, stdout, stderr io.Writer) Runner {
	if err := loadDotEnv(dotEnvFilename); err != nil {
		return &Help{w: stderr, err: err}
	}
	cnf, err := parseConfig(args, stdout, stderr)
	if err != nil {
		return &Help{w: stderr, err: err}
	}

	return &Continue{
		cnf: cnf,
		presenter: &cli{
			w: stdout, printer: newPrinter(cnf.Format),
		},
		logger: newLogger(cnf, stderr),
	}
}

func loadDotEnv(name string) error {
	if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}

	return nil
}

type config struct {
	Source        string        `kong:"short='s',enum='network,mock',default='network',env='POSTS_SOURCE',help='Data service to fetch posts from (network, mock).'"`
	Endpoint      string        `kong:"short='e',default='${endpoint}',env='POSTS_ENDPOINT',help='Endpoint serving a JSON array of posts.'"`
	Token         string        `kong:"env='POSTS_TOKEN',help='Bearer token sent to the endpoint.'"`
	Timeout       time.Duration `kong:"default='10s',env='POSTS_TIMEOUT',help='Timeout of a single fetch.'"`
	Format        string        `kong:"short='f',enum='text,color',default='text',help='Output format (text, color).'"`
	Times         int           `kong:"short='n',default='1',help='Number of sequential loads.'"`
	IgnoreFailure bool          `kong:"help='Ignore failed loads instead of exiting with an error.'"`
	LogLevel      string        `kong:"short='l',enum='debug,info,warn,error',default='info',help='Log level.'"`
}

func parseConfig(args []string, stdout, stderr io.Writer, opts ...kong.Option) (config, error) {
	var cnf config
	parser, err := kong.New(&cnf, append([]kong.Option{
		kong.Name("posts"),
		kong.Description("Fetch posts through an injected data service."),
		kong.Vars{"endpoint": defaultEndpoint},
		kong.Writers(stdout, stderr),
	}, opts...)...)
	if err != nil {
		return config{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		return config{}, err
	}
	if cnf.Times <= 0 {
		return config{}, fmt.Errorf("invalid times: %d: the times should be positive", cnf.Times)
	}
	if cnf.Timeout <= 0 {
		return config{}, fmt.Errorf("invalid timeout: %s: the timeout should be positive", cnf.Timeout)
	}

	return cnf, nil
}

func newLogger(cnf config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if lv, err := logrus.ParseLevel(cnf.LogLevel); err == nil {
		logger.SetLevel(lv)
	}

	return logger
}

type presenter interface {
	ShowPosts(domain.Posts)
}

type printer interface {
	PrintPosts(io.Writer, domain.Posts)
}

type Continue struct {
	cnf       config
	presenter presenter
	logger    *logrus.Logger
}

func (c *Continue) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.loadAndShowPosts(ctx)
}

func (c *Continue) loadAndShowPosts(ctx context.Context) error {
	svc, err := newDataService(c.cnf)
	if err != nil {
		return err
	}
	c.logger.WithFields(logrus.Fields{
		"source": c.cnf.Source, "endpoint": c.endpoint(),
	}).Debug("data service selected")

	failed := &loadFailure{}
	onFailure := app.IgnoreFailure
	if !c.cnf.IgnoreFailure {
		onFailure = func(err error) {
			c.logger.WithError(err).WithField("kind", failureKind(err)).Error("failed to load posts")
			failed.count++
			failed.last = err
		}
	}
	u := app.NewPostUsecase(svc, c.presenter, onFailure)

	for i := 0; i < c.cnf.Times; i++ {
		if err := c.loadPosts(ctx, u, i+1); err != nil {
			return err
		}
	}

	if failed.count <= 0 {
		return nil
	}

	return failed
}

// loadFailure reports failed loads without repeating the failure already
// logged; the last failure stays reachable through errors.Is and errors.As.
type loadFailure struct {
	count int
	last  error
}

func (f *loadFailure) Error() string {
	return fmt.Sprintf("%d load(s) failed", f.count)
}

func (f *loadFailure) Unwrap() error {
	return f.last
}

// loadPosts bounds a fetch only by the timeout of the service's HTTP client.
// ctx is done only on interrupt.
func (c *Continue) loadPosts(ctx context.Context, u *app.PostUsecase, nth int) error {
	started := time.Now()
	if err := u.LoadPosts(ctx); err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	snap := u.Snapshot()
	c.logger.WithFields(logrus.Fields{
		"nth": nth, "state": snap.State, "posts": len(snap.Posts), "elapsed": time.Since(started),
	}).Debug("load finished")

	return nil
}

func (c *Continue) endpoint() string {
	if c.cnf.Source != sourceNetwork {
		return ""
	}

	return c.cnf.Endpoint
}

func failureKind(err error) string {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind.String()
	}

	return "unknown"
}

type Help struct {
	w   io.Writer
	err error
}

func (h *Help) Run() error {
	fmt.Fprintln(h.w, "run with --help to see usage")
	return h.err
}

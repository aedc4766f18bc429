package runner

import (
	"io"

	"github.com/tomocy/posts/domain"
)

type cli struct {
	w       io.Writer
	printer printer
}

func (c *cli) ShowPosts(ps domain.Posts) {
	c.printer.PrintPosts(c.w, ps)
}

func newPrinter(format string) printer {
	switch format {
	case formatColor:
		return new(color)
	default:
		return new(text)
	}
}

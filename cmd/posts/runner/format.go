package runner

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/buger/goterm"
	colorPkg "github.com/fatih/color"
	"github.com/tomocy/posts/domain"
)

const defaultWidth = 80

type text struct {
	printed sync.Once
}

func (t *text) PrintPosts(w io.Writer, ps domain.Posts) {
	for _, p := range ps {
		t.printed.Do(func() {
			t.printVerticalLine(w)
		})
		t.printPost(w, p)
		t.printVerticalLine(w)
	}
}

func (t *text) printVerticalLine(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", terminalWidth()))
}

func (t *text) printPost(w io.Writer, p domain.Post) {
	fmt.Fprintf(w, "(#%d) user %d\n%s\n%s\n", p.ID, p.UserID, p.Title, p.Body)
}

type color struct {
	printed, inited sync.Once
	white, cyan     *colorPkg.Color
	bold            *colorPkg.Color
}

func (c *color) PrintPosts(w io.Writer, ps domain.Posts) {
	for _, p := range ps {
		c.printed.Do(func() {
			c.printVerticalLine(w)
		})
		c.printPost(w, p)
		c.printVerticalLine(w)
	}
}

func (c *color) printVerticalLine(w io.Writer) {
	c.inited.Do(c.init)
	c.white.Fprintln(w, strings.Repeat("-", terminalWidth()))
}

func (c *color) printPost(w io.Writer, p domain.Post) {
	c.inited.Do(c.init)
	c.white.Fprint(w, "(")
	c.cyan.Fprintf(w, "#%d", p.ID)
	c.white.Fprintf(w, ") user %d\n", p.UserID)
	c.bold.Fprintln(w, p.Title)
	c.white.Fprintln(w, p.Body)
}

func (c *color) init() {
	c.white = colorPkg.New(colorPkg.FgWhite)
	c.cyan = colorPkg.New(colorPkg.FgCyan)
	c.bold = colorPkg.New(colorPkg.FgWhite, colorPkg.Bold)
}

func terminalWidth() int {
	if width := goterm.Width(); 0 < width {
		return width
	}

	return defaultWidth
}

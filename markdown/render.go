package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 100

var (
	mu        sync.Mutex
	renderers = map[int]*glamour.TermRenderer{}
	styleName = "" // empty = auto
)

// SetStyle selects a glamour standard style ("dark", "light"). Empty means
// detect from the terminal. Cached renderers are dropped.
func SetStyle(name string) {
	mu.Lock()
	defer mu.Unlock()
	styleName = name
	renderers = map[int]*glamour.TermRenderer{}
}

// Render converts markdown text to styled ANSI output at the default width.
func Render(md string) string {
	return RenderWidth(md, defaultWidth)
}

// RenderWidth converts markdown text to styled ANSI output wrapped at width.
// Falls back to raw text if rendering fails.
func RenderWidth(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r := rendererFor(width)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour pads with blank lines; trim for inline display.
	return strings.Trim(out, "\n")
}

func rendererFor(width int) *glamour.TermRenderer {
	if width <= 0 {
		width = defaultWidth
	}
	mu.Lock()
	defer mu.Unlock()
	if r, ok := renderers[width]; ok {
		return r
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if styleName != "" {
		opts = append(opts, glamour.WithStandardStyle(styleName))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	renderers[width] = r
	return r
}

// Package testutil renders components against a store in tests.
package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/gamefeed/gamefeed/frontend/internal/store"
	"github.com/gamefeed/gamefeed/shared/clock"
)

// Component is anything that renders itself from the store in ctx.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

type Options struct {
	// PreloadedState overrides slices of the default state. Ignored when
	// Store is set.
	PreloadedState store.PreloadedState
	// Store is used as is and is not closed by the harness.
	Store *store.Store
	// Context is the base render context, for instance one carrying a
	// CSRF token.
	Context context.Context
	// Clock drives scheduled actions of a store built by the harness.
	Clock clock.Clock
}

type Result struct {
	Store *store.Store
	// Ctx carries Store and is what the component was rendered with.
	Ctx  context.Context
	HTML string
	Doc  *html.Node
}

// RenderWithProviders renders ui inside a store provider. Stores built
// here are closed when the test ends.
func RenderWithProviders(t testing.TB, ui Component, opts Options) *Result {
	t.Helper()

	s := opts.Store
	if s == nil {
		var storeOpts []store.Option
		if opts.Clock != nil {
			storeOpts = append(storeOpts, store.WithClock(opts.Clock))
		}
		s = store.New(opts.PreloadedState.Resolve(), storeOpts...)
		t.Cleanup(s.Close)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	r := &Result{Store: s, Ctx: store.WithStore(ctx, s)}
	r.Rerender(t, ui)
	return r
}

// Rerender renders ui again against the current store state.
func (r *Result) Rerender(t testing.TB, ui Component) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, ui.Render(r.Ctx, &buf))
	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	r.HTML = buf.String()
	r.Doc = doc
}

// ByTestID returns the first element with the data-testid, or nil.
func (r *Result) ByTestID(id string) *html.Node {
	var found *html.Node
	walk(r.Doc, func(n *html.Node) bool {
		if v, ok := Attr(n, "data-testid"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// AllByTestID returns every element whose data-testid matches, in
// document order.
func (r *Result) AllByTestID(id string) []*html.Node {
	var out []*html.Node
	walk(r.Doc, func(n *html.Node) bool {
		if v, ok := Attr(n, "data-testid"); ok && v == id {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Children returns the element children of n with the given tag.
func Children(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the text content of n with whitespace collapsed.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
		return true
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// Package render turns document markdown into HTML for read-only views.
package render

import (
	"bytes"
	"fmt"
	"time"

	"wikiflow-server/internal/domain"

	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Renderer struct {
	md    goldmark.Markdown
	cache *gocache.Cache
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// Render converts a document's markdown content to HTML. Results are
// memoized per document revision; updatedAt in the key invalidates the
// entry whenever the document changes.
func (r *Renderer) Render(doc *domain.Document) (string, error) {
	key := fmt.Sprintf("%s:%d", doc.ID, doc.UpdatedAt.UnixNano())
	if html, found := r.cache.Get(key); found {
		return html.(string), nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(doc.Content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	html := buf.String()
	r.cache.Set(key, html, gocache.DefaultExpiration)
	return html, nil
}

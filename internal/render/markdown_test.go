package render

import (
	"strings"
	"testing"
	"time"

	"wikiflow-server/internal/domain"
)

func TestRenderer_RendersMarkdown(t *testing.T) {
	r := NewRenderer()
	doc := &domain.Document{
		ID:        "1",
		Content:   "# Heading\n\n- item one\n- item two",
		UpdatedAt: time.Now(),
	}

	html, err := r.Render(doc)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(html, "<h1") {
		t.Errorf("expected a heading in %q", html)
	}
	if !strings.Contains(html, "<li>item one</li>") {
		t.Errorf("expected list items in %q", html)
	}
}

func TestRenderer_InvalidatesOnUpdate(t *testing.T) {
	r := NewRenderer()
	doc := &domain.Document{ID: "1", Content: "first", UpdatedAt: time.Now()}

	before, _ := r.Render(doc)

	doc.Content = "second"
	doc.UpdatedAt = doc.UpdatedAt.Add(time.Second)

	after, err := r.Render(doc)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if before == after {
		t.Error("a changed updatedAt must bypass the cached render")
	}
	if !strings.Contains(after, "second") {
		t.Errorf("expected re-rendered content, got %q", after)
	}
}

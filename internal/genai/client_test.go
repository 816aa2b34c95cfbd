package genai

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"wikiflow-server/internal/config"
)

type fakeDoer struct {
	status  int
	body    string
	lastURL string
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.lastURL = req.URL.String()
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func newTestClient(doer *fakeDoer) *Client {
	return NewClient(config.GeminiConfig{
		APIKey:  "key",
		BaseURL: "https://example.invalid",
		Model:   "test-model",
	}, doer)
}

func TestClient_Configured(t *testing.T) {
	if NewClient(config.GeminiConfig{}, &fakeDoer{}).Configured() {
		t.Error("client without a key must report unconfigured")
	}
	if !newTestClient(&fakeDoer{}).Configured() {
		t.Error("client with a key must report configured")
	}
}

func TestClient_GenerateJoinsParts(t *testing.T) {
	doer := &fakeDoer{
		status: http.StatusOK,
		body:   `{"candidates":[{"content":{"parts":[{"text":"hello "},{"text":"world"}]}}]}`,
	}
	c := newTestClient(doer)

	text, err := c.Generate(context.Background(), "prompt", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "hello world" {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(doer.lastURL, "models/test-model:generateContent") {
		t.Errorf("url = %q", doer.lastURL)
	}
}

func TestClient_GenerateAPIError(t *testing.T) {
	c := newTestClient(&fakeDoer{status: http.StatusTooManyRequests, body: `{"error":"quota"}`})

	if _, err := c.Generate(context.Background(), "prompt", false); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestClient_GenerateEmptyCandidates(t *testing.T) {
	c := newTestClient(&fakeDoer{status: http.StatusOK, body: `{"candidates":[]}`})

	if _, err := c.Generate(context.Background(), "prompt", true); err == nil {
		t.Fatal("expected an error when the response has no candidates")
	}
}

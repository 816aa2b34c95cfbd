package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wikiflow-server/internal/domain"
	"wikiflow-server/internal/genai"

	"github.com/sirupsen/logrus"
)

// Fixed user-facing fallbacks. A missing credential and a remote failure are
// both expected conditions here, never errors to the caller.
const (
	summaryMissingKey = "API key missing"
	summaryFailed     = "AI generation failed."
	answerMissingKey  = "Set up a Gemini API key to use AI-powered answers."
	answerFailed      = "The AI service is temporarily unavailable. Please try again later."
	answerEmpty       = "No answer could be generated."
)

// Context budget per call: how much of each document the prompts carry.
const (
	metadataContentLimit = 5000
	corpusContentLimit   = 1000
)

// AssistantService is a stateless facade over the generative model. It never
// mutates a repository and never propagates a remote failure to the caller.
type AssistantService struct {
	client *genai.Client
	log    *logrus.Logger
}

func NewAssistantService(client *genai.Client, log *logrus.Logger) *AssistantService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AssistantService{
		client: client,
		log:    log,
	}
}

// SuggestMetadata asks the model for a short summary and tag suggestions for
// a document draft. Without a credential it short-circuits to a placeholder
// without touching the network.
func (s *AssistantService) SuggestMetadata(ctx context.Context, title, content string) *domain.DocMetadata {
	if !s.client.Configured() {
		return &domain.DocMetadata{Summary: summaryMissingKey, Tags: []string{}}
	}

	prompt := fmt.Sprintf(`Analyze the following document content.
1. Provide a concise summary (max 2 sentences).
2. Suggest up to 5 relevant tags (keywords).

Output JSON format:
{
  "summary": "string",
  "tags": ["tag1", "tag2"]
}

Title: %s
Content: %s`, title, truncate(content, metadataContentLimit))

	text, err := s.client.Generate(ctx, prompt, true)
	if err != nil {
		s.log.WithError(err).Warn("metadata suggestion failed")
		return &domain.DocMetadata{Summary: summaryFailed, Tags: []string{}}
	}

	var meta domain.DocMetadata
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &meta); err != nil {
		s.log.WithError(err).Warn("failed to parse metadata suggestion")
		return &domain.DocMetadata{Summary: summaryFailed, Tags: []string{}}
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	return &meta
}

// AnswerFromCorpus answers a question grounded in the supplied documents.
// Each document contributes a bounded content prefix so the corpus fits the
// model's context window.
func (s *AssistantService) AnswerFromCorpus(ctx context.Context, query string, docs []*domain.Document) string {
	if !s.client.Configured() {
		return answerMissingKey
	}

	var sb strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&sb, "---\nTitle: %s\nID: %s\nContent: %s...\n---\n", d.Title, d.ID, truncate(d.Content, corpusContentLimit))
	}

	prompt := fmt.Sprintf(`You are a helpful knowledge management assistant for a small company.
Use the provided context documents below to answer the user's question.
If the answer is not in the documents, state that you don't know based on the internal knowledge base.
Cite the document Title if you use information from it.

Context:
%s

User Question: %s`, sb.String(), query)

	text, err := s.client.Generate(ctx, prompt, false)
	if err != nil {
		s.log.WithError(err).Warn("knowledge base answer failed")
		return answerFailed
	}
	if strings.TrimSpace(text) == "" {
		return answerEmpty
	}

	return text
}

// stripCodeFence unwraps ```json ... ``` blocks some models emit even when
// asked for a JSON response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

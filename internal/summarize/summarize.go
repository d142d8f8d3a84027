// Package summarize produces the one-paragraph rationale attached to
// each deep-dive article, via the Anthropic API when configured and a
// local heuristic otherwise.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/joelkehle/mediawatch/internal/briefing"
)

const systemPrompt = "You are a technology-news analyst writing a daily executive briefing. For the article you are given, respond with a single plain-text paragraph of at most three sentences explaining why the story matters. No markdown, no preamble."

const (
	DefaultLLMQuota   = 3
	localSentenceCap  = 2
	localRationaleMax = 320
)

// Summarizer turns a scored article into a short rationale paragraph.
type Summarizer interface {
	Summarize(ctx context.Context, art briefing.ScoredArticle) (string, error)
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// AnthropicSummarizer calls the Messages API with bounded retries on
// transient transport failures.
type AnthropicSummarizer struct {
	messages AnthropicMessager
}

func NewAnthropicSummarizerFromEnv() (*AnthropicSummarizer, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicSummarizer{messages: newAnthropicClient(apiKey)}, nil
}

func (s *AnthropicSummarizer) Summarize(ctx context.Context, art briefing.ScoredArticle) (string, error) {
	prompt := buildPrompt(art)
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		text, err := s.callOnce(ctx, prompt)
		if err == nil {
			text = strings.TrimSpace(stripCodeFences(text))
			if text == "" {
				lastErr = errors.New("empty response")
				continue
			}
			return text, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == 3 {
			return "", fmt.Errorf("summarize transport failure: %w", err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoffDelay(attempt)):
		}
	}
	return "", fmt.Errorf("summarize failed after retries: %w", lastErr)
}

func (s *AnthropicSummarizer) callOnce(ctx context.Context, prompt string) (string, error) {
	resp, err := s.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   512,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

func buildPrompt(art briefing.ScoredArticle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", art.Title)
	fmt.Fprintf(&sb, "Source: %s\n", art.Source)
	if art.Topic != "" {
		fmt.Fprintf(&sb, "Topic: %s\n", art.Topic)
	}
	body := art.Body
	if len(body) > 4000 {
		body = body[:4000]
	}
	fmt.Fprintf(&sb, "\n%s\n", body)
	return sb.String()
}

// LocalSummarizer is the zero-cost fallback: the first sentences of the
// body, clipped to a fixed length.
type LocalSummarizer struct{}

func (LocalSummarizer) Summarize(_ context.Context, art briefing.ScoredArticle) (string, error) {
	text := strings.Join(strings.Fields(art.Body), " ")
	if text == "" {
		return fmt.Sprintf("%s (%s).", art.Title, art.Source), nil
	}
	sentences := splitSentences(text)
	if len(sentences) > localSentenceCap {
		sentences = sentences[:localSentenceCap]
	}
	out := strings.Join(sentences, " ")
	if len(out) > localRationaleMax {
		cut := out[:localRationaleMax]
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		out = cut + "..."
	}
	return out, nil
}

func splitSentences(text string) []string {
	parts := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' && text[i] != '!' && text[i] != '?' {
			continue
		}
		if i+1 < len(text) && text[i+1] != ' ' {
			continue
		}
		s := strings.TrimSpace(text[start : i+1])
		if s != "" {
			parts = append(parts, s)
		}
		start = i + 1
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// Budgeted rations the expensive summarizer: the first quota articles
// go to the primary, the rest (and any primary failure) fall back to
// the local summarizer.
type Budgeted struct {
	Primary  Summarizer
	Fallback Summarizer
	Quota    int

	used int
}

func NewBudgeted(primary Summarizer, quota int) *Budgeted {
	if quota < 0 {
		quota = DefaultLLMQuota
	}
	return &Budgeted{Primary: primary, Fallback: LocalSummarizer{}, Quota: quota}
}

func (b *Budgeted) Summarize(ctx context.Context, art briefing.ScoredArticle) (string, error) {
	if b.Primary != nil && b.used < b.Quota {
		b.used++
		text, err := b.Primary.Summarize(ctx, art)
		if err == nil {
			return text, nil
		}
	}
	return b.Fallback.Summarize(ctx, art)
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func isRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error")
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}

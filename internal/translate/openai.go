package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const (
	openaiBaseURL      = "https://api.openai.com/v1"
	openaiDefaultModel = "gpt-4o"

	openaiSystemPrompt = "You are a highly skilled translator specializing in translating " +
		"English subtitles to Traditional Chinese for Taiwanese audiences. " +
		"Ensure that all translated terminology complies with Taiwan's usage " +
		"and avoid any China-specific terminology."
)

func init() {
	Register("openai", func(opts Options) (Provider, error) {
		if opts.APIKey == "" {
			return nil, fmt.Errorf("openai: API key is required")
		}
		return newOpenAI(opts), nil
	})
}

// openaiProvider translates through the OpenAI chat-completions API using a
// numbered-list prompt, one quoted subtitle per line.
type openaiProvider struct {
	opts   Options
	client *http.Client
}

func newOpenAI(opts Options) *openaiProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = openaiBaseURL
	}
	if opts.Model == "" {
		opts.Model = openaiDefaultModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &openaiProvider{opts: opts, client: client}
}

func (p *openaiProvider) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate sends one batch and parses the numbered reply. A short reply is
// returned as-is; padding is the engine's job.
func (p *openaiProvider) Translate(ctx context.Context, batch []string) ([]string, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	reqBody := chatRequest{
		Model: p.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: openaiSystemPrompt},
			{Role: "user", Content: p.buildPrompt(batch)},
		},
		Temperature: p.opts.Temperature,
	}
	reqData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.opts.BaseURL+"/chat/completions", bytes.NewReader(reqData))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.opts.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("openai: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error (status %d): %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response")
	}

	return parseNumbered(cr.Choices[0].Message.Content), nil
}

// buildPrompt writes the batch as a numbered list of quoted lines and asks
// for the translations back in the same format.
func (p *openaiProvider) buildPrompt(batch []string) string {
	var b strings.Builder
	b.WriteString("Translate the following English subtitles to Traditional Chinese suitable for a Taiwanese audience. ")
	if p.opts.Context != "" {
		b.WriteString("The material is ")
		b.WriteString(p.opts.Context)
		b.WriteString(". ")
	}
	b.WriteString("Maintain the numbering and formatting as shown.\n\n")
	for i, text := range batch {
		fmt.Fprintf(&b, "%d. %q\n", i+1, text)
	}
	b.WriteString("\nProvide the translations in the same numbered format.\n\nTranslated Subtitles:\n")
	return b.String()
}

var numberedLineRe = regexp.MustCompile(`(?m)^\s*\d+\.\s*"(.*?)"`)

// parseNumbered extracts the quoted translations from a numbered reply.
func parseNumbered(response string) []string {
	matches := numberedLineRe.FindAllStringSubmatch(response, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

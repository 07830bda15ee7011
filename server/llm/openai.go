package llm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is the Groq-hosted model every decision is asked of.
	DefaultModel   = "llama3-70b-8192"
	DefaultBaseURL = "https://api.groq.com/openai/v1"
)

const (
	RoleUser   = openai.ChatMessageRoleUser
	RoleSystem = openai.ChatMessageRoleSystem
)

var ErrNoChoices = errors.New("no choices returned")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the one call the move handler needs; fakes implement it in tests.
type Completer interface {
	Complete(ctx context.Context, msgs []Message) (string, error)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient overrides the library's default client. Nil keeps the default.
	HTTPClient *http.Client
}

// Client talks to an OpenAI-compatible chat/completions API (Groq by default).
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	api   *openai.Client
	model string
}

func New(cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("API key missing: set GROQ_API")
	}
	oc := openai.DefaultConfig(key)
	oc.BaseURL = strings.TrimRight(coalesce(cfg.BaseURL, DefaultBaseURL), "/")
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	return &Client{
		api:   openai.NewClientWithConfig(oc),
		model: coalesce(cfg.Model, DefaultModel),
	}, nil
}

func (c *Client) Model() string { return c.model }

// Complete sends one chat completion with deterministic decoding and returns
// the top choice's content. There is no retry.
func (c *Client) Complete(ctx context.Context, msgs []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(msgs)),
		// A literal 0 is dropped by omitempty; this is the library's stand-in for temperature 0.
		Temperature: math.SmallestNonzeroFloat32,
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func coalesce(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return strings.TrimSpace(a)
	}
	return b
}

package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend implements ModelBackend using the official openai-go SDK
// (chat completions). Sampling follows the service's tuning: high
// temperature, short completions.
type OpenAIBackend struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAIBackend(cfg *BackendSettings) (*OpenAIBackend, error) {
	if cfg == nil {
		return nil, errors.New("backend config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIBackend{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAIBackend) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature:         openai.Float(0.9),
		MaxCompletionTokens: openai.Int(400),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

package summarize

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no chat model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient summarizes via a chat completion. The chat API has no
// min_length/max_length parameters, so the bounds are carried in the prompt.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAIClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following text in between %d and %d words. Reply with the summary only.\n\n%s",
		opts.MinLength, opts.MaxLength, text)

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	}
	if !opts.Sample {
		// The client drops a zero temperature during serialization, so use
		// the smallest value that survives it.
		req.Temperature = math.SmallestNonzeroFloat32
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai api: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	SummarizeArticle(ctx context.Context, title, body string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const summarizePrompt = `
You are summarizing macroeconomic news for an investor dashboard. The user will give you the title and body of an article. Respond with a two or three sentence summary focused on what the article implies for growth, inflation, or central bank liquidity. Do not editorialize or give investment advice.
`

func (h gptRepositoryHandler) SummarizeArticle(ctx context.Context, title, body string) (string, error) {
	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: summarizePrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: fmt.Sprintf("title: %s\n\n%s", title, body),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to summarize article: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

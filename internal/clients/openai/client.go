package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
	"github.com/focusbridge/focusbridge-backend/internal/utils"
)

// Client is the OpenAI API surface the services consume: plain chat text and
// one-shot image URLs. No streaming, no retries.
type Client interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
	GenerateImageURL(ctx context.Context, prompt string) (string, error)
}

type client struct {
	log        *logger.Logger
	api        openai.Client
	chatModel  string
	maxTokens  int
	imageModel string
	imageSize  string
}

func NewClient(log *logger.Logger) (Client, error) {
	serviceLog := log.With("client", "OpenAIClient")

	apiKey := strings.TrimSpace(utils.GetEnv("OPENAI_API_KEY", "", log))
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(utils.GetEnv("OPENAI_BASE_URL", "", log)); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	chatModel := utils.GetEnv("OPENAI_CHAT_MODEL", "gpt-4", log)
	maxTokens := utils.GetEnvAsInt("OPENAI_MAX_TOKENS", 2000, log)
	imageModel := utils.GetEnv("OPENAI_IMAGE_MODEL", "dall-e-3", log)
	imageSize := utils.GetEnv("OPENAI_IMAGE_SIZE", "1024x1024", log)

	return &client{
		log:        serviceLog,
		api:        openai.NewClient(opts...),
		chatModel:  chatModel,
		maxTokens:  maxTokens,
		imageModel: imageModel,
		imageSize:  imageSize,
	}, nil
}

func (c *client) GenerateText(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *client) GenerateImageURL(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(c.imageModel),
		Prompt:         prompt,
		Size:           openai.ImageGenerateParamsSize(c.imageSize),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
		N:              openai.Int(1),
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image generation: no url in response")
	}
	return resp.Data[0].URL, nil
}

package generator

import (
	"context"
	"fmt"

	"github.com/Luckywi/EcoLyon/pkg/domain"

	"google.golang.org/genai"
)

// genaiImageModel は公式 SDK クライアントを ImageModel に適合させる薄いラッパーです。
type genaiImageModel struct {
	client *genai.Client
}

// NewImageModel は Gemini API バックエンドのクライアントを初期化します。
func NewImageModel(ctx context.Context, apiKey string) (ImageModel, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &genaiImageModel{client: client}, nil
}

func (m *genaiImageModel) GenerateImage(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.client.Models.GenerateContent(ctx, model, contents, config)
}

package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Luckywi/EcoLyon/pkg/domain"

	"google.golang.org/genai"
)

// GeminiVariantGenerator は合成済みプロンプトと参照画像を Gemini 画像モデルへ
// 橋渡しするアダプター層です。応答はここで必ず正規化され、
// 「画像バイト列 + MIMEタイプ」か型付きエラーのどちらかになります。
type GeminiVariantGenerator struct {
	model     ImageModel
	modelName string
}

// NewGeminiVariantGenerator は依存関係を注入して初期化します。
func NewGeminiVariantGenerator(model ImageModel, modelName string) (*GeminiVariantGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("model (ImageModel) is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("modelName is required")
	}

	return &GeminiVariantGenerator{
		model:     model,
		modelName: modelName,
	}, nil
}

// GenerateVariant はドメインのリクエストを Gemini API の形式に変換して実行します。
func (g *GeminiVariantGenerator) GenerateVariant(ctx context.Context, req domain.VariantRequest) (*domain.VariantResult, error) {
	refPart, err := toImagePart(req.Reference)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: req.Prompt}, refPart}},
	}

	// 元アプリと同じ要求形状: IMAGE モダリティ + アスペクト比 + 解像度
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   req.ImageSize,
		},
	}

	resp, err := g.model.GenerateImage(ctx, g.modelName, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	return parseToResult(resp)
}

// toImagePart はバイト列を genai.Part (InlineData) に変換します。
func toImagePart(data []byte) (*genai.Part, error) {
	if len(data) == 0 {
		return nil, domain.ErrMissingReference
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, mimeType)
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
}

// parseToResult は Gemini のレスポンスを解析して正規化します。
// 最初の候補 (Candidate) のみを利用します。
func parseToResult(resp *genai.GenerateContentResponse) (*domain.VariantResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.VariantResult{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w (finish_reason: %s)", ErrNoImageData, candidate.FinishReason)
	}
	return nil, ErrNoImageData
}

package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/Luckywi/EcoLyon/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiVariantGenerator(t *testing.T) {
	t.Run("model が nil ならエラーなのだ", func(t *testing.T) {
		_, err := NewGeminiVariantGenerator(nil, "gemini-3-pro-image-preview")
		assert.Error(t, err)
	})

	t.Run("modelName が空ならエラーなのだ", func(t *testing.T) {
		_, err := NewGeminiVariantGenerator(&mockImageModel{}, "")
		assert.Error(t, err)
	})
}

func TestGeminiVariantGenerator_GenerateVariant(t *testing.T) {
	ctx := context.Background()

	baseRequest := func() domain.VariantRequest {
		return domain.VariantRequest{
			Prompt:      "PREFIX: golden hour. GUARD.",
			Reference:   pngHeader,
			AspectRatio: "1:1",
			ImageSize:   "2K",
		}
	}

	t.Run("成功時は画像バイト列とMIMEタイプに正規化されるのだ", func(t *testing.T) {
		model := &mockImageModel{resp: inlineImageResponse("image/png", []byte("generated-bytes"))}
		gen, err := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")
		require.NoError(t, err)

		result, err := gen.GenerateVariant(ctx, baseRequest())

		require.NoError(t, err)
		assert.Equal(t, []byte("generated-bytes"), result.Data)
		assert.Equal(t, "image/png", result.MimeType)
	})

	t.Run("リクエスト形状: IMAGEモダリティ + アスペクト比 + 解像度なのだ", func(t *testing.T) {
		model := &mockImageModel{resp: inlineImageResponse("image/png", []byte("x"))}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		req := baseRequest()
		req.AspectRatio = "16:9"
		_, err := gen.GenerateVariant(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "gemini-3-pro-image-preview", model.lastModel)
		require.NotNil(t, model.lastConfig)
		assert.Equal(t, []string{"IMAGE"}, model.lastConfig.ResponseModalities)
		require.NotNil(t, model.lastConfig.ImageConfig)
		assert.Equal(t, "16:9", model.lastConfig.ImageConfig.AspectRatio)
		assert.Equal(t, "2K", model.lastConfig.ImageConfig.ImageSize)

		// パーツ構成: テキストプロンプト + 参照画像の InlineData
		require.Len(t, model.lastParts, 2)
		assert.Equal(t, req.Prompt, model.lastParts[0].Text)
		require.NotNil(t, model.lastParts[1].InlineData)
		assert.Equal(t, "image/png", model.lastParts[1].InlineData.MIMEType)
	})

	t.Run("参照画像が空なら API を呼ばずに ErrMissingReference なのだ", func(t *testing.T) {
		model := &mockImageModel{}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		req := baseRequest()
		req.Reference = nil
		_, err := gen.GenerateVariant(ctx, req)

		assert.ErrorIs(t, err, domain.ErrMissingReference)
		assert.Zero(t, model.called, "API should not be called without a reference image")
	})

	t.Run("画像でないバイト列は ErrNotAnImage なのだ", func(t *testing.T) {
		model := &mockImageModel{}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		req := baseRequest()
		req.Reference = []byte("this is plain text, not an image")
		_, err := gen.GenerateVariant(ctx, req)

		assert.ErrorIs(t, err, ErrNotAnImage)
		assert.Zero(t, model.called)
	})

	t.Run("通信エラーはラップして伝播するのだ", func(t *testing.T) {
		apiErr := errors.New("429 rate limit exceeded")
		model := &mockImageModel{err: apiErr}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		_, err := gen.GenerateVariant(ctx, baseRequest())

		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("画像パーツなしの応答は ErrNoImageData なのだ", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: "sorry, text only"}},
				},
			}},
		}
		model := &mockImageModel{resp: resp}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		_, err := gen.GenerateVariant(ctx, baseRequest())

		assert.ErrorIs(t, err, ErrNoImageData)
	})

	t.Run("安全フィルターによるブロックも ErrNoImageData に正規化されるのだ", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
			}},
		}
		model := &mockImageModel{resp: resp}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		_, err := gen.GenerateVariant(ctx, baseRequest())

		require.ErrorIs(t, err, ErrNoImageData)
		assert.Contains(t, err.Error(), "finish_reason")
	})

	t.Run("候補が1つもない応答はエラーなのだ", func(t *testing.T) {
		model := &mockImageModel{resp: &genai.GenerateContentResponse{}}
		gen, _ := NewGeminiVariantGenerator(model, "gemini-3-pro-image-preview")

		_, err := gen.GenerateVariant(ctx, baseRequest())
		assert.Error(t, err)
	})
}

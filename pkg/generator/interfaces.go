package generator

import (
	"context"
	"time"

	"github.com/Luckywi/EcoLyon/pkg/domain"

	"google.golang.org/genai"
)

// VariantGenerator はディスパッチ層が利用する生成窓口です。
// 戻り値は正規化済みの画像バイト列か型付きエラーのどちらかで、
// 呼び出し側がレスポンス形状で分岐することはありません。
type VariantGenerator interface {
	GenerateVariant(ctx context.Context, req domain.VariantRequest) (*domain.VariantResult, error)
}

// ImageModel は Gemini SDK の通信面を抽象化するインターフェースです。
type ImageModel interface {
	// GenerateImage は指定モデルで画像生成リクエストを実行し、生のレスポンスを返します。
	GenerateImage(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ReferenceCacher は取得済み参照画像をキャッシュするためのインターフェースです。
type ReferenceCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

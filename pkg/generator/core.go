package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shouni/gemini-image-kit/imgutil"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// VariantCore は参照画像の取得と前処理を担う基盤コンポーネントです。
// ローカルパスと gs:// は remoteio、http(s) は httpkit を経由します。
type VariantCore struct {
	reader     remoteio.InputReader
	httpClient httpkit.HTTPClient
	cache      ReferenceCacher
	expiration time.Duration
}

// NewVariantCore は依存関係を注入して VariantCore を初期化します。
func NewVariantCore(reader remoteio.InputReader, httpClient httpkit.HTTPClient, cache ReferenceCacher, cacheTTL time.Duration) (*VariantCore, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &VariantCore{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// FetchReference は参照画像を取得し、送信用に前処理したバイト列を返します。
// バッチ実行では1回だけ呼ばれ、結果は全タスクで読み取り専用共有されます。
func (c *VariantCore) FetchReference(ctx context.Context, uri string) ([]byte, error) {
	cacheKey := cacheKeyReference + uri
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKey); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
		}
	}

	data, err := c.fetchReferenceData(ctx, uri)
	if err != nil {
		return nil, err
	}

	finalData := data
	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(bytes.NewReader(data), ImageCompressionQuality); err == nil {
			finalData = compressed
		}
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, finalData, c.expiration)
	}
	return finalData, nil
}

func (c *VariantCore) fetchReferenceData(ctx context.Context, uri string) ([]byte, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		if safe, err := IsSafeURL(uri); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		return c.httpClient.FetchBytes(ctx, uri)
	}

	// ローカルパスと gs:// はどちらも reader が解決する
	rc, err := c.reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("参照画像 '%s' を開けませんでした: %w", uri, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

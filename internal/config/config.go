package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultImageSize    = "2K"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultParallel     = 4
	DefaultRateInterval = 2 * time.Second
	DefaultCacheTTL     = 10 * time.Minute
)

// Config はアプリケーション全体の環境設定（APIキーやモデル設定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiImageModel string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	Scene        string // --scene: シーンファミリー (incity / lyon)
	ReferenceURI string // --reference: 参照画像（ローカル / gs:// / http(s)://）

	// 生成結果の出力設定
	OutputDir string // --output-dir: 空ならシーン既定のディレクトリ

	// AI挙動設定
	ImageModel string // --image-model: 画像生成用のGeminiモデル
	ImageSize  string // --image-size: 出力解像度 (1K / 2K / 4K)

	// 実行制御
	Parallel     int           // --parallel: 同時実行するタスク数の上限
	RateInterval time.Duration // --rate-interval: APIコールの最小間隔
	HTTPTimeout  time.Duration // --http-timeout
}

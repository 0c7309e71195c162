package cmd

import (
	"fmt"
	"os"

	"github.com/Luckywi/EcoLyon/internal/config"
	"github.com/Luckywi/EcoLyon/pkg/catalog"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Scene, "scene", "s", catalog.SceneIncity, "シーンファミリー（incity / lyon）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ReferenceURI, "reference", "r", "", "参照画像のパス（ローカル / gs://... / https://...）なのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "保存先ディレクトリ（空ならシーン既定、gs://... も可）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "使用する Gemini 画像モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageSize, "image-size", config.DefaultImageSize, "出力解像度（1K / 2K / 4K）なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 実行制御 ---
	rootCmd.PersistentFlags().IntVarP(&opts.Parallel, "parallel", "p", config.DefaultParallel, "同時に実行するタスク数の上限なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", config.DefaultRateInterval, "APIコールの最小間隔（流量制限）なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// loadConfig は環境設定とフラグ値をマージして返す共通ヘルパーなのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.Options = opts
	if opts.ImageModel != "" {
		cfg.GeminiImageModel = opts.ImageModel
	}
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ecolyon-gen",
		addAppFlags,
		preRunAppE,
		generateCmd,
		batchCmd,
		listCmd,
	)
}

package builder

import (
	"github.com/Luckywi/EcoLyon/internal/config"
	"github.com/Luckywi/EcoLyon/pkg/generator"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config          // 環境変数から読み込まれたグローバルな設定（APIキー、モデル名など）
	Options config.GenerateOptions  // コマンドラインから渡された実行時の設定
	Core    *generator.VariantCore  // 参照画像の取得・前処理を担う基盤
	Reader  remoteio.InputReader    // 参照画像の読み込みに使用する入力元
	Writer  remoteio.OutputWriter   // gs:// 出力に使用する出力先
	Model   generator.ImageModel    // Geminiの通信に使う共通クライアント
	http    httpkit.HTTPClient // 外部URL取得に使う共通クライアント
}

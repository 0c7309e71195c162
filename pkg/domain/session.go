package domain

import "errors"

var (
	// ErrMissingReference は参照画像が未指定のまま実行された場合の前提条件エラーです。
	ErrMissingReference = errors.New("参照画像が指定されていません")
	// ErrMissingAPIKey は認証情報が未設定のまま実行された場合の前提条件エラーです。
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY が設定されていません")
)

// Session は1回の実行に必要な設定一式です。
// グローバル変数ではなく明示的に受け渡すことで、テストで複数セッションを並べられます。
type Session struct {
	APIKey       string
	ReferenceURI string // ローカルパス / gs:// / http(s)://
	OutputDir    string // 空ならシーン既定の出力ディレクトリ
}

// Validate はディスパッチ前の前提条件チェックです。
// ここで失敗した場合、生成APIへの呼び出しは一切発生しません。
func (s Session) Validate() error {
	if s.ReferenceURI == "" {
		return ErrMissingReference
	}
	if s.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

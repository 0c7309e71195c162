package publisher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalWriter はカレントディレクトリ配下へのフラットなファイル書き込みです。
// 出力ディレクトリが無ければ作成し、既存ファイルは上書きします。
type LocalWriter struct{}

// Write は io.Reader の内容を path へ書き込みます。mimeType はローカルでは使いません。
func (LocalWriter) Write(ctx context.Context, path string, data io.Reader, mimeType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("出力ディレクトリ '%s' を作成できませんでした: %w", dir, err)
		}
	}

	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("ファイル '%s' の書き込みに失敗しました: %w", path, err)
	}
	return nil
}

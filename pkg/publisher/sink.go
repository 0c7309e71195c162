// Package publisher は生成されたバリアント画像の保存先を管理します。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// OutputWriter はデータを外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter と同一シグネチャで、ローカル実装と差し替え可能です。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, mimeType string) error
}

// Sink は1タスク分の生成結果を出力ディレクトリへ永続化します。
// 同名ファイルは黙って上書きします（ウィジェット資産は常に最新版だけを保持する）。
type Sink struct {
	writer  OutputWriter
	baseDir string // 保存先ディレクトリ (例: "output_incity" or "gs://bucket/widgets")
}

// NewSink は依存関係を注入して Sink を初期化します。
func NewSink(writer OutputWriter, baseDir string) (*Sink, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer is required")
	}
	if baseDir == "" {
		return nil, fmt.Errorf("baseDir is required")
	}
	return &Sink{writer: writer, baseDir: baseDir}, nil
}

// Save は画像データを保存し、その保存先パスを返します。
func (s *Sink) Save(ctx context.Context, fileName string, data []byte, mimeType string) (string, error) {
	fullPath, err := ResolveOutputPath(s.baseDir, fileName)
	if err != nil {
		return "", err
	}
	if err := s.writer.Write(ctx, fullPath, bytes.NewReader(data), mimeType); err != nil {
		return "", fmt.Errorf("sink: '%s' の保存に失敗しました: %w", fullPath, err)
	}
	return fullPath, nil
}

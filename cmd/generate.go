package cmd

import (
	"log/slog"

	"github.com/Luckywi/EcoLyon/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、カタログのタスクIDを指定して個別にバリアントを生成するサブコマンドなのだ。
var generateCmd = &cobra.Command{
	Use:   "generate <task-id>...",
	Short: "指定したタスクIDのバリアント画像を生成するのだ。",
	Long: `カタログに登録されたタスクIDを1つ以上指定して、参照画像のバリアントを生成・保存するのだ。
利用可能なIDは 'ecolyon-gen list' で確認できるのだ。`,
	Args: cobra.MinimumNArgs(1),
	RunE: generateCommand,
}

// generateCommand は、generate サブコマンドの実行ロジック本体なのだ。
func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	slog.Info("個別生成モードを起動するのだ！",
		"scene", cfg.Options.Scene,
		"tasks", args,
		"image_model", cfg.GeminiImageModel)

	return pipeline.ExecuteTasks(ctx, cfg, args)
}

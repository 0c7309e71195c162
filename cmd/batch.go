package cmd

import (
	"log/slog"

	"github.com/Luckywi/EcoLyon/internal/pipeline"
	"github.com/Luckywi/EcoLyon/pkg/catalog"

	"github.com/spf13/cobra"
)

// batchCmd は、グループ単位の一括生成を行うサブコマンドなのだ。
// 元アプリの「Météo JOUR (7)」「TOUT (29)」ボタンに対応するのだ。
var batchCmd = &cobra.Command{
	Use:   "batch [group]",
	Short: "グループ内の全タスクを一括生成するのだ。",
	Long: `カタログのグループ名を指定して、そのグループの全タスクを展開・一括ディスパッチするのだ。
グループ名を省略（または 'all' を指定）すると、シーン内の全バリアントを生成するのだ。`,
	Args: cobra.MaximumNArgs(1),
	RunE: batchCommand,
}

// batchCommand は、batch サブコマンドの実行ロジック本体なのだ。
func batchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	group := catalog.GroupAll
	if len(args) > 0 {
		group = args[0]
	}

	slog.Info("バッチ生成モードを起動するのだ！",
		"scene", cfg.Options.Scene,
		"group", group,
		"image_model", cfg.GeminiImageModel)

	return pipeline.ExecuteGroup(ctx, cfg, group)
}

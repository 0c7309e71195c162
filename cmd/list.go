package cmd

import (
	"fmt"

	"github.com/Luckywi/EcoLyon/pkg/catalog"

	"github.com/spf13/cobra"
)

// listCmd は、カタログの内容（シーン・グループ・タスク）を一覧表示するサブコマンドです。
// API を一切呼ばない読み取り専用コマンドなので、API キーなしでも動作します。
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "利用可能なシーンとタスクの一覧を表示するのだ。",
	Long:  `カタログに登録された全シーン・グループ・タスクの ID と出力ファイル名を一覧表示するのだ。`,
	RunE:  listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, scene := range catalog.Scenes() {
		fmt.Fprintf(out, "シーン: %s (%s)  aspect=%s  output=%s\n",
			scene.Name, scene.Label, scene.AspectRatio, scene.OutputDir)

		for _, group := range scene.Groups {
			fmt.Fprintf(out, "  グループ: %s (%s)  %d件\n",
				group.Name, group.Label, len(group.Tasks))

			for _, task := range group.Tasks {
				fmt.Fprintf(out, "    %-28s -> %s\n", task.ID, task.Filename)
			}
		}
		fmt.Fprintln(out)
	}

	return nil
}

// Package prompts はシーン保存テンプレートとタスク断片から最終プロンプトを組み立てます。
package prompts

import (
	"strings"

	"github.com/Luckywi/EcoLyon/pkg/domain"
)

// Compose は (テンプレート, 断片) の純関数として最終指示文字列を構築します。
// 生成プロンプトは必ずシーンの接頭辞で始まり、保存ガードを末尾に含みます。
// 被写体の形状・カメラアングル・画風を固定するのはこのガードだけなので、
// ここを通らないプロンプトを外部サービスへ送ってはいけません。
func Compose(scene domain.Scene, task domain.Task) string {
	var sb strings.Builder
	sb.Grow(len(scene.PromptPrefix) + len(task.Fragment) + len(scene.PromptGuard) + 2)
	sb.WriteString(scene.PromptPrefix)
	sb.WriteString(task.Fragment)
	sb.WriteString(". ")
	sb.WriteString(scene.PromptGuard)
	return sb.String()
}

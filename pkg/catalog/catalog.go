// Package catalog はウィジェット用バリアントの静的カタログです。
// シーンファミリーごとに、タスクID → (出力ファイル名, プロンプト断片, ラベル) の
// 固定マッピングをグループ単位で宣言します。内容はプロセス起動時に確定し、以後不変です。
package catalog

import (
	"fmt"

	"github.com/Luckywi/EcoLyon/pkg/domain"
)

// SceneIncity / SceneLyon はシーンファミリー名です。
const (
	SceneIncity = "incity"
	SceneLyon   = "lyon"
)

// GroupAll は「シーン内の全タスク」を指す疑似グループ名です。
const GroupAll = "all"

// Scenes は宣言順の全シーンを返します。
func Scenes() []domain.Scene {
	return []domain.Scene{incityScene, lyonScene}
}

// Scene は名前でシーンを検索します。未知の名前はユーザー入力なのでエラーで返します。
func Scene(name string) (domain.Scene, error) {
	for _, s := range Scenes() {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Scene{}, fmt.Errorf("未知のシーンです: '%s'（incity / lyon）", name)
}

// ExpandGroup はグループ名をタスクリストへ展開します。
// GroupAll（または空文字）はシーン内の全タスクを宣言順で返します。
func ExpandGroup(scene domain.Scene, group string) ([]domain.Task, error) {
	if group == "" || group == GroupAll {
		return scene.AllTasks(), nil
	}
	g, err := scene.Group(group)
	if err != nil {
		return nil, err
	}
	return g.Tasks, nil
}

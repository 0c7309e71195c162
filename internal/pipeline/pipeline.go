package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Luckywi/EcoLyon/internal/builder"
	"github.com/Luckywi/EcoLyon/internal/config"
	"github.com/Luckywi/EcoLyon/pkg/catalog"
	"github.com/Luckywi/EcoLyon/pkg/domain"
)

// ExecuteTasks は、指定されたタスクIDの列を解決してディスパッチするのだ。
// 未知のIDはディスパッチ開始前に（1件も生成せずに）エラーで返すのだ。
func ExecuteTasks(ctx context.Context, cfg *config.Config, ids []string) error {
	scene, err := catalog.Scene(cfg.Options.Scene)
	if err != nil {
		return err
	}

	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		task, err := scene.Task(id)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
	}

	return execute(ctx, cfg, scene, tasks)
}

// ExecuteGroup はグループ名をタスクリストへ展開してディスパッチするのだ。
// グループ名が空（または "all"）ならシーン内の全タスクを対象にするのだ。
func ExecuteGroup(ctx context.Context, cfg *config.Config, group string) error {
	scene, err := catalog.Scene(cfg.Options.Scene)
	if err != nil {
		return err
	}

	tasks, err := catalog.ExpandGroup(scene, group)
	if err != nil {
		return err
	}

	slog.Info("バッチ生成を起動するのだ！", "scene", scene.Name, "group", group, "tasks", len(tasks))
	return execute(ctx, cfg, scene, tasks)
}

// execute は共通の実行経路です: 前提条件 → 参照画像取得 → ディスパッチ。
// タスク単位の失敗はログとサマリーに現れるだけで、終了コードには影響しません。
func execute(ctx context.Context, cfg *config.Config, scene domain.Scene, tasks []domain.Task) error {
	sess := domain.Session{
		APIKey:       cfg.GeminiAPIKey,
		ReferenceURI: cfg.Options.ReferenceURI,
		OutputDir:    cfg.Options.OutputDir,
	}
	// ここで弾けばアダプター呼び出しはゼロ件のまま終わる
	if err := sess.Validate(); err != nil {
		return err
	}

	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	reference, err := appCtx.Core.FetchReference(ctx, sess.ReferenceURI)
	if err != nil {
		return fmt.Errorf("参照画像の読み込みに失敗しました: %w", err)
	}

	dispatcher, err := builder.BuildDispatcher(appCtx, scene)
	if err != nil {
		return err
	}

	outcomes, err := dispatcher.Dispatch(ctx, scene, reference, cfg.Options.ImageSize, tasks)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		if o.Err != nil {
			slog.Warn("未生成のまま終了したタスクがあるのだ", "task", o.Task.ID, "file", o.Task.Filename)
		}
	}
	return nil
}

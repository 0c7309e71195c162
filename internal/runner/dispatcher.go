package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/Luckywi/EcoLyon/pkg/domain"
	"github.com/Luckywi/EcoLyon/pkg/generator"
	"github.com/Luckywi/EcoLyon/pkg/prompts"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Saver は生成結果の保存先です。
type Saver interface {
	Save(ctx context.Context, fileName string, data []byte, mimeType string) (string, error)
}

// VariantDispatcher は、タスク列を上限付きワーカープールで並列ディスパッチする実体なのだ。
// タスク同士は通信も同期もせず、共有するのは読み取り専用の参照画像だけなのだ。
type VariantDispatcher struct {
	generator generator.VariantGenerator
	sink      Saver
	limiter   *rate.Limiter
	parallel  int
}

// NewVariantDispatcher は、VariantDispatcherの新しいインスタンスを生成して返す。
func NewVariantDispatcher(gen generator.VariantGenerator, sink Saver, limiter *rate.Limiter, parallel int) *VariantDispatcher {
	if parallel < 1 {
		parallel = 1
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &VariantDispatcher{
		generator: gen,
		sink:      sink,
		limiter:   limiter,
		parallel:  parallel,
	}
}

// Dispatch はタスクごとに (プロンプト合成 → 生成 → 保存) の直線パイプラインを実行するのだ。
// 参照画像が無い場合は1件もディスパッチせずに前提条件エラーを返すのだ。
// タスク単位の失敗はそのタスクの Outcome とログ行に留まり、兄弟タスクには伝播しない。
func (d *VariantDispatcher) Dispatch(ctx context.Context, scene domain.Scene, reference []byte, imageSize string, tasks []domain.Task) ([]domain.TaskOutcome, error) {
	if len(reference) == 0 {
		return nil, domain.ErrMissingReference
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	outcomes := make([]domain.TaskOutcome, len(tasks))

	// 失敗で兄弟をキャンセルさせないため、WithContext は使わないのだ
	var eg errgroup.Group
	eg.SetLimit(d.parallel)

	slog.Info("並列バリアント生成を開始するのだ", "scene", scene.Name, "count", len(tasks), "parallel", d.parallel)

	for i, task := range tasks {
		i, task := i, task

		eg.Go(func() error {
			outcomes[i] = d.runTask(ctx, scene, reference, imageSize, task)
			return nil
		})
	}

	// すべての並列処理が完了するのを待つのだ
	_ = eg.Wait()

	ok := 0
	for _, o := range outcomes {
		if o.Err == nil {
			ok++
		}
	}
	slog.Info("バッチ完了", "scene", scene.Name, "ok", ok, "failed", len(tasks)-ok)

	return outcomes, nil
}

// runTask は1タスク分の直線パイプラインです。すべての失敗はここで Outcome に変換されます。
func (d *VariantDispatcher) runTask(ctx context.Context, scene domain.Scene, reference []byte, imageSize string, task domain.Task) domain.TaskOutcome {
	if err := d.limiter.Wait(ctx); err != nil {
		return domain.TaskOutcome{Task: task, Err: err}
	}

	prompt := prompts.Compose(scene, task)

	logger := slog.With("file", task.Filename)
	logger.Info("バリアントを生成中...", "task", task.ID)

	startTime := time.Now()
	resp, err := d.generator.GenerateVariant(ctx, domain.VariantRequest{
		Prompt:      prompt,
		Reference:   reference,
		AspectRatio: scene.AspectRatio,
		ImageSize:   imageSize,
	})
	if err != nil {
		logger.Error("バリアント生成に失敗したのだ", "error", err)
		return domain.TaskOutcome{Task: task, Err: err}
	}

	path, err := d.sink.Save(ctx, task.Filename, resp.Data, resp.MimeType)
	if err != nil {
		logger.Error("生成結果の保存に失敗したのだ", "error", err)
		return domain.TaskOutcome{Task: task, Err: err}
	}

	logger.Info("OK", "path", path, "duration", time.Since(startTime).Round(time.Millisecond))
	return domain.TaskOutcome{Task: task, Path: path}
}

package runner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Luckywi/EcoLyon/pkg/domain"
	"github.com/Luckywi/EcoLyon/pkg/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGenerator はタスクIDごとに成功/失敗を切り替えられる生成器です。
// プロンプト断片からタスクIDを割り出して応答を選びます。
type mockGenerator struct {
	mu       sync.Mutex
	requests []domain.VariantRequest
	results  map[string][]byte // fragment substring -> image bytes
	failures map[string]error  // fragment substring -> error
}

func (m *mockGenerator) GenerateVariant(ctx context.Context, req domain.VariantRequest) (*domain.VariantResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	for key, err := range m.failures {
		if strings.Contains(req.Prompt, key) {
			return nil, err
		}
	}
	for key, data := range m.results {
		if strings.Contains(req.Prompt, key) {
			return &domain.VariantResult{Data: data, MimeType: "image/png"}, nil
		}
	}
	return &domain.VariantResult{Data: []byte("default"), MimeType: "image/png"}, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// mockSaver はファイル名ごとの保存内容を記録します。
type mockSaver struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func newMockSaver() *mockSaver {
	return &mockSaver{saved: make(map[string][]byte)}
}

func (m *mockSaver) Save(ctx context.Context, fileName string, data []byte, mimeType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[fileName] = data
	return "output_test/" + fileName, nil
}

func testDispatchScene() domain.Scene {
	return domain.Scene{
		Name:         "test-scene",
		AspectRatio:  "1:1",
		PromptPrefix: "PREFIX: ",
		PromptGuard:  "GUARD.",
		Groups: []domain.Group{{
			Name: "g",
			Tasks: []domain.Task{
				{ID: "task-a", Filename: "a.png", Fragment: "fragment-a"},
				{ID: "task-b", Filename: "b.png", Fragment: "fragment-b"},
				{ID: "task-c", Filename: "c.png", Fragment: "fragment-c"},
			},
		}},
	}
}

func TestVariantDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	reference := []byte("shared-reference-image")

	t.Run("全成功: タスク数ぶんの成果と保存が揃うのだ", func(t *testing.T) {
		gen := &mockGenerator{results: map[string][]byte{
			"fragment-a": []byte("img-a"),
			"fragment-b": []byte("img-b"),
			"fragment-c": []byte("img-c"),
		}}
		saver := newMockSaver()
		d := NewVariantDispatcher(gen, saver, nil, 2)

		scene := testDispatchScene()
		outcomes, err := d.Dispatch(ctx, scene, reference, "2K", scene.AllTasks())

		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		for _, o := range outcomes {
			assert.NoError(t, o.Err)
			assert.NotEmpty(t, o.Path)
		}
		assert.Equal(t, []byte("img-a"), saver.saved["a.png"])
		assert.Equal(t, []byte("img-b"), saver.saved["b.png"])
		assert.Equal(t, []byte("img-c"), saver.saved["c.png"])
	})

	t.Run("1件の失敗は兄弟タスクに伝播しないのだ", func(t *testing.T) {
		genErr := errors.New("503 model overloaded")
		gen := &mockGenerator{
			results: map[string][]byte{
				"fragment-a": []byte("img-a"),
				"fragment-c": []byte("img-c"),
			},
			failures: map[string]error{"fragment-b": genErr},
		}
		saver := newMockSaver()
		d := NewVariantDispatcher(gen, saver, nil, 3)

		scene := testDispatchScene()
		outcomes, err := d.Dispatch(ctx, scene, reference, "2K", scene.AllTasks())

		require.NoError(t, err, "per-task failures must not fail the batch")
		require.Len(t, outcomes, 3)

		// 成果はタスク順に並ぶ
		assert.NoError(t, outcomes[0].Err)
		assert.ErrorIs(t, outcomes[1].Err, genErr)
		assert.Empty(t, outcomes[1].Path)
		assert.NoError(t, outcomes[2].Err)

		// 失敗タスクの保存は発生せず、成功2件だけが書き込まれる
		assert.Len(t, saver.saved, 2)
		assert.Equal(t, []byte("img-a"), saver.saved["a.png"])
		assert.Equal(t, []byte("img-c"), saver.saved["c.png"])
	})

	t.Run("保存失敗もそのタスクの Outcome に閉じるのだ", func(t *testing.T) {
		gen := &mockGenerator{}
		saver := newMockSaver()
		saver.err = errors.New("permission denied")
		d := NewVariantDispatcher(gen, saver, nil, 1)

		scene := testDispatchScene()
		outcomes, err := d.Dispatch(ctx, scene, reference, "2K", scene.AllTasks())

		require.NoError(t, err)
		for _, o := range outcomes {
			assert.ErrorIs(t, o.Err, saver.err)
		}
		// 生成自体は全タスク分呼ばれている
		assert.Equal(t, 3, gen.callCount())
	})

	t.Run("参照画像なしでは1件もディスパッチしないのだ", func(t *testing.T) {
		gen := &mockGenerator{}
		d := NewVariantDispatcher(gen, newMockSaver(), nil, 2)

		scene := testDispatchScene()
		_, err := d.Dispatch(ctx, scene, nil, "2K", scene.AllTasks())

		assert.ErrorIs(t, err, domain.ErrMissingReference)
		assert.Zero(t, gen.callCount())
	})

	t.Run("空のタスクリストは即座に完了するのだ", func(t *testing.T) {
		gen := &mockGenerator{}
		d := NewVariantDispatcher(gen, newMockSaver(), nil, 2)

		outcomes, err := d.Dispatch(ctx, testDispatchScene(), reference, "2K", nil)

		require.NoError(t, err)
		assert.Nil(t, outcomes)
		assert.Zero(t, gen.callCount())
	})

	t.Run("各リクエストは合成済みプロンプトとシーン設定を運ぶのだ", func(t *testing.T) {
		gen := &mockGenerator{}
		d := NewVariantDispatcher(gen, newMockSaver(), nil, 1)

		scene := testDispatchScene()
		task := scene.Groups[0].Tasks[0]
		_, err := d.Dispatch(ctx, scene, reference, "2K", []domain.Task{task})
		require.NoError(t, err)

		require.Len(t, gen.requests, 1)
		req := gen.requests[0]
		assert.Equal(t, prompts.Compose(scene, task), req.Prompt)
		assert.Equal(t, reference, req.Reference)
		assert.Equal(t, "1:1", req.AspectRatio)
		assert.Equal(t, "2K", req.ImageSize)
	})
}

func TestNewVariantDispatcher(t *testing.T) {
	t.Run("parallel が 1 未満なら 1 に丸めるのだ", func(t *testing.T) {
		d := NewVariantDispatcher(&mockGenerator{}, newMockSaver(), nil, 0)
		assert.Equal(t, 1, d.parallel)
	})
}

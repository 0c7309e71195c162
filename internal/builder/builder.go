package builder

import (
	"context"
	"fmt"

	"github.com/Luckywi/EcoLyon/internal/config"
	"github.com/Luckywi/EcoLyon/internal/runner"
	"github.com/Luckywi/EcoLyon/pkg/domain"
	"github.com/Luckywi/EcoLyon/pkg/generator"
	"github.com/Luckywi/EcoLyon/pkg/publisher"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"golang.org/x/time/rate"
)

// NewAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)

	model, err := generator.NewImageModel(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	ioFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := ioFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := ioFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	cache := gocache.New(config.DefaultCacheTTL, 2*config.DefaultCacheTTL)
	core, err := generator.NewVariantCore(reader, httpClient, cache, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("VariantCoreの初期化に失敗しました: %w", err)
	}

	return &AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Core:    core,
		Reader:  reader,
		Writer:  writer,
		Model:   model,
		http:    httpClient,
	}, nil
}

// BuildDispatcher はシーンに応じたシンクとレート制御を組み立てて
// VariantDispatcher を構築します。
func BuildDispatcher(appCtx *AppContext, scene domain.Scene) (*runner.VariantDispatcher, error) {
	gen, err := generator.NewGeminiVariantGenerator(appCtx.Model, appCtx.Config.GeminiImageModel)
	if err != nil {
		return nil, fmt.Errorf("GeminiVariantGeneratorの初期化に失敗したのだ: %w", err)
	}

	outputDir := appCtx.Options.OutputDir
	if outputDir == "" {
		outputDir = scene.OutputDir
	}

	// gs:// は remoteio、ローカルは素のファイル書き込みなのだ
	var writer publisher.OutputWriter = publisher.LocalWriter{}
	if publisher.IsRemotePath(outputDir) {
		writer = appCtx.Writer
	}

	sink, err := publisher.NewSink(writer, outputDir)
	if err != nil {
		return nil, fmt.Errorf("Sinkの初期化に失敗しました: %w", err)
	}

	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(appCtx.Options.RateInterval), 2)

	return runner.NewVariantDispatcher(gen, sink, limiter, appCtx.Options.Parallel), nil
}

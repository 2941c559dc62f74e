// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/config"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/fileutil"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/interfaces"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/models"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/segment"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config   *config.Config
	logger   *config.DebugLogger
	splitter interfaces.Splitter
	fs       interfaces.FileSystem
	stdout   interfaces.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Splitter   interfaces.Splitter
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトの出力先を設定
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logger := config.NewDebugLoggerWithWriter(cfg.DebugMode, stdout)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのSplitterを設定
	var splitter interfaces.Splitter
	if opts.Splitter != nil {
		splitter = opts.Splitter
	} else {
		splitter = segment.New(fs, logger, stdout)
	}

	return &App{
		config:   cfg,
		logger:   logger,
		splitter: splitter,
		fs:       fs,
		stdout:   stdout,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// ファイルに触れる前にセグメント長を検査する
	if err := segment.ValidateSeconds(a.config.SegmentSeconds); err != nil {
		return err
	}

	if err := a.checkInput(); err != nil {
		return err
	}

	if a.config.DryRun {
		result, err := a.splitter.PlanFile(ctx, a.config.InputPath, a.config.OutputDir, a.config.SegmentSeconds)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSplit, err)
		}
		if result != nil {
			a.printPlan(result)
		}
		return nil
	}

	a.logger.Printf("%s を %v 秒ごとに分割して %s に保存します...\n", a.config.InputPath, a.config.SegmentSeconds, a.config.OutputDir)

	result, err := a.splitter.SplitAudio(ctx, a.config.InputPath, a.config.OutputDir, a.config.SegmentSeconds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSplit, err)
	}

	if result != nil {
		fmt.Fprintf(a.stdout, "\n%d 個のセグメントを保存しました\n", len(result.Segments))
	}
	return nil
}

// checkInput は入力ファイルが指定され、通常のファイルとして存在するか確認します
func (a *App) checkInput() error {
	if a.config.InputPath == "" {
		return ErrNoInputFile
	}
	info, err := a.fs.Stat(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInputNotFound, a.config.InputPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputIsDirectory, a.config.InputPath)
	}
	return nil
}

// printPlan はドライランの結果を表示します
func (a *App) printPlan(result *models.SplitResult) {
	plan := result.Plan
	fmt.Fprintf(a.stdout, "入力ファイル: %s\n", result.InputFile)
	fmt.Fprintf(a.stdout, "フォーマット: %s\n", plan.Format)
	fmt.Fprintf(a.stdout, "長さ: %.3f秒 (%dフレーム)\n", plan.DurationSeconds, plan.TotalFrames)
	fmt.Fprintf(a.stdout, "セグメント長: %v秒 (%dフレーム)\n", plan.SegmentSeconds, plan.FramesPerSegment)
	fmt.Fprintln(a.stdout, "----------------------------")
	fmt.Fprintf(a.stdout, "%-5s %12s %12s  %s\n", "番号", "開始", "フレーム数", "ファイル名")
	fmt.Fprintln(a.stdout, "----------------------------")
	for _, s := range result.Segments {
		fmt.Fprintf(a.stdout, "%-5d %12d %12d  %s\n", s.Index, s.StartFrame, s.Frames(), s.Path)
	}
	fmt.Fprintln(a.stdout, "----------------------------")
	fmt.Fprintf(a.stdout, "%d 個のセグメントを書き込みます（ドライラン）\n", len(result.Segments))
}

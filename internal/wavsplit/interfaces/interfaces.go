// Package interfaces はwavsplitコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"
	"io"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	Open(filename string) (io.ReadCloser, error)
	Create(filename string) (io.WriteCloser, error)
	MkdirAll(path string, perm uint32) error
	Stat(name string) (FileInfo, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
	Size() int64
}

// Splitter はWAVファイルをセグメントに分割するインターフェースです
type Splitter interface {
	SplitAudio(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error)
	PlanFile(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error)
}

// Writer は出力を書き込むインターフェース
type Writer interface {
	io.Writer
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}

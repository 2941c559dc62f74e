package fileutil

import (
	"io"
	"os"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open は読み込み用にファイルを開きます
func (fs *OSFileSystem) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

// Create は書き込み用にファイルを作成します。既存のファイルは上書きされます。
func (fs *OSFileSystem) Create(filename string) (io.WriteCloser, error) {
	return os.Create(filename)
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return &osFileInfo{info}, nil
}

// osFileInfo はos.FileInfoのラッパー
type osFileInfo struct {
	os.FileInfo
}

// Name はファイル名を返します
func (fi *osFileInfo) Name() string {
	return fi.FileInfo.Name()
}

// IsDir はディレクトリかどうかを返します
func (fi *osFileInfo) IsDir() bool {
	return fi.FileInfo.IsDir()
}

// Size はファイルサイズを返します
func (fi *osFileInfo) Size() int64 {
	return fi.FileInfo.Size()
}

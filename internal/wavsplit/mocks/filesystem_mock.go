// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool
	Error error // 全操作で返すエラー

	OpenError    error            // Open で返すエラー
	MkdirError   error            // MkdirAll で返すエラー
	CreateErrors map[string]error // パスごとに Create で返すエラー
	WriteErrors  map[string]error // パスごとに Write で返すエラー
	CloseErrors  map[string]error // パスごとに Close で返すエラー

	Created   []string // Create が呼ばれたパス（呼び出し順）
	OpenCount int      // 現在開いているファイル数
	MaxOpen   int      // 同時に開いていたファイル数の最大値
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:        make(map[string][]byte),
		Dirs:         make(map[string]bool),
		CreateErrors: make(map[string]error),
		WriteErrors:  make(map[string]error),
		CloseErrors:  make(map[string]error),
	}
}

// Open はファイルを読み込み用に開きます
func (fs *MockFileSystem) Open(filename string) (io.ReadCloser, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if fs.OpenError != nil {
		return nil, fs.OpenError
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	fs.opened()
	return &mockReadCloser{Reader: bytes.NewReader(data), fs: fs}, nil
}

// Create はファイルを書き込み用に作成します。内容は Close 時に Files へ反映されます。
func (fs *MockFileSystem) Create(filename string) (io.WriteCloser, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	fs.Created = append(fs.Created, filename)
	if err := fs.CreateErrors[filename]; err != nil {
		return nil, err
	}
	if !fs.Dirs[filepath.Dir(filename)] {
		return nil, errors.New("directory not found")
	}
	fs.opened()
	return &mockWriteCloser{
		fs:       fs,
		name:     filename,
		writeErr: fs.WriteErrors[filename],
		closeErr: fs.CloseErrors[filename],
	}, nil
}

// MkdirAll はディレクトリを作成します
func (fs *MockFileSystem) MkdirAll(path string, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	if fs.MkdirError != nil {
		return fs.MkdirError
	}
	if _, exists := fs.Files[path]; exists {
		return errors.New("not a directory")
	}
	for p := path; ; p = filepath.Dir(p) {
		fs.Dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

// Stat はファイル情報を取得します
func (fs *MockFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if data, exists := fs.Files[name]; exists {
		return &MockFileInfo{name: filepath.Base(name), isDir: false, size: int64(len(data))}, nil
	}
	if _, exists := fs.Dirs[name]; exists {
		return &MockFileInfo{name: filepath.Base(name), isDir: true}, nil
	}
	return nil, errors.New("file not found")
}

func (fs *MockFileSystem) opened() {
	fs.OpenCount++
	if fs.OpenCount > fs.MaxOpen {
		fs.MaxOpen = fs.OpenCount
	}
}

func (fs *MockFileSystem) closed() {
	fs.OpenCount--
}

type mockReadCloser struct {
	*bytes.Reader
	fs     *MockFileSystem
	closed bool
}

func (r *mockReadCloser) Close() error {
	if !r.closed {
		r.closed = true
		r.fs.closed()
	}
	return nil
}

type mockWriteCloser struct {
	fs       *MockFileSystem
	name     string
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (w *mockWriteCloser) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errors.New("write on closed file")
	}
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

func (w *mockWriteCloser) Close() error {
	if w.closed {
		return errors.New("file already closed")
	}
	w.closed = true
	w.fs.closed()
	// 実際のファイルと同様に、エラーがあっても書き込めた分は残る
	w.fs.Files[w.name] = w.buf.Bytes()
	return w.closeErr
}

// MockFileInfo はテスト用のFileInfo実装
type MockFileInfo struct {
	name  string
	isDir bool
	size  int64
}

// Name はファイル名を返します
func (fi *MockFileInfo) Name() string {
	return fi.name
}

// IsDir はディレクトリかどうかを返します
func (fi *MockFileInfo) IsDir() bool {
	return fi.isDir
}

// Size はファイルサイズを返します
func (fi *MockFileInfo) Size() int64 {
	return fi.size
}

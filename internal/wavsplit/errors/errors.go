// Package errors はカスタムエラータイプを提供します
package errors

import (
	"fmt"
)

// InputError は入力ファイル関連のエラー
type InputError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError は新しいInputErrorを作成します
func NewInputError(op, path string, err error) *InputError {
	return &InputError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// SegmentError はセグメント書き込み時のエラー
type SegmentError struct {
	Index int    // セグメント番号（1始まり）
	Path  string // 出力ファイルパス
	Err   error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SegmentError) Error() string {
	return fmt.Sprintf("セグメント %d (%s) の書き込みエラー: %v", e.Index, e.Path, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SegmentError) Unwrap() error {
	return e.Err
}

// NewSegmentError は新しいSegmentErrorを作成します
func NewSegmentError(index int, path string, err error) *SegmentError {
	return &SegmentError{
		Index: index,
		Path:  path,
		Err:   err,
	}
}

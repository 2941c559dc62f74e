package fileutil

import "errors"

var (
	// ErrDecodeInfoText はINFO文字列の文字コード変換に失敗した場合のエラー
	ErrDecodeInfoText = errors.New("INFO文字列の文字コード変換に失敗しました")
)

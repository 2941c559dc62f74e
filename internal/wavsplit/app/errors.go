package app

import "errors"

var (
	// ErrNoInputFile は入力ファイルが指定されていない場合のエラー
	ErrNoInputFile = errors.New("入力ファイルが指定されていません。-input フラグまたは引数で指定してください")

	// ErrInputNotFound は入力ファイルが存在しない場合のエラー
	ErrInputNotFound = errors.New("入力ファイルが見つかりません")

	// ErrInputIsDirectory は入力ファイルとしてディレクトリが指定された場合のエラー
	ErrInputIsDirectory = errors.New("入力ファイルとしてディレクトリが指定されています")

	// ErrSplit は分割処理に失敗した場合のエラー
	ErrSplit = errors.New("WAVファイルの分割に失敗しました")
)

package wavfile

import "errors"

var (
	// ErrNotRIFF は先頭が "RIFF" でない場合のエラー
	ErrNotRIFF = errors.New("RIFFファイルではありません")

	// ErrNotWAVE はRIFFタイプが "WAVE" でない場合のエラー
	ErrNotWAVE = errors.New("WAVEファイルではありません")

	// ErrMissingFmt は data チャンクより前に fmt チャンクがない場合のエラー
	ErrMissingFmt = errors.New("fmt チャンクが見つかりません")

	// ErrMissingData は data チャンクが見つからない場合のエラー
	ErrMissingData = errors.New("data チャンクが見つかりません")

	// ErrInvalidFormat はフォーマット情報が不正な場合のエラー
	ErrInvalidFormat = errors.New("フォーマット情報が不正です")

	// ErrTruncatedHeader はヘッダーの途中でファイルが終わっている場合のエラー
	ErrTruncatedHeader = errors.New("ヘッダーの途中でファイルが終わっています")

	// ErrFramesConsumed はフレームデータを2回読み込もうとした場合のエラー
	ErrFramesConsumed = errors.New("フレームデータは既に読み込まれています")

	// ErrPayloadTooLarge はデータサイズがRIFFの上限を超える場合のエラー
	ErrPayloadTooLarge = errors.New("データサイズがWAVファイルの上限を超えています")
)

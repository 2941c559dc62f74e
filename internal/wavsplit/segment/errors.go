package segment

import "errors"

var (
	// ErrInvalidSegmentLength はセグメント長が0以下または数値でない場合のエラー
	ErrInvalidSegmentLength = errors.New("セグメント長は正の数で指定してください")

	// ErrZeroFramesPerSegment はセグメント長が短すぎて1フレームも含まれない場合のエラー
	ErrZeroFramesPerSegment = errors.New("セグメント長が短すぎます（1セグメントあたりのフレーム数が0になります）")

	// ErrCreateOutputDir は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateOutputDir = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrNegativeFrameCount はフレーム数が負の場合のエラー。
	// Decoder 経由では発生せず、NewPlan を直接呼ぶ場合のためのもの。
	ErrNegativeFrameCount = errors.New("フレーム数が負です")
)

// Package models はwavsplitコマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-wavsplit/pkg/wavfile"

// Plan はセグメント分割の計算結果を表します
type Plan struct {
	Format           wavfile.Format
	TotalFrames      int64
	SegmentSeconds   float64
	DurationSeconds  float64 // TotalFrames / FrameRate（実数）
	FramesPerSegment int64   // floor(FrameRate * SegmentSeconds)
	SegmentCount     int     // ceil(DurationSeconds / SegmentSeconds)
}

// Segment はフレームデータの連続した区間 [StartFrame, EndFrame) を表します
type Segment struct {
	Index      int // 1始まりの通し番号
	StartFrame int64
	EndFrame   int64
	Path       string
}

// Frames はセグメントに含まれるフレーム数を返します
func (s Segment) Frames() int64 {
	return s.EndFrame - s.StartFrame
}

// SplitResult は分割処理の結果を表します（表示用）
type SplitResult struct {
	InputFile string
	Plan      *Plan
	Segments  []Segment // 書き込んだ（ドライランでは書き込む予定の）セグメント
	Skipped   []int     // 空のため書き込まなかった番号
}

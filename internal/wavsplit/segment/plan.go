package segment

import (
	"fmt"
	"math"

	"github.com/shiroemons/go-wavsplit/internal/wavsplit/models"
	"github.com/shiroemons/go-wavsplit/pkg/wavfile"
)

// ValidateSeconds はセグメント長を検査します
func ValidateSeconds(segmentSeconds float64) error {
	if math.IsNaN(segmentSeconds) || math.IsInf(segmentSeconds, 0) || segmentSeconds <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSegmentLength, segmentSeconds)
	}
	return nil
}

// NewPlan はフォーマット情報と総フレーム数から分割計画を計算します
func NewPlan(f wavfile.Format, totalFrames int64, segmentSeconds float64) (*models.Plan, error) {
	if err := ValidateSeconds(segmentSeconds); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if totalFrames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFrameCount, totalFrames)
	}

	fps := math.Floor(float64(f.FrameRate) * segmentSeconds)
	if fps < 1 {
		return nil, fmt.Errorf("%w: %v秒 × %dHz", ErrZeroFramesPerSegment, segmentSeconds, f.FrameRate)
	}
	// バイトオフセットの計算があふれないように上限を設ける
	if limit := float64(math.MaxInt64 / int64(f.FrameSize()) / 2); fps > limit {
		fps = limit
	}
	framesPerSegment := int64(fps)

	duration := float64(totalFrames) / float64(f.FrameRate)
	count := int64(math.Ceil(duration / segmentSeconds))
	// 浮動小数点の誤差で末尾のフレームが落ちないようにする
	if count*framesPerSegment < totalFrames {
		count = (totalFrames + framesPerSegment - 1) / framesPerSegment
	}

	return &models.Plan{
		Format:           f,
		TotalFrames:      totalFrames,
		SegmentSeconds:   segmentSeconds,
		DurationSeconds:  duration,
		FramesPerSegment: framesPerSegment,
		SegmentCount:     int(count),
	}, nil
}

// ByteRange は i 番目（0始まり）のセグメントのバイト範囲 [start, end) を返します。
// end はペイロード長で切り詰められます。end <= start の場合は空のセグメントです。
func ByteRange(p *models.Plan, i int, payloadLen int64) (start, end int64) {
	frameSize := int64(p.Format.FrameSize())
	startFrame := int64(i) * p.FramesPerSegment
	endFrame := startFrame + p.FramesPerSegment

	start = min(startFrame*frameSize, payloadLen)
	end = min(endFrame*frameSize, payloadLen)
	return start, end
}

// Slice は i 番目のセグメントのデータを返します。空の場合は nil を返します。
func Slice(p *models.Plan, payload []byte, i int) []byte {
	start, end := ByteRange(p, i, int64(len(payload)))
	if end <= start {
		return nil
	}
	return payload[start:end]
}

// Segments は空でないセグメントの一覧と、空のためスキップされる番号（1始まり）を返します
func Segments(p *models.Plan, payloadLen int64) (segments []models.Segment, skipped []int) {
	frameSize := int64(p.Format.FrameSize())
	for i := 0; i < p.SegmentCount; i++ {
		start, end := ByteRange(p, i, payloadLen)
		if end <= start {
			skipped = append(skipped, i+1)
			continue
		}
		segments = append(segments, models.Segment{
			Index:      i + 1,
			StartFrame: start / frameSize,
			EndFrame:   end / frameSize,
		})
	}
	return segments, skipped
}

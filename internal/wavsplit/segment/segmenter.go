// Package segment はWAVファイルを一定の長さのセグメントに分割します
package segment

import (
	"context"
	"fmt"
	"io"
	"sort"

	wserrors "github.com/shiroemons/go-wavsplit/internal/wavsplit/errors"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/fileutil"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/interfaces"
	"github.com/shiroemons/go-wavsplit/internal/wavsplit/models"
	"github.com/shiroemons/go-wavsplit/pkg/wavfile"
)

// OutputDirPerm は出力ディレクトリ作成時のパーミッション
const OutputDirPerm = 0755

// Segmenter は1つの入力ファイルを複数のWAVファイルに分割します
type Segmenter struct {
	fs     interfaces.FileSystem
	logger interfaces.Logger
	out    io.Writer
}

// New は新しいSegmenterを作成します。out には書き込んだファイルごとに1行出力されます。
func New(fs interfaces.FileSystem, logger interfaces.Logger, out io.Writer) *Segmenter {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Segmenter{
		fs:     fs,
		logger: logger,
		out:    out,
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// input は入力ファイルから読み込んだ内容
type input struct {
	format    wavfile.Format
	numFrames int64
	info      map[string][]byte
	payload   []byte
}

// SplitAudio は inputFile を segmentSeconds 秒ごとに分割し、outputDir に書き込みます。
// 失敗した時点で処理を中断し、それまでに書き込んだファイルはそのまま残ります。
func (s *Segmenter) SplitAudio(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// ファイル操作の前にセグメント長を検査する
	if err := ValidateSeconds(segmentSeconds); err != nil {
		return nil, err
	}

	if err := s.fs.MkdirAll(outputDir, OutputDirPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateOutputDir, outputDir, err)
	}

	var plan *models.Plan
	in, err := s.loadInput(inputFile, func(f wavfile.Format, numFrames int64) error {
		// フレームデータを読み込む前に計画を確定する
		var err error
		plan, err = NewPlan(f, numFrames, segmentSeconds)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logInput(inputFile, in, plan)

	result := &models.SplitResult{
		InputFile: inputFile,
		Plan:      plan,
	}

	frameSize := int64(plan.Format.FrameSize())
	for i := 0; i < plan.SegmentCount; i++ {
		index := i + 1
		data := Slice(plan, in.payload, i)
		if len(data) == 0 {
			s.logger.Printf("セグメント %d は空のためスキップします\n", index)
			result.Skipped = append(result.Skipped, index)
			continue
		}

		path := fileutil.SegmentPath(outputDir, inputFile, index)
		if err := s.writeSegment(path, plan.Format, data); err != nil {
			return result, wserrors.NewSegmentError(index, path, err)
		}

		start, end := ByteRange(plan, i, int64(len(in.payload)))
		result.Segments = append(result.Segments, models.Segment{
			Index:      index,
			StartFrame: start / frameSize,
			EndFrame:   end / frameSize,
			Path:       path,
		})
		fmt.Fprintf(s.out, "Saved segment %d to %s\n", index, path)
	}

	return result, nil
}

// PlanFile は SplitAudio と同じ計算を行い、書き込まれるセグメントの一覧を返します。
// ディレクトリの作成やファイルの書き込みは行いません。
func (s *Segmenter) PlanFile(ctx context.Context, inputFile, outputDir string, segmentSeconds float64) (*models.SplitResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := ValidateSeconds(segmentSeconds); err != nil {
		return nil, err
	}

	var plan *models.Plan
	in, err := s.loadHeader(inputFile, func(f wavfile.Format, numFrames int64) error {
		var err error
		plan, err = NewPlan(f, numFrames, segmentSeconds)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logInput(inputFile, in, plan)

	// ヘッダーに記載されたフレーム数で計算する
	segments, skipped := Segments(plan, plan.TotalFrames*int64(plan.Format.FrameSize()))
	for i := range segments {
		segments[i].Path = fileutil.SegmentPath(outputDir, inputFile, segments[i].Index)
	}

	return &models.SplitResult{
		InputFile: inputFile,
		Plan:      plan,
		Segments:  segments,
		Skipped:   skipped,
	}, nil
}

// loadInput は入力ファイルを開き、ヘッダーを解析して check を呼んだ後、フレームデータ全体を読み込みます。
// ファイルはこの関数から戻る前に閉じられます。
func (s *Segmenter) loadInput(inputFile string, check func(wavfile.Format, int64) error) (*input, error) {
	return s.open(inputFile, check, true)
}

// loadHeader はヘッダーだけを読み込みます
func (s *Segmenter) loadHeader(inputFile string, check func(wavfile.Format, int64) error) (*input, error) {
	return s.open(inputFile, check, false)
}

func (s *Segmenter) open(inputFile string, check func(wavfile.Format, int64) error, readFrames bool) (*input, error) {
	f, err := s.fs.Open(inputFile)
	if err != nil {
		return nil, wserrors.NewInputError("open", inputFile, err)
	}
	defer f.Close()

	dec, err := wavfile.NewDecoder(f)
	if err != nil {
		return nil, wserrors.NewInputError("read header", inputFile, err)
	}

	in := &input{
		format:    dec.Format(),
		numFrames: dec.NumFrames(),
		info:      dec.Info(),
	}
	if err := check(in.format, in.numFrames); err != nil {
		return nil, err
	}
	if !readFrames {
		return in, nil
	}

	in.payload, err = dec.ReadFrames()
	if err != nil {
		return nil, wserrors.NewInputError("read frames", inputFile, err)
	}
	if got := int64(len(in.payload)) / int64(in.format.FrameSize()); got < in.numFrames {
		s.logger.Printf("警告: %s はヘッダーの %d フレームに対して %d フレームしか読み込めませんでした\n", inputFile, in.numFrames, got)
	}
	return in, nil
}

// writeSegment は1つのセグメントをファイルに書き込みます。ファイルはエラー時も必ず閉じられます。
func (s *Segmenter) writeSegment(path string, f wavfile.Format, data []byte) (err error) {
	w, err := s.fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return wavfile.Encode(w, f, data)
}

// logInput は入力ファイルの情報と分割計画をデバッグ出力します
func (s *Segmenter) logInput(inputFile string, in *input, plan *models.Plan) {
	s.logger.Printf("入力ファイル: %s\n", inputFile)
	s.logger.Printf("フォーマット: %s\n", in.format)
	s.logger.Printf("フレーム数: %d (%.3f秒)\n", plan.TotalFrames, plan.DurationSeconds)
	s.logger.Printf("セグメント: %v秒 = %dフレーム × 最大%d個\n", plan.SegmentSeconds, plan.FramesPerSegment, plan.SegmentCount)

	ids := make([]string, 0, len(in.info))
	for id := range in.info {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		text, err := fileutil.DecodeInfoText(in.info[id])
		if err != nil {
			s.logger.Printf("INFO %s: %v\n", id, err)
			continue
		}
		s.logger.Printf("INFO %s: %s\n", id, text)
	}
}

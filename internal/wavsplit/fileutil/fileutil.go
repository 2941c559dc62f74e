// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// SegmentExt は出力ファイルの拡張子
const SegmentExt = ".wav"

// BaseName は入力ファイル名から拡張子を除いた部分を返します。
// ファイル名のバイト列は変更しません。
func BaseName(inputPath string) string {
	return trimExt(filepath.Base(inputPath))
}

// trimExt は拡張子を取り除きます。".bashrc" のような先頭のドットだけの名前は拡張子なしとして扱います。
func trimExt(name string) string {
	dot := strings.LastIndexByte(name, '.')
	firstNonDot := strings.IndexFunc(name, func(r rune) bool { return r != '.' })
	if dot <= 0 || firstNonDot < 0 || dot < firstNonDot {
		return name
	}
	return name[:dot]
}

// SegmentFilename は {baseName}_segment_{index:03d}.wav 形式のファイル名を生成します
func SegmentFilename(baseName string, index int) string {
	return fmt.Sprintf("%s_segment_%03d%s", baseName, index, SegmentExt)
}

// SegmentPath は出力ディレクトリと入力ファイル名からセグメントのパスを生成します
func SegmentPath(outputDir, inputPath string, index int) string {
	return filepath.Join(outputDir, SegmentFilename(BaseName(inputPath), index))
}

// FromShiftJIS はShift-JISからUTF-8に変換します
func FromShiftJIS(str string) (string, error) {
	reader := strings.NewReader(str)
	transformer := japanese.ShiftJIS.NewDecoder()
	ret, err := io.ReadAll(transform.NewReader(reader, transformer))
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

// DecodeInfoText は LIST/INFO チャンクの文字列を UTF-8 に変換します。
// UTF-8 として正しくない場合は Shift-JIS として扱います。
func DecodeInfoText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	text, err := FromShiftJIS(string(b))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeInfoText, err)
	}
	return text, nil
}

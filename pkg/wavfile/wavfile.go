// Package wavfile は非圧縮PCMのRIFF/WAVEコンテナを読み書きするためのパッケージです。
//
// 読み込みはヘッダーの解析とフレームデータの読み出しの2段階に分かれています。
// ヘッダーだけを先に検査し、必要になった時点でペイロード全体を一度だけ読み込みます。
//
// 基本的な使い方:
//
//	f, _ := os.Open("input.wav")
//	defer f.Close()
//	dec, err := wavfile.NewDecoder(f)
//	if err != nil {
//	    return err
//	}
//	payload, err := dec.ReadFrames()
//	// ...
//	out, _ := os.Create("output.wav")
//	defer out.Close()
//	err = wavfile.Encode(out, dec.Format(), payload)
package wavfile

import "fmt"

// フォーマットタグ
const (
	FormatPCM        uint16 = 0x0001
	FormatIEEEFloat  uint16 = 0x0003
	FormatALaw       uint16 = 0x0006
	FormatMULaw      uint16 = 0x0007
	FormatExtensible uint16 = 0xFFFE
)

// チャンクID
const (
	riffID = "RIFF"
	waveID = "WAVE"
	fmtID  = "fmt "
	listID = "LIST"
	infoID = "INFO"
	dataID = "data"
)

const (
	chunkHeaderSize = 8  // チャンクID (4) + サイズ (4)
	riffHeaderSize  = 12 // "RIFF" + サイズ + "WAVE"
	fmtBaseSize     = 16 // fmt チャンクの必須部分
)

// Format はWAVファイルのフォーマット情報を表します。
// 入力ファイルから一度だけ取得し、出力ファイルにはそのままコピーされます。
type Format struct {
	FormatTag     uint16 // fmt チャンクのフォーマットタグ（PCM は 1）
	Channels      int    // チャンネル数
	FrameRate     int    // 1秒あたりのフレーム数
	BitsPerSample int    // 量子化ビット数
	ExtraFormat   []byte // fmt チャンクの16バイト以降（cbSize と拡張部分）
}

// SampleWidth は1サンプルあたりのバイト数を返します
func (f Format) SampleWidth() int {
	return (f.BitsPerSample + 7) / 8
}

// FrameSize は1フレーム（全チャンネル分の1サンプル）のバイト数を返します
func (f Format) FrameSize() int {
	return f.Channels * f.SampleWidth()
}

// BlockAlign は fmt チャンクに書き込むブロックサイズを返します
func (f Format) BlockAlign() int {
	return f.FrameSize()
}

// ByteRate は1秒あたりのバイト数を返します
func (f Format) ByteRate() int {
	return f.FrameRate * f.FrameSize()
}

// CompType は圧縮形式の短いコードを返します。PCM の場合は "NONE" です。
func (f Format) CompType() string {
	if f.FormatTag == FormatPCM {
		return "NONE"
	}
	return fmt.Sprintf("0x%04X", f.FormatTag)
}

// CompName は圧縮形式の名前を返します
func (f Format) CompName() string {
	switch f.FormatTag {
	case FormatPCM:
		return "not compressed"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMULaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	default:
		return "unknown"
	}
}

// Validate はフォーマット情報がフレーム計算に使えるか確認します
func (f Format) Validate() error {
	if f.Channels <= 0 {
		return fmt.Errorf("%w: チャンネル数 %d", ErrInvalidFormat, f.Channels)
	}
	if f.SampleWidth() <= 0 {
		return fmt.Errorf("%w: 量子化ビット数 %d", ErrInvalidFormat, f.BitsPerSample)
	}
	if f.FrameRate <= 0 {
		return fmt.Errorf("%w: フレームレート %d", ErrInvalidFormat, f.FrameRate)
	}
	return nil
}

// Equal は2つのフォーマットが同一か比較します
func (f Format) Equal(other Format) bool {
	if f.FormatTag != other.FormatTag ||
		f.Channels != other.Channels ||
		f.FrameRate != other.FrameRate ||
		f.BitsPerSample != other.BitsPerSample ||
		len(f.ExtraFormat) != len(other.ExtraFormat) {
		return false
	}
	for i := range f.ExtraFormat {
		if f.ExtraFormat[i] != other.ExtraFormat[i] {
			return false
		}
	}
	return true
}

// String はデバッグ表示用の文字列を返します
func (f Format) String() string {
	return fmt.Sprintf("%dch %dbit %dHz (%s, %s)", f.Channels, f.BitsPerSample, f.FrameRate, f.CompType(), f.CompName())
}

// PCM16 は16ビットPCMのフォーマットを作成します
func PCM16(channels, frameRate int) Format {
	return Format{
		FormatTag:     FormatPCM,
		Channels:      channels,
		FrameRate:     frameRate,
		BitsPerSample: 16,
	}
}

package wavfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize は f で Encode した場合のヘッダー部分のバイト数を返します
func HeaderSize(f Format) int {
	return riffHeaderSize + chunkHeaderSize + paddedSize(fmtChunkSize(f)) + chunkHeaderSize
}

// Encode はフォーマット情報とフレームデータから1つのWAVファイルを w に書き込みます。
// フォーマットタグと拡張部分は解釈せずにそのまま書き込みます。
func Encode(w io.Writer, f Format, payload []byte) error {
	if err := f.Validate(); err != nil {
		return err
	}

	fmtSize := fmtChunkSize(f)
	dataSize := len(payload)
	// RIFF チャンクサイズは "WAVE" 以降の全体
	riffSize := int64(4) +
		int64(chunkHeaderSize+paddedSize(fmtSize)) +
		int64(chunkHeaderSize+paddedSize(dataSize))
	if riffSize > math.MaxUint32 {
		return fmt.Errorf("%w: %d バイト", ErrPayloadTooLarge, dataSize)
	}

	header := make([]byte, HeaderSize(f))

	// RIFF ヘッダー
	copy(header[0:4], riffID)
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffSize))
	copy(header[8:12], waveID)

	// fmt チャンク
	copy(header[12:16], fmtID)
	binary.LittleEndian.PutUint32(header[16:20], uint32(fmtSize))
	binary.LittleEndian.PutUint16(header[20:22], f.FormatTag)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.FrameRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))
	copy(header[36:], f.ExtraFormat)

	// data チャンクヘッダー
	dataOffset := riffHeaderSize + chunkHeaderSize + paddedSize(fmtSize)
	copy(header[dataOffset:dataOffset+4], dataID)
	binary.LittleEndian.PutUint32(header[dataOffset+4:dataOffset+8], uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if dataSize%2 != 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

func fmtChunkSize(f Format) int {
	return fmtBaseSize + len(f.ExtraFormat)
}

func paddedSize(n int) int {
	return n + n%2
}

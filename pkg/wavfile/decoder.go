package wavfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decoder はWAVファイルのヘッダーを解析し、フレームデータを読み出します
type Decoder struct {
	r          io.Reader
	format     Format
	dataSize   uint32
	info       map[string][]byte
	framesRead bool
}

// NewDecoder は r からヘッダーを読み込み、data チャンクの先頭まで進めます。
// フレームデータ自体は ReadFrames を呼ぶまで読み込みません。
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{r: r}
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	return d, nil
}

// Format はフォーマット情報を返します
func (d *Decoder) Format() Format {
	return d.format
}

// NumFrames はヘッダーに記載されたフレーム数を返します
func (d *Decoder) NumFrames() int64 {
	return int64(d.dataSize) / int64(d.format.FrameSize())
}

// Duration は再生時間（秒）を返します
func (d *Decoder) Duration() float64 {
	return float64(d.NumFrames()) / float64(d.format.FrameRate)
}

// Info は LIST/INFO チャンクのサブチャンクを返します（キーは "INAM" などのID）
func (d *Decoder) Info() map[string][]byte {
	return d.info
}

// ReadFrames はフレームデータ全体を一度に読み込みます。
// ファイルが途中で切れている場合は、読み込めた分だけを返します。
// 端数のバイト（1フレームに満たない部分）は含みません。
func (d *Decoder) ReadFrames() ([]byte, error) {
	if d.framesRead {
		return nil, ErrFramesConsumed
	}
	d.framesRead = true

	want := d.NumFrames() * int64(d.format.FrameSize())
	payload, err := io.ReadAll(io.LimitReader(d.r, want))
	if err != nil {
		return nil, err
	}
	// 途中で切れている場合もフレーム境界に揃える
	return payload[:len(payload)-len(payload)%d.format.FrameSize()], nil
}

// readHeader は RIFF ヘッダーとチャンクを data チャンクまで読み進めます
func (d *Decoder) readHeader() error {
	var riff [riffHeaderSize]byte
	if err := readFull(d.r, riff[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
		}
		return err
	}
	if string(riff[0:4]) != riffID {
		return ErrNotRIFF
	}
	if string(riff[8:12]) != waveID {
		return ErrNotWAVE
	}

	fmtFound := false
	var header [chunkHeaderSize]byte
	for {
		if err := readFull(d.r, header[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrMissingData
			}
			return err
		}
		id := string(header[0:4])
		size := binary.LittleEndian.Uint32(header[4:8])

		switch id {
		case dataID:
			if !fmtFound {
				return ErrMissingFmt
			}
			d.dataSize = size
			return nil

		case fmtID:
			body, err := d.readChunkBody(size)
			if err != nil {
				return err
			}
			if err := d.parseFmt(body); err != nil {
				return err
			}
			fmtFound = true

		case listID:
			body, err := d.readChunkBody(size)
			if err != nil {
				return err
			}
			d.parseList(body)

		default:
			// fact, cue など未使用のチャンクは読み飛ばす
			if err := d.skip(int64(size) + int64(size%2)); err != nil {
				return err
			}
		}
	}
}

// readChunkBody はチャンク本体とパディングバイトを読み込みます
func (d *Decoder) readChunkBody(size uint32) ([]byte, error) {
	body := make([]byte, size)
	if err := readFull(d.r, body); err != nil {
		return nil, err
	}
	if size%2 != 0 {
		if err := d.skip(1); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (d *Decoder) skip(n int64) error {
	if n == 0 {
		return nil
	}
	written, err := io.CopyN(io.Discard, d.r, n)
	if err != nil {
		if errors.Is(err, io.EOF) && written < n {
			return fmt.Errorf("%w: %w", ErrTruncatedHeader, io.ErrUnexpectedEOF)
		}
		return err
	}
	return nil
}

// parseFmt は fmt チャンクからフォーマット情報を取得します
func (d *Decoder) parseFmt(body []byte) error {
	if len(body) < fmtBaseSize {
		return fmt.Errorf("%w: fmt チャンクのサイズが %d バイトしかありません", ErrInvalidFormat, len(body))
	}

	f := Format{
		FormatTag:     binary.LittleEndian.Uint16(body[0:2]),
		Channels:      int(binary.LittleEndian.Uint16(body[2:4])),
		FrameRate:     int(binary.LittleEndian.Uint32(body[4:8])),
		BitsPerSample: int(binary.LittleEndian.Uint16(body[14:16])),
	}
	if len(body) > fmtBaseSize {
		f.ExtraFormat = bytes.Clone(body[fmtBaseSize:])
	}
	if err := f.Validate(); err != nil {
		return err
	}

	d.format = f
	return nil
}

// parseList は LIST/INFO チャンクのサブチャンクを取り出します。
// INFO 以外の LIST や壊れたサブチャンクは無視します。
func (d *Decoder) parseList(body []byte) {
	if len(body) < 4 || string(body[0:4]) != infoID {
		return
	}
	if d.info == nil {
		d.info = make(map[string][]byte)
	}

	offset := 4
	for offset+chunkHeaderSize <= len(body) {
		id := string(body[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(body[offset+4 : offset+chunkHeaderSize]))
		start := offset + chunkHeaderSize
		end := start + size
		if end > len(body) {
			break
		}
		d.info[id] = bytes.TrimRight(body[start:end], "\x00")

		offset = end
		if size%2 != 0 {
			offset++
		}
	}
}

// readFull は io.ReadFull の結果をヘッダー用のエラーに変換します
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	default:
		return err
	}
}

package wavfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToBytes(t *testing.T, f Format, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f, payload))
	return buf.Bytes()
}

func rampPayload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i * 7)
	}
	return p
}

func TestEncode_CanonicalHeader(t *testing.T) {
	payload := rampPayload(8)
	data := encodeToBytes(t, PCM16(2, 44100), payload)

	require.Len(t, data, 44+8)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(data[16:20]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(44100*4), binary.LittleEndian.Uint32(data[28:32]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(data[32:34]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, payload, data[44:])
}

func TestEncode_OddPayloadIsPadded(t *testing.T) {
	f := Format{FormatTag: FormatPCM, Channels: 1, FrameRate: 8000, BitsPerSample: 8}
	data := encodeToBytes(t, f, []byte{1, 2, 3})

	require.Len(t, data, 44+4)
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[40:44]))
	assert.Equal(t, uint32(36+4), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, byte(0), data[47])
}

func TestEncode_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Format{FormatTag: FormatPCM, Channels: 0, FrameRate: 8000, BitsPerSample: 16}, nil)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Zero(t, buf.Len())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		frames int
	}{
		{
			name:   "16ビットモノラル",
			format: PCM16(1, 8000),
			frames: 100,
		},
		{
			name:   "16ビットステレオ",
			format: PCM16(2, 44100),
			frames: 33,
		},
		{
			name:   "24ビットステレオ",
			format: Format{FormatTag: FormatPCM, Channels: 2, FrameRate: 48000, BitsPerSample: 24},
			frames: 17,
		},
		{
			name:   "8ビットモノラル（奇数長）",
			format: Format{FormatTag: FormatPCM, Channels: 1, FrameRate: 11025, BitsPerSample: 8},
			frames: 7,
		},
		{
			name: "拡張部分付きの非PCM",
			format: Format{
				FormatTag:     FormatIEEEFloat,
				Channels:      1,
				FrameRate:     16000,
				BitsPerSample: 32,
				ExtraFormat:   []byte{0, 0},
			},
			frames: 10,
		},
		{
			name:   "フレームなし",
			format: PCM16(1, 8000),
			frames: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := rampPayload(tt.frames * tt.format.FrameSize())
			data := encodeToBytes(t, tt.format, payload)

			dec, err := NewDecoder(bytes.NewReader(data))
			require.NoError(t, err)
			assert.True(t, dec.Format().Equal(tt.format), "format mismatch: %v != %v", dec.Format(), tt.format)
			assert.Equal(t, int64(tt.frames), dec.NumFrames())

			got, err := dec.ReadFrames()
			require.NoError(t, err)
			assert.Equal(t, len(payload), len(got))
			assert.True(t, bytes.Equal(payload, got))
		})
	}
}

// buildWAV はチャンクを任意の順序で並べたWAVファイルを作成します
func buildWAV(chunks ...[]byte) []byte {
	var body bytes.Buffer
	body.WriteString("WAVE")
	for _, c := range chunks {
		body.Write(c)
	}
	var out bytes.Buffer
	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func chunk(id string, data []byte) []byte {
	var c bytes.Buffer
	c.WriteString(id)
	_ = binary.Write(&c, binary.LittleEndian, uint32(len(data)))
	c.Write(data)
	if len(data)%2 != 0 {
		c.WriteByte(0)
	}
	return c.Bytes()
}

func fmtBody(tag uint16, channels uint16, rate uint32, bits uint16) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], tag)
	binary.LittleEndian.PutUint16(b[2:4], channels)
	binary.LittleEndian.PutUint32(b[4:8], rate)
	blockAlign := channels * ((bits + 7) / 8)
	binary.LittleEndian.PutUint32(b[8:12], rate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[12:14], blockAlign)
	binary.LittleEndian.PutUint16(b[14:16], bits)
	return b
}

func TestNewDecoder_SkipsUnknownChunksAndReadsInfo(t *testing.T) {
	info := []byte("INFO")
	info = append(info, chunk("INAM", []byte("title\x00"))...)
	info = append(info, chunk("IART", []byte("abc"))...)

	payload := rampPayload(20)
	data := buildWAV(
		chunk("fmt ", fmtBody(1, 1, 8000, 16)),
		chunk("fact", []byte{1, 2, 3}),
		chunk("LIST", info),
		chunk("data", payload),
	)

	dec, err := NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(10), dec.NumFrames())
	assert.Equal(t, []byte("title"), dec.Info()["INAM"])
	assert.Equal(t, []byte("abc"), dec.Info()["IART"])

	got, err := dec.ReadFrames()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestNewDecoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "空ファイル",
			data:    nil,
			wantErr: ErrTruncatedHeader,
		},
		{
			name:    "RIFFでない",
			data:    []byte("RIFX\x00\x00\x00\x00WAVE"),
			wantErr: ErrNotRIFF,
		},
		{
			name:    "WAVEでない",
			data:    []byte("RIFF\x00\x00\x00\x00AVI "),
			wantErr: ErrNotWAVE,
		},
		{
			name:    "fmtより先にdata",
			data:    buildWAV(chunk("data", []byte{0, 0})),
			wantErr: ErrMissingFmt,
		},
		{
			name:    "dataがない",
			data:    buildWAV(chunk("fmt ", fmtBody(1, 1, 8000, 16))),
			wantErr: ErrMissingData,
		},
		{
			name:    "fmtが短い",
			data:    buildWAV(chunk("fmt ", []byte{1, 0, 1, 0})),
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "チャンネル数0",
			data:    buildWAV(chunk("fmt ", fmtBody(1, 0, 8000, 16)), chunk("data", nil)),
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "フレームレート0",
			data:    buildWAV(chunk("fmt ", fmtBody(1, 1, 0, 16)), chunk("data", nil)),
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "fmtの途中で終わる",
			data:    []byte("RIFF\x00\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00"),
			wantErr: ErrTruncatedHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecoder_ReadFrames_Truncated(t *testing.T) {
	data := encodeToBytes(t, PCM16(1, 8000), rampPayload(100))
	// 宣言上は50フレームだが、実データは30バイトで切れている
	data = data[:44+30]

	dec, err := NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(50), dec.NumFrames())

	got, err := dec.ReadFrames()
	require.NoError(t, err)
	assert.Len(t, got, 30)
}

func TestDecoder_ReadFrames_DropsPartialFrame(t *testing.T) {
	// 2チャンネル16ビットで7バイトのデータ -> 1フレーム分のみ
	data := buildWAV(
		chunk("fmt ", fmtBody(1, 2, 8000, 16)),
		chunk("data", []byte{1, 2, 3, 4, 5, 6, 7}),
	)

	dec, err := NewDecoder(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dec.NumFrames())

	got, err := dec.ReadFrames()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestDecoder_ReadFrames_Twice(t *testing.T) {
	dec, err := NewDecoder(bytes.NewReader(encodeToBytes(t, PCM16(1, 8000), rampPayload(4))))
	require.NoError(t, err)

	_, err = dec.ReadFrames()
	require.NoError(t, err)
	_, err = dec.ReadFrames()
	assert.ErrorIs(t, err, ErrFramesConsumed)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestDecoder_ReadFrames_ReaderError(t *testing.T) {
	readErr := errors.New("read error")
	data := encodeToBytes(t, PCM16(1, 8000), rampPayload(100))
	r := &failingReader{data: data[:60], err: readErr}

	dec, err := NewDecoder(r)
	require.NoError(t, err)
	_, err = dec.ReadFrames()
	assert.ErrorIs(t, err, readErr)
}

func TestFormat_Properties(t *testing.T) {
	f := PCM16(2, 44100)
	assert.Equal(t, 2, f.SampleWidth())
	assert.Equal(t, 4, f.FrameSize())
	assert.Equal(t, 176400, f.ByteRate())
	assert.Equal(t, "NONE", f.CompType())
	assert.Equal(t, "not compressed", f.CompName())

	f.FormatTag = FormatMULaw
	assert.Equal(t, "0x0007", f.CompType())
	assert.Equal(t, "mu-law", f.CompName())

	f.FormatTag = 0x1234
	assert.Equal(t, "unknown", f.CompName())

	twelveBit := Format{FormatTag: FormatPCM, Channels: 1, FrameRate: 8000, BitsPerSample: 12}
	assert.Equal(t, 2, twelveBit.SampleWidth())
}

func TestHeaderSize(t *testing.T) {
	assert.Equal(t, 44, HeaderSize(PCM16(1, 8000)))

	f := PCM16(1, 8000)
	f.ExtraFormat = []byte{0, 0}
	assert.Equal(t, 46, HeaderSize(f))

	// 奇数長の拡張部分はパディングされる
	f.ExtraFormat = []byte{1}
	assert.Equal(t, 46, HeaderSize(f))
}

var _ io.Reader = (*failingReader)(nil)

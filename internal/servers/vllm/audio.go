package vllm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

// DefaultChunkLength is the audio length sent to the engine per request.
const DefaultChunkLength = 25 * time.Second

var errNotWAV = errors.New("not a RIFF/WAVE stream")

// AudioSplitter cuts an uploaded audio file into chunks the engine can
// transcribe one at a time. It returns the chunks and the total duration in
// seconds, or 0 when the duration is unknown.
type AudioSplitter interface {
	Split(audio []byte) ([][]byte, float64, error)
}

// WAVSplitter splits PCM WAV files into ChunkLength pieces, each with its own
// header. Other formats (MP3, FLAC, OGG, ...) are passed through as a single
// chunk with an unknown duration, so a long compressed file reaches the
// engine whole and may exceed its per-request audio window. Convert long
// recordings to PCM WAV before upload, or plug in another AudioSplitter.
type WAVSplitter struct {
	ChunkLength time.Duration
}

// Split implements AudioSplitter.
func (s WAVSplitter) Split(audio []byte) ([][]byte, float64, error) {
	w, err := parseWAV(audio)
	if err != nil {
		return [][]byte{audio}, 0, nil
	}

	length := s.ChunkLength
	if length <= 0 {
		length = DefaultChunkLength
	}

	duration := float64(len(w.data)) / float64(w.byteRate)
	step := int(length.Seconds() * float64(w.byteRate))
	step -= step % w.blockAlign
	if step <= 0 || step >= len(w.data) {
		return [][]byte{w.encode(w.data)}, duration, nil
	}

	chunks := make([][]byte, 0, len(w.data)/step+1)
	for off := 0; off < len(w.data); off += step {
		end := min(off+step, len(w.data))
		chunks = append(chunks, w.encode(w.data[off:end]))
	}
	return chunks, duration, nil
}

type wavFile struct {
	format     []byte
	byteRate   int
	blockAlign int
	data       []byte
}

func parseWAV(b []byte) (*wavFile, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return nil, errNotWAV
	}

	w := &wavFile{}
	for off := 12; off+8 <= len(b); {
		id := string(b[off : off+4])
		size := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
		body := off + 8
		end := body + size
		if end > len(b) || size < 0 {
			end = len(b)
		}

		switch id {
		case "fmt ":
			if end-body < 16 {
				return nil, errNotWAV
			}
			w.format = b[body:end]
			w.byteRate = int(binary.LittleEndian.Uint32(b[body+8 : body+12]))
			w.blockAlign = int(binary.LittleEndian.Uint16(b[body+12 : body+14]))
		case "data":
			w.data = b[body:end]
		}

		off = end + size%2
	}

	if w.format == nil || w.data == nil || w.byteRate <= 0 || w.blockAlign <= 0 {
		return nil, errNotWAV
	}
	return w, nil
}

func (w *wavFile) encode(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(20 + len(w.format) + len(data) + 1)

	u32 := func(v int) {
		_ = binary.Write(&buf, binary.LittleEndian, uint32(v))
	}

	fmtSize := len(w.format) + len(w.format)%2
	buf.WriteString("RIFF")
	u32(4 + 8 + fmtSize + 8 + len(data) + len(data)%2)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	u32(len(w.format))
	buf.Write(w.format)
	if len(w.format)%2 == 1 {
		buf.WriteByte(0)
	}

	buf.WriteString("data")
	u32(len(data))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

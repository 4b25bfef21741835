// Package persist saves and restores Life grids.
//
// A snapshot file is a single JSON header line followed by a gzip-compressed
// payload of width*height bytes in row-major order, each 0 (dead) or 1 (alive).
// The header carries the format tag, version, dimensions and a SHA-256 of the
// compressed payload so foreign, truncated or resized files are rejected
// before anything is installed.
package persist

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"lifegrid/internal/core"
)

// FormatTag identifies snapshot files.
const FormatTag = "lifegrid"

// FormatV1 is the only snapshot version written and accepted.
const FormatV1 = 1

// MaxCells bounds the payload accepted by Decode (4096x4096).
const MaxCells = 4096 * 4096

var (
	// ErrFileNotFound is returned when the snapshot path does not exist.
	ErrFileNotFound = errors.New("snapshot file not found")
	// ErrDecode is returned for corrupt, foreign or malformed snapshots.
	ErrDecode = errors.New("snapshot deserialization failed")
	// ErrIO is returned when a snapshot cannot be written or read.
	ErrIO = errors.New("snapshot i/o failed")
)

// Header is the plain-text first line of a snapshot file.
type Header struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Alive     int       `json:"alive"`
	CreatedAt time.Time `json:"created_at"`
	Checksum  string    `json:"checksum"`
}

// Size returns the dimensions recorded in the header.
func (h Header) Size() core.Size { return core.Size{W: h.Width, H: h.Height} }

// Encode writes g to w in snapshot format.
func Encode(w io.Writer, g *core.Grid, now time.Time) error {
	payload := make([]byte, len(g.Cells()))
	for i, c := range g.Cells() {
		payload[i] = byte(c)
	}

	var compressed bytes.Buffer
	gzw, err := gzip.NewWriterLevel(&compressed, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("creating gzip writer: %w", err)
	}
	if _, err := gzw.Write(payload); err != nil {
		return fmt.Errorf("compressing payload: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("closing gzip writer: %w", err)
	}

	header := Header{
		Format:    FormatTag,
		Version:   FormatV1,
		Width:     g.W,
		Height:    g.H,
		Alive:     g.Alive(),
		CreatedAt: now.UTC(),
		Checksum:  checksum(compressed.Bytes()),
	}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshaling header: %w", err)
	}

	if _, err := w.Write(append(headerBytes, '\n')); err != nil {
		return fmt.Errorf("writing header: %w: %w", ErrIO, err)
	}
	if _, err := w.Write(compressed.Bytes()); err != nil {
		return fmt.Errorf("writing payload: %w: %w", ErrIO, err)
	}
	return nil
}

// Decode reads a snapshot from r. When want is non-nil the recorded
// dimensions must match it; the check happens before the payload is read.
func Decode(r io.Reader, want *core.Size) (*core.Grid, Header, error) {
	reader := bufio.NewReader(r)
	header, err := readHeader(reader)
	if err != nil {
		return nil, Header{}, err
	}
	if want != nil && header.Size() != *want {
		return nil, header, &core.ShapeMismatchError{Want: *want, Got: header.Size()}
	}

	compressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, header, fmt.Errorf("reading payload: %w: %w", ErrIO, err)
	}
	if got := checksum(compressed); got != header.Checksum {
		return nil, header, fmt.Errorf("checksum mismatch: expected %s, got %s: %w", header.Checksum, got, ErrDecode)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, header, fmt.Errorf("creating gzip reader: %w: %w", ErrDecode, err)
	}
	defer gzr.Close()

	total := header.Size().Area()
	payload, err := io.ReadAll(io.LimitReader(gzr, int64(total)+1))
	if err != nil {
		return nil, header, fmt.Errorf("decompressing payload: %w: %w", ErrDecode, err)
	}
	if len(payload) != total {
		return nil, header, fmt.Errorf("payload has %d cells, header declares %d: %w", len(payload), total, ErrDecode)
	}

	cells := make([]core.Cell, total)
	for i, b := range payload {
		switch core.Cell(b) {
		case core.Dead, core.Alive:
			cells[i] = core.Cell(b)
		default:
			return nil, header, fmt.Errorf("invalid cell value %d at offset %d: %w", b, i, ErrDecode)
		}
	}
	g, err := core.GridFromCells(header.Width, header.Height, cells)
	if err != nil {
		return nil, header, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return g, header, nil
}

func readHeader(reader *bufio.Reader) (Header, error) {
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return Header{}, fmt.Errorf("reading header line: %w", ErrDecode)
	}
	var header Header
	if err := json.Unmarshal(bytes.TrimSpace(line), &header); err != nil {
		return Header{}, fmt.Errorf("parsing header: %w: %w", ErrDecode, err)
	}
	if header.Format != FormatTag {
		return Header{}, fmt.Errorf("unknown format %q: %w", header.Format, ErrDecode)
	}
	if header.Version != FormatV1 {
		return Header{}, fmt.Errorf("unsupported version %d: %w", header.Version, ErrDecode)
	}
	if header.Width <= 0 || header.Height <= 0 || header.Width > MaxCells/header.Height {
		return Header{}, fmt.Errorf("invalid dimensions %dx%d: %w", header.Width, header.Height, ErrDecode)
	}
	return header, nil
}

func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(hash[:])
}

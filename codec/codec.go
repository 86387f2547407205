package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// FileSuffix is the canonical extension for vector files.
const FileSuffix = ".dvec.zst"

const (
	fileMagic    = "DVEC"
	fileVersion  = 1
	maxNameLen   = 1 << 16
	maxCount     = 1 << 28
	maxZoneIDLen = 1 << 10
)

var (
	// ErrBadMagic is returned when the file does not start with the dvec magic.
	ErrBadMagic = errors.New("codec: not a dvec file")

	// ErrBadVersion is returned for format versions this build cannot read.
	ErrBadVersion = errors.New("codec: unsupported format version")

	// ErrCorrupt is returned when the payload structure is not decodable.
	ErrCorrupt = errors.New("codec: corrupt payload")
)

// Payload is the serialized form of a vector: its oracle names and raw
// segment data. Zoneless vectors carry an empty ZoningName, no ZoneIDs and
// single-element value slices.
type Payload struct {
	ZoningName       string
	SegmentationName string
	TimeFormat       string
	ZoneIDs          []string
	Data             map[string][]float64
}

// width returns the per-segment value count the payload must be written with.
func (p *Payload) width() int {
	if p.ZoningName == "" {
		return 1
	}

	return len(p.ZoneIDs)
}

// EnsureSuffix appends FileSuffix to path unless it is already present.
func EnsureSuffix(path string) string {
	if strings.HasSuffix(path, FileSuffix) {
		return path
	}

	return path + FileSuffix
}

// Encode writes p to w in the dvec binary format.
//
// Parameters:
//   - w: Destination writer
//   - p: The payload to serialize
//
// Returns:
//   - error: ErrCorrupt for ragged payload data, or the writer's error
func Encode(w io.Writer, p *Payload) error {
	if _, err := w.Write([]byte(fileMagic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(fileVersion)); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	if err := encodeBody(zw, p); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

func encodeBody(w io.Writer, p *Payload) error {
	if err := writeString(w, p.ZoningName); err != nil {
		return err
	}
	if err := writeString(w, p.SegmentationName); err != nil {
		return err
	}
	if err := writeString(w, p.TimeFormat); err != nil {
		return err
	}

	if err := writeUint32(w, uint32(len(p.ZoneIDs))); err != nil {
		return err
	}
	for _, id := range p.ZoneIDs {
		if err := writeString(w, id); err != nil {
			return err
		}
	}

	width := p.width()
	if err := writeUint32(w, uint32(width)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(p.Data))); err != nil {
		return err
	}

	keys := make([]string, 0, len(p.Data))
	for key := range p.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := p.Data[key]
		if len(vals) != width {
			return fmt.Errorf("%w: segment %q has %d values, want %d",
				ErrCorrupt, key, len(vals), width)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		for _, x := range vals {
			if err := writeUint64(w, math.Float64bits(x)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Decode reads one payload from r.
//
// Parameters:
//   - r: Source reader positioned at the file start
//
// Returns:
//   - *Payload: The decoded payload
//   - error: ErrBadMagic, ErrBadVersion, ErrCorrupt or the reader's error
func Decode(r io.Reader) (*Payload, error) {
	header := make([]byte, len(fileMagic)+2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	}
	if string(header[:len(fileMagic)]) != fileMagic {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(header[len(fileMagic):]); v != fileVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadVersion, v)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return decodeBody(zr)
}

func decodeBody(r io.Reader) (*Payload, error) {
	p := &Payload{}

	var err error
	if p.ZoningName, err = readString(r, maxNameLen); err != nil {
		return nil, err
	}
	if p.SegmentationName, err = readString(r, maxNameLen); err != nil {
		return nil, err
	}
	if p.TimeFormat, err = readString(r, maxNameLen); err != nil {
		return nil, err
	}

	zoneCount, err := readUint32(r, maxCount)
	if err != nil {
		return nil, err
	}
	if zoneCount > 0 {
		p.ZoneIDs = make([]string, zoneCount)
		for i := range p.ZoneIDs {
			if p.ZoneIDs[i], err = readString(r, maxZoneIDLen); err != nil {
				return nil, err
			}
		}
	}

	width, err := readUint32(r, maxCount)
	if err != nil {
		return nil, err
	}
	segCount, err := readUint32(r, maxCount)
	if err != nil {
		return nil, err
	}

	p.Data = make(map[string][]float64, segCount)
	buf := make([]byte, 8)
	for range segCount {
		key, err := readString(r, maxNameLen)
		if err != nil {
			return nil, err
		}
		if _, dup := p.Data[key]; dup {
			return nil, fmt.Errorf("%w: segment %q repeated", ErrCorrupt, key)
		}
		vals := make([]float64, width)
		for i := range vals {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
			vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
		}
		p.Data[key] = vals
	}

	return p, nil
}

// EncodeFile writes p to path, creating or truncating the file.
func EncodeFile(path string, p *Payload) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, p); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// DecodeFile reads one payload from the file at path.
func DecodeFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)

	return err
}

func readString(r io.Reader, limit uint32) (string, error) {
	n, err := readUint32(r, limit)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return string(buf), nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])

	return err
}

func readUint32(r io.Reader, limit uint32) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	v := binary.LittleEndian.Uint32(buf[:])
	if v > limit {
		return 0, fmt.Errorf("%w: length %d exceeds limit %d", ErrCorrupt, v, limit)
	}

	return v, nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])

	return err
}

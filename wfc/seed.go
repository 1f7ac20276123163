package wfc

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/hexforge/layout"
)

// Shape selects the output layout family of a Seed.
type Shape uint32

const (
	// ShapeHexagonal produces a layout.Hexagonal of Seed.Radius.
	ShapeHexagonal Shape = iota
	// ShapeSquare produces a layout.Square of Seed.Width × Seed.Height.
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeHexagonal:
		return "hexagonal"
	case ShapeSquare:
		return "square"
	default:
		return fmt.Sprintf("Shape(%d)", uint32(s))
	}
}

// Seed is everything needed to reproduce one generation run: the output shape
// and the RNG seed. Radius is used by ShapeHexagonal, Width and Height by
// ShapeSquare.
type Seed struct {
	Shape         Shape
	Radius        int
	Width, Height int
	RNG           uint64
}

// seedEncoding is RFC 4648 base32 without padding.
var seedEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// HexagonalSeed returns a seed for a hexagonal output of the given radius.
func HexagonalSeed(radius int, rng uint64) Seed {
	return Seed{Shape: ShapeHexagonal, Radius: radius, RNG: rng}
}

// SquareSeed returns a seed for a width × height output.
func SquareSeed(width, height int, rng uint64) Seed {
	return Seed{Shape: ShapeSquare, Width: width, Height: height, RNG: rng}
}

// SeedFor returns the seed describing l with the given RNG seed. Only the
// layouts of package layout are supported.
func SeedFor(l layout.Layout, rng uint64) (Seed, error) {
	switch v := l.(type) {
	case layout.Hexagonal:
		return HexagonalSeed(v.Radius, rng), nil
	case layout.Square:
		return SquareSeed(v.Width, v.Height, rng), nil
	default:
		return Seed{}, fmt.Errorf("seed for %v: %w", l, ErrSeedShape)
	}
}

// Layout builds the output layout described by the seed.
func (s Seed) Layout() (layout.Layout, error) {
	switch s.Shape {
	case ShapeHexagonal:
		h, err := layout.NewHexagonal(s.Radius)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSeedShape, err)
		}
		return h, nil
	case ShapeSquare:
		q, err := layout.NewSquare(s.Width, s.Height)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSeedShape, err)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("shape %v: %w", s.Shape, ErrSeedShape)
	}
}

// MarshalBinary packs the seed as a sequence of variable-width integers:
// shape, then radius or width and height, then the RNG seed. An integer
// below 251 takes one byte; larger values take a marker byte (251, 252, 253)
// followed by a little-endian uint16, uint32 or uint64.
func (s Seed) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 32)
	buf = appendVarint(buf, uint64(s.Shape))
	switch s.Shape {
	case ShapeHexagonal:
		if s.Radius < 0 {
			return nil, fmt.Errorf("radius %d: %w", s.Radius, ErrSeedShape)
		}
		buf = appendVarint(buf, uint64(s.Radius))
	case ShapeSquare:
		if s.Width < 0 || s.Height < 0 {
			return nil, fmt.Errorf("size %dx%d: %w", s.Width, s.Height, ErrSeedShape)
		}
		buf = appendVarint(buf, uint64(s.Width))
		buf = appendVarint(buf, uint64(s.Height))
	default:
		return nil, fmt.Errorf("shape %v: %w", s.Shape, ErrSeedShape)
	}
	return appendVarint(buf, s.RNG), nil
}

// UnmarshalBinary decodes the layout written by MarshalBinary. Trailing bytes
// and integers not in their shortest form are rejected. Dimensions are only
// range-checked; Layout enforces the layout size limits.
func (s *Seed) UnmarshalBinary(data []byte) error {
	r := varintReader{buf: data}
	shape := r.next()
	var out Seed
	switch Shape(shape) {
	case ShapeHexagonal:
		out = HexagonalSeed(r.nextInt(), 0)
	case ShapeSquare:
		w := r.nextInt()
		out = SquareSeed(w, r.nextInt(), 0)
	default:
		if r.err != nil {
			return r.err
		}
		return fmt.Errorf("shape %d: %w", shape, ErrSeedShape)
	}
	out.RNG = r.next()
	if r.err != nil {
		return r.err
	}
	if len(r.buf) != 0 {
		return fmt.Errorf("%d trailing bytes: %w", len(r.buf), ErrSeedEncoding)
	}
	*s = out
	return nil
}

// String returns the base32 text form, e.g. "AAEPWOIF" for
// HexagonalSeed(8, 1337).
func (s Seed) String() string {
	b, err := s.MarshalBinary()
	if err != nil {
		return fmt.Sprintf("Seed(invalid: %v)", err)
	}
	return seedEncoding.EncodeToString(b)
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, seedEncoding.EncodedLen(len(b)))
	seedEncoding.Encode(out, b)
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	b := make([]byte, seedEncoding.DecodedLen(len(text)))
	n, err := seedEncoding.Decode(b, text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedEncoding, err)
	}
	return s.UnmarshalBinary(b[:n])
}

// ParseSeed decodes the text form produced by Seed.String.
func ParseSeed(text string) (Seed, error) {
	var s Seed
	if err := s.UnmarshalText([]byte(text)); err != nil {
		return Seed{}, err
	}
	return s, nil
}

const (
	varint16 = 251
	varint32 = 252
	varint64 = 253
)

func appendVarint(buf []byte, v uint64) []byte {
	switch {
	case v < varint16:
		return append(buf, byte(v))
	case v <= math.MaxUint16:
		return binary.LittleEndian.AppendUint16(append(buf, varint16), uint16(v))
	case v <= math.MaxUint32:
		return binary.LittleEndian.AppendUint32(append(buf, varint32), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(buf, varint64), v)
	}
}

// varintReader consumes integers written by appendVarint. The first failure
// is kept in err and every later read returns 0.
type varintReader struct {
	buf []byte
	err error
}

func (r *varintReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = fmt.Errorf("truncated seed: %w", ErrSeedEncoding)
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *varintReader) next() uint64 {
	head := r.take(1)
	if head == nil {
		return 0
	}
	var v, least uint64
	switch head[0] {
	case varint16:
		b := r.take(2)
		if b == nil {
			return 0
		}
		v, least = uint64(binary.LittleEndian.Uint16(b)), varint16
	case varint32:
		b := r.take(4)
		if b == nil {
			return 0
		}
		v, least = uint64(binary.LittleEndian.Uint32(b)), math.MaxUint16+1
	case varint64:
		b := r.take(8)
		if b == nil {
			return 0
		}
		v, least = binary.LittleEndian.Uint64(b), math.MaxUint32+1
	default:
		if head[0] > varint64 {
			r.err = fmt.Errorf("varint marker %d: %w", head[0], ErrSeedEncoding)
			return 0
		}
		return uint64(head[0])
	}
	// Only the shortest form is valid.
	if v < least {
		r.err = fmt.Errorf("varint %d after marker %d has a shorter form: %w", v, head[0], ErrSeedEncoding)
		return 0
	}
	return v
}

func (r *varintReader) nextInt() int {
	v := r.next()
	if v > math.MaxInt32 {
		if r.err == nil {
			r.err = fmt.Errorf("dimension %d: %w", v, ErrSeedShape)
		}
		return 0
	}
	return int(v)
}

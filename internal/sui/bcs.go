package sui

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when a BCS value is truncated
var ErrUnexpectedEOF = errors.New("bcs: unexpected end of input")

// maxULEB128Bytes bounds the length of an encoded u64
const maxULEB128Bytes = 10

// Encoder writes BCS (Binary Canonical Serialization) values
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder creates an empty encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded output
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) WriteU8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

func (e *Encoder) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// WriteULEB128 writes a variable length unsigned integer (lengths and enum tags)
func (e *Encoder) WriteULEB128(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			e.buf.WriteByte(b | 0x80)
			continue
		}
		e.buf.WriteByte(b)
		return
	}
}

// WriteFixed writes raw bytes without a length prefix
func (e *Encoder) WriteFixed(b []byte) {
	e.buf.Write(b)
}

// WriteBytes writes a length-prefixed byte vector
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteULEB128(uint64(len(b)))
	e.buf.Write(b)
}

func (e *Encoder) WriteString(s string) {
	e.WriteBytes([]byte(s))
}

// Decoder reads BCS values from a byte slice
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a decoder over data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("bcs: invalid bool value %d", b)
	}
}

func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadULEB128 reads a variable length unsigned integer. Non-canonical encodings are rejected.
func (d *Decoder) ReadULEB128() (uint64, error) {
	var v uint64
	for i := 0; i < maxULEB128Bytes; i++ {
		b, err := d.ReadU8()
		if err != nil {
			return 0, err
		}
		if i == maxULEB128Bytes-1 && b > 1 {
			return 0, errors.New("bcs: uleb128 overflow")
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, errors.New("bcs: non-canonical uleb128")
			}
			return v, nil
		}
	}
	return 0, errors.New("bcs: uleb128 too long")
}

// ReadLength reads a vector length, bounded by the remaining input
func (d *Decoder) ReadLength() (int, error) {
	n, err := d.ReadULEB128()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.Remaining()) {
		return 0, ErrUnexpectedEOF
	}
	return int(n), nil
}

// ReadFixed reads n raw bytes
func (d *Decoder) ReadFixed(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadBytes reads a length-prefixed byte vector
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	return d.ReadFixed(n)
}

func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

package trlevel

import (
	"encoding/binary"
	"fmt"
)

// cursor reads sequentially from an immutable buffer. base is the absolute
// offset of buf[0] in the original input, so sub-cursors report positions the
// caller can find in the file.
type cursor struct {
	buf  []byte
	off  int
	base int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// pos returns the absolute position of the next read.
func (c *cursor) pos() int {
	return c.base + c.off
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// seek moves to an offset relative to the start of this cursor's buffer. Only
// used to dereference pointers into a blob.
func (c *cursor) seek(offset int) error {
	if offset < 0 || offset > len(c.buf) {
		return newError(ErrOutOfBounds, c.base+offset, "seek to %d in %d bytes", offset, len(c.buf))
	}
	c.off = offset
	return nil
}

func (c *cursor) truncated(want int) error {
	return newError(ErrTruncatedInput, c.pos(), "need %d bytes, %d remain", want, c.remaining())
}

// readFixed returns the next n bytes without copying.
func (c *cursor) readFixed(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, c.truncated(n)
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

// sub returns a cursor over the next n bytes and advances past them.
func (c *cursor) sub(n int) (*cursor, error) {
	start := c.pos()
	b, err := c.readFixed(n)
	if err != nil {
		return nil, err
	}
	return &cursor{buf: b, base: start}, nil
}

// read decodes one fixed-size value (scalar, array or struct of those).
func (c *cursor) read(v any) error {
	size := binary.Size(v)
	if size < 0 {
		panic(fmt.Sprintf("trlevel: %T has no fixed size", v))
	}
	b, err := c.readFixed(size)
	if err != nil {
		return err
	}
	_, err = binary.Decode(b, binary.LittleEndian, v)
	return err
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.readFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) i16() (int16, error) {
	v, err := c.u16()
	return int16(v), err
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readArray decodes count fixed-size records. The size check happens before
// allocating so a corrupt count cannot trigger a huge allocation. A zero count
// yields a nil slice.
func readArray[T any](c *cursor, count int) ([]T, error) {
	if count == 0 {
		return nil, nil
	}
	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		panic(fmt.Sprintf("trlevel: %T has no fixed size", zero))
	}
	if count < 0 || count > c.remaining()/size {
		return nil, c.truncated(mulSat(count, size))
	}
	b, _ := c.readFixed(count * size)
	out := make([]T, count)
	if _, err := binary.Decode(b, binary.LittleEndian, out); err != nil {
		return nil, err
	}
	return out, nil
}

// readCounted reads a count of type N followed by that many records.
func readCounted[T any, N uint16 | uint32](c *cursor) ([]T, error) {
	var n N
	if err := c.read(&n); err != nil {
		return nil, err
	}
	return readArray[T](c, int(n))
}

// readTranslated reads count on-disk records and converts each to its
// canonical form.
func readTranslated[B, T any](c *cursor, count int, translate func(B) T) ([]T, error) {
	bins, err := readArray[B](c, count)
	if err != nil || bins == nil {
		return nil, err
	}
	out := make([]T, len(bins))
	for i, b := range bins {
		out[i] = translate(b)
	}
	return out, nil
}

// alloc makes a slice of n elements, or nil for an empty table.
func alloc[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

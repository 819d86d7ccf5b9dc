package peg

import (
	"io"
	"os"
)

// ElementCodec decodes fixed-width elements out of a raw byte buffer, so
// FileSource can serve element types other than byte (e.g. a 4-byte token
// stream) while still reading the file in bulk.
type ElementCodec[E any] struct {
	// Size is the width in bytes of one encoded element. Must be >= 1.
	Size int
	// Decode converts exactly Size bytes into one element.
	Decode func([]byte) E
}

func byteCodec() ElementCodec[byte] {
	return ElementCodec[byte]{
		Size:   1,
		Decode: func(b []byte) byte { return b[0] },
	}
}

// fileBuffer is one of the two windows FileSource keeps resident. It
// covers the half-open element range [from, to) of the underlying file.
type fileBuffer struct {
	from, to Pos
	data     []byte
}

func (b *fileBuffer) covers(pos Pos) bool {
	return b.data != nil && pos >= b.from && pos < b.to
}

// FileSource is the double-buffered file-backed Source variant described
// by the input source component: two fixed-size, element-aligned buffers
// cover contiguous file ranges, and dereferencing a position outside both
// triggers exactly one reload of whichever buffer is least recently used.
type FileSource[E any] struct {
	f            *os.File
	codec        ElementCodec[E]
	bufElems     int // buffer capacity, in elements
	length       int64
	buf          [2]fileBuffer
	active       int // index of the buffer consulted first
	committed    Pos // elements strictly before this may be discarded
}

// NewFileSource opens path and returns a FileSource reading bufSizeElems
// elements per buffer fill, decoding elements with codec.
func NewFileSource[E any](path string, bufSizeElems int, codec ElementCodec[E]) (*FileSource[E], error) {
	if bufSizeElems <= 0 {
		return nil, errorf("file source buffer size must be positive, got %d", bufSizeElems)
	}
	if codec.Size <= 0 || codec.Decode == nil {
		return nil, errorf("file source element codec is incomplete")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	length := info.Size() / int64(codec.Size)
	src := &FileSource[E]{
		f:        f,
		codec:    codec,
		bufElems: bufSizeElems,
		length:   length,
	}
	return src, nil
}

// NewByteFileSource is the common-case constructor: one byte per element.
func NewByteFileSource(path string, bufSizeElems int) (*FileSource[byte], error) {
	return NewFileSource[byte](path, bufSizeElems, byteCodec())
}

func (s *FileSource[E]) Begin() Pos {
	return 0
}

func (s *FileSource[E]) Len() int64 {
	return s.length
}

// Close releases the underlying file handle.
func (s *FileSource[E]) Close() error {
	return s.f.Close()
}

func (s *FileSource[E]) At(pos Pos) (E, bool) {
	var zero E
	if pos < 0 || int64(pos) >= s.length {
		return zero, false
	}
	if pos < s.committed {
		// Already released: no legitimate parse ever re-derefs behind the
		// committed window, since Context.Restore rejects it first.
		return zero, false
	}

	if s.buf[s.active].covers(pos) {
		return s.codec.Decode(s.elementBytes(s.active, pos)), true
	}
	other := 1 - s.active
	if s.buf[other].covers(pos) {
		s.active = other
		return s.codec.Decode(s.elementBytes(s.active, pos)), true
	}

	// Neither buffer covers pos: reload the buffer not currently active
	// (the one less likely to be needed again immediately) to cover the
	// element-aligned window containing pos.
	if err := s.reload(other, pos); err != nil {
		return zero, false
	}
	s.active = other
	if !s.buf[s.active].covers(pos) {
		return zero, false
	}
	return s.codec.Decode(s.elementBytes(s.active, pos)), true
}

func (s *FileSource[E]) elementBytes(which int, pos Pos) []byte {
	b := &s.buf[which]
	off := int64(pos-b.from) * int64(s.codec.Size)
	return b.data[off : off+int64(s.codec.Size)]
}

func (s *FileSource[E]) reload(which int, pos Pos) error {
	from := (int64(pos) / int64(s.bufElems)) * int64(s.bufElems)
	count := s.bufElems
	if from+int64(count) > s.length {
		count = int(s.length - from)
	}
	if count <= 0 {
		return errorCornerCase
	}

	want := count * s.codec.Size
	data := make([]byte, want)
	if _, err := s.f.Seek(from*int64(s.codec.Size), io.SeekStart); err != nil {
		return err
	}
	n, err := io.ReadFull(s.f, data)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	n -= n % s.codec.Size
	data = data[:n]

	s.buf[which] = fileBuffer{
		from: Pos(from),
		to:   Pos(from) + Pos(n/s.codec.Size),
		data: data,
	}
	return nil
}

// ReleasePrefix discards any buffer fully behind before, implementing
// prefixReleaser for Context.leaveCutFrame.
func (s *FileSource[E]) ReleasePrefix(before Pos) {
	if before > s.committed {
		s.committed = before
	}
	for i := range s.buf {
		if s.buf[i].data != nil && s.buf[i].to <= before {
			s.buf[i].data = nil
		}
	}
}

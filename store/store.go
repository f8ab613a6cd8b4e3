// SPDX-License-Identifier: MIT

// Package store persists matrices in the matrix binary format and maps them
// back into memory with github.com/edsrzf/mmap-go.
//
// A *Mapped reads and writes elements directly in the mapped file, and it
// implements matrix.Matrix, so every matrix kernel accepts it as an operand:
//
//	m, _ := store.Open("weights.tmx")
//	defer m.Close()
//	p, _ := matrix.Mul(m, x)
//
// A Mapped is not safe for concurrent writes.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/tinymatrix/matrix"
)

// ErrReadOnly is returned by Set on a read-only mapping.
var ErrReadOnly = errors.New("store: mapping is read-only")

// ErrClosed is returned by accessors after Close.
var ErrClosed = errors.New("store: mapping is closed")

const filePerm = 0o644

// Save writes m to path in the matrix binary format, replacing any existing file.
// The encoding goes to a temporary file in the same directory, which is
// flushed and then renamed over path. Mappings of the previous file, including
// m itself when it maps path, keep reading the old contents until closed.
func Save(path string, m matrix.Matrix) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("store: save %s: %w", path, err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: save %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	err = write(f, m)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, filePerm)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		return fmt.Errorf("store: save %s: %w", path, err)
	}

	return nil
}

// write sizes f for m and fills it through a temporary mapping.
func write(f *os.File, m matrix.Matrix) (err error) {
	rows, cols := m.Rows(), m.Cols()
	if err = f.Truncate(int64(matrix.EncodedSize(rows, cols))); err != nil {
		return err
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	defer func() {
		if uerr := data.Unmap(); err == nil && uerr != nil {
			err = fmt.Errorf("unmap: %w", uerr)
		}
	}()

	matrix.PutHeader(data, rows, cols)
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			putFloat(data, offset(cols, i, j), v)
		}
	}

	if err = data.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

// Mapped is a matrix backed by a memory-mapped file.
type Mapped struct {
	file     *os.File
	data     mmap.MMap
	rows     int
	cols     int
	writable bool
}

var _ matrix.Matrix = (*Mapped)(nil)

// Open maps the file at path read-only.
func Open(path string) (*Mapped, error) {
	return open(path, os.O_RDONLY, mmap.RDONLY)
}

// OpenRW maps the file at path read-write; Set writes through to the file.
func OpenRW(path string) (*Mapped, error) {
	return open(path, os.O_RDWR, mmap.RDWR)
}

func open(path string, flag, prot int) (*Mapped, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if info.Size() < matrix.HeaderSize {
		_ = f.Close()
		return nil, fmt.Errorf("store: open %s: %d bytes: %w", path, info.Size(), matrix.ErrBadEncoding)
	}

	data, err := mmap.Map(f, prot, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("store: open %s: map: %w", path, err)
	}

	rows, cols, err := matrix.DecodeHeader(data)
	if err != nil {
		_ = data.Unmap()
		_ = f.Close()
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	return &Mapped{
		file:     f,
		data:     data,
		rows:     rows,
		cols:     cols,
		writable: prot == mmap.RDWR,
	}, nil
}

// Rows returns the number of rows recorded in the header.
func (m *Mapped) Rows() int { return m.rows }

// Cols returns the number of columns recorded in the header.
func (m *Mapped) Cols() int { return m.cols }

// At reads element (i, j) straight from the mapping.
func (m *Mapped) At(i, j int) (float64, error) {
	if err := m.check(i, j); err != nil {
		return 0, fmt.Errorf("Mapped.At(%d,%d): %w", i, j, err)
	}

	return getFloat(m.data, offset(m.cols, i, j)), nil
}

// Set writes element (i, j) into the mapping. Call Flush to force it to disk.
func (m *Mapped) Set(i, j int, v float64) error {
	if err := m.check(i, j); err != nil {
		return fmt.Errorf("Mapped.Set(%d,%d): %w", i, j, err)
	}
	if !m.writable {
		return fmt.Errorf("Mapped.Set(%d,%d): %w", i, j, ErrReadOnly)
	}
	putFloat(m.data, offset(m.cols, i, j), v)

	return nil
}

// Clone copies the mapped matrix into an in-memory *matrix.Dense.
// A closed mapping clones to an empty 0×0 matrix.
func (m *Mapped) Clone() matrix.Matrix {
	d, err := m.Dense()
	if err != nil {
		return matrix.MustDense(matrix.NewDense(0, 0))
	}

	return d
}

// Dense decodes the whole mapping into a fresh *matrix.Dense.
func (m *Mapped) Dense(opts ...matrix.Option) (*matrix.Dense, error) {
	if m.data == nil {
		return nil, ErrClosed
	}
	d, err := matrix.NewDense(0, 0, opts...)
	if err != nil {
		return nil, err
	}
	if err = d.UnmarshalBinary(m.data[:matrix.EncodedSize(m.rows, m.cols)]); err != nil {
		return nil, err
	}

	return d, nil
}

// Flush syncs pending writes of a read-write mapping to disk.
func (m *Mapped) Flush() error {
	if m.data == nil {
		return ErrClosed
	}
	if !m.writable {
		return nil
	}

	return m.data.Flush()
}

// Close flushes (read-write only), unmaps and closes the file.
// Calling Close twice is a no-op.
func (m *Mapped) Close() error {
	if m.data == nil {
		return nil
	}
	var errs []error
	if m.writable {
		errs = append(errs, m.data.Flush())
	}
	errs = append(errs, m.data.Unmap(), m.file.Close())
	m.data, m.file = nil, nil

	return errors.Join(errs...)
}

func (m *Mapped) check(i, j int) error {
	if m.data == nil {
		return ErrClosed
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return matrix.ErrOutOfRange
	}

	return nil
}

// offset returns the byte offset of element (i, j) in an encoded buffer.
func offset(cols, i, j int) int {
	return matrix.HeaderSize + (i*cols+j)*matrix.ElemSize
}

func getFloat(b []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+matrix.ElemSize]))
}

func putFloat(b []byte, off int, v float64) {
	binary.LittleEndian.PutUint64(b[off:off+matrix.ElemSize], math.Float64bits(v))
}

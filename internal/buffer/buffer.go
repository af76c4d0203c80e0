// Package buffer owns the bytes of the file being edited. A Document is a
// flat byte sequence with three mutations: insert, delete and replace, plus
// a dirty flag that tracks unsaved changes.
//
// Offsets handed to the mutation methods are always derived from the
// coordinate mapper, which guarantees the bounds; an offset outside the
// document is therefore a programming error and panics instead of returning
// an error.
package buffer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// rw-r--r--, only used when saving creates the file.
const createFileMode = 0644

// Document is the single owner of the in-memory byte sequence of one file.
type Document struct {
	filename string
	contents []byte
	dirty    bool
	readOnly bool
}

// NewDocument wraps an already-loaded byte sequence. The slice is owned by
// the document afterwards.
func NewDocument(filename string, contents []byte) *Document {
	return &Document{filename: filename, contents: contents}
}

// Load reads the regular file denoted by filename into a new document and
// notes whether the file is writable by us.
func Load(filename string) (*Document, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %q: %w", filename, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", filename)
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}

	d := NewDocument(filename, contents)
	d.readOnly = unix.Access(filename, unix.W_OK) != nil
	return d, nil
}

// Save writes the full contents back to the file it was loaded from and
// clears the dirty flag. It returns the number of bytes written.
func (d *Document) Save() (int, error) {
	if err := os.WriteFile(d.filename, d.contents, createFileMode); err != nil {
		return 0, err
	}
	d.dirty = false
	return len(d.contents), nil
}

func (d *Document) Filename() string { return d.filename }
func (d *Document) Len() int         { return len(d.contents) }
func (d *Document) Dirty() bool      { return d.dirty }
func (d *Document) ReadOnly() bool   { return d.readOnly }

// Byte returns the byte at offset.
func (d *Document) Byte(offset int) byte {
	d.check(offset)
	return d.contents[offset]
}

// Insert grows the document by one byte, shifting everything at and after
// offset one position right. Unlike the other mutations, offset may equal
// the length, which appends.
func (d *Document) Insert(offset int, b byte) {
	if offset < 0 || offset > len(d.contents) {
		panic(fmt.Sprintf("buffer: insert offset %d out of range [0,%d]", offset, len(d.contents)))
	}
	d.contents = append(d.contents, 0)
	copy(d.contents[offset+1:], d.contents[offset:])
	d.contents[offset] = b
	d.dirty = true
}

// Delete removes the byte at offset, shifting the remainder one position
// left. Whether the cursor must move afterwards is the caller's contract,
// not the buffer's.
func (d *Document) Delete(offset int) {
	d.check(offset)
	d.contents = append(d.contents[:offset], d.contents[offset+1:]...)
	d.dirty = true
}

// Replace overwrites the byte at offset in place.
func (d *Document) Replace(offset int, b byte) {
	d.check(offset)
	d.contents[offset] = b
	d.dirty = true
}

// Increment adds amount to the byte at offset with natural 8-bit
// wraparound.
func (d *Document) Increment(offset, amount int) {
	d.check(offset)
	d.contents[offset] += byte(amount)
	d.dirty = true
}

func (d *Document) check(offset int) {
	if offset < 0 || offset >= len(d.contents) {
		panic(fmt.Sprintf("buffer: offset %d out of range [0,%d)", offset, len(d.contents)))
	}
}

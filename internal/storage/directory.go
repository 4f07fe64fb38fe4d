package storage

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/multierr"
)

// +----------------------+ 0
// | magic (0xCC)         |
// +----------------------+ 1
// | name, 8 bytes        | zero-padded
// +----------------------+ 9
// | page_count (u8)      |
// +----------------------+ 10
// | column_count (u8)    |
// +----------------------+ 11
// | columns              | column_count x [tag(1) + name(8)]
// +----------------------+
// | page names           | page_count x name(8)
// +----------------------+
//
// A directory never dereferences the page names it stores; they are
// labels, not validated foreign keys.
type Directory struct {
	name    FixedName
	columns []Column
	names   []FixedName
}

// NewDirectory creates an empty directory over the given schema.
// The column list is copied, not shared; cols may be nil.
func NewDirectory(name string, cols []Column) (*Directory, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	d := &Directory{
		name:  MakeFixedName(name),
		names: make([]FixedName, 0, PagesPerDirectory),
	}
	if len(cols) > 0 {
		d.columns = make([]Column, len(cols))
		copy(d.columns, cols)
	}
	return d, nil
}

// AddPage appends a copy of the page's name field. The on-disk
// page_count is derived from len(names) at encode time, so the two
// cannot diverge. The page itself stays independent of the directory.
func (d *Directory) AddPage(p *Page) error {
	if len(d.names) >= PagesPerDirectory {
		return &CapacityError{Count: len(d.names)}
	}
	d.names = append(d.names, p.name)
	return nil
}

// Encode writes the directory image in wire order: magic, name,
// page_count, column_count, columns, page names.
func (d *Directory) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte(DirectoryMagic)
	buf.Write(d.name[:])
	buf.WriteByte(byte(len(d.names)))
	buf.WriteByte(byte(len(d.columns)))

	for _, col := range d.columns {
		buf.WriteByte(byte(col.Type))
		buf.Write(col.name[:])
	}
	for _, name := range d.names {
		buf.Write(name[:])
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return NewStorageError("write directory", err)
	}
	return nil
}

// DecodeDirectory reads a directory image back. Magic is validated
// first; after that the header counts are trusted as read (0..255),
// so a lying header fails naturally on the short read that follows.
func DecodeDirectory(r io.Reader) (*Directory, error) {
	var magic [1]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, NewStorageError("read directory magic", err)
	}
	if magic[0] != DirectoryMagic {
		return nil, &MagicMismatchError{Expected: DirectoryMagic, Found: magic[0]}
	}

	d := &Directory{}
	if _, err := io.ReadFull(r, d.name[:]); err != nil {
		return nil, NewStorageError("read directory name", noEOF(err))
	}

	var counts [2]byte // page_count, column_count
	if _, err := io.ReadFull(r, counts[:]); err != nil {
		return nil, NewStorageError("read directory counts", noEOF(err))
	}
	pageCount, columnCount := int(counts[0]), int(counts[1])

	d.columns = make([]Column, 0, columnCount)
	for i := 0; i < columnCount; i++ {
		var rec [1 + NameSize]byte
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, NewStorageError("read directory column", noEOF(err))
		}
		col := Column{Type: ColumnType(rec[0])}
		copy(col.name[:], rec[1:])
		d.columns = append(d.columns, col)
	}

	d.names = make([]FixedName, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		var name FixedName
		if _, err := io.ReadFull(r, name[:]); err != nil {
			return nil, NewStorageError("read directory page name", noEOF(err))
		}
		d.names = append(d.names, name)
	}
	return d, nil
}

// Save persists the directory to path. Same mid-write caveat as
// Page.Save: a failed write may leave a truncated file.
func (d *Directory) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return NewStorageError("create directory file", err)
	}
	err = d.Encode(f)
	return multierr.Append(err, f.Close())
}

// LoadDirectory reads a directory file written by Save.
func LoadDirectory(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewStorageError("open directory file", err)
	}
	d, err := DecodeDirectory(f)
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return nil, NewStorageError("close directory file", err)
	}
	return d, nil
}

func (d *Directory) Name() string {
	return d.name.String()
}

func (d *Directory) PageCount() int {
	return len(d.names)
}

func (d *Directory) ColumnCount() int {
	return len(d.columns)
}

func (d *Directory) PageNames() []string {
	out := make([]string, len(d.names))
	for i, name := range d.names {
		out[i] = name.String()
	}
	return out
}

// Columns returns a copy; the directory owns its schema.
func (d *Directory) Columns() []Column {
	out := make([]Column, len(d.columns))
	copy(out, d.columns)
	return out
}

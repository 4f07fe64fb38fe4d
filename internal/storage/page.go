package storage

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/multierr"
)

// +------------------+ 0
// | magic (0xCA)     |
// +------------------+ 1
// | name, 8 bytes    | zero-padded
// +------------------+ 9
// | content          | 256 bytes, one 0xED terminator
// |                  | marks logical end-of-data
// +------------------+ 265
type Page struct {
	name    FixedName
	content [PageContentSize]byte
}

// NewPage builds an immutable page from a name and a payload. Names
// longer than NameSize fail; payloads longer than PageContentSize-1
// are silently truncated so the terminator always fits. The truncation
// is the content capacity cap, not an error path.
func NewPage(name string, payload []byte) (*Page, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	p := &Page{name: MakeFixedName(name)}
	n := copy(p.content[:PageContentSize-1], payload)
	p.content[n] = PageEnd
	return p, nil
}

// Encode writes the page image: magic(1), name(8), content(256).
// Content is fixed-width, so there is no length prefix.
func (p *Page) Encode(w io.Writer) error {
	buf := make([]byte, 0, 1+NameSize+PageContentSize)
	buf = append(buf, PageMagic)
	buf = append(buf, p.name[:]...)
	buf = append(buf, p.content[:]...)

	if _, err := w.Write(buf); err != nil {
		return NewStorageError("write page", err)
	}
	return nil
}

// DecodePage reads a page image back. The magic byte is validated
// before anything else is read, so a foreign file fails the same way
// no matter what follows its first byte. A short stream surfaces as a
// wrapped io.ErrUnexpectedEOF.
func DecodePage(r io.Reader) (*Page, error) {
	var magic [1]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, NewStorageError("read page magic", err)
	}
	if magic[0] != PageMagic {
		return nil, &MagicMismatchError{Expected: PageMagic, Found: magic[0]}
	}

	p := &Page{}
	if _, err := io.ReadFull(r, p.name[:]); err != nil {
		return nil, NewStorageError("read page name", noEOF(err))
	}
	if _, err := io.ReadFull(r, p.content[:]); err != nil {
		return nil, NewStorageError("read page content", noEOF(err))
	}
	return p, nil
}

// Save persists the page to path. A failure mid-write can leave a
// truncated file behind; this layer does not roll that back.
func (p *Page) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return NewStorageError("create page file", err)
	}
	err = p.Encode(f)
	return multierr.Append(err, f.Close())
}

// LoadPage reads a page file written by Save.
func LoadPage(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewStorageError("open page file", err)
	}
	p, err := DecodePage(f)
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return nil, NewStorageError("close page file", err)
	}
	return p, nil
}

func (p *Page) Name() string {
	return p.name.String()
}

// Content returns a copy of the bytes before the first terminator.
// A buffer with no terminator at all (foreign or hand-crafted data)
// yields the whole buffer rather than an error.
func (p *Page) Content() []byte {
	end := bytes.IndexByte(p.content[:], PageEnd)
	if end < 0 {
		end = PageContentSize
	}
	out := make([]byte, end)
	copy(out, p.content[:end])
	return out
}

// io.ReadFull reports a clean EOF when zero bytes arrive, but a stream
// that ends anywhere inside a fixed-width field is equally truncated.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

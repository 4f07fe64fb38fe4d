package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

const (
	DefaultPageExt = ".spg"
	DefaultDirExt  = ".sdir"
)

// Store maps record names onto files in a single working directory.
// The record codecs themselves stay path-free; everything the CLI and
// the shell do goes through here. Concurrent save/load of the same
// name is the caller's problem, same as for the raw codecs.
type Store struct {
	Workdir string
	PageExt string
	DirExt  string
}

// Open ensures the working directory exists and returns a store over
// it. Empty extensions fall back to the defaults.
func Open(workdir string, pageExt, dirExt string) (*Store, error) {
	if pageExt == "" {
		pageExt = DefaultPageExt
	}
	if dirExt == "" {
		dirExt = DefaultDirExt
	}
	if err := os.MkdirAll(workdir, storage.FileMode0755); err != nil {
		return nil, storage.NewStorageError("create workdir", err)
	}
	return &Store{Workdir: workdir, PageExt: pageExt, DirExt: dirExt}, nil
}

func (s *Store) PagePath(name string) string {
	return filepath.Join(s.Workdir, name+s.PageExt)
}

func (s *Store) DirPath(name string) string {
	return filepath.Join(s.Workdir, name+s.DirExt)
}

func (s *Store) SavePage(p *storage.Page) error {
	return p.Save(s.PagePath(p.Name()))
}

func (s *Store) LoadPage(name string) (*storage.Page, error) {
	return storage.LoadPage(s.PagePath(name))
}

func (s *Store) SaveDirectory(d *storage.Directory) error {
	return d.Save(s.DirPath(d.Name()))
}

func (s *Store) LoadDirectory(name string) (*storage.Directory, error) {
	return storage.LoadDirectory(s.DirPath(name))
}

// Pages lists the names of page files in the workdir, magic-sniffed so
// a stray file with the right extension does not show up. Unreadable
// entries are skipped, not fatal.
func (s *Store) Pages() ([]string, error) {
	return s.list(s.PageExt, storage.PageMagic)
}

// Directories lists the names of directory files in the workdir.
func (s *Store) Directories() ([]string, error) {
	return s.list(s.DirExt, storage.DirectoryMagic)
}

func (s *Store) list(ext string, magic byte) ([]string, error) {
	entries, err := os.ReadDir(s.Workdir)
	if err != nil {
		return nil, storage.NewStorageError("read workdir", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		path := filepath.Join(s.Workdir, e.Name())
		ok, err := sniffMagic(path, magic)
		if err != nil {
			slog.Debug("skipping unreadable entry", "path", path, "err", err)
			continue
		}
		if ok {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	return names, nil
}

func sniffMagic(path string, magic byte) (ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	var b [1]byte
	_, err = io.ReadFull(f, b[:])
	if err != nil {
		return false, multierr.Append(err, f.Close())
	}
	return b[0] == magic, f.Close()
}

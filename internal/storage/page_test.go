package storage

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	p, err := NewPage("page1", []byte("1|Widget|19.99"))
	require.NoError(t, err)

	assert.Equal(t, "page1", p.Name())
	assert.Equal(t, []byte("1|Widget|19.99"), p.Content())
}

func TestNewPageNameTooLong(t *testing.T) {
	_, err := NewPage("ninechars", nil)

	var tooLong *NameTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, "ninechars", tooLong.Name)
	assert.Equal(t, NameSize, tooLong.Max)
}

func TestNewPageEmptyPayload(t *testing.T) {
	p, err := NewPage("empty", nil)
	require.NoError(t, err)
	assert.Empty(t, p.Content())
}

func TestNewPageTruncatesOversizedPayload(t *testing.T) {
	payload := bytes.Repeat([]byte{'x'}, PageContentSize+100)

	p, err := NewPage("big", payload)
	require.NoError(t, err)

	// terminator occupies the last byte of the buffer
	got := p.Content()
	assert.Len(t, got, PageContentSize-1)
	assert.Equal(t, payload[:PageContentSize-1], got)
}

func TestPageEncodeLayout(t *testing.T) {
	p, err := NewPage("page1", []byte("abc"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	img := buf.Bytes()
	require.Len(t, img, 1+NameSize+PageContentSize)
	assert.Equal(t, PageMagic, img[0])
	assert.Equal(t, []byte{'p', 'a', 'g', 'e', '1', 0, 0, 0}, img[1:9])
	assert.Equal(t, []byte{'a', 'b', 'c', PageEnd, 0}, img[9:14])
}

func TestPageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page1.spg")

	p, err := NewPage("page1", []byte("1|Widget|19.99"))
	require.NoError(t, err)
	require.NoError(t, p.Save(path))

	got, err := LoadPage(path)
	require.NoError(t, err)
	assert.Equal(t, "page1", got.Name())
	assert.Equal(t, []byte("1|Widget|19.99"), got.Content())
}

func TestDecodePageBadMagic(t *testing.T) {
	img := make([]byte, 1+NameSize+PageContentSize)
	img[0] = DirectoryMagic // a directory file is not a page

	_, err := DecodePage(bytes.NewReader(img))

	var mismatch *MagicMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, PageMagic, mismatch.Expected)
	assert.Equal(t, DirectoryMagic, mismatch.Found)
}

func TestDecodePageBadMagicIgnoresRest(t *testing.T) {
	// magic is checked before anything else, so even a one-byte file
	// reports the mismatch rather than a short read
	_, err := DecodePage(bytes.NewReader([]byte{0x00}))

	var mismatch *MagicMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, byte(0x00), mismatch.Found)
}

func TestDecodePageShortStream(t *testing.T) {
	img := []byte{PageMagic, 'p', 'a', 'g'}

	_, err := DecodePage(bytes.NewReader(img))

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPageContentNoTerminatorFallback(t *testing.T) {
	// a foreign buffer that never had a terminator written decodes to
	// the whole buffer instead of failing
	img := make([]byte, 1+NameSize+PageContentSize)
	img[0] = PageMagic
	copy(img[1:], "raw")
	for i := 9; i < len(img); i++ {
		img[i] = 'z'
	}

	p, err := DecodePage(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Len(t, p.Content(), PageContentSize)
}

func TestLoadPageMissingFile(t *testing.T) {
	_, err := LoadPage(filepath.Join(t.TempDir(), "nope.spg"))

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open page file", storageErr.Op)
}

package stdbms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stdbms "github.com/AlexanderVinarsky/stDBMS"
)

// The canonical end-to-end flow: build a directory with a typed
// schema, link two pages, persist all three files, reload through the
// store and check every decoded field.
func TestProductsScenario(t *testing.T) {
	s, err := stdbms.OpenStore(t.TempDir(), "", "")
	require.NoError(t, err)

	id, err := stdbms.IntColumn("id")
	require.NoError(t, err)
	name, err := stdbms.StringColumn("name")
	require.NoError(t, err)
	price, err := stdbms.FloatColumn("price")
	require.NoError(t, err)

	d, err := stdbms.NewDirectory("products", []stdbms.Column{id, name, price})
	require.NoError(t, err)

	page1, err := stdbms.NewPage("page1", []byte("1|Widget|19.99"))
	require.NoError(t, err)
	page2, err := stdbms.NewPage("page2", []byte("2|Gadget|29.99"))
	require.NoError(t, err)

	for _, p := range []*stdbms.Page{page1, page2} {
		require.NoError(t, d.AddPage(p))
		require.NoError(t, s.SavePage(p))
	}
	require.NoError(t, s.SaveDirectory(d))

	loadedDir, err := s.LoadDirectory("products")
	require.NoError(t, err)
	assert.Equal(t, "products", loadedDir.Name())
	assert.Equal(t, []string{"page1", "page2"}, loadedDir.PageNames())
	assert.Equal(t, 3, loadedDir.ColumnCount())

	loadedPage, err := s.LoadPage("page1")
	require.NoError(t, err)
	assert.Equal(t, "page1", loadedPage.Name())
	assert.Equal(t, "1|Widget|19.99", string(loadedPage.Content()))
}

func TestLoadPageRejectsDirectoryFile(t *testing.T) {
	s, err := stdbms.OpenStore(t.TempDir(), ".bin", ".bin")
	require.NoError(t, err)

	d, err := stdbms.NewDirectory("mixed", nil)
	require.NoError(t, err)
	require.NoError(t, s.SaveDirectory(d))

	// same extension, so the page loader actually opens the directory
	// file and has to reject it by magic
	_, err = s.LoadPage("mixed")
	var mismatch *stdbms.MagicMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, stdbms.PageMagic, mismatch.Expected)
	assert.Equal(t, stdbms.DirectoryMagic, mismatch.Found)
}

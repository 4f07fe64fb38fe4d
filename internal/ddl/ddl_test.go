package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

func TestParseColumns(t *testing.T) {
	table, cols, err := ParseColumns(
		"CREATE TABLE products (id INT, name VARCHAR(64), price DOUBLE)")
	require.NoError(t, err)

	assert.Equal(t, "products", table)
	require.Len(t, cols, 3)
	assert.Equal(t, storage.ColumnInt, cols[0].Type)
	assert.Equal(t, "id", cols[0].Name())
	assert.Equal(t, storage.ColumnString, cols[1].Type)
	assert.Equal(t, "name", cols[1].Name())
	assert.Equal(t, storage.ColumnFloat, cols[2].Type)
	assert.Equal(t, "price", cols[2].Name())
}

func TestParseColumnsBigintAndText(t *testing.T) {
	_, cols, err := ParseColumns("CREATE TABLE t (n BIGINT, s TEXT, f FLOAT)")
	require.NoError(t, err)

	require.Len(t, cols, 3)
	assert.Equal(t, storage.ColumnInt, cols[0].Type)
	assert.Equal(t, storage.ColumnString, cols[1].Type)
	assert.Equal(t, storage.ColumnFloat, cols[2].Type)
}

func TestParseColumnsUnsupportedType(t *testing.T) {
	_, _, err := ParseColumns("CREATE TABLE t (b BLOB)")

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "b", unsupported.Column)
}

func TestParseColumnsNotCreate(t *testing.T) {
	_, _, err := ParseColumns("SELECT * FROM products")
	assert.ErrorIs(t, err, ErrNotCreateTable)
}

func TestParseColumnsBadSQL(t *testing.T) {
	_, _, err := ParseColumns("CREATE TABLE (")
	assert.Error(t, err)
}

func TestParseColumnsLongName(t *testing.T) {
	_, _, err := ParseColumns("CREATE TABLE t (quantities INT)")

	var tooLong *storage.NameTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, "quantities", tooLong.Name)
}

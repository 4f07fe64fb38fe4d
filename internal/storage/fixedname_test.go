package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedNameRoundTrip(t *testing.T) {
	n := MakeFixedName("page1")
	assert.Equal(t, "page1", n.String())
	assert.Equal(t, byte(0), n[5])
	assert.Equal(t, byte(0), n[7])

	// exact width, no padding left
	assert.Equal(t, "eightchr", MakeFixedName("eightchr").String())
}

func TestFixedNameTruncates(t *testing.T) {
	// the raw primitive truncates silently; the constructors are the
	// ones that reject long names
	assert.Equal(t, "ninechar", MakeFixedName("ninechars").String())
}

func TestFixedNameLossyDecode(t *testing.T) {
	// a foreign file can carry arbitrary bytes in the name field;
	// invalid UTF-8 decodes to the replacement rune, not raw bytes
	n := FixedName{'a', 0xFF, 'b', 0, 0, 0, 0, 0}
	assert.Equal(t, "a�b", n.String())
}

func TestFixedNameEmpty(t *testing.T) {
	var n FixedName
	assert.Equal(t, "", n.String())
}

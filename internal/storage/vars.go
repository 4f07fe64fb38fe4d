package storage

import "fmt"

// On-disk record tags and sizes. Every integer field in both record
// formats is a single unsigned byte, so there is no endianness to pick.
const (
	PageMagic      byte = 0xCA // first byte of a page file
	DirectoryMagic byte = 0xCC // first byte of a directory file

	PageEnd         byte = 0xED // terminator inside the page content buffer
	ColumnDelimiter byte = 0xEE // field separator inside encoded row content

	NameSize        = 8   // fixed width of every name field
	PageContentSize = 256 // fixed page content buffer size

	PagesPerDirectory = 32 // max page-name entries per directory
)

const (
	FileMode0644 = 0o644
	FileMode0755 = 0o755
)

// ColumnType enum, stored on disk as a single tag byte.
type ColumnType uint8

const (
	ColumnInt    ColumnType = 0x00
	ColumnFloat  ColumnType = 0x01
	ColumnString ColumnType = 0x02
)

func (t ColumnType) String() string {
	switch t {
	case ColumnInt:
		return "INT"
	case ColumnFloat:
		return "FLOAT"
	case ColumnString:
		return "STRING"
	default:
		return "unknown"
	}
}

func GetColumnType(s string) (ColumnType, error) {
	switch s {
	case "int", "INT":
		return ColumnInt, nil
	case "float", "FLOAT":
		return ColumnFloat, nil
	case "string", "STRING":
		return ColumnString, nil
	default:
		return 0, fmt.Errorf("invalid column type: %s", s)
	}
}

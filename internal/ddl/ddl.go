// ddl.go - parse CREATE TABLE statements into a directory column schema
package ddl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

var ErrNotCreateTable = errors.New("ddl: statement is not CREATE TABLE")

// UnsupportedTypeError reports a column whose SQL type has no mapping
// onto the three directory column tags.
type UnsupportedTypeError struct {
	Column string
	Type   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("ddl: column %s: unsupported type %s", e.Column, e.Type)
}

// ParseColumns extracts the table name and column schema from a
// CREATE TABLE statement. Column names still have to fit the fixed
// name width, so a long identifier fails the same way it would in
// storage.NewColumn.
func ParseColumns(sql string) (string, []storage.Column, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return "", nil, fmt.Errorf("ddl: parse: %w", err)
	}

	create, ok := stmt.(*sqlparser.DDL)
	if !ok || create.Action != sqlparser.CreateStr || create.TableSpec == nil {
		return "", nil, ErrNotCreateTable
	}

	// the CREATE target lives in NewName; DDL.Table is only set for
	// alter/drop/rename/truncate
	table := create.NewName.Name.String()
	cols := make([]storage.Column, 0, len(create.TableSpec.Columns))
	for _, colDef := range create.TableSpec.Columns {
		typ, ok := mapColumnType(colDef.Type.Type)
		if !ok {
			return "", nil, &UnsupportedTypeError{
				Column: colDef.Name.String(),
				Type:   colDef.Type.Type,
			}
		}

		col, err := storage.NewColumn(typ, colDef.Name.String())
		if err != nil {
			return "", nil, err
		}
		cols = append(cols, col)
	}
	return table, cols, nil
}

func mapColumnType(sqlType string) (storage.ColumnType, bool) {
	switch strings.ToLower(sqlType) {
	case "tinyint", "smallint", "mediumint", "int", "integer", "bigint":
		return storage.ColumnInt, true
	case "float", "double", "real", "decimal", "numeric":
		return storage.ColumnFloat, true
	case "char", "varchar", "text", "tinytext", "mediumtext", "longtext":
		return storage.ColumnString, true
	default:
		return 0, false
	}
}

package storage

import "fmt"

// Column is one descriptor of a directory's schema: a type tag plus a
// fixed-width name. Order in the column list mirrors field order in
// encoded rows. Duplicate names are not rejected here.
type Column struct {
	Type ColumnType
	name FixedName
}

func NewColumn(typ ColumnType, name string) (Column, error) {
	if err := checkName(name); err != nil {
		return Column{}, err
	}
	return Column{Type: typ, name: MakeFixedName(name)}, nil
}

func IntColumn(name string) (Column, error)    { return NewColumn(ColumnInt, name) }
func FloatColumn(name string) (Column, error)  { return NewColumn(ColumnFloat, name) }
func StringColumn(name string) (Column, error) { return NewColumn(ColumnString, name) }

func (c Column) Name() string {
	return c.name.String()
}

func (c Column) String() string {
	return fmt.Sprintf("%s %s", c.Type, c.Name())
}

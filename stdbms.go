// Package stdbms is the top-level facade for the stDBMS persistence
// layer: fixed-layout page and directory records with flat-file
// save/load. External importers use this package; internal/ stays
// internal.
package stdbms

import (
	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
	"github.com/AlexanderVinarsky/stDBMS/internal/store"
)

type (
	Page       = storage.Page
	Directory  = storage.Directory
	Column     = storage.Column
	ColumnType = storage.ColumnType
	FixedName  = storage.FixedName
	Store      = store.Store

	MagicMismatchError = storage.MagicMismatchError
	CapacityError      = storage.CapacityError
	NameTooLongError   = storage.NameTooLongError
	StorageError       = storage.StorageError
)

const (
	PageMagic      = storage.PageMagic
	DirectoryMagic = storage.DirectoryMagic
	PageEnd        = storage.PageEnd

	NameSize          = storage.NameSize
	PageContentSize   = storage.PageContentSize
	PagesPerDirectory = storage.PagesPerDirectory

	ColumnInt    = storage.ColumnInt
	ColumnFloat  = storage.ColumnFloat
	ColumnString = storage.ColumnString
)

var (
	NewPage      = storage.NewPage
	LoadPage     = storage.LoadPage
	NewDirectory = storage.NewDirectory
	NewColumn    = storage.NewColumn
	IntColumn    = storage.IntColumn
	FloatColumn  = storage.FloatColumn
	StringColumn = storage.StringColumn

	LoadDirectory = storage.LoadDirectory

	OpenStore = store.Open
)

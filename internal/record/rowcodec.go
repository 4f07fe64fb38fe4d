package record

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

var (
	ErrSchemaMismatch    = errors.New("record: schema/values mismatch")
	ErrFieldCount        = errors.New("record: field count does not match schema")
	ErrDelimiterInValue  = errors.New("record: string value contains the column delimiter")
	ErrUnsupportedColumn = errors.New("record: unsupported column type")
)

// EncodeRow renders typed values against a directory schema into page
// content: fields in column order, joined by storage.ColumnDelimiter.
// INT and FLOAT values encode as decimal text, STRING verbatim. The
// delimiter byte is the one value a string field may not contain.
//
// Values are plain text otherwise, so the page terminator byte cannot
// collide with encoded content as long as callers keep strings
// textual. Same accepted-limitation class as trailing-NUL names.
func EncodeRow(cols []storage.Column, values []any) ([]byte, error) {
	if len(values) != len(cols) {
		return nil, ErrSchemaMismatch
	}

	var out bytes.Buffer
	for i, col := range cols {
		if i > 0 {
			out.WriteByte(storage.ColumnDelimiter)
		}

		switch col.Type {
		case storage.ColumnInt:
			x, ok := asInt64(values[i])
			if !ok {
				return nil, fmt.Errorf("%w: column %s wants INT, got %T",
					ErrSchemaMismatch, col.Name(), values[i])
			}
			out.WriteString(strconv.FormatInt(x, 10))

		case storage.ColumnFloat:
			x, ok := asFloat64(values[i])
			if !ok {
				return nil, fmt.Errorf("%w: column %s wants FLOAT, got %T",
					ErrSchemaMismatch, col.Name(), values[i])
			}
			out.WriteString(strconv.FormatFloat(x, 'g', -1, 64))

		case storage.ColumnString:
			s, ok := values[i].(string)
			if !ok {
				return nil, fmt.Errorf("%w: column %s wants STRING, got %T",
					ErrSchemaMismatch, col.Name(), values[i])
			}
			if bytes.IndexByte([]byte(s), storage.ColumnDelimiter) >= 0 {
				return nil, ErrDelimiterInValue
			}
			out.WriteString(s)

		default:
			return nil, ErrUnsupportedColumn
		}
	}
	return out.Bytes(), nil
}

// DecodeRow splits page content on the delimiter and parses each field
// back per the schema: int64, float64, or string.
func DecodeRow(cols []storage.Column, payload []byte) ([]any, error) {
	fields := split(payload, len(cols))
	if len(fields) != len(cols) {
		return nil, ErrFieldCount
	}

	out := make([]any, len(cols))
	for i, col := range cols {
		switch col.Type {
		case storage.ColumnInt:
			x, err := strconv.ParseInt(string(fields[i]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("record: parse column %s: %w", col.Name(), err)
			}
			out[i] = x

		case storage.ColumnFloat:
			x, err := strconv.ParseFloat(string(fields[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("record: parse column %s: %w", col.Name(), err)
			}
			out[i] = x

		case storage.ColumnString:
			out[i] = string(fields[i])

		default:
			return nil, ErrUnsupportedColumn
		}
	}
	return out, nil
}

func split(payload []byte, nc int) [][]byte {
	if nc == 0 && len(payload) == 0 {
		return nil
	}
	return bytes.Split(payload, []byte{storage.ColumnDelimiter})
}

// ---- small helpers to accept multiple numeric types on encode ----

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	return 0, false
}

package storage

import "strings"

// FixedName is a zero-padded fixed-width byte encoding of a short text
// value. Only exact zero padding is reversible: a name whose text ends
// in a real NUL byte decodes shorter than it was written. Accepted
// limitation, not worth a length prefix for 8 bytes.
type FixedName [NameSize]byte

// MakeFixedName is the raw conversion primitive: it copies up to
// NameSize bytes and silently drops the rest. Callers that want the
// hard length check go through the Page/Directory/Column constructors.
func MakeFixedName(s string) FixedName {
	var n FixedName
	copy(n[:], s)
	return n
}

// String decodes the name lossily, replacing invalid UTF-8 from a
// foreign file with the replacement rune, then trims the trailing
// zero padding. An all-zero name is "".
func (n FixedName) String() string {
	s := strings.ToValidUTF8(string(n[:]), "�")
	return strings.TrimRight(s, "\x00")
}

func checkName(name string) error {
	if len(name) > NameSize {
		return &NameTooLongError{Name: name, Max: NameSize}
	}
	return nil
}

package sortable

import "strings"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Compare orders strings byte-wise, like the built-in operators.
func (s String) Compare(other String) int {
	return strings.Compare(string(s), string(other))
}

package book

import "strings"

// NormalizeISBN drops every character that is not an ASCII digit.
// "978-0-13-468599-1" becomes "9780134685991".
func NormalizeISBN(isbn string) string {
	var sb strings.Builder
	sb.Grow(len(isbn))
	for i := 0; i < len(isbn); i++ {
		if c := isbn[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

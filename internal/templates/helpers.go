package templates

import (
	"strconv"
)

// position converts a zero-based index into the 1-based number shown in the
// list's first column.
func position(i int) int {
	return i + 1
}

// itoa converts an int64 to a string, used for building URL paths.
func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

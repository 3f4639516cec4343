package util

import "unsafe"

// BytesToString views bytes as a string without copying. bytes must not be
// modified while the string is in use.
func BytesToString(bytes []byte) string {
	return unsafe.String(unsafe.SliceData(bytes), len(bytes))
}

package translit

import "unsafe"

// bytesToString converts []byte to string without allocation
// SAFE to use here because:
// 1. The buffer is freshly built and exactly the conversion result
// 2. Ownership transfers to the returned string; nothing writes to
// the buffer afterwards
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

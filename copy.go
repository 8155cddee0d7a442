package strq

// copyTerminated copies as much of src into dst as fits while leaving
// room for a trailing zero byte, then writes that zero byte directly
// after the copied bytes. It returns the number of bytes of src that
// were copied. If dst is empty, nothing is written.
func copyTerminated(dst, src []byte) int {
	if len(dst) == 0 {
		return 0
	}

	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0
	return n
}

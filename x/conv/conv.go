// Package conv formats integers into caller buffers without fmt or
// strconv, for use on paths that must not allocate (assert output, ISR
// diagnostics).
package conv

const hexd = "0123456789ABCDEF"

// Utoa writes the base-10 form of n at the end of buf and returns the used
// tail. buf should be at least 20 bytes for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return buf[i:]
}

// Itoa is Utoa for signed values; a leading '-' is added when it fits.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	s := Utoa(buf, uint64(-n))
	i := len(buf) - len(s)
	if i == 0 {
		return s
	}
	buf[i-1] = '-'
	return buf[i-1:]
}

// U8Hex writes two uppercase hex digits of b into buf[0:2].
func U8Hex(buf []byte, b uint8) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	buf[0] = hexd[b>>4]
	buf[1] = hexd[b&0x0F]
	return buf[:2]
}

// U32Hex writes 8 zero-padded uppercase hex digits of n, no 0x prefix.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	for i := 0; i < 4; i++ {
		U8Hex(buf[2*i:], uint8(n>>(24-8*i)))
	}
	return buf[:8]
}

package hmcfgusb

// ValidNibble reports whether b is an ASCII hex digit.
func ValidNibble(b byte) bool {
	_, ok := DecodeNibble(b)
	return ok
}

// DecodeNibble converts an ASCII hex digit to its value.
func DecodeNibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// DecodeHex decodes the ASCII hex digits in src into dst, which must hold
// len(src)/2 bytes. Any invalid digit is a *FormatError.
func DecodeHex(dst, src []byte) error {
	for i := 0; i+1 < len(src); i += 2 {
		hi, ok1 := DecodeNibble(src[i])
		lo, ok2 := DecodeNibble(src[i+1])
		if !ok1 || !ok2 {
			return &FormatError{Msg: "invalid hex digit"}
		}
		dst[i/2] = hi<<4 | lo
	}
	if len(src)%2 != 0 {
		return &FormatError{Msg: "odd number of hex digits"}
	}
	return nil
}

// decodeUint decodes big-endian hex digits into an integer.
func decodeUint(src []byte) (uint32, error) {
	var v uint32
	for _, c := range src {
		n, ok := DecodeNibble(c)
		if !ok {
			return 0, &FormatError{Msg: "invalid hex digit"}
		}
		v = v<<4 | uint32(n)
	}
	return v, nil
}

package tgapi

const upperHex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	default:
		return false
	}
}

// Encode процентно кодирует каждый байт вне множества [A-Za-z0-9-_.~].
// Пробел становится %20, а не '+', поэтому url.QueryEscape здесь не подходит.
func Encode(text string) string {
	escapes := 0

	for i := 0; i < len(text); i++ {
		if !isUnreserved(text[i]) {
			escapes++
		}
	}

	if escapes == 0 {
		return text
	}

	buf := make([]byte, 0, len(text)+2*escapes)

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			buf = append(buf, c)
			continue
		}

		buf = append(buf, '%', upperHex[c>>4], upperHex[c&0x0F])
	}

	return string(buf)
}

package klib

// Strlen returns the number of bytes in b before the first NUL, or len(b)
// when no terminator is present. It is the companion for inspecting buffers
// filled by [Snprintf].
func Strlen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// Memset fills b with c.
func Memset(b []byte, c byte) {
	for i := range b {
		b[i] = c
	}
}

// Memcmp compares a and b byte-wise and returns the sign of the first
// difference. When one is a prefix of the other, the shorter compares lower.
func Memcmp(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// Strcmp compares two strings the way the C routine does.
func Strcmp(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Atoi parses a decimal integer from the start of s: optional whitespace,
// optional sign, then digits. Parsing stops at the first non-digit; a string
// with no digits yields 0. There is no overflow detection, matching the
// runtime it ports.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	result := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		result = result*10 + int(s[i]-'0')
	}
	return result * sign
}

package klib_test

import (
	"testing"

	"github.com/mingerfan/klib"
	"github.com/stretchr/testify/assert"
)

func TestStrlen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, klib.Strlen(nil))
	assert.Equal(t, 0, klib.Strlen([]byte{0, 'x'}))
	assert.Equal(t, 5, klib.Strlen([]byte("hello\x00world")))
	assert.Equal(t, 5, klib.Strlen([]byte("hello")), "unterminated buffer counts to its end")
}

func TestMemset(t *testing.T) {
	t.Parallel()

	b := make([]byte, 10)
	klib.Memset(b[:7], 'A')
	assert.Equal(t, "AAAAAAA\x00\x00\x00", string(b))
}

func TestMemcmp(t *testing.T) {
	t.Parallel()

	assert.Zero(t, klib.Memcmp([]byte("abc"), []byte("abc")))
	assert.Negative(t, klib.Memcmp([]byte("abc"), []byte("abd")))
	assert.Positive(t, klib.Memcmp([]byte("abd"), []byte("abc")))
	assert.Negative(t, klib.Memcmp([]byte("ab"), []byte("abc")), "prefix compares lower")
	assert.Zero(t, klib.Memcmp(nil, nil))
}

func TestStrcmp(t *testing.T) {
	t.Parallel()

	assert.Zero(t, klib.Strcmp("abc", "abc"))
	assert.Negative(t, klib.Strcmp("abc", "def"))
	assert.Positive(t, klib.Strcmp("def", "abc"))
	assert.Negative(t, klib.Strcmp("", "a"))
}

func TestAbs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, klib.Abs(-42))
	assert.Equal(t, 42, klib.Abs(42))
	assert.Equal(t, 0, klib.Abs(0))
}

func TestAtoi(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{"-12315", -12315},
		{"+7", 7},
		{" \t\n\r-9", -9},
		{"123abc", 123},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, klib.Atoi(tt.in), "input %q", tt.in)
	}
}

package sentence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseWords(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "abc de", "cba ed"},
		{"punctuation stays with its word", "Hello, world!", ",olleH !dlrow"},
		{"consecutive spaces keep empty words", "ab  cd", "ba  dc"},
		{"leading and trailing spaces", " ab ", " ba "},
		{"empty", "", ""},
		{"multibyte", "añb", "bña"},
		{"invalid utf-8 byte kept", "ab\xffcd", "dc\xffba"},
		{"truncated sequence kept", "x\xe2\x82 y", "\x82\xe2x y"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReverseWords(tc.in))
		})
	}
}

func TestReverseWords_Twice(t *testing.T) {
	for _, text := range []string{"abc de", "ab\xffcd ñ\xfe", "Hello, world!", " a  b "} {
		assert.Equal(t, text, ReverseWords(ReverseWords(text)), "text %q", text)
	}
}

func TestReverseSentence(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "abc de", "de abc"},
		{"punctuation", "Hello, world!", "world! Hello,"},
		{"single word", "word", "word"},
		{"consecutive spaces", "a  b", "b  a"},
		{"trailing space", "a b ", " b a"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReverseSentence(tc.in))
		})
	}
}

func TestEncrypt(t *testing.T) {
	assert.Equal(t, "Khoor, Zruog!", Encrypt("Hello, World!", 3))
	assert.Equal(t, "abc", Encrypt("xyz", 3))
	assert.Equal(t, "XYZ", Encrypt("ABC", -3))
	assert.Equal(t, "Hello", Encrypt("Hello", 0))
	assert.Equal(t, "Hello", Encrypt("Hello", 26))
	assert.Equal(t, "123 ñ é!", Encrypt("123 ñ é!", 5))
}

func TestEncrypt_ShiftIsCyclic(t *testing.T) {
	const text = "The quick brown fox jumps over the lazy dog."
	assert.Equal(t, Encrypt(text, 3), Encrypt(text, 29))
	assert.Equal(t, Encrypt(text, 3), Encrypt(text, -23))
	assert.Equal(t, Encrypt(text, -3), Encrypt(text, -55))
	assert.Equal(t, Encrypt(text, 1000%26), Encrypt(text, 1000))
}

func TestDecrypt(t *testing.T) {
	assert.Equal(t, "Hello, World!", Decrypt("Khoor, Zruog!", 3))
	assert.Equal(t, Encrypt("Khoor", -3), Decrypt("Khoor", 3))
}

func TestRoundTrip(t *testing.T) {
	printable := make([]byte, 0, 95)
	for c := byte(' '); c <= '~'; c++ {
		printable = append(printable, c)
	}
	text := string(printable)

	shifts := []int{math.MinInt, -1000, -27, -26, -1, 0, 1, 13, 25, 26, 27, 1000, math.MaxInt}
	for _, k := range shifts {
		assert.Equal(t, text, Decrypt(Encrypt(text, k), k), "shift %d", k)
	}
}

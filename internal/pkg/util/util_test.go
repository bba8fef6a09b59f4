package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		index int
		dir   Direction
		want  []string
		moved bool
	}{
		{"up", []string{"a", "b", "c"}, 1, Up, []string{"b", "a", "c"}, true},
		{"down", []string{"a", "b", "c"}, 1, Down, []string{"a", "c", "b"}, true},
		{"first up", []string{"a", "b"}, 0, Up, []string{"a", "b"}, false},
		{"last down", []string{"a", "b"}, 1, Down, []string{"a", "b"}, false},
		{"single", []string{"a"}, 0, Down, []string{"a"}, false},
		{"out of range", []string{"a", "b"}, 5, Up, []string{"a", "b"}, false},
		{"bad direction", []string{"a", "b"}, 0, "left", []string{"a", "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(tt.in, tt.index, tt.dir)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.moved, moved)
		})
	}
}

func TestMoveDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3}
	_, _ = Move(in, 0, Down)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount(" one two\nthree "))
}

func TestCursor(t *testing.T) {
	c := FeedCursor{Session: "abc", Page: 3}
	got, err := DecodeCursor(EncodeCursor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)

	zero, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Zero(t, zero)

	_, err = DecodeCursor("%%%")
	assert.ErrorIs(t, err, ErrBadCursor)
	assert.Equal(t, HashSessionID("abc"), HashSessionID("abc"))
	assert.Zero(t, HashSessionID(""))
}

func TestSniffMedia(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	ct, kind, ok := SniffMedia(png, "a.png")
	assert.True(t, ok)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, "image", kind)

	_, _, ok = SniffMedia([]byte("plain text here"), "notes.txt")
	assert.False(t, ok)

	_, kind, ok = SniffMedia([]byte{0, 1, 2, 3}, "clip.MP4")
	assert.True(t, ok)
	assert.Equal(t, "video", kind)
}

type sample struct {
	Title string `validate:"required,max=10"`
}

func TestValidateDTO(t *testing.T) {
	assert.NoError(t, ValidateDTO(&sample{Title: "ok"}))
	err := ValidateDTO(&sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
}

package lineio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_readsAcrossSources(t *testing.T) {
	in := New(
		Source{Name: "one.fs", Reader: strings.NewReader("a\nb\n")},
		Source{Name: "two.fs", Reader: strings.NewReader("c")},
	)

	type read struct {
		line string
		loc  string
	}
	var got []read
	for {
		line, loc, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, read{line, loc.String()})
	}

	assert.Equal(t, []read{
		{"a", "one.fs:1"},
		{"b", "one.fs:2"},
		{"c", "two.fs:1"},
	}, got)
}

func TestInput_empty(t *testing.T) {
	in := New()
	_, _, err := in.ReadLine()
	assert.Equal(t, io.EOF, err)

	// EOF is sticky
	_, _, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}

package forth

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterp_dump(t *testing.T) {
	in := New(WithOutput(io.Discard))
	for _, line := range []string{
		"variable x",
		"42 x !",
		"variable y",
		"10 constant ten",
		`: greet "hi" . ;`,
		"1 2",
	} {
		require.NoError(t, in.ExecuteLine(line))
	}

	var out strings.Builder
	require.NoError(t, in.Dump(&out))

	assert.Equal(t, strings.Join([]string{
		"# Forth Dump",
		"  stack: 1 2",
		"  vars:",
		"    @0 x = 42",
		"    @1 y (unset)",
		"  consts:",
		"    ten = 10",
		"  native: ! * + - . / < = > @ and cr drop dup emit invert or over rot swap",
		"  words:",
		`    : greet "hi" . ;`,
		"",
	}, "\n"), out.String())
}

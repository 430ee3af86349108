package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_tokens(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		want []Node
	}{
		{"empty line", "", nil},
		{"blank line", "   \t ", nil},
		{"integers", "3 -4 +12", []Node{
			LiteralNode{Lit: Int(3)},
			LiteralNode{Lit: Int(-4)},
			LiteralNode{Lit: Int(12)},
		}},
		{"names", "dup foo2 .", []Node{
			NameNode{Name: "dup"},
			NameNode{Name: "foo2"},
			NameNode{Name: "."},
		}},
		{"sign alone is a name", "- +", []Node{
			NameNode{Name: "-"},
			NameNode{Name: "+"},
		}},
		{"quoted strings", `"hello world" "a\"b" "tab\there"`, []Node{
			LiteralNode{Lit: Str("hello world")},
			LiteralNode{Lit: Str(`a"b`)},
			LiteralNode{Lit: Str("tab\there")},
		}},
		{"numeric-looking string stays a string", `"42"`, []Node{
			LiteralNode{Lit: Str("42")},
		}},
		{"comments skipped", "1 ( two three ) 4", []Node{
			LiteralNode{Lit: Int(1)},
			LiteralNode{Lit: Int(4)},
		}},
		{"variable form", "variable counter", []Node{
			DeclareNode{Name: "counter"},
		}},
		{"constant form", "10 constant ten", []Node{
			LiteralNode{Lit: Int(10)},
			ConstantNode{Name: "ten"},
		}},
		{"definition", ": square dup * ;", []Node{
			DefineNode{Name: "square", Body: []Node{
				NameNode{Name: "dup"},
				NameNode{Name: "*"},
			}},
		}},
		{"definition with literals", `: greet "hi" . ;`, []Node{
			DefineNode{Name: "greet", Body: []Node{
				LiteralNode{Lit: Str("hi")},
				NameNode{Name: "."},
			}},
		}},
		{"empty definition", ": nop ;", []Node{
			DefineNode{Name: "nop"},
		}},
		{"code after a definition", ": two 2 ; two", []Node{
			DefineNode{Name: "two", Body: []Node{LiteralNode{Lit: Int(2)}}},
			NameNode{Name: "two"},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := NewParser().ParseLine(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, nodes)
		})
	}
}

func TestParser_syntaxErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
	}{
		{"unterminated string", `"abc`},
		{"unterminated escape", `"abc\`},
		{"unknown escape", `"a\q"`},
		{"unterminated comment", "( never closed"},
		{"unterminated definition", ": foo 1 2"},
		{"nested definition", ": a : b ;"},
		{"stray semicolon", "1 ;"},
		{"missing definition name", ":"},
		{"missing variable name", "variable"},
		{"missing constant name", "7 constant"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().ParseLine(tc.line)
			var syntax *SyntaxError
			require.ErrorAs(t, err, &syntax)
			assert.NotEmpty(t, syntax.Msg)
		})
	}
}

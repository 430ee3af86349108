/* Package forth implements a small interpreter for a FORTH-like stack
language.

FORTH is a language mostly familiar to users of "small" machines.  A FORTH
system maintains an operand stack and a dictionary of named _words_; built-in
primitives are indistinguishable from user-defined words at the call site,
and a program is nothing more than a stream of words and literals applied to
the stack in order.

This interpreter is a high-level rendition of that model.  Instead of cells
in a flat memory, stack items are tagged literals: integers, text, pointers,
arrays, or the unknown sentinel.  A pointer is not a memory address but a
stable index into an append-only list of variables, so indirection never
outlives or aliases anything.

Source text is consumed one line at a time:

	in := forth.New()
	in.ExecuteLine(": square dup * ;")
	in.ExecuteLine("7 square .")

Each line is parsed into typed nodes and dispatched against the interpreter
state.  Failures (stack underflow, invalid operands, undefined words, syntax
errors) abort the remainder of the line and surface as ordinary Go errors;
recovery is left to the caller, which is how FORTH has always wanted it.

The interpreter is strictly single threaded and synchronous.  An Interp is
meant for a single owner; hosts that need concurrent access must serialize it
externally.

See cmd/forth for the interactive front end.
*/
package forth

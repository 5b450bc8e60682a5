package render

import (
	"strings"

	"github.com/goliatone/go-dynfmt/internal/numeric"
	"github.com/goliatone/go-dynfmt/pkg/scanner"
)

// directive is a resolved placeholder: the argument to render plus the
// constraints handed to fmt. ok is unset when the placeholder targets
// nothing, in which case the renderer emits zero bytes and the other
// fields are meaningless.
type directive struct {
	arg      any
	ok       bool
	width    int
	hasWidth bool
	zeroPad  bool
	prec     int
	hasPrec  bool
}

// resolve maps a placeholder token onto args.
//
// The position field is trimmed of surrounding whitespace. Empty means
// sequential: the argument at the cursor is taken and the cursor
// advances, whether or not an argument was actually there. Anything
// else is parsed as a non-negative index; explicit indexes never touch
// the cursor. A position that fails to parse, or an index past the end
// of args, resolves to nothing.
//
// Width and precision are parsed untrimmed. Zero padding applies
// exactly when the width field parsed and its first byte is '0'. A
// field that fails to parse imposes no constraint.
func resolve(tok scanner.Token, args []any, cursor *int) directive {
	var d directive

	pos := strings.TrimSpace(tok.Position)
	if pos == "" {
		idx := *cursor
		*cursor++
		if idx >= len(args) {
			return d
		}
		d.arg = args[idx]
	} else {
		idx, ok := numeric.ParseSize(pos)
		if !ok || idx >= len(args) {
			return d
		}
		d.arg = args[idx]
	}
	d.ok = true

	if w, ok := numeric.ParseSize(tok.Width); ok {
		d.width = w
		d.hasWidth = true
		d.zeroPad = tok.Width[0] == '0'
	}
	if p, ok := numeric.ParseSize(tok.Precision); ok {
		d.prec = p
		d.hasPrec = true
	}
	return d
}

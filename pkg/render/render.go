// Package render resolves placeholder specs against an argument list
// and streams the rendered template to a sink.
//
// Value-to-text conversion is delegated to the fmt package; this
// package decides which argument a placeholder targets and which
// width/precision parameters the delegate receives. Unresolvable
// placeholders render as nothing, malformed width/precision fields
// impose no constraint, and the only error a render can return is the
// sink's own write error.
package render

import (
	"io"

	"github.com/goliatone/go-dynfmt/pkg/scanner"
)

// Render walks template in one pass, writing literal spans verbatim
// and substituting placeholders from args in template order. Arguments
// may be referenced repeatedly, out of order, or not at all.
//
// The sink's error is returned as is, with whatever the sink already
// accepted left in place. Passing args as a slice keeps hot callers
// free of per-call variadic boxing; the root dynfmt package offers the
// variadic form.
func Render(w io.Writer, template string, args []any) error {
	cursor := 0
	s := scanner.New(template)
	for s.Scan() {
		tok := s.Token()
		if tok.Kind == scanner.KindLiteral {
			if _, err := io.WriteString(w, tok.Text); err != nil {
				return err
			}
			continue
		}
		d := resolve(tok, args, &cursor)
		if !d.ok {
			continue
		}
		if err := writeValue(w, d); err != nil {
			return err
		}
	}
	return nil
}

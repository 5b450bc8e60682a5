package dynfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-dynfmt/pkg/render"
	"github.com/goliatone/go-dynfmt/pkg/sink"
)

// Arguments pairs a template with its argument list as a value that
// renders on demand. It implements fmt.Stringer, fmt.Formatter, and
// io.WriterTo, so it can sit inside a fmt call or be streamed to a
// writer without building an intermediate string:
//
//	fmt.Println(dynfmt.NewArguments("job {0} finished in {1:.1}s", id, secs))
//
// The zero value renders as the empty string.
type Arguments struct {
	template string
	args     []any
}

// NewArguments binds template to args without rendering anything yet.
// The args slice is retained; callers must not mutate it while the
// value is in use.
func NewArguments(template string, args ...any) Arguments {
	return Arguments{template: template, args: args}
}

// Template returns the bound template text.
func (a Arguments) Template() string {
	return a.template
}

// String renders the template to a new string.
func (a Arguments) String() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = render.Render(&sb, a.template, a.args)
	return sb.String()
}

// WriteTo renders the template to w, returning how many bytes the
// writer accepted. A write failure is returned as is, with the partial
// count.
func (a Arguments) WriteTo(w io.Writer) (int64, error) {
	c := sink.NewCountingWriter(w)
	err := render.Render(c, a.template, a.args)
	return c.N(), err
}

// Format implements fmt.Formatter: embedded in any fmt call, the value
// renders its own template in place, whatever the outer verb. Width
// and flags of the outer verb are not forwarded; constraints belong in
// the template's own placeholders.
func (a Arguments) Format(f fmt.State, verb rune) {
	// fmt buffers State writes internally; they cannot fail here.
	_ = render.Render(f, a.template, a.args)
}

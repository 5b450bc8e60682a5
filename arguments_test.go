package dynfmt_test

import (
	"bytes"
	"fmt"
	"testing"

	dynfmt "github.com/goliatone/go-dynfmt"
	"github.com/goliatone/go-dynfmt/pkg/testsupport"
)

func TestArgumentsString(t *testing.T) {
	a := dynfmt.NewArguments("{0}: {1:05} ({2:.1}%)", "disk", 42, 97.25)
	want := "disk: 00042 (97.2%)"
	if got := a.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := a.Template(); got != "{0}: {1:05} ({2:.1}%)" {
		t.Fatalf("Template() = %q", got)
	}
}

func TestArgumentsZeroValue(t *testing.T) {
	var a dynfmt.Arguments
	if got := a.String(); got != "" {
		t.Fatalf("zero value String() = %q, want empty", got)
	}
	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	if err != nil || n != 0 {
		t.Fatalf("zero value WriteTo = (%d, %v), want (0, nil)", n, err)
	}
}

func TestArgumentsWriteTo(t *testing.T) {
	a := dynfmt.NewArguments("{} {} {}", "x", "y", "z")

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got := buf.String(); got != "x y z" {
		t.Fatalf("WriteTo wrote %q, want %q", got, "x y z")
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestArgumentsWriteToPartialFailure(t *testing.T) {
	a := dynfmt.NewArguments("hello {}", "world")
	w := &testsupport.FailingWriter{Budget: 4}

	n, err := a.WriteTo(w)
	if err != testsupport.ErrWrite {
		t.Fatalf("WriteTo error = %v, want the sink error unwrapped", err)
	}
	if n != 4 {
		t.Fatalf("WriteTo reported %d bytes, want the accepted 4", n)
	}
}

func TestArgumentsInFmtCalls(t *testing.T) {
	a := dynfmt.NewArguments("{1}.{0}", "minor", "major")

	for _, verb := range []string{"%v", "%s", "%d"} {
		if got := fmt.Sprintf(verb, a); got != "major.minor" {
			t.Errorf("Sprintf(%q) = %q, want %q", verb, got, "major.minor")
		}
	}
}

// Constraints live in the template, not the outer verb.
func TestArgumentsIgnoresOuterWidth(t *testing.T) {
	a := dynfmt.NewArguments("{}", "x")
	if got := fmt.Sprintf("%10v", a); got != "x" {
		t.Fatalf("Sprintf(%%10v) = %q, want %q", got, "x")
	}
}

// An Arguments value used as an argument renders through its own
// Format method.
func TestArgumentsNested(t *testing.T) {
	inner := dynfmt.NewArguments("{}+{}", 1, 2)
	if got := dynfmt.Format("sum({0})", inner); got != "sum(1+2)" {
		t.Fatalf("nested render = %q, want %q", got, "sum(1+2)")
	}
}

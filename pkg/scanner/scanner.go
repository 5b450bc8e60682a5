// Package scanner splits a format template into literal spans and
// placeholder specs in a single left-to-right pass.
//
// The template grammar is deliberately small: `{}` substitutes the next
// sequential argument, `{N}` an explicit index, and `{N:W.P}` adds
// width and precision fields. Doubled braces collapse to one literal
// brace. Scanning never fails; malformed input degrades to literal
// text or to placeholder fields the resolver rejects later.
package scanner

// Kind classifies a scanned token.
type Kind uint8

const (
	// KindLiteral is a verbatim span of template text.
	KindLiteral Kind = iota
	// KindPlaceholder is a closed `{...}` spec with its raw sub-fields.
	KindPlaceholder
)

// String returns the kind name for test output and debugging.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Token is one scanned unit of the template. Literal tokens carry Text;
// placeholder tokens carry the raw, unparsed sub-field strings exactly
// as they appeared between the braces.
type Token struct {
	Kind      Kind
	Text      string
	Position  string
	Width     string
	Precision string
}

type state uint8

const (
	stateLiteral state = iota
	stateSpecPosition
	stateSpecWidth
	stateSpecPrecision
)

// Scanner walks a template byte by byte. Braces and the `:` and `.`
// separators are ASCII, so byte-wise scanning leaves multi-byte UTF-8
// sequences intact inside literal spans and sub-fields.
//
// Usage follows the iterator idiom:
//
//	s := scanner.New(tmpl)
//	for s.Scan() {
//		tok := s.Token()
//		...
//	}
//
// Scanning cannot fail and allocates nothing; token fields are
// substrings of the input.
type Scanner struct {
	src string
	pos int
	// parked state between Scan calls: stateLiteral, or
	// stateSpecPosition when the previous call emitted the literal
	// span that preceded an opening brace.
	state state
	// open is the offset of the '{' of the pending spec.
	open int
	// retain marks the byte at pos as literal content. Brace detection
	// resumes at the byte after it. Set after a '}' (escape collapse)
	// and after a '{' aborts an in-progress spec.
	retain bool
	tok    Token
}

// New returns a Scanner positioned at the start of src.
func New(src string) Scanner {
	return Scanner{src: src}
}

// Token returns the token produced by the last successful Scan.
func (s *Scanner) Token() Token {
	return s.tok
}

// Scan advances to the next token. It returns false when the template
// is exhausted.
func (s *Scanner) Scan() bool {
	for {
		if s.state != stateLiteral {
			if s.scanSpec() {
				return true
			}
			continue
		}

		if s.pos >= len(s.src) {
			return false
		}
		start := s.pos
		i := start
		if s.retain {
			s.retain = false
			i++
		}
		for i < len(s.src) && s.src[i] != '{' && s.src[i] != '}' {
			i++
		}

		if i >= len(s.src) {
			s.pos = i
			if i > start {
				s.tok = Token{Kind: KindLiteral, Text: s.src[start:i]}
				return true
			}
			return false
		}

		if s.src[i] == '}' {
			// Collapse: emit the span before the brace, drop the
			// brace, and keep the next byte as literal content.
			s.pos = i + 1
			s.retain = true
			if i > start {
				s.tok = Token{Kind: KindLiteral, Text: s.src[start:i]}
				return true
			}
			continue
		}

		// '{'
		if i+1 >= len(s.src) {
			// A dangling '{' as the final byte is dropped.
			s.pos = len(s.src)
			if i > start {
				s.tok = Token{Kind: KindLiteral, Text: s.src[start:i]}
				return true
			}
			return false
		}
		s.open = i
		s.pos = i + 1
		s.state = stateSpecPosition
		if i > start {
			s.tok = Token{Kind: KindLiteral, Text: s.src[start:i]}
			return true
		}
	}
}

// scanSpec walks the position, width, and precision sub-fields of the
// spec opened at s.open. It reports whether a token was produced; a
// false return means the spec was aborted by a '{' and the caller
// should rescan from the parked literal state.
func (s *Scanner) scanSpec() bool {
	src := s.src
	i := s.pos
	st := stateSpecPosition
	posStart, posEnd := i, i
	widStart, widEnd := i, i
	preStart, preEnd := i, i

	for i < len(src) {
		c := src[i]
		switch {
		case c == '}':
			s.tok = Token{
				Kind:      KindPlaceholder,
				Position:  src[posStart:posEnd],
				Width:     src[widStart:widEnd],
				Precision: src[preStart:preEnd],
			}
			s.pos = i + 1
			s.state = stateLiteral
			return true
		case c == '{':
			// Abort the spec: captures are discarded and this brace
			// becomes the first byte of a new literal span.
			s.pos = i
			s.state = stateLiteral
			s.retain = true
			return false
		case c == ':' && st == stateSpecPosition:
			i++
			st = stateSpecWidth
			widStart, widEnd = i, i
		case c == '.' && st == stateSpecWidth:
			i++
			st = stateSpecPrecision
			preStart, preEnd = i, i
		default:
			i++
			switch st {
			case stateSpecPosition:
				posEnd = i
			case stateSpecWidth:
				widEnd = i
			case stateSpecPrecision:
				preEnd = i
			}
		}
	}

	// Input ended inside the spec. The unterminated tail, opening
	// brace included, is literal text.
	s.tok = Token{Kind: KindLiteral, Text: src[s.open:]}
	s.pos = len(src)
	s.state = stateLiteral
	return true
}

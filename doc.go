// Package dynfmt renders format templates that are ordinary runtime
// strings rather than compile-time literals: "{}" substitutes the next
// argument in order, "{N}" a specific zero-based one, and "{N:W.P}"
// adds a minimum width and a precision. Doubled braces escape to
// literal braces.
//
// Substitution degrades instead of failing: a placeholder that resolves
// to no argument renders as nothing, and width or precision fields that
// do not parse impose no constraint. The only error a render can return
// is the sink's own write error. Value formatting is delegated to
// package fmt, so each argument renders the way "%v" prints it, with
// width and precision applied per its type.
package dynfmt

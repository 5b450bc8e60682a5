package render

import (
	"fmt"
	"io"
	"reflect"
)

type valueClass uint8

const (
	classDefault valueClass = iota
	classInt
	classFloat
)

// classify decides how a precision constraint applies to v. Values
// that already own their textual rendering (fmt.Formatter,
// fmt.Stringer, error) keep the default handling whatever their
// underlying kind; reflection catches named numeric types without a
// method set of their own.
func classify(v any) valueClass {
	switch v.(type) {
	case fmt.Formatter, fmt.Stringer, error:
		return classDefault
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return classInt
	case reflect.Float32, reflect.Float64:
		return classFloat
	}
	return classDefault
}

// writeValue renders one resolved argument. Format strings are
// constants chosen by directive shape; width and precision travel as
// '*' parameters, so no verb string is ever assembled at runtime.
//
// Two adjustments keep delegate semantics aligned with the template
// contract: integer kinds drop the precision (fmt would zero-extend
// their digits), and float kinds with a precision use the f verbs so
// precision means fixed decimal places rather than significant digits.
func writeValue(w io.Writer, d directive) error {
	class := classDefault
	if d.hasPrec {
		class = classify(d.arg)
		if class == classInt {
			d.hasPrec = false
		}
	}

	var err error
	switch {
	case !d.hasWidth && !d.hasPrec:
		_, err = fmt.Fprintf(w, "%v", d.arg)
	case !d.hasPrec:
		if d.zeroPad {
			_, err = fmt.Fprintf(w, "%0*v", d.width, d.arg)
		} else {
			_, err = fmt.Fprintf(w, "%*v", d.width, d.arg)
		}
	case !d.hasWidth:
		if class == classFloat {
			_, err = fmt.Fprintf(w, "%.*f", d.prec, d.arg)
		} else {
			_, err = fmt.Fprintf(w, "%.*v", d.prec, d.arg)
		}
	default:
		switch {
		case class == classFloat && d.zeroPad:
			_, err = fmt.Fprintf(w, "%0*.*f", d.width, d.prec, d.arg)
		case class == classFloat:
			_, err = fmt.Fprintf(w, "%*.*f", d.width, d.prec, d.arg)
		case d.zeroPad:
			_, err = fmt.Fprintf(w, "%0*.*v", d.width, d.prec, d.arg)
		default:
			_, err = fmt.Fprintf(w, "%*.*v", d.width, d.prec, d.arg)
		}
	}
	return err
}

package nbformat

type parseOpts struct {
	lenient bool
}

type ParseOption func(*parseOpts)

// ParseLenient maps unrecognized output types to Opaque nodes instead
// of failing the parse.
func ParseLenient() ParseOption {
	return func(o *parseOpts) { o.lenient = true }
}

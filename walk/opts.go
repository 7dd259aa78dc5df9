package walk

type options struct {
	reverse bool
}

type Option func(*options)

// Reverse visits children in reverse array order. Transform still
// writes results back to their original positions, so the final
// child order is unchanged.
func Reverse() Option {
	return func(o *options) { o.reverse = true }
}

func makeOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package parse

type parseOpts struct {
	source string
}

func (o *parseOpts) name() string {
	if o.source == "" {
		return "input"
	}
	return o.source
}

type ParseOption func(*parseOpts)

// ParseSource names the input in error messages, typically a file path.
func ParseSource(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}

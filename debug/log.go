package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/axfmt/jsondoc/encode"
	"github.com/axfmt/jsondoc/ir"
)

// Logf writes a debug line to stderr. *ir.Node arguments are rendered in
// their canonical encoding.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

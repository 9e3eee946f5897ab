// local.go: dictionary shipped with the binary

package word

import (
	_ "embed"
	"io"
	"strings"
)

//go:embed resources/words.txt
var fileContent string

// Embedded returns a reader over the dictionary bundled with the program.
// It is used when no dictionary file is configured.
func Embedded() io.Reader {
	return strings.NewReader(fileContent)
}

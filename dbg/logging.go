package dbg

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
)

type Flag int

const (
	Nil Flag = iota
	Debug
	Draw
)

// Mode is global so that debug output doesn't need to be threaded through
// every constructor. It should be set before any interpolators are built.
var (
	Mode Flag = Nil
)

var logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Enabled reports whether Printf will print anything. Use it to skip building
// expensive debug arguments.
func Enabled() bool {
	return Mode >= Debug
}

func Printf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Printf("%s %s", aurora.Cyan("interpol"), fmt.Sprintf(format, args...))
}

// Command kaitaidump reads a file containing a switch-manual-str
// opcode stream and prints its decoded opcodes, one per line. It
// exists to give the runtime and the switchmanualstr example a
// minimal end-to-end driver, the way a generated parser's caller
// would use them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/scigolib/kaitai"
	"github.com/scigolib/kaitai/examples/switchmanualstr"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <opcode-stream-file>", os.Args[0])
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("read %s: %v", os.Args[1], err)
	}

	stream := kaitai.NewBytesReader(raw)
	root, err := switchmanualstr.ReadOpcodes(stream)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	for i, op := range root.Opcodes {
		fmt.Printf("%d: code=%s body=%+v\n", i, op.Code, op.Body)
	}
}

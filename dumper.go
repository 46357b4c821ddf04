package main

import (
	"fmt"
	"io"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	nameWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  depth: %v/%v\n", dump.vm.depth, dump.vm.maxDepth)
	dump.dumpStack()
	dump.dumpDict()
}

func (dump *vmDumper) dumpStack() {
	st := &dump.vm.stack
	fmt.Fprintf(dump.out, "  stack: %v/%v %v\n", st.Len(), st.Cap(), st.cells)
}

func (dump *vmDumper) dumpDict() {
	names := dump.vm.dict.Names()
	fmt.Fprintf(dump.out, "# Dictionary (%v words)\n", len(names))
	if dump.nameWidth == 0 {
		for _, name := range names {
			if n := len(name); n > dump.nameWidth {
				dump.nameWidth = n
			}
		}
	}
	var buf strings.Builder
	for _, name := range names {
		body, _ := dump.vm.dict.Lookup(name)
		fmt.Fprintf(&buf, "  : %-*v", dump.nameWidth, name)
		for _, token := range body {
			buf.WriteByte(' ')
			buf.WriteString(token)
		}
		buf.WriteString(" ;\n")
		io.WriteString(dump.out, buf.String())
		buf.Reset()
	}
}

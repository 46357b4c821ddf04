package main

import (
	"bufio"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultSnapshotPath is where the final stack is saved after a run.
const DefaultSnapshotPath = "stack.fth"

// saveSnapshot drains st into the named file, bottom-to-top, each value
// followed by a space.
func saveSnapshot(name string, st *Stack) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	var buf []byte
	for _, val := range st.Drain() {
		buf = strconv.AppendInt(buf[:0], int64(val), 10)
		buf = append(buf, ' ')
		if _, err = w.Write(buf); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "save %v failed", name)
}

package locality

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteSequence writes seq to w as base 10 integers separated by single
// spaces, with no header and no trailing newline.
func WriteSequence(w io.Writer, seq []int) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	buf := make([]byte, 0, 20)
	for i, v := range seq {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return errors.Wrap(err, "writing separator")
			}
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "writing element %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "flushing")
}

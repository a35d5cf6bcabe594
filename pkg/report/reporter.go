package report

import (
	"io"
	"strconv"
)

// LineCap is the worst-case formatted line: optional sign, one integer
// digit, decimal point, three fractional digits, CR and LF.
const LineCap = 10

// Reporter formats voltage values as fixed-precision decimal lines and
// writes them synchronously to a byte-oriented sink. The scratch buffer is
// sized to the worst case, so formatting never allocates and never grows
// past LineCap for in-range values. A Reporter serves a single writer.
type Reporter struct {
	w   io.Writer
	buf [LineCap]byte
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes one value as "d.ddd\r\n". No acknowledgment is read back.
func (r *Reporter) Report(v float64) error {
	b := strconv.AppendFloat(r.buf[:0], v, 'f', 3, 64)
	b = append(b, '\r', '\n')
	_, err := r.w.Write(b)
	return err
}

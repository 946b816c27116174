package ace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// xss is the flat floating-point payload read from an ACE table. The
// content hash computed while it streams in (see fingerprint.go) is
// returned separately by loadXSS. It is addressed throughout the decoder using the
// source format's 1-based Appendix-F convention: xssAt(1) is the first
// element. Centralizing that translation here, per spec.md §9, keeps
// every block decoder's index arithmetic in the same form as the
// published manual.
type xss struct {
	data []float64
}

// xssAt returns XSS[i] using 1-based indexing, i.e. xssAt(1) is the
// first element of the array.
func (x xss) xssAt(i int) float64 {
	return x.data[i-1]
}

// xssInt returns xssAt(i) truncated to an int. ACE stores all
// directory/count fields as floats with integral values.
func (x xss) xssInt(i int) int {
	return int(x.data[i-1])
}

// xssSlice returns XSS[from..from+n-1] (1-based, inclusive start,
// length n) as a fresh slice.
func (x xss) xssSlice(from, n int) []float64 {
	out := make([]float64, n)
	copy(out, x.data[from-1:from-1+n])
	return out
}

// xssIntSlice is xssSlice truncated element-wise to int.
func (x xss) xssIntSlice(from, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(x.data[from-1+i])
	}
	return out
}

func (x xss) len() int {
	return len(x.data)
}

// loadXSS reads exactly n whitespace-separated floating-point tokens
// from r into a new xss value. It fails with ErrTruncatedXSS if fewer
// than n tokens are available.
//
// Tokens may be split across any number of lines, following
// spec.md §6: "XSS body: exactly NXS[1] floats, any whitespace
// separation, may span any number of lines."
func loadXSS(r *bufio.Reader, n int) (xss, uint64, error) {
	data := make([]float64, 0, n)
	hasher := newStreamHasher()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	for len(data) < n && scanner.Scan() {
		token := scanner.Text()
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return xss{}, 0, SyntaxError{
				Msg:      fmt.Sprintf("malformed XSS value %q at position %d", token, len(data)+1),
				InnerErr: err,
			}
		}
		data = append(data, value)
		hasher.writeFloat64(value)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return xss{}, 0, SyntaxError{Msg: "error reading XSS array", InnerErr: err}
	}
	if len(data) < n {
		return xss{}, 0, SyntaxError{
			Msg:      fmt.Sprintf("expected %d XSS values, got %d", n, len(data)),
			InnerErr: ErrTruncatedXSS,
		}
	}
	return xss{data: data}, hasher.sum(), nil
}

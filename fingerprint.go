package ace

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// streamHasher accumulates a content fingerprint over the XSS array as
// it is read, so the fingerprint is available without retaining the
// buffer once decoding is complete (spec.md §5: "implementations
// SHOULD release [the XSS buffer] once all blocks are decoded").
//
// The fingerprint is used by batch.go to flag xsdir entries whose
// tables are byte-identical, a cheap duplicate check across
// suffix-versioned libraries; it has no bearing on decoding itself.
type streamHasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

func newStreamHasher() *streamHasher {
	return &streamHasher{digest: xxhash.New()}
}

func (h *streamHasher) writeFloat64(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.digest.Write(h.buf[:])
}

func (h *streamHasher) sum() uint64 {
	return h.digest.Sum64()
}

package ace

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrapped inside a SyntaxError so callers can use
// errors.Is/errors.As after unwrapping, per spec.md §7.
var (
	// ErrInvalidHeader is returned by Decode when the first 12 (or
	// 1+1+N) header lines cannot be parsed: a short read, a malformed
	// integer, or a wrong NXS/JXS count. It wraps the SyntaxError the
	// header reader reports.
	ErrInvalidHeader = errors.New("invalid ACE header")

	// ErrTruncatedXSS is returned when fewer than NXS[1] floats are
	// available in the stream.
	ErrTruncatedXSS = errors.New("truncated XSS array")

	// ErrLengthMismatch is returned when a decoded array's length does
	// not match the count NXS/JXS said it should have.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnsupportedChainedLaw marks LNW != 0 in a DLW block: the
	// decoder only follows the first law in the chain.
	ErrUnsupportedChainedLaw = errors.New("chained secondary-energy law (LNW != 0) not followed")

	// ErrUnsupportedMtAbove100 marks an MT > 100 seen inside a DLW
	// block, which the source punts on.
	ErrUnsupportedMtAbove100 = errors.New("MT greater than 100 found in DLW block, skipping")
)

// SyntaxError denotes a malformed ACE table: a bad header, a truncated
// XSS array, or a block whose declared length does not match what was
// actually read.
type SyntaxError struct {
	Line     int
	Context  string
	Msg      string
	InnerErr error
}

// Error returns a human-readable error message.
func (se SyntaxError) Error() string {
	msg := se.Msg
	if se.InnerErr != nil {
		msg = fmt.Errorf("%v: %w", msg, se.InnerErr).Error()
	}
	if se.Line > 0 {
		return fmt.Sprintf("ace: syntax error at line %d: %v\n%d\t%v", se.Line, msg, se.Line, se.Context)
	}
	return fmt.Sprintf("ace: syntax error: %v", msg)
}

// Unwrap returns the underlying sentinel error, if any, so callers can
// use errors.Is/errors.As on the returned error.
func (se SyntaxError) Unwrap() error {
	return se.InnerErr
}

// DiagnosticKind enumerates the soft-failure categories a decode can
// attach to an AceTable without aborting the whole decode.
type DiagnosticKind int

const (
	// UnknownLaw marks a LAW id absent from the law registry. The
	// enclosing SecondaryDistribution envelope still decodes; the
	// law payload becomes Unknown(id).
	UnknownLaw DiagnosticKind = iota
	// UnsupportedLaw marks laws 2, 22, 24: the decoder knows about
	// them but does not decode their payload.
	UnsupportedLaw
	// UnsupportedChainedLaw marks LNW != 0.
	UnsupportedChainedLaw
	// UnsupportedMtAbove100 marks MT > 100 seen in a DLW block.
	UnsupportedMtAbove100
	// UnresolvedAngularLocator marks an AND-block locator of -1
	// (distribution deferred to the energy-law data).
	UnresolvedAngularLocator
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownLaw:
		return "UnknownLaw"
	case UnsupportedLaw:
		return "UnsupportedLaw"
	case UnsupportedChainedLaw:
		return "UnsupportedChainedLaw"
	case UnsupportedMtAbove100:
		return "UnsupportedMtAbove100"
	case UnresolvedAngularLocator:
		return "UnresolvedAngularLocator"
	default:
		return "Unknown"
	}
}

// Diagnostic is a soft-failure value attached to a decoded AceTable.
// Downstream code decides whether to log, fail, or filter on these;
// the decode itself never aborts because of one. Per spec.md §9,
// diagnostics are explicit values rather than out-of-band warnings.
type Diagnostic struct {
	Kind    DiagnosticKind
	MT      int
	LawID   int
	Message string
	Err     error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

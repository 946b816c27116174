package ace

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Flavor distinguishes the four table shapes spec.md §1 names: ce
// (continuous-energy neutron), sab (S(α,β)), photon, and charged
// (proton/charged-particle). Flavor is derived from the ZAID library
// suffix letter, following ace.py's classification, falling back to
// "ce" when the suffix is absent or unrecognized.
type Flavor int

const (
	FlavorCE Flavor = iota
	FlavorSAB
	FlavorPhoton
	FlavorCharged
)

func (f Flavor) String() string {
	switch f {
	case FlavorCE:
		return "continuous-energy neutron"
	case FlavorSAB:
		return "S(alpha,beta)"
	case FlavorPhoton:
		return "photoatomic"
	case FlavorCharged:
		return "charged-particle"
	default:
		return "unknown"
	}
}

// classifyFlavor inspects the trailing letter of a ZAID library
// suffix ("92235.70c" -> 'c') to pick the table flavor, per
// SUPPLEMENTED FEATURES #3 in SPEC_FULL.md.
func classifyFlavor(zaid string) Flavor {
	dot := strings.LastIndexByte(zaid, '.')
	if dot < 0 || dot == len(zaid)-1 {
		return FlavorCE
	}
	suffix := zaid[dot+1:]
	letter := suffix[len(suffix)-1]
	switch letter {
	case 't':
		return FlavorSAB
	case 'p', 'g':
		return FlavorPhoton
	case 'h', 'o', 'r', 'u', 'y', 'e', 'd', 'n', 'a':
		// proton, deuteron, triton, helion, alpha, electron, etc.
		return FlavorCharged
	default:
		return FlavorCE
	}
}

// Header carries the identification and processing metadata a table's
// first 12 (old-style) or 1+1+N+10 (new-style) lines encode, per
// spec.md §3 "processing metadata" and §4.1.
type Header struct {
	NewStyle bool

	ZAID       string
	Version    string // new-style only
	Source     string // new-style only
	Z, A       int
	HasZA      bool
	Metastable bool
	Suffix     string

	AtomicWeightRatio float64
	Temperature       float64 // MeV
	ProcessingDate    string
	Comment           string
	MaterialID        string

	NXS [17]int // 1-indexed, NXS[0] unused
	JXS [33]int // 1-indexed, JXS[0] unused
}

// readHeader parses the header block starting at the reader's current
// position, per spec.md §4.1.
func readHeader(r *bufio.Reader) (Header, error) {
	var h Header

	firstLine, err := readTrimmedLine(r)
	if err != nil {
		return h, SyntaxError{Line: 1, Msg: "failed to read first header line", InnerErr: err}
	}
	firstTokens := strings.Fields(firstLine)

	h.NewStyle = len(firstTokens) <= 3
	lineNo := 1
	if h.NewStyle {
		if len(firstTokens) != 3 {
			return h, SyntaxError{Line: 1, Context: firstLine, Msg: "new-style header first line must have 3 tokens"}
		}
		h.Version, h.ZAID, h.Source = firstTokens[0], firstTokens[1], firstTokens[2]

		lineNo++
		secondLine, err := readTrimmedLine(r)
		if err != nil {
			return h, SyntaxError{Line: lineNo, Msg: "failed to read new-style second header line", InnerErr: err}
		}
		secondTokens := strings.Fields(secondLine)
		if len(secondTokens) < 4 {
			return h, SyntaxError{Line: lineNo, Context: secondLine, Msg: "new-style second header line must have 4 tokens"}
		}
		if h.AtomicWeightRatio, err = strconv.ParseFloat(secondTokens[0], 64); err != nil {
			return h, SyntaxError{Line: lineNo, Context: secondLine, Msg: "malformed AWR", InnerErr: err}
		}
		if h.Temperature, err = strconv.ParseFloat(secondTokens[1], 64); err != nil {
			return h, SyntaxError{Line: lineNo, Context: secondLine, Msg: "malformed temperature", InnerErr: err}
		}
		h.ProcessingDate = secondTokens[2]
		nComments, err := strconv.Atoi(secondTokens[3])
		if err != nil {
			return h, SyntaxError{Line: lineNo, Context: secondLine, Msg: "malformed comment count", InnerErr: err}
		}
		var comments []string
		for i := 0; i < nComments; i++ {
			lineNo++
			line, err := readTrimmedLine(r)
			if err != nil {
				return h, SyntaxError{Line: lineNo, Msg: "failed to read comment line", InnerErr: err}
			}
			comments = append(comments, line)
		}
		h.Comment = strings.Join(comments, "\n")
	} else {
		if len(firstTokens) != 4 {
			return h, SyntaxError{Line: 1, Context: firstLine, Msg: "old-style header first line must have 4 tokens"}
		}
		h.ZAID = firstTokens[0]
		if h.AtomicWeightRatio, err = strconv.ParseFloat(firstTokens[1], 64); err != nil {
			return h, SyntaxError{Line: 1, Context: firstLine, Msg: "malformed AWR", InnerErr: err}
		}
		if h.Temperature, err = strconv.ParseFloat(firstTokens[2], 64); err != nil {
			return h, SyntaxError{Line: 1, Context: firstLine, Msg: "malformed temperature", InnerErr: err}
		}
		h.ProcessingDate = firstTokens[3]

		lineNo++
		secondLine, err := readRawLine(r)
		if err != nil {
			return h, SyntaxError{Line: lineNo, Msg: "failed to read old-style second header line", InnerErr: err}
		}
		padded := secondLine
		for len(padded) < 80 {
			padded += " "
		}
		h.Comment = strings.TrimRight(padded[:70], " ")
		h.MaterialID = strings.TrimSpace(padded[70:80])
	}

	// IZ/AW pairs: 4 lines of 16 pairs total, not part of the data
	// model; consumed and discarded.
	for i := 0; i < 4; i++ {
		lineNo++
		if _, err := readTrimmedLine(r); err != nil {
			return h, SyntaxError{Line: lineNo, Msg: "failed to read IZ/AW line", InnerErr: err}
		}
	}

	nxsInts, err := readIntBlock(r, &lineNo, 2, 16)
	if err != nil {
		return h, err
	}
	for i, v := range nxsInts {
		h.NXS[i+1] = v
	}

	jxsInts, err := readIntBlock(r, &lineNo, 4, 32)
	if err != nil {
		return h, err
	}
	for i, v := range jxsInts {
		h.JXS[i+1] = v
	}

	h.Z, h.A, h.HasZA, h.Suffix = parseZAID(h.ZAID)

	// Continuous-energy neutron tables carry Z, A, and the metastable
	// state directly in NXS[9..11]; prefer them over the ZAID-string
	// heuristic above, which original_source/ace.py only falls back to
	// for flavors (SAB, photoatomic) that don't populate those fields.
	if classifyFlavor(h.ZAID) == FlavorCE && h.NXS[11] != 0 {
		h.Z = h.NXS[10]
		h.A = h.NXS[11]
		h.Metastable = h.NXS[9] != 0
		h.HasZA = true
	}

	return h, nil
}

// readIntBlock reads nLines lines, each whitespace-separated, expecting
// exactly total integers across all of them (NXS: 2 lines/16 ints,
// JXS: 4 lines/32 ints).
func readIntBlock(r *bufio.Reader, lineNo *int, nLines, total int) ([]int, error) {
	ints := make([]int, 0, total)
	for i := 0; i < nLines; i++ {
		*lineNo++
		line, err := readTrimmedLine(r)
		if err != nil {
			return nil, SyntaxError{Line: *lineNo, Msg: "failed to read directory line", InnerErr: err}
		}
		for _, token := range strings.Fields(line) {
			v, err := strconv.Atoi(token)
			if err != nil {
				return nil, SyntaxError{Line: *lineNo, Context: line, Msg: fmt.Sprintf("malformed directory integer %q", token), InnerErr: err}
			}
			ints = append(ints, v)
		}
	}
	if len(ints) != total {
		return nil, SyntaxError{
			Line:     *lineNo,
			Msg:      fmt.Sprintf("expected %d directory integers, got %d", total, len(ints)),
			InnerErr: ErrLengthMismatch,
		}
	}
	return ints, nil
}

// parseZAID splits a ZAID string "<ZA>.<suffix>" into its numeric and
// string parts, per spec.md §4.1: Z = ZA/1000, A = ZA - 1000*Z.
// Thermal-scattering materials use alphanumeric names (e.g. "lwtr")
// instead of a ZA integer, in which case HasZA is false and Z/A are
// zero. The metastable flag is not derivable from ZAID alone
// (original_source/ace.py:889-896 does no such arithmetic); it comes
// from NXS[9] for continuous-energy neutron tables, set by the caller
// at header.go:192-197.
func parseZAID(zaid string) (z, a int, hasZA bool, suffix string) {
	dot := strings.LastIndexByte(zaid, '.')
	zaPart := zaid
	if dot >= 0 {
		zaPart = zaid[:dot]
		suffix = zaid[dot+1:]
	}
	za, err := strconv.Atoi(zaPart)
	if err != nil {
		return 0, 0, false, suffix
	}
	z = za / 1000
	a = za - 1000*z
	return z, a, true, suffix
}

func readTrimmedLine(r *bufio.Reader) (string, error) {
	line, err := readRawLine(r)
	return strings.TrimSpace(line), err
}

// readRawLine reads one line, stripping only the trailing newline (and
// a preceding carriage return), preserving leading/internal whitespace
// for callers that need fixed-column slicing (the old-style comment
// line).
func readRawLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

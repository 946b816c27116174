// Package ace decodes ACE (A Compact ENDF) nuclear cross-section data
// tables: the fixed-layout, whitespace-separated text files NJOY
// produces and Monte Carlo transport codes such as MCNP consume.
package ace

import (
	"bufio"
	"fmt"
	"io"
)

// AceTable is one fully decoded ACE table: its header, the flat XSS
// array's content fingerprint, flavor-specific payload, and any
// diagnostics collected along the way.
//
// At most one of CE or SAB is populated, selected by Header's derived
// Flavor; neither is for photon and charged-particle tables, which
// decode only their header
// (flavor, presence flags); their block payloads are an extension
// point (spec.md §4.3), matching the source's own "warns and moves on"
// treatment of photon-production blocks.
type AceTable struct {
	Header      Header
	Fingerprint uint64

	CE  *CEPayload
	SAB *SABPayload

	// Presence flags derived from JXS entries that are populated for
	// every flavor, independent of which payload (if any) was decoded;
	// see SPEC_FULL.md "SUPPLEMENTED FEATURES".
	HasPhotonProduction bool
	HasProbabilityTable bool
	HasDelayedNeutrons  bool

	Diagnostics []Diagnostic
}

// Decode reads one ACE table from r and returns its fully decoded
// form. r may be positioned at the start of any table within a
// multi-table archive; Decode decodes that one table. The position of
// r after Decode returns is not defined: the XSS loader reads ahead
// through its own buffer, so input after the table may already have
// been consumed.
//
// Input compressed with gzip or zstd is transparently unwrapped; see
// archive.go.
func Decode(r io.Reader) (AceTable, error) {
	r, err := unwrapArchive(r)
	if err != nil {
		return AceTable{}, err
	}
	br := bufio.NewReaderSize(r, 64*1024)

	h, err := readHeader(br)
	if err != nil {
		return AceTable{}, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	x, fingerprint, err := loadXSS(br, h.NXS[1])
	if err != nil {
		return AceTable{}, err
	}

	table := AceTable{
		Header:              h,
		Fingerprint:         fingerprint,
		HasPhotonProduction: h.JXS[12] != 0,
		HasProbabilityTable: h.JXS[23] != 0,
		HasDelayedNeutrons:  h.JXS[24] != 0,
	}

	switch classifyFlavor(h.ZAID) {
	case FlavorSAB:
		payload, err := decodeSAB(x, h)
		if err != nil {
			return AceTable{}, err
		}
		table.SAB = &payload
	case FlavorPhoton, FlavorCharged:
		// Extension point (spec.md §4.3): header and presence flags
		// only, no block decode.
	default:
		payload, diags, err := decodeCE(x, h)
		if err != nil {
			return AceTable{}, err
		}
		table.CE = &payload
		table.Diagnostics = diags
	}

	return table, nil
}

// DecodeFile opens path and seeks to address (the 1-based starting
// line an xsdir entry names), then decodes one table, per spec.md §6:
// "the 1-based starting line within the target file."
func DecodeFile(path string, address int) (AceTable, error) {
	f, err := openForDecode(path)
	if err != nil {
		return AceTable{}, err
	}
	defer f.Close()

	r, err := unwrapArchive(f)
	if err != nil {
		return AceTable{}, err
	}
	br := bufio.NewReaderSize(r, 64*1024)
	if err := skipLines(br, address-1); err != nil {
		return AceTable{}, fmt.Errorf("ace: seeking to line %d of %s: %w", address, path, err)
	}
	return Decode(br)
}

// skipLines discards exactly n lines from r.
func skipLines(r *bufio.Reader, n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.ReadString('\n'); err != nil {
			return err
		}
	}
	return nil
}

// decodeCE decodes the block sequence common to every continuous-
// energy neutron table, in the fixed order spec.md §4.3 specifies:
// ESZ (always) -> NU (if JXS[2]!=0) -> MTR/LQR/TYR/LSIG/SIG (if
// NXS[4]!=0) -> LAND (always) -> AND (always) -> LDLW/DLW (if
// NXS[5]!=0).
func decodeCE(x xss, h Header) (CEPayload, []Diagnostic, error) {
	var payload CEPayload
	var diags []Diagnostic

	energies, eszXS, err := decodeESZ(x, h)
	if err != nil {
		return payload, nil, err
	}
	payload.Energies = energies
	payload.XS = eszXS

	if h.JXS[2] != 0 {
		nubar, err := decodeNU(x, h)
		if err != nil {
			return payload, nil, err
		}
		payload.Nubar = nubar
	}

	var mtList []int
	var reactionType []int
	if h.NXS[4] != 0 {
		var qValues []float64
		var reactionXS map[int]CrossSection
		mtList, qValues, reactionType, reactionXS, err = decodeMTRLQRTYRLSIGSIG(x, h, energies)
		if err != nil {
			return payload, nil, err
		}
		payload.MTList = mtList
		payload.QValues = qValues
		payload.ReactionType = reactionType
		for mt, cs := range reactionXS {
			payload.XS[mt] = cs
		}
	}

	angularDist, andDiags := decodeLANDAND(x, h, mtList)
	payload.AngularDist = angularDist
	diags = append(diags, andDiags...)

	if h.NXS[5] != 0 {
		secondary, sdDiags, err := decodeLDLWDLW(x, h, mtList, reactionType)
		if err != nil {
			return payload, nil, err
		}
		payload.SecondaryDist = secondary
		diags = append(diags, sdDiags...)
	}

	return payload, diags, nil
}

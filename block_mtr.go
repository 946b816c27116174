package ace

import "fmt"

// decodeMTRLQRTYRLSIGSIG reads the five reaction-description blocks
// that together describe every non-elastic reaction, per spec.md §4.6.
// All five are guarded by the same predicate (NXS[4] != 0) and always
// decoded together since LSIG/SIG need the MT list TYR/LQR were keyed
// against.
func decodeMTRLQRTYRLSIGSIG(x xss, h Header, energies []float64) (mtList []int, qValues []float64, reactionType []int, xsMap map[int]CrossSection, err error) {
	ntr := h.NXS[4]
	if ntr == 0 {
		return nil, nil, nil, map[int]CrossSection{}, nil
	}

	mtList = x.xssIntSlice(h.JXS[3], ntr)
	qValues = x.xssSlice(h.JXS[4], ntr)
	reactionType = x.xssIntSlice(h.JXS[5], ntr)
	locators := x.xssIntSlice(h.JXS[6], ntr)

	xsMap = make(map[int]CrossSection, ntr)
	sigBase := h.JXS[7]
	for i, mt := range mtList {
		loca := locators[i]
		p := sigBase + loca - 1
		ie := x.xssInt(p)
		ne := x.xssInt(p + 1)
		values := x.xssSlice(p+2, ne)

		if ie < 1 || ie-1+ne > len(energies) {
			return nil, nil, nil, nil, SyntaxError{
				Msg:      fmt.Sprintf("SIG block MT=%d: energy-grid slice [%d,%d) out of range (NES=%d)", mt, ie-1, ie-1+ne, len(energies)),
				InnerErr: ErrLengthMismatch,
			}
		}
		energySlice := make([]float64, ne)
		copy(energySlice, energies[ie-1:ie-1+ne])

		cs, err := newCrossSection(mt, "", energySlice, values)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		xsMap[mt] = cs
	}
	return mtList, qValues, reactionType, xsMap, nil
}

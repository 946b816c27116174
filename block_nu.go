package ace

// decodeNU reads the NU block (prompt/total/delayed nubar), per
// spec.md §4.5. Returns nil if JXS[2] == 0 (no nubar at all).
func decodeNU(x xss, h Header) (*Nubar, error) {
	if h.JXS[2] == 0 {
		return nil, nil
	}
	k := h.JXS[2]
	first := x.xssAt(k)

	nubar := &Nubar{}
	if first > 0 {
		table := decodeNubarTable(x, k)
		nubar.HasPrompt, nubar.Prompt = true, table
		nubar.HasTotal, nubar.Total = true, table
	} else {
		promptStart := k + 1
		nubar.HasPrompt, nubar.Prompt = true, decodeNubarTable(x, promptStart)

		totalStart := k + int(-first) + 1
		nubar.HasTotal, nubar.Total = true, decodeNubarTable(x, totalStart)
	}

	if h.JXS[24] > 0 {
		delayed, err := decodeDelayedNubar(x, h)
		if err != nil {
			return nil, err
		}
		nubar.HasDelayed = true
		nubar.Delayed = delayed
	}
	return nubar, nil
}

// decodeNubarTable reads one prompt or total nubar record at k, per
// spec.md §4.5: LNU==1 is a polynomial (degree + coefficients),
// LNU==2 is tabular (NR/NBT/INT prelude, NE, energy, value).
func decodeNubarTable(x xss, k int) NubarTable {
	lnu := x.xssInt(k)
	if lnu == 1 {
		nc := x.xssInt(k + 1)
		coeffs := x.xssSlice(k+2, nc+1)
		return NubarTable{Polynomial: true, Coefficients: coeffs}
	}
	regions, afterRegions := readInterpRegions(x, k+1)
	ne := x.xssInt(afterRegions)
	energy := x.xssSlice(afterRegions+1, ne)
	value := x.xssSlice(afterRegions+1+ne, ne)
	return NubarTable{Regions: regions, Energy: energy, Value: value}
}

// decodeDelayedNubar reads the delayed-nubar table at JXS[24] (same
// LNU-tagged polynomial-or-tabular shape as decodeNubarTable), the
// NXS[8] precursor-family records at JXS[25], and the per-family
// emitted-neutron distribution at JXS[26]/JXS[27] ("the analog of
// LDLW/DLW"), per spec.md §4.5.
func decodeDelayedNubar(x xss, h Header) (DelayedNubar, error) {
	table := decodeNubarTable(x, h.JXS[24])

	npcr := h.NXS[8]
	families := make([]PrecursorFamily, npcr)
	p := h.JXS[25]
	for i := 0; i < npcr; i++ {
		decay := x.xssAt(p)
		famRegions, famAfterRegions := readInterpRegions(x, p+1)
		famNE := x.xssInt(famAfterRegions)
		famEnergy := x.xssSlice(famAfterRegions+1, famNE)
		famProb := x.xssSlice(famAfterRegions+1+famNE, famNE)
		families[i] = PrecursorFamily{DecayConstant: decay, Regions: famRegions, Energy: famEnergy, Probability: famProb}
		p = famAfterRegions + 1 + 2*famNE
	}

	if npcr > 0 {
		locators := x.xssIntSlice(h.JXS[26], npcr)
		for i, loca := range locators {
			sd, _, err := decodeSecondaryDistribution(x, h.JXS[27], loca, 0, 1)
			if err != nil {
				return DelayedNubar{}, err
			}
			families[i].Distribution = sd
		}
	}

	return DelayedNubar{Table: table, Precursors: families}, nil
}

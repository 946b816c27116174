package ace

import "fmt"

// decodeLDLWDLW reads the LDLW locator table (NXS[5] locators at
// JXS[10], each relative to JXS[11]) and, for each one, the
// secondary-energy-distribution record it points to in the DLW block,
// per spec.md §4.8. Per reaction: MT > 100 is skipped with a
// diagnostic (the source's documented limitation, carried forward
// unchanged per SPEC_FULL.md).
func decodeLDLWDLW(x xss, h Header, mtList []int, reactionType []int) (map[int]SecondaryDistribution, []Diagnostic, error) {
	nr := h.NXS[5]
	if nr == 0 {
		return map[int]SecondaryDistribution{}, nil, nil
	}
	locators := x.xssIntSlice(h.JXS[10], nr)

	result := make(map[int]SecondaryDistribution, nr)
	var diags []Diagnostic
	for i, loca := range locators {
		if i >= len(mtList) {
			break
		}
		mt := mtList[i]
		if mt > 100 {
			diags = append(diags, Diagnostic{
				Kind:    UnsupportedMtAbove100,
				MT:      mt,
				Message: fmt.Sprintf("MT=%d greater than 100 found in DLW block, skipping", mt),
				Err:     ErrUnsupportedMtAbove100,
			})
			continue
		}
		tyr := reactionType[i]
		sd, sdDiags, err := decodeSecondaryDistribution(x, h.JXS[11], loca, mt, tyr)
		if err != nil {
			return nil, nil, err
		}
		diags = append(diags, sdDiags...)
		result[mt] = sd
	}
	return result, diags, nil
}

// decodeSecondaryDistribution decodes one DLW record at
// jxs11+loca-1, per spec.md §4.8. LNW != 0 (a chained law) is
// recorded as a diagnostic and only the first law is decoded, per the
// "Open question" in spec.md §9.
func decodeSecondaryDistribution(x xss, jxs11, loca, mt, tyr int) (SecondaryDistribution, []Diagnostic, error) {
	p := jxs11 + loca - 1
	lnw := x.xssInt(p)
	law := x.xssInt(p + 1)
	idat := x.xssInt(p + 2)

	regions, afterRegions := readInterpRegions(x, p+3)
	ne := x.xssInt(afterRegions)
	ein := x.xssSlice(afterRegions+1, ne)
	prob := x.xssSlice(afterRegions+1+ne, ne)

	ldat := jxs11 + idat - 1
	payload, diag := decodeLawPayload(x, law, ldat, jxs11)

	var diags []Diagnostic
	if diag != nil {
		diag.MT = mt
		diags = append(diags, *diag)
	}
	if lnw != 0 {
		diags = append(diags, Diagnostic{
			Kind:    UnsupportedChainedLaw,
			MT:      mt,
			LawID:   law,
			Message: fmt.Sprintf("MT=%d: chained law (LNW=%d) not followed, only first law decoded", mt, lnw),
			Err:     ErrUnsupportedChainedLaw,
		})
	}

	yield := Yield{Constant: abs(tyr)}
	if abs(tyr) > 100 {
		ky := jxs11 + abs(tyr) - 101
		yield = decodeEnergyDependentYield(x, ky)
	}

	return SecondaryDistribution{
		MT:          mt,
		Law:         law,
		Regions:     regions,
		Ein:         ein,
		Probability: prob,
		Yield:       yield,
		Payload:     payload,
	}, diags, nil
}

// decodeEnergyDependentYield reads an (NBT, INT, energy, yield) tab1
// record at ky, per spec.md §4.6/§4.8 ("_energyDependentNeutronYield").
func decodeEnergyDependentYield(x xss, ky int) Yield {
	regions, afterRegions := readInterpRegions(x, ky)
	ne := x.xssInt(afterRegions)
	energy := x.xssSlice(afterRegions+1, ne)
	value := x.xssSlice(afterRegions+1+ne, ne)
	return Yield{IsEnergyDep: true, Regions: regions, Energy: energy, Value: value}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

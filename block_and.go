package ace

import "strconv"

// decodeLANDAND reads the LAND block (NXS[5]+1 locators at JXS[8]) and
// the AND block it points into (base JXS[9]), producing one
// AngularDistribution per MT in mtList plus the distinguished
// "elastic" entry at index 0, per spec.md §4.7. Any locator of -1
// (distribution deferred to the energy-law data) attaches an
// UnresolvedAngularLocator diagnostic per the "diagnostics as values"
// contract spec.md §9 describes.
func decodeLANDAND(x xss, h Header, mtList []int) (map[string]AngularDistribution, []Diagnostic) {
	nr := h.NXS[5]
	locators := x.xssIntSlice(h.JXS[8], nr+1)
	base := h.JXS[9]

	out := make(map[string]AngularDistribution, nr+1)
	var diags []Diagnostic

	elasticBins, elasticDiags := decodeANDLocator(x, base, locators[0], 2)
	out["elastic"] = AngularDistribution{MT: 2, Bins: elasticBins}
	diags = append(diags, elasticDiags...)

	for i := 0; i < nr && i < len(mtList); i++ {
		mt := mtList[i]
		bins, d := decodeANDLocator(x, base, locators[i+1], mt)
		out[mtKey(mt)] = AngularDistribution{MT: mt, Bins: bins}
		diags = append(diags, d...)
	}
	return out, diags
}

func mtKey(mt int) string {
	return strconv.Itoa(mt)
}

// decodeANDLocator decodes one AND-block locator, per spec.md §4.7:
//
//	L == 0:  isotropic at all incident energies.
//	L == -1: deferred to the energy-law data (sentinel, unresolved here).
//	L > 0:   NE energies, each with its own per-energy locator lc.
func decodeANDLocator(x xss, base int, l int, mt int) ([]AngularBin, []Diagnostic) {
	switch {
	case l == 0:
		return []AngularBin{{VariantKind: AngularIsotropic}}, nil
	case l == -1:
		diag := Diagnostic{
			Kind:    UnresolvedAngularLocator,
			MT:      mt,
			Message: "angular distribution deferred to energy-law data (AND locator == -1)",
		}
		return []AngularBin{{VariantKind: AngularDeferred}}, []Diagnostic{diag}
	default:
		p := base + l - 1
		ne := x.xssInt(p)
		energies := x.xssSlice(p+1, ne)
		lcs := x.xssIntSlice(p+1+ne, ne)
		bins := make([]AngularBin, ne)
		for i := 0; i < ne; i++ {
			bins[i] = decodeAngularBinAt(x, base, energies[i], lcs[i])
		}
		return bins, nil
	}
}

// decodeAngularBinAt decodes a single incident energy's angular
// distribution given its lc value, relative to base, per spec.md §4.7.
// Law 61's per-outgoing-energy angular records are decoded separately
// by decodeLaw61AngularBin (laws.go), which reads a positive locator
// as a tabular record rather than a 32-bin one.
func decodeAngularBinAt(x xss, base int, energy float64, lc int) AngularBin {
	switch {
	case lc > 0:
		cos := x.xssSlice(base+lc-1, 32)
		pdf := make([]float64, 32)
		cdf := make([]float64, 32)
		for i := range pdf {
			pdf[i] = 1.0 / 32.0
			cdf[i] = float64(i+1) / 32.0
		}
		return AngularBin{Energy: energy, VariantKind: AngularEquiprobable32, Cosine: cos, Pdf: pdf, Cdf: cdf}
	case lc == 0:
		return AngularBin{Energy: energy, VariantKind: AngularIsotropic, Cosine: []float64{-1, 1}, Pdf: []float64{1}, Cdf: []float64{1}}
	default:
		p := base + (-lc) - 1
		jj := x.xssInt(p)
		np := x.xssInt(p + 1)
		cos := x.xssSlice(p+2, np)
		pdf := x.xssSlice(p+2+np, np)
		cdf := x.xssSlice(p+2+2*np, np)
		return AngularBin{Energy: energy, VariantKind: AngularTabular, Interp: jj, Cosine: cos, Pdf: pdf, Cdf: cdf}
	}
}

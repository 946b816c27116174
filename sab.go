package ace

// decodeSAB decodes a thermal-scattering S(α,β) table's ITIE, ITCE,
// ITCA, and ITXE blocks, per spec.md §4.10.
func decodeSAB(x xss, h Header) (SABPayload, error) {
	var p SABPayload

	neIn := x.xssInt(h.JXS[1])
	p.InelasticEnergy = x.xssSlice(h.JXS[1]+1, neIn)
	p.InelasticXS = x.xssSlice(h.JXS[1]+1+neIn, neIn)

	if h.JXS[4] != 0 {
		neEl := x.xssInt(h.JXS[4])
		p.HasElastic = true
		eel := x.xssSlice(h.JXS[4]+1, neEl)
		sigmaEl := x.xssSlice(h.JXS[4]+1+neEl, neEl)
		if h.NXS[5] == 4 {
			p.ElasticEnergy, p.ElasticXS = unnormalizeBraggEdges(eel, sigmaEl)
		} else {
			p.ElasticEnergy = eel
			p.ElasticXS = sigmaEl
		}

		if h.NXS[6] != -1 {
			nCos := h.NXS[6] + 1
			p.HasElasticAngles = true
			p.ElasticCosines = make([][]float64, neEl)
			base := h.JXS[6]
			for i := 0; i < neEl; i++ {
				p.ElasticCosines[i] = x.xssSlice(base+i*nCos, nCos)
			}
		}
	}

	switch h.NXS[7] {
	case 1:
		p.Equiprobable = decodeSABEquiprobable(x, h, neIn)
	case 2:
		p.Continuous = decodeSABContinuous(x, h, neIn)
	}
	return p, nil
}

// unnormalizeBraggEdges reverses the sigma*E normalization NXS[5]==4
// applies to coherent-elastic (Bragg-edge) cross sections, per
// spec.md §4.10 and original_source/ace.py:1729-1739. The source
// doubles each interior grid point into a (just-below-edge,
// just-above-edge) pair so the resulting step function reproduces the
// Bragg edges exactly, with the first point scaled by 1e-2 rather than
// divided by itself:
//
//	energy[0] = eel[0], xs[0] = sigmaEl[0]/eel[0]*1e-2
//	for i in 1..N-1: energy += [eel[i-1], eel[i]]
//	                 xs     += [sigmaEl[i-1]/eel[i-1], sigmaEl[i-1]/eel[i]]
//
// The result has length 2N-1 for an input of length N.
func unnormalizeBraggEdges(eel, sigmaEl []float64) (energy, xs []float64) {
	n := len(eel)
	if n == 0 {
		return nil, nil
	}
	energy = make([]float64, 0, 2*n-1)
	xs = make([]float64, 0, 2*n-1)

	energy = append(energy, eel[0])
	xs = append(xs, sigmaEl[0]/eel[0]*1e-2)

	for i := 1; i < n; i++ {
		energy = append(energy, eel[i-1], eel[i])
		xs = append(xs, sigmaEl[i-1]/eel[i-1], sigmaEl[i-1]/eel[i])
	}
	return energy, xs
}

// decodeSABEquiprobable decodes the NXS[7]==1 representation: a fixed
// layout of NXS[4] outgoing-energy groups per incident energy, each
// group an Eout value followed by NXS[3]+1 equiprobable cosines
// (stride NXS[3]+2), per spec.md §4.10.
func decodeSABEquiprobable(x xss, h Header, neIn int) []SABEquiprobableBin {
	nGroups := h.NXS[4]
	nCos := h.NXS[3] + 1
	stride := h.NXS[3] + 2
	base := h.JXS[3]

	bins := make([]SABEquiprobableBin, neIn)
	for i := 0; i < neIn; i++ {
		eout := make([]float64, nGroups)
		cosines := make([][]float64, nGroups)
		groupBase := base + i*nGroups*stride
		for g := 0; g < nGroups; g++ {
			p := groupBase + g*stride
			eout[g] = x.xssAt(p)
			cosines[g] = x.xssSlice(p+1, nCos)
		}
		bins[i] = SABEquiprobableBin{Eout: eout, Cosine: cosines}
	}
	return bins
}

// decodeSABContinuous decodes the NXS[7]==2 representation: a locator
// plus bin-count per incident energy at JXS[3], then, at each
// locator, nbin records of (Eout, pdf, cdf, cos[NXS[3]-1]), per
// spec.md §4.10.
func decodeSABContinuous(x xss, h Header, neIn int) [][]SABContinuousBin {
	base := h.JXS[3]
	locators := x.xssIntSlice(base, neIn)
	nbin := x.xssIntSlice(base+neIn, neIn)
	nCos := h.NXS[3] - 1

	out := make([][]SABContinuousBin, neIn)
	for i := 0; i < neIn; i++ {
		recs := make([]SABContinuousBin, nbin[i])
		cursor := base + locators[i] - 1
		for b := 0; b < nbin[i]; b++ {
			recs[b] = SABContinuousBin{
				Eout:   x.xssAt(cursor),
				Pdf:    x.xssAt(cursor + 1),
				Cdf:    x.xssAt(cursor + 2),
				Cosine: x.xssSlice(cursor+3, nCos),
			}
			cursor += 3 + nCos
		}
		out[i] = recs
	}
	return out
}

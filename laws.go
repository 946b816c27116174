package ace

import "fmt"

// readInterpRegions reads an ENDF interpolation-region descriptor (NR,
// then NBT[NR] and INT[NR]) starting at p, and returns the position of
// the word immediately following it. This is the first half of both
// shared preludes spec.md §4.9 names (the tabular-distribution prelude
// and the spectrum prelude).
func readInterpRegions(x xss, p int) (NBTINT, int) {
	nr := x.xssInt(p)
	nbt := x.xssIntSlice(p+1, nr)
	intr := x.xssIntSlice(p+1+nr, nr)
	return NBTINT{NBT: nbt, INT: intr}, p + 1 + 2*nr
}

// tabularPrelude reads the shared prelude for laws 4, 44, 61, and 67:
// NR/NBT/INT, NE, Ein[NE], loc[NE] (offsets relative to locatorBase).
// It returns the incident-energy grid, the per-energy locators, and
// the position immediately following the locator array (only
// meaningful for laws that walk a running cursor rather than jumping
// through per-energy locators, i.e. 4/44/61).
func tabularPrelude(x xss, ldat int) (regions NBTINT, ein []float64, locators []int, next int) {
	regions, afterRegions := readInterpRegions(x, ldat)
	ne := x.xssInt(afterRegions)
	ein = x.xssSlice(afterRegions+1, ne)
	locators = x.xssIntSlice(afterRegions+1+ne, ne)
	next = afterRegions + 1 + 2*ne
	return regions, ein, locators, next
}

// spectrumPrelude reads the shared prelude for laws 5, 7, 9, and 11's
// sub-tables: NR/NBT/INT, NE, Ein[NE], T[NE].
func spectrumPrelude(x xss, ldat int) (regions NBTINT, ein, t []float64, next int) {
	regions, afterRegions := readInterpRegions(x, ldat)
	ne := x.xssInt(afterRegions)
	ein = x.xssSlice(afterRegions+1, ne)
	t = x.xssSlice(afterRegions+1+ne, ne)
	next = afterRegions + 1 + 2*ne
	return regions, ein, t, next
}

// splitINTT separates the discrete/continuous encoding spec.md §4.9 and
// §9 document: INTT > 10 packs ND (count of discrete outgoing-energy
// lines at the front of the tabulation) into the tens place, leaving
// the interpolation flag in the ones place.
func splitINTT(intt int) (nDiscrete int, interp int) {
	if intt > 10 {
		return intt / 10, intt % 10
	}
	return 0, intt
}

// decodeTabularOutgoing reads one incident energy's Law 4-shaped
// record (INTT, NP, Eout[NP], pdf[NP], cdf[NP]) starting at k, and
// returns the number of words consumed so the caller can advance its
// cursor.
func decodeTabularOutgoing(x xss, energy float64, k int) (TabularOutgoing, int) {
	intt := x.xssInt(k)
	nd, interp := splitINTT(intt)
	np := x.xssInt(k + 1)
	eout := x.xssSlice(k+2, np)
	pdf := x.xssSlice(k+2+np, np)
	cdf := x.xssSlice(k+2+2*np, np)
	words := 2 + 3*np
	return TabularOutgoing{Energy: energy, Interp: interp, NDiscrete: nd, Eout: eout, Pdf: pdf, Cdf: cdf}, words
}

func decodeLaw1(x xss, ldat int) Law1Payload {
	regions, afterRegions := readInterpRegions(x, ldat)
	ne := x.xssInt(afterRegions)
	ein := x.xssSlice(afterRegions+1, ne)
	netPos := afterRegions + 1 + ne
	net := x.xssInt(netPos)
	k := netPos + 1
	outBins := make([][]float64, ne)
	for i := 0; i < ne; i++ {
		outBins[i] = x.xssSlice(k, net)
		k += net
	}
	return Law1Payload{Regions: regions, Ein: ein, OutBins: outBins}
}

func decodeLaw3(x xss, ldat int) Law3Payload {
	return Law3Payload{LDAT0: x.xssAt(ldat), LDAT1: x.xssAt(ldat + 1)}
}

func decodeLaw4(x xss, ldat int) Law4Payload {
	regions, ein, locators, next := tabularPrelude(x, ldat)
	_ = next
	outgoing := make([]TabularOutgoing, len(ein))
	// LAW=4's outgoing records follow sequentially rather than via the
	// locators array (per spec.md §4.9: "iterate incident energies at
	// running cursor K"); the locators array is still carried for
	// parity with laws 44/61/67 that share the same prelude shape.
	k := next
	for i, e := range ein {
		rec, words := decodeTabularOutgoing(x, e, k)
		outgoing[i] = rec
		k += words
	}
	return Law4Payload{Regions: regions, Ein: ein, Locators: locators, Outgoing: outgoing}
}

func decodeLaw44(x xss, ldat int) Law44Payload {
	regions, ein, locators, next := tabularPrelude(x, ldat)
	outgoing := make([]Law44Outgoing, len(ein))
	k := next
	for i, e := range ein {
		base, words := decodeTabularOutgoing(x, e, k)
		np := len(base.Eout)
		r := x.xssSlice(k+words, np)
		a := x.xssSlice(k+words+np, np)
		outgoing[i] = Law44Outgoing{TabularOutgoing: base, R: r, A: a}
		k += words + 2*np
	}
	return Law44Payload{Regions: regions, Ein: ein, Locators: locators, Outgoing: outgoing}
}

// decodeLaw61AngularBin decodes one outgoing-energy point's angular
// distribution for a Law 61 record, per spec.md §4.9: lc == 0 is
// isotropic; lc > 0 is a full tabular record (JJ, NP, cos, pdf, cdf) at
// base+lc-1. Unlike the AND block's locator convention (block_and.go),
// a positive Law 61 locator always means "tabular", never
// "equiprobable-32".
func decodeLaw61AngularBin(x xss, base int, lc int) AngularBinRef {
	if lc == 0 {
		return AngularBinRef{Isotropic: true, Bin: AngularBin{VariantKind: AngularIsotropic}}
	}
	p := base + lc - 1
	jj := x.xssInt(p)
	np := x.xssInt(p + 1)
	cos := x.xssSlice(p+2, np)
	pdf := x.xssSlice(p+2+np, np)
	cdf := x.xssSlice(p+2+2*np, np)
	return AngularBinRef{Bin: AngularBin{VariantKind: AngularTabular, Interp: jj, Cosine: cos, Pdf: pdf, Cdf: cdf}}
}

func decodeLaw61(x xss, ldat int, angularBase int) Law61Payload {
	regions, ein, locators, next := tabularPrelude(x, ldat)
	outgoing := make([]Law61Outgoing, len(ein))
	// Explicit cursor bookkeeping: advance k by exactly the words each
	// outgoing-energy record consumes (2 + 4*NP), never by reusing a
	// loop-local from the angular sub-decode. This is the Open
	// Question spec.md §9 calls out by name.
	k := next
	for i, e := range ein {
		intt := x.xssInt(k)
		nd, interp := splitINTT(intt)
		np := x.xssInt(k + 1)
		eout := x.xssSlice(k+2, np)
		pdf := x.xssSlice(k+2+np, np)
		cdf := x.xssSlice(k+2+2*np, np)
		lc := x.xssIntSlice(k+2+3*np, np)

		base := TabularOutgoing{Energy: e, Interp: interp, NDiscrete: nd, Eout: eout, Pdf: pdf, Cdf: cdf}
		angular := make([]AngularBinRef, np)
		for j := 0; j < np; j++ {
			angular[j] = decodeLaw61AngularBin(x, angularBase, lc[j])
		}
		outgoing[i] = Law61Outgoing{TabularOutgoing: base, Angular: angular}
		k += 2 + 4*np
	}
	return Law61Payload{Regions: regions, Ein: ein, Locators: locators, Outgoing: outgoing}
}

func decodeSpectrum(x xss, ldat int, hasU bool) SpectrumPayload {
	regions, ein, t, next := spectrumPrelude(x, ldat)
	payload := SpectrumPayload{Regions: regions, Ein: ein, T: t}
	if hasU {
		payload.U = x.xssAt(next)
		payload.HasU = true
		return payload
	}
	// LAW=5: explicit NET count followed by the bin-boundary array X.
	net := x.xssInt(next)
	payload.X = x.xssSlice(next+1, net)
	return payload
}

func decodeLaw11(x xss, ldat int) Law11Payload {
	aRegions, aEin, aValues, next := spectrumPrelude(x, ldat)
	bRegions, bEin, bValues, afterB := spectrumPrelude(x, next)
	u := x.xssAt(afterB)
	return Law11Payload{
		ARegions: aRegions, AEin: aEin, AValues: aValues,
		BRegions: bRegions, BEin: bEin, BValues: bValues,
		U: u,
	}
}

func decodeLaw66(x xss, ldat int) Law66Payload {
	return Law66Payload{NBodies: x.xssInt(ldat), TotalMassRatio: x.xssAt(ldat + 1)}
}

func decodeLaw67(x xss, ldat int, angularBase int) Law67Payload {
	regions, ein, locators, _ := tabularPrelude(x, ldat)
	_ = regions
	incidents := make([]Law67Incident, len(ein))
	for i, e := range ein {
		p := angularBase + locators[i] - 1
		intmu := x.xssInt(p)
		nmu := x.xssInt(p + 1)
		cos := x.xssSlice(p+2, nmu)
		muLocs := x.xssIntSlice(p+2+nmu, nmu)

		bins := make([]Law67CosineBin, nmu)
		for j := 0; j < nmu; j++ {
			pc := angularBase + muLocs[j] - 1
			intep := x.xssInt(pc)
			npep := x.xssInt(pc + 1)
			eout := x.xssSlice(pc+2, npep)
			pdf := x.xssSlice(pc+2+npep, npep)
			cdf := x.xssSlice(pc+2+2*npep, npep)
			bins[j] = Law67CosineBin{Cosine: cos[j], Interp: intep, Eout: eout, Pdf: pdf, Cdf: cdf}
		}
		incidents[i] = Law67Incident{Energy: e, Interp: intmu, Cosine: cos, Bins: bins}
	}
	return Law67Payload{Incidents: incidents}
}

// decodeLawPayload dispatches on the LAW id to the matching decoder,
// per the registry spec.md §4.9 describes. Laws 2, 22, 24 are
// recognized but not decoded (spec.md §4.9's documented extension
// point); any other id produces an Unknown payload and a diagnostic,
// per spec.md §7/§8 scenario 6.
func decodeLawPayload(x xss, law int, ldat int, angularBase int) (LawPayload, *Diagnostic) {
	switch LawID(law) {
	case Law1:
		p := decodeLaw1(x, ldat)
		return LawPayload{Law1: &p}, nil
	case Law3:
		p := decodeLaw3(x, ldat)
		return LawPayload{Law3: &p}, nil
	case Law4:
		p := decodeLaw4(x, ldat)
		return LawPayload{Law4: &p}, nil
	case Law5:
		p := decodeSpectrum(x, ldat, false)
		return LawPayload{Law5: &p}, nil
	case Law7:
		p := decodeSpectrum(x, ldat, true)
		return LawPayload{Law7: &p}, nil
	case Law9:
		p := decodeSpectrum(x, ldat, true)
		return LawPayload{Law9: &p}, nil
	case Law11:
		p := decodeLaw11(x, ldat)
		return LawPayload{Law11: &p}, nil
	case Law44:
		p := decodeLaw44(x, ldat)
		return LawPayload{Law44: &p}, nil
	case Law61:
		p := decodeLaw61(x, ldat, angularBase)
		return LawPayload{Law61: &p}, nil
	case Law66:
		p := decodeLaw66(x, ldat)
		return LawPayload{Law66: &p}, nil
	case Law67:
		p := decodeLaw67(x, ldat, angularBase)
		return LawPayload{Law67: &p}, nil
	case Law2, Law22, Law24:
		return LawPayload{Unsupported: law}, &Diagnostic{
			Kind:    UnsupportedLaw,
			LawID:   law,
			Message: fmt.Sprintf("LAW=%d is recognized but not decoded", law),
		}
	default:
		return LawPayload{Unknown: law}, &Diagnostic{
			Kind:    UnknownLaw,
			LawID:   law,
			Message: fmt.Sprintf("LAW=%d is not in the law registry", law),
		}
	}
}

package ace

// decodeESZ reads the ESZ block: five contiguous length-N arrays at
// JXS[1] (energy, total, absorption, elastic, heating), per spec.md
// §4.4. ESZ is always present for a continuous-energy table.
func decodeESZ(x xss, h Header) (energies []float64, xsMap map[int]CrossSection, err error) {
	n := h.NXS[3]
	base := h.JXS[1]

	energies = x.xssSlice(base, n)
	total := x.xssSlice(base+n, n)
	absorption := x.xssSlice(base+2*n, n)
	elastic := x.xssSlice(base+3*n, n)
	heating := x.xssSlice(base+4*n, n)

	xsMap = make(map[int]CrossSection, 4)
	for _, p := range []struct {
		mt     int
		name   string
		values []float64
	}{
		{1, "total", total},
		{2, "elastic", elastic},
		{102, "absorption", absorption},
		{301, "heating", heating},
	} {
		cs, err := newCrossSection(p.mt, p.name, energies, p.values)
		if err != nil {
			return nil, nil, err
		}
		xsMap[p.mt] = cs
	}
	return energies, xsMap, nil
}

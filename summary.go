package ace

// Summary is a JSON-serializable digest of a decoded table: enough to
// drive a listing tool (spec.md §1's external "command-line listing
// tool" collaborator) without re-walking the full XSS-derived payload.
type Summary struct {
	ZAID              string  `json:"zaid"`
	Flavor            string  `json:"flavor"`
	Z                 int     `json:"z"`
	A                 int     `json:"a"`
	Metastable        bool    `json:"metastable"`
	AtomicWeightRatio float64 `json:"atomic_weight_ratio"`
	Temperature       float64 `json:"temperature"`
	TableLength       int     `json:"table_length"`

	NumEnergies int     `json:"num_energies,omitempty"`
	MaxEnergy   float64 `json:"max_energy,omitempty"`

	HasNubar            bool `json:"has_nubar"`
	HasDelayedNeutrons  bool `json:"has_delayed_neutrons"`
	HasProbabilityTable bool `json:"has_probability_table"`
	HasPhotonProduction bool `json:"has_photon_production"`

	NXS [17]int `json:"nxs"`
	JXS [33]int `json:"jxs"`

	Fingerprint string `json:"fingerprint"`

	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Summarize reduces a decoded AceTable to its JSON digest.
func Summarize(t AceTable) Summary {
	s := Summary{
		ZAID:                t.Header.ZAID,
		Flavor:              classifyFlavor(t.Header.ZAID).String(),
		Z:                   t.Header.Z,
		A:                   t.Header.A,
		Metastable:          t.Header.Metastable,
		AtomicWeightRatio:   t.Header.AtomicWeightRatio,
		Temperature:         t.Header.Temperature,
		TableLength:         t.Header.NXS[1],
		HasDelayedNeutrons:  t.HasDelayedNeutrons,
		HasProbabilityTable: t.HasProbabilityTable,
		HasPhotonProduction: t.HasPhotonProduction,
		NXS:                 t.Header.NXS,
		JXS:                 t.Header.JXS,
		Fingerprint:         formatFingerprint(t.Fingerprint),
	}

	if t.CE != nil {
		s.NumEnergies = len(t.CE.Energies)
		if n := len(t.CE.Energies); n > 0 {
			s.MaxEnergy = t.CE.Energies[n-1]
		}
		s.HasNubar = t.CE.Nubar != nil
	}

	for _, d := range t.Diagnostics {
		s.Diagnostics = append(s.Diagnostics, d.String())
	}

	return s
}

func formatFingerprint(fp uint64) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[fp&0xf]
		fp >>= 4
	}
	return string(buf)
}

package ace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCETable(t *testing.T) {
	table := AceTable{
		Header: Header{
			ZAID:              "92235.70c",
			Z:                 92,
			A:                 235,
			AtomicWeightRatio: 233.025,
			Temperature:       2.53e-8,
		},
		Fingerprint:         0xdeadbeefcafef00d,
		HasDelayedNeutrons:  true,
		HasProbabilityTable: false,
		CE: &CEPayload{
			Energies: []float64{1, 2, 3},
			Nubar:    &Nubar{HasPrompt: true},
		},
		Diagnostics: []Diagnostic{
			{Kind: UnknownLaw, LawID: 77, Message: "LAW=77 is not in the law registry"},
		},
	}
	table.Header.NXS[1] = 42

	s := Summarize(table)
	assert.Equal(t, "92235.70c", s.ZAID)
	assert.Equal(t, "continuous-energy neutron", s.Flavor)
	assert.Equal(t, 92, s.Z)
	assert.Equal(t, 235, s.A)
	assert.Equal(t, 42, s.TableLength)
	assert.Equal(t, 3, s.NumEnergies)
	assert.Equal(t, 3.0, s.MaxEnergy)
	assert.True(t, s.HasNubar)
	assert.True(t, s.HasDelayedNeutrons)
	assert.Equal(t, "deadbeefcafef00d", s.Fingerprint)
	require.Len(t, s.Diagnostics, 1)
	assert.Contains(t, s.Diagnostics[0], "UnknownLaw")
}

func TestSummarizeSABTable(t *testing.T) {
	table := AceTable{
		Header: Header{ZAID: "lwtr.10t"},
	}
	s := Summarize(table)
	assert.Equal(t, "S(alpha,beta)", s.Flavor)
	assert.False(t, s.HasNubar)
	assert.Zero(t, s.NumEnergies)
}

func TestFormatFingerprintPadsLeadingZeros(t *testing.T) {
	assert.Equal(t, "0000000000000001", formatFingerprint(1))
	assert.Equal(t, "0000000000000000", formatFingerprint(0))
}

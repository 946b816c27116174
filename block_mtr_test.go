package ace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMTRLQRTYRLSIGSIG(t *testing.T) {
	data := []float64{
		16, 102, // MT list at JXS[3]=1
		-1.5, 0.0, // Q values at JXS[4]=3
		1, 1, // reaction type at JXS[5]=5
		1, 5, // LOCA at JXS[6]=7
		1, 2, 100, 200, // SIG record for MT=16, at sigBase=9
		1, 2, 300, 400, // SIG record for MT=102
	}
	x := xss{data: data}
	var h Header
	h.NXS[4] = 2
	h.JXS[3], h.JXS[4], h.JXS[5], h.JXS[6], h.JXS[7] = 1, 3, 5, 7, 9

	energies := []float64{10.0, 20.0}
	mtList, qValues, reactionType, xsMap, err := decodeMTRLQRTYRLSIGSIG(x, h, energies)
	require.NoError(t, err)

	assert.Equal(t, []int{16, 102}, mtList)
	assert.Equal(t, []float64{-1.5, 0.0}, qValues)
	assert.Equal(t, []int{1, 1}, reactionType)

	require.Contains(t, xsMap, 16)
	require.Contains(t, xsMap, 102)
	assert.Equal(t, []float64{10.0, 20.0}, xsMap[16].Energy)
	assert.Equal(t, []float64{100, 200}, xsMap[16].Value)
	assert.Equal(t, []float64{300, 400}, xsMap[102].Value)
}

func TestDecodeMTRLQRTYRLSIGSIGNoReactions(t *testing.T) {
	var h Header
	mtList, qValues, reactionType, xsMap, err := decodeMTRLQRTYRLSIGSIG(xss{}, h, nil)
	require.NoError(t, err)
	assert.Nil(t, mtList)
	assert.Nil(t, qValues)
	assert.Nil(t, reactionType)
	assert.Empty(t, xsMap)
}

func TestDecodeMTRLQRTYRLSIGSIGOutOfRangeEnergies(t *testing.T) {
	data := []float64{
		16,          // MT list
		0.0,         // Q
		1,           // reaction type
		1,           // LOCA
		5, 2, 1, 2, // SIG record: IE=5 is out of range for a 2-element energy grid
	}
	x := xss{data: data}
	var h Header
	h.NXS[4] = 1
	h.JXS[3], h.JXS[4], h.JXS[5], h.JXS[6], h.JXS[7] = 1, 2, 3, 4, 5

	_, _, _, _, err := decodeMTRLQRTYRLSIGSIG(x, h, []float64{10.0, 20.0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

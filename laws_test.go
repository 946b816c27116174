package ace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitINTT(t *testing.T) {
	nd, interp := splitINTT(23)
	assert.Equal(t, 2, nd)
	assert.Equal(t, 3, interp)

	nd, interp = splitINTT(2)
	assert.Equal(t, 0, nd)
	assert.Equal(t, 2, interp)
}

func TestReadInterpRegions(t *testing.T) {
	// NR=2, NBT=[3,5], INT=[1,2], starting at position 1.
	data := []float64{2, 3, 5, 1, 2, 99}
	x := xss{data: data}

	regions, next := readInterpRegions(x, 1)
	assert.Equal(t, []int{3, 5}, regions.NBT)
	assert.Equal(t, []int{1, 2}, regions.INT)
	assert.Equal(t, 6, next)
}

func TestDecodeLaw1(t *testing.T) {
	// NR=0, NE=2, Ein=[1.0,2.0], NET=2, two outgoing bins of 2 edges each.
	data := []float64{
		0, 2, 1.0, 2.0, // prelude
		2,              // NET
		0.0, 1.0,       // bin for Ein[0]
		0.0, 2.0,       // bin for Ein[1]
	}
	x := xss{data: data}

	p := decodeLaw1(x, 1)
	assert.Equal(t, []float64{1.0, 2.0}, p.Ein)
	require.Len(t, p.OutBins, 2)
	assert.Equal(t, []float64{0.0, 1.0}, p.OutBins[0])
	assert.Equal(t, []float64{0.0, 2.0}, p.OutBins[1])
}

func TestDecodeLaw3(t *testing.T) {
	data := []float64{1.5, -2.25}
	p := decodeLaw3(xss{data: data}, 1)
	assert.Equal(t, 1.5, p.LDAT0)
	assert.Equal(t, -2.25, p.LDAT1)
}

func TestDecodeLaw4(t *testing.T) {
	// NR=0, NE=1, Ein=[5.0], locator=[0], then one outgoing record:
	// INTT=1, NP=2, Eout[2], Pdf[2], Cdf[2].
	data := []float64{
		0, 1, 5.0, 0, // prelude
		1, 2, 1.0, 2.0, 0.5, 0.5, 0.5, 1.0, // outgoing record
	}
	x := xss{data: data}

	p := decodeLaw4(x, 1)
	require.Len(t, p.Outgoing, 1)
	rec := p.Outgoing[0]
	assert.Equal(t, 5.0, rec.Energy)
	assert.Equal(t, 1, rec.Interp)
	assert.Equal(t, []float64{1.0, 2.0}, rec.Eout)
	assert.Equal(t, []float64{0.5, 0.5}, rec.Pdf)
	assert.Equal(t, []float64{0.5, 1.0}, rec.Cdf)
}

func TestDecodeLaw44(t *testing.T) {
	data := []float64{
		0, 1, 5.0, 0, // prelude
		1, 1, 1.0, 1.0, 1.0, // outgoing: INTT=1, NP=1, Eout, Pdf, Cdf
		0.5, // R
		0.2, // A
	}
	x := xss{data: data}

	p := decodeLaw44(x, 1)
	require.Len(t, p.Outgoing, 1)
	assert.Equal(t, []float64{0.5}, p.Outgoing[0].R)
	assert.Equal(t, []float64{0.2}, p.Outgoing[0].A)
}

func TestDecodeLaw61Isotropic(t *testing.T) {
	data := []float64{
		0, 1, 5.0, 0, // prelude
		1, 1, 1.0, 1.0, 1.0, // outgoing: INTT=1,NP=1,Eout,Pdf,Cdf
		0, // LC=0 (isotropic)
	}
	x := xss{data: data}

	p := decodeLaw61(x, 1, 100)
	require.Len(t, p.Outgoing, 1)
	require.Len(t, p.Outgoing[0].Angular, 1)
	assert.True(t, p.Outgoing[0].Angular[0].Isotropic)
}

func TestDecodeSpectrumLaw5(t *testing.T) {
	// NR=0, NE=1, Ein=[1.0], T=[2.0], NET=2, X=[0.0,1.0].
	data := []float64{0, 1, 1.0, 2.0, 2, 0.0, 1.0}
	p := decodeSpectrum(xss{data: data}, 1, false)
	assert.Equal(t, []float64{1.0}, p.Ein)
	assert.Equal(t, []float64{2.0}, p.T)
	assert.Equal(t, []float64{0.0, 1.0}, p.X)
	assert.False(t, p.HasU)
}

func TestDecodeSpectrumLaw7(t *testing.T) {
	// NR=0, NE=1, Ein=[1.0], T=[2.0], U=0.5.
	data := []float64{0, 1, 1.0, 2.0, 0.5}
	p := decodeSpectrum(xss{data: data}, 1, true)
	assert.Equal(t, []float64{1.0}, p.Ein)
	assert.True(t, p.HasU)
	assert.Equal(t, 0.5, p.U)
}

func TestDecodeLaw11(t *testing.T) {
	data := []float64{
		0, 1, 1.0, 0.1, // a(E) prelude
		0, 1, 1.0, 0.2, // b(E) prelude
		0.75, // U
	}
	p := decodeLaw11(xss{data: data}, 1)
	assert.Equal(t, []float64{0.1}, p.AValues)
	assert.Equal(t, []float64{0.2}, p.BValues)
	assert.Equal(t, 0.75, p.U)
}

func TestDecodeLaw66(t *testing.T) {
	p := decodeLaw66(xss{data: []float64{3, 2.5}}, 1)
	assert.Equal(t, 3, p.NBodies)
	assert.Equal(t, 2.5, p.TotalMassRatio)
}

func TestDecodeLaw67(t *testing.T) {
	// Prelude: NR=0,NE=1,Ein=[1.0],locator=[2] (relative to angularBase=4).
	// At angularBase+2-1=5: INTMU=1,NMU=1,cos=[0.0],muLoc=[6] (relative to angularBase).
	// At angularBase+6-1=9: INTEP=1,NPEP=1,Eout=[2.0],Pdf=[1.0],Cdf=[1.0].
	data := []float64{
		0, 1, 1.0, 2, // prelude (positions 1-4)
		1, 1, 0.0, 6, // cosine record at angularBase+2-1 (positions 5-8): INTMU,NMU,cos,muLoc
		1, 1, 2.0, 1.0, 1.0, // energy record at angularBase+6-1 (positions 9-13)
	}
	x := xss{data: data}

	p := decodeLaw67(x, 1, 4)
	require.Len(t, p.Incidents, 1)
	inc := p.Incidents[0]
	assert.Equal(t, 1.0, inc.Energy)
	require.Len(t, inc.Bins, 1)
	assert.Equal(t, 0.0, inc.Bins[0].Cosine)
	assert.Equal(t, []float64{2.0}, inc.Bins[0].Eout)
}

func TestDecodeLawPayloadUnsupportedAndUnknown(t *testing.T) {
	payload, diag := decodeLawPayload(xss{data: make([]float64, 4)}, int(Law22), 1, 1)
	require.NotNil(t, diag)
	assert.Equal(t, UnsupportedLaw, diag.Kind)
	assert.Equal(t, 22, payload.Unsupported)

	payload, diag = decodeLawPayload(xss{data: make([]float64, 4)}, 999, 1, 1)
	require.NotNil(t, diag)
	assert.Equal(t, UnknownLaw, diag.Kind)
	assert.Equal(t, 999, payload.Unknown)
}

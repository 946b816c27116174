package ace

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTable renders a complete ACE table as text: a new-style header
// followed by an XSS body, per spec.md §4.1/§6.
func buildTable(nxs [17]int, jxs [33]int, xssData []float64) string {
	var b strings.Builder
	b.WriteString("2.0.0 92235.70c endf71x\n")
	b.WriteString("233.025 2.5301E-08 01/01/20 1\n")
	b.WriteString("comment line one\n")
	b.WriteString(izAwLines())
	b.WriteString(nxsJxsLines(nxs, jxs))
	for i, v := range xssData {
		if i > 0 {
			b.WriteByte(' ')
			if (i+1)%8 == 0 {
				b.WriteByte('\n')
			}
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('\n')
	return b.String()
}

// TestDecodeEndToEndMinimalCE covers spec.md §8 scenario 1's shape: a
// new-style header with no nubar (JXS[2]=0), no extra reactions
// (NXS[4]=0), and an isotropic elastic angular distribution.
func TestDecodeEndToEndMinimalCE(t *testing.T) {
	var nxs [17]int
	var jxs [33]int
	nxs[3] = 3 // NES
	jxs[1] = 1 // ESZ base

	esz := []float64{
		1, 2, 3, // energy
		10, 20, 30, // total
		0.1, 0.2, 0.3, // absorption
		0.5, 0.6, 0.7, // elastic
		0.01, 0.02, 0.03, // heating
	}
	jxs[8] = int(float64(len(esz)) + 1) // LAND base, one locator (elastic)

	data := append([]float64{}, esz...)
	data = append(data, 0) // LAND[0] = 0 -> isotropic elastic
	nxs[1] = len(data)

	raw := buildTable(nxs, jxs, data)
	table, err := Decode(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)

	require.NotNil(t, table.CE)
	assert.Equal(t, []float64{1, 2, 3}, table.CE.Energies)
	assert.Equal(t, []float64{10, 20, 30}, table.CE.XS[1].Value)
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, table.CE.XS[2].Value)
	assert.Nil(t, table.CE.Nubar)

	elastic, ok := table.CE.AngularDist["elastic"]
	require.True(t, ok)
	require.Len(t, elastic.Bins, 1)
	assert.Equal(t, AngularIsotropic, elastic.Bins[0].VariantKind)

	assert.Equal(t, 92, table.Header.Z)
	assert.Equal(t, 235, table.Header.A)
	assert.Empty(t, table.Diagnostics)
}

func TestDecodeTruncatedXssIsError(t *testing.T) {
	var nxs [17]int
	var jxs [33]int
	nxs[1] = 10 // declare more than we provide
	nxs[3] = 1
	jxs[1] = 1

	raw := buildTable(nxs, jxs, []float64{1, 2, 3})
	_, err := Decode(bufio.NewReader(strings.NewReader(raw)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncatedXSS)
}

func TestDecodeFileSeeksToAddress(t *testing.T) {
	var nxs [17]int
	var jxs [33]int
	nxs[3] = 1
	nxs[1] = 6
	jxs[1] = 1
	jxs[8] = 6 // LAND locator (isotropic elastic), the 6th XSS word

	table1 := buildTable(nxs, jxs, []float64{1, 10, 0.1, 0.2, 0.01, 0})
	table2 := buildTable(nxs, jxs, []float64{5, 50, 0.5, 0.6, 0.05, 0})

	var buf bytes.Buffer
	buf.WriteString("junk preamble line\n")
	startLine := strings.Count(buf.String(), "\n") + 1
	buf.WriteString(table1)
	buf.WriteString(table2)

	tmp := t.TempDir() + "/two.ace"
	require.NoError(t, os.WriteFile(tmp, []byte(buf.String()), 0o644))

	table, err := DecodeFile(tmp, startLine)
	require.NoError(t, err)
	require.NotNil(t, table.CE)
	assert.Equal(t, []float64{1}, table.CE.Energies)
}

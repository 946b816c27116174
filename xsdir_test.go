package ace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryFromTableDefaults(t *testing.T) {
	table := AceTable{
		Header: Header{
			ZAID:              "92235.70c",
			Suffix:            "70c",
			AtomicWeightRatio: 233.025,
			Temperature:       2.53e-8,
		},
		HasProbabilityTable: true,
	}
	table.Header.NXS[1] = 12345

	entry := NewEntryFromTable(table, "endf71x.ace", 17)
	assert.Equal(t, "92235.70c", entry.ZAID)
	assert.Equal(t, "endf71x.ace", entry.Filename)
	assert.Equal(t, 17, entry.StartLine)
	assert.Equal(t, 12345, entry.TableLength)
	assert.Equal(t, 0, entry.Access)
	assert.Equal(t, 1, entry.FileType)
	assert.True(t, entry.Ptable)
}

func TestRegenerateXsdirEntryRoundTripsScalarFields(t *testing.T) {
	entry := Entry{
		ZAID:              "92235.70c",
		AtomicWeightRatio: 233.025,
		Filename:          "endf71x",
		FileType:          1,
		StartLine:         12345,
		TableLength:       654321,
		Temperature:       2.53e-8,
		Ptable:            true,
	}
	line, err := RegenerateXsdirEntry(entry)
	require.NoError(t, err)

	fields := strings.Fields(strings.ReplaceAll(line, "+", ""))
	assert.Equal(t, "92235.70c", fields[0])
	assert.Equal(t, "endf71x", fields[2])
	assert.Contains(t, line, "12345")
	assert.Contains(t, line, "654321")
	assert.Contains(t, line, "ptable")
}

func TestRegenerateXsdirEntrySoftWrapsLongLines(t *testing.T) {
	entry := Entry{
		ZAID:              "92235.70c",
		AtomicWeightRatio: 233.025,
		Filename:          "/very/long/path/to/an/endf/library/directory/endf71x.ace",
		FileType:          1,
		StartLine:         123456,
		TableLength:       7654321,
		Temperature:       2.5301e-08,
		Ptable:            true,
	}
	line, err := RegenerateXsdirEntry(entry)
	require.NoError(t, err)
	require.Contains(t, line, " +\n")

	rejoined := strings.ReplaceAll(line, " +\n", " ")
	fields := strings.Fields(rejoined)
	assert.Equal(t, entry.Filename, fields[2])
	assert.Equal(t, "ptable", fields[len(fields)-1])
}

package ace

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry carries exactly what an xsdir line hands the decoder --
// `(path, address)` -- plus the customization fields spec.md §6 names
// for regenerating a line. Parsing the xsdir text-index file itself is
// an external collaborator's job (spec.md §1 Non-goals); Entry is the
// minimal shape that collaborator and this package agree on.
type Entry struct {
	ZAID              string
	Suffix            string
	AtomicWeightRatio float64
	Filename          string
	Access            int
	FileType          int
	StartLine         int
	TableLength       int
	RecordLength      int
	NumEntries        int
	Temperature       float64
	Ptable            bool
}

// NewEntryFromTable derives an Entry's customization fields from a
// decoded table, defaulting Access=0, FileType=1, RecordLength=0,
// NumEntries=0 per spec.md §6. Filename and StartLine are supplied by
// the caller since they name where this table lives, not anything
// decoded from its content.
func NewEntryFromTable(t AceTable, filename string, startLine int) Entry {
	return Entry{
		ZAID:              t.Header.ZAID,
		Suffix:            t.Header.Suffix,
		AtomicWeightRatio: t.Header.AtomicWeightRatio,
		Filename:          filename,
		Access:            0,
		FileType:          1,
		StartLine:         startLine,
		TableLength:       t.Header.NXS[1],
		RecordLength:      0,
		NumEntries:        0,
		Temperature:       t.Header.Temperature,
		Ptable:            t.HasProbabilityTable,
	}
}

// WriteTo writes e as one soft-wrapped xsdir record, continuation
// lines marked with a trailing " +" per spec.md §6, mirroring the
// fixed-field xsdir line format:
// `ZAID AWR filename access file_type address table_length record_length num_entries temperature ptable`.
func (e Entry) WriteTo(w *strings.Builder) (int64, error) {
	ptable := ""
	if e.Ptable {
		ptable = "ptable"
	}
	fields := []string{
		e.ZAID,
		strconv.FormatFloat(e.AtomicWeightRatio, 'g', -1, 64),
		e.Filename,
		strconv.Itoa(e.Access),
		strconv.Itoa(e.FileType),
		strconv.Itoa(e.StartLine),
		strconv.Itoa(e.TableLength),
		strconv.Itoa(e.RecordLength),
		strconv.Itoa(e.NumEntries),
		strconv.FormatFloat(e.Temperature, 'g', -1, 64),
		ptable,
	}

	const wrapCol = 75
	var out strings.Builder
	lineLen := 0
	for i, field := range fields {
		if field == "" {
			continue
		}
		sep := " "
		if i == 0 {
			sep = ""
		}
		if lineLen > 0 && lineLen+len(sep)+len(field) > wrapCol {
			out.WriteString(" +\n")
			lineLen = 0
			sep = ""
		}
		out.WriteString(sep)
		out.WriteString(field)
		lineLen += len(sep) + len(field)
	}
	out.WriteByte('\n')

	n, err := w.WriteString(out.String())
	return int64(n), err
}

// RegenerateXsdirEntry formats e as a complete xsdir record string, per
// spec.md §6's "xsdir entry regeneration" operation.
func RegenerateXsdirEntry(e Entry) (string, error) {
	var b strings.Builder
	if _, err := e.WriteTo(&b); err != nil {
		return "", fmt.Errorf("ace: regenerating xsdir entry for %s: %w", e.ZAID, err)
	}
	return b.String(), nil
}

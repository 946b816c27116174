package ace

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult pairs one Entry with its decode outcome. Err is non-nil
// when decoding that entry's table failed; Table is the zero value in
// that case.
type BatchResult struct {
	Entry Entry
	Table AceTable
	Err   error
}

// DecodeBatch decodes every entry concurrently, each against an
// independent file handle with no shared mutable state beyond entries
// itself (read-only), per spec.md §5: "embarrassingly parallel...
// workers communicate results through a collector." Ordering of
// results is not guaranteed to match entries' order.
//
// A failure decoding one entry does not cancel the others; it is
// reported as that entry's BatchResult.Err. DecodeBatch's own error
// return is non-nil only if ctx is canceled before all workers finish.
func DecodeBatch(ctx context.Context, entries []Entry) ([]BatchResult, error) {
	results := make(chan BatchResult, len(entries))

	group, ctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		entry := e
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			table, err := DecodeFile(entry.Filename, entry.StartLine)
			results <- BatchResult{Entry: entry, Table: table, Err: err}
			return nil
		})
	}

	err := group.Wait()
	close(results)

	out := make([]BatchResult, 0, len(entries))
	for r := range results {
		out = append(out, r)
	}
	return out, err
}

// DeduplicateByFingerprint groups batch results by their table's
// content fingerprint, returning one representative BatchResult per
// distinct fingerprint. This is the "cheap duplicate detection across
// suffix-versioned libraries" fingerprint.go's doc comment describes:
// two xsdir entries (e.g. a .70c and an identical .71c reissue) that
// decode to byte-identical XSS arrays collapse to one entry here.
// Results with a decode error are passed through unchanged, one per
// error, since a failed decode has no fingerprint to group by.
func DeduplicateByFingerprint(results []BatchResult) []BatchResult {
	seen := make(map[uint64]bool, len(results))
	out := make([]BatchResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
			continue
		}
		if seen[r.Table.Fingerprint] {
			continue
		}
		seen[r.Table.Fingerprint] = true
		out = append(out, r)
	}
	return out
}

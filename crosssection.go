package ace

import "fmt"

// CrossSection pairs an energy grid with a cross-section (or
// heating-number, or nubar-adjacent) value grid, keyed by ENDF
// reaction number. Per spec.md §3, len(Energy) == len(Value) and
// Energy is strictly increasing.
type CrossSection struct {
	MT     int
	Name   string
	Energy []float64
	Value  []float64
}

// newCrossSection constructs a CrossSection, verifying the length
// invariant spec.md §3 requires.
func newCrossSection(mt int, name string, energy, value []float64) (CrossSection, error) {
	if len(energy) != len(value) {
		return CrossSection{}, SyntaxError{
			Msg:      fmt.Sprintf("cross section MT=%d: energy/value length mismatch (%d vs %d)", mt, len(energy), len(value)),
			InnerErr: ErrLengthMismatch,
		}
	}
	return CrossSection{MT: mt, Name: name, Energy: energy, Value: value}, nil
}

// Sample returns the cross-section value at incident energy e, per the
// algorithm in spec.md §4.11: an exact grid point returns the stored
// value, E outside the closed interval [min, max] returns 0, otherwise
// lin-lin interpolation between the two bracketing grid points.
func (cs CrossSection) Sample(e float64) float64 {
	n := len(cs.Energy)
	if n == 0 {
		return 0
	}
	if e < cs.Energy[0] || e > cs.Energy[n-1] {
		return 0
	}
	// Binary search for the rightmost grid point at or below e.
	lo, hi := 0, n-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if cs.Energy[mid] <= e {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if cs.Energy[best] == e {
		return cs.Value[best]
	}
	e0, e1 := cs.Energy[best], cs.Energy[best+1]
	v0, v1 := cs.Value[best], cs.Value[best+1]
	return (v1-v0)/(e1-e0)*(e-e0) + v0
}

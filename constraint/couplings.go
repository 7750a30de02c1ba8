// SPDX-License-Identifier: MIT

package constraint

import "fmt"

// Couplings holds one coupling flag per site. Flags persist across solves
// until toggled or Reset.
type Couplings struct {
	flags []bool
	count int
}

// NewCouplings returns n cleared flags.
func NewCouplings(n int) *Couplings {
	return &Couplings{flags: make([]bool, n)}
}

// Len returns the number of sites.
func (cp *Couplings) Len() int { return len(cp.flags) }

// Count returns the number of coupled sites.
func (cp *Couplings) Count() int { return cp.count }

func (cp *Couplings) check(method string, i int) error {
	if i < 0 || i >= len(cp.flags) {
		return fmt.Errorf("Couplings.%s(%d) with N=%d: %w", method, i, len(cp.flags), ErrSiteIndex)
	}

	return nil
}

// Get reports whether site i is coupled.
func (cp *Couplings) Get(i int) (bool, error) {
	if err := cp.check("Get", i); err != nil {
		return false, err
	}

	return cp.flags[i], nil
}

// Set couples or frees site i.
func (cp *Couplings) Set(i int, on bool) error {
	if err := cp.check("Set", i); err != nil {
		return err
	}
	if cp.flags[i] != on {
		cp.flags[i] = on
		if on {
			cp.count++
		} else {
			cp.count--
		}
	}

	return nil
}

// Toggle flips site i and returns its new state.
func (cp *Couplings) Toggle(i int) (bool, error) {
	if err := cp.check("Toggle", i); err != nil {
		return false, err
	}
	on := !cp.flags[i]
	_ = cp.Set(i, on)

	return on, nil
}

// Reset clears every flag.
func (cp *Couplings) Reset() {
	clear(cp.flags)
	cp.count = 0
}

// Indices returns the coupled sites in ascending order.
func (cp *Couplings) Indices() []int {
	out := make([]int, 0, cp.count)
	for i, on := range cp.flags {
		if on {
			out = append(out, i)
		}
	}

	return out
}

// Bools returns a copy of the flags.
func (cp *Couplings) Bools() []bool {
	return append([]bool(nil), cp.flags...)
}

// at reads flag i without bounds checks.
func (cp *Couplings) at(i int) bool { return cp.flags[i] }

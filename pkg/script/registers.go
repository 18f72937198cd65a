package script

import (
	"fmt"
	"sort"
)

// The assembler lets scripts name registers (r:counter) and constrain
// blocks of them to consecutive numbers (fixed register sets). Records
// live in a flat arena and refer to each other by index; a record's
// number is immutable once set, so an explicit number that disagrees
// with an existing assignment is a conflict, never a reassignment.

type regRef int32

const noReg regRef = -1

type regRecord struct {
	name    string
	number  int16 // -1 until assigned
	prev    regRef
	next    regRef
	offsets []int // code offsets to patch once the number is known
}

type registerAllocator struct {
	regs     []regRecord
	byName   map[string]regRef
	byNumber [0x100]regRef
}

func newRegisterAllocator() *registerAllocator {
	a := &registerAllocator{byName: make(map[string]regRef)}
	for i := range a.byNumber {
		a.byNumber[i] = noReg
	}
	return a
}

func (a *registerAllocator) rec(ref regRef) *regRecord {
	return &a.regs[ref]
}

func (a *registerAllocator) describe(ref regRef) string {
	r := a.rec(ref)
	return fmt.Sprintf("register(name=%q, number=%d)", r.name, r.number)
}

// getOrCreate resolves a register by name, number, or both, creating
// the record if neither is known yet. number < 0 means unnumbered.
func (a *registerAllocator) getOrCreate(name string, number int) (regRef, error) {
	if number < -1 || number >= 0x100 {
		return noReg, fmt.Errorf("%w: invalid register number %d", ErrInvalidArgument, number)
	}

	ref := noReg
	if name != "" {
		if r, ok := a.byName[name]; ok {
			ref = r
		}
	}
	if ref == noReg && number >= 0 {
		ref = a.byNumber[number]
	}
	if ref == noReg {
		a.regs = append(a.regs, regRecord{number: -1, prev: noReg, next: noReg})
		ref = regRef(len(a.regs) - 1)
	}

	r := a.rec(ref)
	if number >= 0 {
		if r.number < 0 {
			if other := a.byNumber[number]; other != noReg {
				return noReg, fmt.Errorf("%w: %s cannot be assigned due to conflict with %s",
					ErrRegisterConflict, a.describe(ref), a.describe(other))
			}
			r.number = int16(number)
			a.byNumber[number] = ref
		} else if int(r.number) != number {
			return noReg, fmt.Errorf("%w: register %s is assigned multiple numbers", ErrRegisterConflict, r.name)
		}
	}

	if name != "" {
		if r.name == "" {
			if _, exists := a.byName[name]; exists {
				return noReg, fmt.Errorf("%w: name %s is already assigned to a different register", ErrRegisterConflict, name)
			}
			r.name = name
			a.byName[name] = ref
		} else if r.name != name {
			return noReg, fmt.Errorf("%w: register %d is assigned multiple names", ErrRegisterConflict, r.number)
		}
	}
	return ref, nil
}

func (a *registerAllocator) assignNumber(ref regRef, number uint8) error {
	r := a.rec(ref)
	if r.number < 0 {
		if a.byNumber[number] != noReg {
			return fmt.Errorf("%w: register number %d assigned multiple times", ErrRegisterConflict, number)
		}
		r.number = int16(number)
		a.byNumber[number] = ref
	} else if r.number != int16(number) {
		return fmt.Errorf("%w: assigning different register number %d over existing register number %d",
			ErrRegisterConflict, number, r.number)
	}
	return nil
}

// constrain requires second to occupy the register number directly
// after first, wrapping at 0x100.
func (a *registerAllocator) constrain(first, second regRef) error {
	fr, sr := a.rec(first), a.rec(second)
	if fr.next == noReg {
		fr.next = second
	} else if fr.next != second {
		return fmt.Errorf("%w: register %s must come after %s, but is already constrained to another register",
			ErrRegisterConflict, sr.name, fr.name)
	}
	if sr.prev == noReg {
		sr.prev = first
	} else if sr.prev != first {
		return fmt.Errorf("%w: register %s must come before %s, but is already constrained to another register",
			ErrRegisterConflict, fr.name, sr.name)
	}
	if fr.number >= 0 && sr.number >= 0 && fr.number != (sr.number-1)&0xFF {
		return fmt.Errorf("%w: register %s must come before %s, but both registers already have non-consecutive numbers",
			ErrRegisterConflict, fr.name, sr.name)
	}
	return nil
}

func (a *registerAllocator) addPatchOffset(ref regRef, offset int) {
	r := a.rec(ref)
	r.offsets = append(r.offsets, offset)
}

// assignAll numbers every named register that is still unnumbered.
// Anchored chains derive their numbers from the nearest numbered
// neighbor; free-floating chains get the lowest contiguous block that
// fits.
func (a *registerAllocator) assignAll() error {
	names := make([]string, 0, len(a.byName))
	for name, ref := range a.byName {
		if a.rec(ref).number < 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		ref := a.byName[name]
		if a.rec(ref).number >= 0 {
			continue
		}

		nextDelta := 1
		for next := a.rec(ref).next; next != noReg; next = a.rec(next).next {
			if n := a.rec(next).number; n >= 0 {
				if err := a.assignNumber(ref, uint8((int(n)-nextDelta)&0xFF)); err != nil {
					return err
				}
				break
			}
			nextDelta++
		}
		if a.rec(ref).number >= 0 {
			continue
		}

		prevDelta := 1
		for prev := a.rec(ref).prev; prev != noReg; prev = a.rec(prev).prev {
			if n := a.rec(prev).number; n >= 0 {
				if err := a.assignNumber(ref, uint8((int(n)+prevDelta)&0xFF)); err != nil {
					return err
				}
				break
			}
			prevDelta++
		}
		if a.rec(ref).number >= 0 {
			continue
		}

		// Free-floating chain; its total length is the register before
		// this one plus the ones after it plus itself.
		numRegs := prevDelta + nextDelta - 1
		base, err := a.findNumberSpace(numRegs)
		if err != nil {
			return err
		}
		if err := a.assignNumber(ref, uint8((base+prevDelta-1)&0xFF)); err != nil {
			return err
		}
		// Chain neighbors are also in the unassigned set and pick up
		// their numbers from this anchor on later iterations.
	}

	for name, ref := range a.byName {
		if a.rec(ref).number < 0 {
			return fmt.Errorf("%w: register %s was not assigned", ErrRegisterExhausted, name)
		}
	}
	for z := range a.byNumber {
		if ref := a.byNumber[z]; ref != noReg && a.rec(ref).number != int16(z) {
			return fmt.Errorf("%w: register %d has incorrect number %d", ErrRegisterConflict, z, a.rec(ref).number)
		}
	}
	return nil
}

// findNumberSpace returns the lowest base of a free contiguous block.
func (a *registerAllocator) findNumberSpace(numRegs int) (int, error) {
	for candidate := 0; candidate+numRegs <= 0x100; candidate++ {
		fits := true
		for z := 0; z < numRegs; z++ {
			if a.byNumber[candidate+z] != noReg {
				fits = false
				break
			}
		}
		if fits {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w: need %d consecutive registers", ErrRegisterExhausted, numRegs)
}

// patch writes final register numbers over every recorded offset.
func (a *registerAllocator) patch(code []byte) {
	for i := range a.regs {
		r := &a.regs[i]
		for _, off := range r.offsets {
			code[off] = uint8(r.number)
		}
	}
}

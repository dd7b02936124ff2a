package perfcounters

import "fmt"

// Builder assembles the schema of a Counters group before it is handed to
// callers. Schemas are declared once at startup by trusted code, so every
// contract violation here (index out of range, undeclared slot at Build,
// reuse after Build) is a panic rather than a recoverable error.
type Builder struct {
	counters *Counters
}

// NewBuilder starts a schema for a group named name covering the index range
// (first, last) exclusive on both ends. Every index strictly between first
// and last must be declared with one of the Add* methods before Build.
func NewBuilder(name string, first, last int) *Builder {
	return &Builder{
		counters: &Counters{
			name:       name,
			lowerBound: first,
			upperBound: last,
			data:       make([]slot, last-first-1),
		},
	}
}

// AddU64 declares an integer-sum slot at idx.
func (b *Builder) AddU64(idx int, name string) {
	b.add(idx, name, kindU64, false)
}

// AddFloat declares a floating-point-sum slot at idx.
func (b *Builder) AddFloat(idx int, name string) {
	b.add(idx, name, kindFloat, false)
}

// AddFloatAvg declares a floating-point-average slot at idx: the occurrence
// count starts enabled at zero, and every update bumps it alongside the sum.
func (b *Builder) AddFloatAvg(idx int, name string) {
	b.add(idx, name, kindFloat, true)
}

func (b *Builder) add(idx int, name string, kind slotKind, countEnabled bool) {
	if b.counters == nil {
		panic("perfcounters: Builder reused after Build")
	}
	b.counters.checkIndex(idx)
	d := &b.counters.data[idx-b.counters.lowerBound-1]
	d.name = name
	d.kind = kind
	d.countEnabled = countEnabled
}

// Build finalizes the schema and returns the group, transferring ownership
// to the caller. It panics if any slot in range was left undeclared, and the
// builder must not be used again afterwards.
func (b *Builder) Build() *Counters {
	if b.counters == nil {
		panic("perfcounters: Builder reused after Build")
	}
	for i := range b.counters.data {
		if b.counters.data[i].kind == kindNone {
			panic(fmt.Sprintf("perfcounters: group %q: slot at index %d never declared",
				b.counters.name, b.counters.lowerBound+i+1))
		}
	}
	out := b.counters
	b.counters = nil
	return out
}

package perfcounters

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
)

// slotKind identifies the value a slot accumulates.
type slotKind int

const (
	kindNone slotKind = iota
	kindU64
	kindFloat
)

// slot is one named measurement inside a Counters group. The kind and
// countEnabled flags are fixed when the schema is built; only the value and
// occurrence count mutate afterwards.
type slot struct {
	name         string
	kind         slotKind
	u64          uint64
	dbl          float64
	count        uint64
	countEnabled bool
}

// Counters is a fixed-schema group of named counters. Slots occupy the index
// range (lowerBound, upperBound) exclusive on both ends: callers pick indices
// from an enumeration that starts one past the lower bound, and the slot for
// index i lives at position i - lowerBound - 1.
//
// All slot reads, writes, and serialization for a group are guarded by the
// group's own mutex, so unrelated groups never contend with each other.
// Producers mutate slots directly; the Registry is not involved in updates.
type Counters struct {
	name       string
	lowerBound int
	upperBound int

	mu   sync.Mutex
	data []slot
}

// Name returns the group's name. It is used for error reporting and for the
// prometheus bridge; it does not appear in JSON snapshots.
func (c *Counters) Name() string {
	return c.name
}

// checkIndex panics unless lowerBound < idx < upperBound. An out-of-range
// index is a bug in the declaring subsystem, not a runtime condition.
func (c *Counters) checkIndex(idx int) {
	if idx <= c.lowerBound || idx >= c.upperBound {
		panic(fmt.Sprintf("perfcounters: group %q: index %d outside (%d, %d)",
			c.name, idx, c.lowerBound, c.upperBound))
	}
}

// Inc adds 1 to the integer-sum slot at idx. No-op if the slot is not an
// integer-sum slot.
func (c *Counters) Inc(idx int) {
	c.Add(idx, 1)
}

// Add adds amt to the integer-sum slot at idx, bumping the occurrence count
// when it is enabled. No-op if the slot is not an integer-sum slot; counters
// are often probed generically across heterogeneous groups, so a kind
// mismatch is deliberately not an error.
func (c *Counters) Add(idx int, amt uint64) {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindU64 {
		return
	}
	d.u64 += amt
	if d.countEnabled {
		d.count++
	}
}

// Set overwrites the integer-sum slot at idx with v, bumping the occurrence
// count when it is enabled. No-op if the slot is not an integer-sum slot.
func (c *Counters) Set(idx int, v uint64) {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindU64 {
		return
	}
	d.u64 = v
	if d.countEnabled {
		d.count++
	}
}

// AddFloat adds amt to the float slot at idx, bumping the occurrence count
// when it is enabled. For average slots the count and sum accumulate
// together, so sum/count is the running average. No-op on integer-sum slots.
func (c *Counters) AddFloat(idx int, amt float64) {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindFloat {
		return
	}
	d.dbl += amt
	if d.countEnabled {
		d.count++
	}
}

// SetFloat overwrites the float slot at idx with v, bumping the occurrence
// count when it is enabled. No-op on integer-sum slots.
func (c *Counters) SetFloat(idx int, v float64) {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindFloat {
		return
	}
	d.dbl = v
	if d.countEnabled {
		d.count++
	}
}

// GetU64 returns the current value of the integer-sum slot at idx, or 0 when
// the slot holds a float.
func (c *Counters) GetU64(idx int) uint64 {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindU64 {
		return 0
	}
	return d.u64
}

// GetFloat returns the current value of the float slot at idx, or 0 when the
// slot holds an integer sum.
func (c *Counters) GetFloat(idx int) float64 {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if d.kind != kindFloat {
		return 0
	}
	return d.dbl
}

// GetCount returns the occurrence count of the slot at idx, or 0 when count
// tracking is disabled for that slot.
func (c *Counters) GetCount(idx int) uint64 {
	c.checkIndex(idx)
	c.mu.Lock()
	defer c.mu.Unlock()
	d := &c.data[idx-c.lowerBound-1]
	if !d.countEnabled {
		return 0
	}
	return d.count
}

// writeJSON appends one JSON member per slot to buf, in ascending index
// order. Slots without count tracking render as "name": value; slots with it
// render as "name": {"count": N, "sum": V}. *first tracks whether a comma is
// needed before the next member, across all groups in a snapshot.
//
// The group lock is held for the full formatting pass so the snapshot of this
// group is consistent; formatting is O(slots) with no I/O inside the lock.
func (c *Counters) writeJSON(buf *bytes.Buffer, first *bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data {
		d := &c.data[i]
		if *first {
			*first = false
		} else {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(d.name))
		buf.WriteByte(':')
		if d.countEnabled {
			buf.WriteString(`{"count":`)
			buf.WriteString(strconv.FormatUint(d.count, 10))
			buf.WriteString(`,"sum":`)
			c.writeValue(buf, d)
			buf.WriteByte('}')
		} else {
			c.writeValue(buf, d)
		}
	}
}

// writeValue renders the slot's current value: integers as decimal integers,
// floats in locale-independent 'g' notation.
func (c *Counters) writeValue(buf *bytes.Buffer, d *slot) {
	switch d.kind {
	case kindU64:
		buf.WriteString(strconv.FormatUint(d.u64, 10))
	case kindFloat:
		buf.WriteString(strconv.FormatFloat(d.dbl, 'g', -1, 64))
	default:
		panic(fmt.Sprintf("perfcounters: group %q: slot %q has no kind", c.name, d.name))
	}
}

// snapshotSlots returns a consistent copy of the group's slots, taken under
// the group lock. Used by the prometheus bridge collector.
func (c *Counters) snapshotSlots() []slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]slot, len(c.data))
	copy(out, c.data)
	return out
}

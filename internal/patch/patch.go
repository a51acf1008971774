// Package patch turns sparse update requests into minimal column
// assignment sets, enforcing the cross-field invariants over the
// effective values (request override where present, otherwise the current
// persisted value). Builders are pure; the caller owns the transaction
// that reads current state and commits the result.
package patch

import "time"

// Patch is an ordered-enough set of column assignments for gorm Updates.
// An empty patch means the request supplied no fields and the entity must
// be returned unchanged, without bumping updated_at.
type Patch struct {
	columns map[string]any
}

func New() Patch {
	return Patch{columns: make(map[string]any)}
}

func (p Patch) Set(column string, value any) {
	p.columns[column] = value
}

func (p Patch) Empty() bool {
	return len(p.columns) == 0
}

// Columns returns the assignments to apply, stamped with updated_at.
func (p Patch) Columns() map[string]any {
	out := make(map[string]any, len(p.columns)+1)
	for k, v := range p.columns {
		out[k] = v
	}
	out["updated_at"] = time.Now().UTC()
	return out
}

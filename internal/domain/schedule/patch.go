package schedule

// ===============================
// Field patches
// ===============================

// FieldOp is the three-state instruction for one optional field in a
// merge-write: write a value, remove the stored value, or leave it alone.
type FieldOp int

const (
	FieldNoOp FieldOp = iota
	FieldSet
	FieldDelete
)

// FieldPatch carries a FieldOp plus the value for FieldSet. It replaces the
// storage backend's own delete-field sentinel so patches stay expressible
// against any document or key-value store.
type FieldPatch struct {
	Op    FieldOp
	Value string
}

func SetField(v string) FieldPatch { return FieldPatch{Op: FieldSet, Value: v} }
func DeleteField() FieldPatch      { return FieldPatch{Op: FieldDelete} }
func KeepField() FieldPatch        { return FieldPatch{Op: FieldNoOp} }

// Apply folds the patch into a generic column→value update map. FieldDelete
// writes an explicit nil, FieldNoOp leaves the column out entirely.
func (p FieldPatch) Apply(column string, dest map[string]any) {
	switch p.Op {
	case FieldSet:
		dest[column] = p.Value
	case FieldDelete:
		dest[column] = nil
	}
}

// DayPatch is a single day's merge-write: the required fields are always
// written, the break fields follow their three-state instruction.
type DayPatch struct {
	Active     bool
	Start      string
	End        string
	BreakStart FieldPatch
	BreakEnd   FieldPatch
}

// DayUpdate is the incoming shape of a single-day edit. Empty break fields
// mean "no break" and must clear any previously stored value.
type DayUpdate struct {
	Active     bool    `json:"active"`
	Start      string  `json:"start" binding:"required"`
	End        string  `json:"end" binding:"required"`
	BreakStart *string `json:"breakStart"`
	BreakEnd   *string `json:"breakEnd"`
}

// BuildDayPatch decides, per optional field, between set / delete / no-op:
// a new value is written; an omitted value that was previously stored is
// removed; an omitted value that never existed leaves storage untouched.
// current is the stored day, nil when the day has no document yet.
func BuildDayPatch(in DayUpdate, current *DaySchedule) DayPatch {
	p := DayPatch{
		Active: in.Active,
		Start:  in.Start,
		End:    in.End,
	}

	p.BreakStart = breakFieldPatch(in.BreakStart, current != nil && current.BreakStart != nil)
	p.BreakEnd = breakFieldPatch(in.BreakEnd, current != nil && current.BreakEnd != nil)

	return p
}

func breakFieldPatch(newValue *string, wasSet bool) FieldPatch {
	if newValue != nil && *newValue != "" {
		return SetField(*newValue)
	}
	if wasSet {
		return DeleteField()
	}
	return KeepField()
}

// Day materializes the day that the patch produces on top of current, so the
// result can be validated before anything is written.
func (p DayPatch) Day(current *DaySchedule) DaySchedule {
	d := DaySchedule{
		Active: p.Active,
		Start:  p.Start,
		End:    p.End,
	}

	if p.BreakStart.Op == FieldSet {
		v := p.BreakStart.Value
		d.BreakStart = &v
	} else if p.BreakStart.Op == FieldNoOp && current != nil {
		d.BreakStart = current.BreakStart
	}

	if p.BreakEnd.Op == FieldSet {
		v := p.BreakEnd.Value
		d.BreakEnd = &v
	} else if p.BreakEnd.Op == FieldNoOp && current != nil {
		d.BreakEnd = current.BreakEnd
	}

	return d
}

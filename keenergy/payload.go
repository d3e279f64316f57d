package keenergy

import (
	"fmt"
	"reflect"
	"strings"
)

// Wire shapes of the /var/readWriteVars bodies.
type readVar struct {
	Name string `json:"name"`
	Attr string `json:"attr"`
}

type writeVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type childProbe struct {
	Parent string `json:"parent"`
	Filter string `json:"filter"`
}

// WriteSpec pairs a writable field with the value to write. Value is either a
// scalar applied to the first device position, or a slice addressed by
// 1-based device position where nil entries are skipped. Fields with
// Quantity > 1 take a slice of Quantity values per position.
type WriteSpec struct {
	Field *Field
	Value any
}

// readPlan captures the exact shape of a read request so the response can be
// consumed in lockstep. The payload order is derived from it and never
// reordered: the wire protocol has no re-matching key.
type readPlan struct {
	refs []planRef
}

type planRef struct {
	field   *Field
	indices []int
}

func (p *readPlan) size() int {
	n := 0
	for _, r := range p.refs {
		n += len(r.indices) * r.field.quantity()
	}
	return n
}

func (p *readPlan) payload(extraAttributes bool) []readVar {
	attr := "0"
	if extraAttributes {
		attr = "1"
	}
	out := make([]readVar, 0, p.size())
	for _, r := range p.refs {
		q := r.field.quantity()
		for _, dev := range r.indices {
			for k := 0; k < q; k++ {
				out = append(out, readVar{Name: renderPath(r.field, dev, k), Attr: attr})
			}
		}
	}
	return out
}

// buildReadPlan resolves every field reference against the selector,
// preserving caller order. An optional section filter restricts the plan.
func buildReadPlan(fields []*Field, sel *Selector, sections []Section) *readPlan {
	plan := &readPlan{}
	for _, f := range fields {
		if len(sections) > 0 && !containsSection(sections, f.Section) {
			continue
		}
		plan.refs = append(plan.refs, planRef{field: f, indices: sel.resolve(f.Section)})
	}
	return plan
}

func containsSection(sections []Section, s Section) bool {
	for _, c := range sections {
		if c == s {
			return true
		}
	}
	return false
}

// renderPath substitutes the device index, and for Quantity > 1 fields the
// pool sub-index, into the field's path template. Quantity > 1 fields occupy
// blocks of Quantity consecutive pool slots per device, starting at slot
// 2*device.
func renderPath(f *Field, device, offset int) string {
	if device == positionNone {
		device = 0
	}
	idx := device
	if f.quantity() > 1 {
		idx = 2*device + offset
	}
	switch strings.Count(f.Path, "%d") {
	case 0:
		return f.Path
	case 1:
		return fmt.Sprintf(f.Path, idx)
	default:
		return fmt.Sprintf(f.Path, device, idx)
	}
}

// buildWritePayload expands write specs into wire entries. Read-only fields
// are dropped silently and never fail a request. Field expansion hooks
// produce child specs that are appended recursively.
func buildWritePayload(specs []WriteSpec) ([]writeVar, error) {
	var out []writeVar
	for _, spec := range specs {
		entries, err := expandWriteSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func expandWriteSpec(spec WriteSpec) ([]writeVar, error) {
	f := spec.Field
	if f == nil {
		return nil, &ValidationError{Message: "write spec without field"}
	}
	if !f.Writable {
		return nil, nil
	}

	var out []writeVar
	values, positional := positionValues(spec.Value)
	for i, v := range values {
		if v == nil {
			continue
		}
		dev := positionNone
		if !f.Section.Singleton() && positional {
			dev = i
		}
		entries, err := renderWriteValue(f, dev, v)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	if f.Expand != nil {
		children := f.Expand(spec.Value)
		for _, child := range children {
			entries, err := expandWriteSpec(child)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
		}
	}
	return out, nil
}

// positionValues normalises a write value into per-position values: slot i
// addresses 1-based position i+1.
func positionValues(v any) (values []any, positional bool) {
	if vs, ok := toAnySlice(v); ok {
		return vs, true
	}
	return []any{v}, false
}

func renderWriteValue(f *Field, dev int, v any) ([]writeVar, error) {
	q := f.quantity()
	if q == 1 {
		s, err := formatWriteValue(f, v)
		if err != nil {
			return nil, err
		}
		return []writeVar{{Name: renderPath(f, dev, 0), Value: s}}, nil
	}

	block, ok := toAnySlice(v)
	if !ok || len(block) != q {
		return nil, &ValidationError{
			Message: fmt.Sprintf("field %q takes %d values per position", f.Tag(), q),
		}
	}
	out := make([]writeVar, 0, q)
	for k, bv := range block {
		s, err := formatWriteValue(f, bv)
		if err != nil {
			return nil, err
		}
		out = append(out, writeVar{Name: renderPath(f, dev, k), Value: s})
	}
	return out, nil
}

// toAnySlice widens any slice type (except []byte) to []any.
func toAnySlice(v any) ([]any, bool) {
	if vs, ok := v.([]any); ok {
		return vs, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface || elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
		}
		out[i] = elem.Interface()
	}
	return out, true
}

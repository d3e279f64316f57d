package keenergy

import (
	"context"
	"fmt"
)

// FieldValues holds the entries read for one field: one block per addressed
// device, each block of length Quantity.
type FieldValues [][]Entry

// One returns the single entry of a singleton or single-position read.
func (v FieldValues) One() Entry {
	if len(v) == 0 || len(v[0]) == 0 {
		return Entry{}
	}
	return v[0][0]
}

// Flat returns one entry per device for Quantity-1 fields.
func (v FieldValues) Flat() []Entry {
	out := make([]Entry, 0, len(v))
	for _, block := range v {
		if len(block) > 0 {
			out = append(out, block[0])
		}
	}
	return out
}

// SectionValues maps field tags to their values within one section.
type SectionValues map[string]FieldValues

// Readings is a grouped read result: section tag to field tag to values.
// Every section tag is always present so callers can index uniformly.
type Readings map[string]SectionValues

// Get returns the values for one field, or nil when it was not read.
func (r Readings) Get(f *Field) FieldValues {
	return r[f.Section.Tag()][f.Tag()]
}

// ReadOptions tune a grouped read.
type ReadOptions struct {
	// HumanReadable replaces enumerated integers with their lower-cased
	// symbolic names.
	HumanReadable bool
	// ExtraAttributes asks the controller to return value metadata
	// (limits, units) with each record.
	ExtraAttributes bool
	// Sections, when non-empty, restricts the read to fields of the given
	// sections.
	Sections []Section
}

// ReadFields reads the given fields in one HTTP call and groups the response
// by section. A nil selector fetches the installed device counts from the
// controller first.
func (c *Client) ReadFields(ctx context.Context, fields []*Field, sel *Selector, opts ReadOptions) (Readings, error) {
	if sel == nil {
		positions, err := c.InstalledPositions(ctx)
		if err != nil {
			return nil, err
		}
		sel = SelectPositions(positions)
	}

	plan := buildReadPlan(fields, sel, opts.Sections)
	byField, err := c.readPlan(ctx, plan, opts)
	if err != nil {
		return nil, err
	}

	out := make(Readings, len(sectionTags))
	for _, s := range Sections() {
		out[s.Tag()] = SectionValues{}
	}
	for _, ref := range plan.refs {
		out[ref.field.Section.Tag()][ref.field.Tag()] = byField[ref.field]
	}
	return out, nil
}

// readPlan submits a read plan and demultiplexes the response.
func (c *Client) readPlan(ctx context.Context, plan *readPlan, opts ReadOptions) (map[*Field]FieldValues, error) {
	records, err := c.postVars(ctx, endpointRead, plan.payload(opts.ExtraAttributes))
	if err != nil {
		return nil, err
	}
	return demux(plan, records, opts.HumanReadable)
}

// InstalledPositions reads the seven installed-device counters from the
// controller and builds the position record for the current call.
func (c *Client) InstalledPositions(ctx context.Context) (Positions, error) {
	plan := buildReadPlan(installedCountFields, SelectOne(1), nil)
	byField, err := c.readPlan(ctx, plan, ReadOptions{})
	if err != nil {
		return Positions{}, err
	}

	counts := make([]int, len(installedCountFields))
	for i, f := range installedCountFields {
		v := byField[f].One()
		n, ok := v.Value.(int)
		if !ok {
			return Positions{}, &APIError{
				Message: fmt.Sprintf("installed count %q is not an integer: %v", f.Tag(), v.Value),
			}
		}
		counts[i] = n
	}
	return Positions{
		HeatPump:           counts[0],
		HeatCircuit:        counts[1],
		SolarCircuit:       counts[2],
		BufferTank:         counts[3],
		HotWaterTank:       counts[4],
		ExternalHeatSource: counts[5],
		SwitchValve:        counts[6],
	}, nil
}

// readOne is the shared projection used by the per-section convenience
// getters: one field, one selector, first entry per device.
func (c *Client) readOne(ctx context.Context, f *Field, sel *Selector, opts ReadOptions) (FieldValues, error) {
	if sel == nil {
		sel = SelectOne(1)
	}
	readings, err := c.ReadFields(ctx, []*Field{f}, sel, opts)
	if err != nil {
		return nil, err
	}
	return readings.Get(f), nil
}

package keenergy

import "context"

// SupportedFields probes which of the given descriptors exist on this
// firmware. One children probe is issued per generated path; a field is
// supported as soon as one of its probes answers "OK". The result keeps
// distinct fields in first-success order.
//
// The catalog may list paths newer or older firmware does not expose; callers
// filter through this before bulk reads.
func (c *Client) SupportedFields(ctx context.Context, fields []*Field, sel *Selector) ([]*Field, error) {
	if sel == nil {
		positions, err := c.InstalledPositions(ctx)
		if err != nil {
			return nil, err
		}
		sel = SelectPositions(positions)
	}

	var out []*Field
	seen := make(map[*Field]bool, len(fields))
	for _, f := range fields {
		q := f.quantity()
		for _, dev := range sel.resolve(f.Section) {
			for k := 0; k < q; k++ {
				probe := []childProbe{{Parent: renderPath(f, dev, k), Filter: "none"}}
				records, err := c.postVars(ctx, endpointRead, probe)
				if err != nil {
					return nil, err
				}
				if !seen[f] && probeOK(records) {
					seen[f] = true
					out = append(out, f)
				}
			}
		}
	}
	return out, nil
}

func probeOK(records []wireRecord) bool {
	for _, rec := range records {
		if rec.Ret == "OK" {
			return true
		}
	}
	return false
}

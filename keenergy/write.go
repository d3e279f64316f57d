package keenergy

import "context"

// WriteFields writes the given field values in one HTTP call. Read-only
// fields are dropped silently; an empty effective payload issues no request.
func (c *Client) WriteFields(ctx context.Context, specs ...WriteSpec) error {
	payload, err := buildWritePayload(specs)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	c.logger.Debug("writing variables", "entries", len(payload))
	_, err = c.postVars(ctx, endpointWrite, payload)
	return err
}

// writeOne is the shared projection used by the per-section convenience
// setters: one field, one 1-based device position, one value.
func (c *Client) writeOne(ctx context.Context, f *Field, position int, value any) error {
	if f.Section.Singleton() {
		return c.WriteFields(ctx, WriteSpec{Field: f, Value: value})
	}
	if position < 1 {
		position = 1
	}
	values := make([]any, position)
	values[position-1] = value
	return c.WriteFields(ctx, WriteSpec{Field: f, Value: values})
}

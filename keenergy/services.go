package keenergy

import "context"

// Typed single-field projections shared by the per-section services. All of
// them address one 1-based device position (ignored for singleton sections).

func (c *Client) readFloat(ctx context.Context, f *Field, position int) (float64, error) {
	vals, err := c.readOne(ctx, f, SelectOne(position), ReadOptions{ExtraAttributes: true})
	if err != nil {
		return 0, err
	}
	return vals.One().Float(), nil
}

func (c *Client) readInt(ctx context.Context, f *Field, position int) (int, error) {
	vals, err := c.readOne(ctx, f, SelectOne(position), ReadOptions{ExtraAttributes: true})
	if err != nil {
		return 0, err
	}
	return vals.One().Int(), nil
}

func (c *Client) readText(ctx context.Context, f *Field, position int) (string, error) {
	vals, err := c.readOne(ctx, f, SelectOne(position), ReadOptions{ExtraAttributes: true})
	if err != nil {
		return "", err
	}
	return vals.One().String(), nil
}

// readSymbol reads an enumerated field in human readable mode, yielding the
// lower-cased symbolic name.
func (c *Client) readSymbol(ctx context.Context, f *Field, position int) (string, error) {
	vals, err := c.readOne(ctx, f, SelectOne(position), ReadOptions{HumanReadable: true, ExtraAttributes: true})
	if err != nil {
		return "", err
	}
	return vals.One().String(), nil
}

// readFloatBlock reads all Quantity slots of one device position.
func (c *Client) readFloatBlock(ctx context.Context, f *Field, position int) ([]float64, error) {
	vals, err := c.readOne(ctx, f, SelectOne(position), ReadOptions{ExtraAttributes: true})
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(vals[0]))
	for _, e := range vals[0] {
		out = append(out, e.Float())
	}
	return out, nil
}

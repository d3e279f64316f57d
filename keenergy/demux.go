package keenergy

import "fmt"

// demux walks the response records in the exact order the plan emitted them,
// consuming one record per generated read entry. Records are never matched by
// name: the wire protocol guarantees submission order and nothing else.
func demux(plan *readPlan, records []wireRecord, humanReadable bool) (map[*Field]FieldValues, error) {
	if want := plan.size(); len(records) != want {
		return nil, &APIError{
			Message: fmt.Sprintf("expected %d response records, got %d", want, len(records)),
		}
	}

	out := make(map[*Field]FieldValues, len(plan.refs))
	cursor := 0
	for _, ref := range plan.refs {
		q := ref.field.quantity()
		blocks := make(FieldValues, 0, len(ref.indices))
		for range ref.indices {
			block := make([]Entry, 0, q)
			for k := 0; k < q; k++ {
				rec := records[cursor]
				cursor++
				value, err := coerceValue(ref.field, rec.Value.String(), humanReadable)
				if err != nil {
					return nil, decodeError(rec, err)
				}
				block = append(block, Entry{
					Value:      value,
					Attributes: filterAttributes(rec.Attributes.strings()),
				})
			}
			blocks = append(blocks, block)
		}
		out[ref.field] = blocks
	}
	return out, nil
}

func decodeError(rec wireRecord, err error) error {
	switch err.(type) {
	case *ValidationError, *APIError:
		return err
	}
	return &APIError{Message: fmt.Sprintf("record %q: %v", rec.Name, err)}
}

package keenergy

import "context"

// SolarCircuitService exposes one solar circuit by its 1-based position.
// Solar circuits occupy two generic-heat pool slots each, so temperature
// readings come back as pairs.
type SolarCircuitService struct {
	c *Client
}

// SolarCircuit returns the solar circuit section service.
func (c *Client) SolarCircuit() *SolarCircuitService { return &SolarCircuitService{c: c} }

// Temperatures returns the circuit's two collector temperatures.
func (s *SolarCircuitService) Temperatures(ctx context.Context, position int) ([]float64, error) {
	return s.c.readFloatBlock(ctx, SolarCircuitTemperature, position)
}

// TargetTemperatures returns the circuit's two target temperatures.
func (s *SolarCircuitService) TargetTemperatures(ctx context.Context, position int) ([]float64, error) {
	return s.c.readFloatBlock(ctx, SolarCircuitTargetTemperature, position)
}

// SetTargetTemperatures writes both target temperatures of one circuit.
func (s *SolarCircuitService) SetTargetTemperatures(ctx context.Context, position int, first, second float64) error {
	return s.c.writeOne(ctx, SolarCircuitTargetTemperature, position, []any{first, second})
}

// HeatRequest returns the circuit's two heat request states.
func (s *SolarCircuitService) HeatRequest(ctx context.Context, position int) ([]int, error) {
	vals, err := s.c.readOne(ctx, SolarCircuitHeatRequest, SelectOne(position), ReadOptions{ExtraAttributes: true})
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(vals[0]))
	for _, e := range vals[0] {
		out = append(out, e.Int())
	}
	return out, nil
}

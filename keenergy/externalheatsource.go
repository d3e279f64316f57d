package keenergy

import "context"

// ExternalHeatSourceService exposes one external heat source by its 1-based
// position.
type ExternalHeatSourceService struct {
	c *Client
}

// ExternalHeatSource returns the external heat source section service.
func (c *Client) ExternalHeatSource() *ExternalHeatSourceService {
	return &ExternalHeatSourceService{c: c}
}

// Temperature returns the source's current temperature.
func (s *ExternalHeatSourceService) Temperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, ExternalHeatSourceTemperature, position)
}

// TargetTemperature returns the source's set temperature.
func (s *ExternalHeatSourceService) TargetTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, ExternalHeatSourceTargetTemperature, position)
}

// SetTargetTemperature writes the source's set temperature.
func (s *ExternalHeatSourceService) SetTargetTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, ExternalHeatSourceTargetTemperature, position, temperature)
}

// HeatRequest returns the source's heat request state.
func (s *ExternalHeatSourceService) HeatRequest(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, ExternalHeatSourceHeatRequest, position)
}

package keenergy

import "context"

// HeatCircuitService exposes one heat circuit by its 1-based position.
type HeatCircuitService struct {
	c *Client
}

// HeatCircuit returns the heat circuit section service.
func (c *Client) HeatCircuit() *HeatCircuitService { return &HeatCircuitService{c: c} }

// Name returns the circuit's configured name.
func (s *HeatCircuitService) Name(ctx context.Context, position int) (string, error) {
	return s.c.readText(ctx, HeatCircuitName, position)
}

// OperatingMode returns the circuit operating mode as a controller integer.
func (s *HeatCircuitService) OperatingMode(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatCircuitOperatingMode, position)
}

// OperatingModeName returns the operating mode as a lower-cased symbolic
// name.
func (s *HeatCircuitService) OperatingModeName(ctx context.Context, position int) (string, error) {
	return s.c.readSymbol(ctx, HeatCircuitOperatingMode, position)
}

// SetOperatingMode writes the circuit operating mode. It accepts a symbolic
// name (case-insensitive) or a member integer.
func (s *HeatCircuitService) SetOperatingMode(ctx context.Context, position int, mode any) error {
	return s.c.writeOne(ctx, HeatCircuitOperatingMode, position, mode)
}

// Temperature returns the circuit's current flow set value.
func (s *HeatCircuitService) Temperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitTemperature, position)
}

// TargetTemperature returns the day set temperature.
func (s *HeatCircuitService) TargetTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitTargetTemperature, position)
}

// SetTargetTemperature writes the day set temperature.
func (s *HeatCircuitService) SetTargetTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HeatCircuitTargetTemperature, position, temperature)
}

// TargetTemperatureThreshold returns the day heating threshold.
func (s *HeatCircuitService) TargetTemperatureThreshold(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitTargetTemperatureThreshold, position)
}

// SetTargetTemperatureThreshold writes the day heating threshold.
func (s *HeatCircuitService) SetTargetTemperatureThreshold(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HeatCircuitTargetTemperatureThreshold, position, temperature)
}

// NightTemperature returns the reduced set temperature.
func (s *HeatCircuitService) NightTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitNightTemperature, position)
}

// SetNightTemperature writes the reduced set temperature.
func (s *HeatCircuitService) SetNightTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HeatCircuitNightTemperature, position, temperature)
}

// NightTemperatureThreshold returns the night heating threshold.
func (s *HeatCircuitService) NightTemperatureThreshold(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitNightTemperatureThreshold, position)
}

// SetNightTemperatureThreshold writes the night heating threshold.
func (s *HeatCircuitService) SetNightTemperatureThreshold(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HeatCircuitNightTemperatureThreshold, position, temperature)
}

// HolidayTemperature returns the holiday set temperature.
func (s *HeatCircuitService) HolidayTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitHolidayTemperature, position)
}

// SetHolidayTemperature writes the holiday set temperature.
func (s *HeatCircuitService) SetHolidayTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HeatCircuitHolidayTemperature, position, temperature)
}

// OffsetTemperature returns the room temperature offset.
func (s *HeatCircuitService) OffsetTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatCircuitOffsetTemperature, position)
}

// SetOffsetTemperature writes the room temperature offset.
func (s *HeatCircuitService) SetOffsetTemperature(ctx context.Context, position int, offset float64) error {
	return s.c.writeOne(ctx, HeatCircuitOffsetTemperature, position, offset)
}

// HeatRequest returns the circuit's heat request state.
func (s *HeatCircuitService) HeatRequest(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatCircuitHeatRequest, position)
}

// ExternalCoolRequest returns the external cooling request input.
func (s *HeatCircuitService) ExternalCoolRequest(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatCircuitExternalCoolRequest, position)
}

// ExternalHeatRequest returns the external heating request input.
func (s *HeatCircuitService) ExternalHeatRequest(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatCircuitExternalHeatRequest, position)
}

package keenergy

import "context"

// HotWaterTankService exposes one hot water tank by its 1-based position.
type HotWaterTankService struct {
	c *Client
}

// HotWaterTank returns the hot water tank section service.
func (c *Client) HotWaterTank() *HotWaterTankService { return &HotWaterTankService{c: c} }

// Temperature returns the tank top sensor temperature.
func (s *HotWaterTankService) Temperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HotWaterTankTemperature, position)
}

// OperatingMode returns the tank operating mode as a controller integer.
func (s *HotWaterTankService) OperatingMode(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HotWaterTankOperatingMode, position)
}

// OperatingModeName returns the operating mode as a lower-cased symbolic
// name.
func (s *HotWaterTankService) OperatingModeName(ctx context.Context, position int) (string, error) {
	return s.c.readSymbol(ctx, HotWaterTankOperatingMode, position)
}

// SetOperatingMode writes the tank operating mode. It accepts a symbolic
// name (case-insensitive) or a member integer.
func (s *HotWaterTankService) SetOperatingMode(ctx context.Context, position int, mode any) error {
	return s.c.writeOne(ctx, HotWaterTankOperatingMode, position, mode)
}

// MinTemperature returns the reduced set temperature limit.
func (s *HotWaterTankService) MinTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HotWaterTankMinTemperature, position)
}

// SetMinTemperature writes the reduced set temperature limit.
func (s *HotWaterTankService) SetMinTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HotWaterTankMinTemperature, position, temperature)
}

// MaxTemperature returns the normal set temperature limit.
func (s *HotWaterTankService) MaxTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HotWaterTankMaxTemperature, position)
}

// SetMaxTemperature writes the normal set temperature limit.
func (s *HotWaterTankService) SetMaxTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, HotWaterTankMaxTemperature, position, temperature)
}

// HeatRequest returns the tank's heat request state.
func (s *HotWaterTankService) HeatRequest(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HotWaterTankHeatRequest, position)
}

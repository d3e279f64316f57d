package keenergy

import "context"

// PhotovoltaicService exposes the singleton photovoltaic section.
type PhotovoltaicService struct {
	c *Client
}

// Photovoltaic returns the photovoltaic section service.
func (c *Client) Photovoltaic() *PhotovoltaicService { return &PhotovoltaicService{c: c} }

// State returns the photovoltaic integration state.
func (s *PhotovoltaicService) State(ctx context.Context) (int, error) {
	return s.c.readInt(ctx, PhotovoltaicState, 1)
}

// StateName returns the state as a lower-cased symbolic name.
func (s *PhotovoltaicService) StateName(ctx context.Context) (string, error) {
	return s.c.readSymbol(ctx, PhotovoltaicState, 1)
}

// ExcessPower returns the currently available excess power.
func (s *PhotovoltaicService) ExcessPower(ctx context.Context) (float64, error) {
	return s.c.readFloat(ctx, PhotovoltaicExcessPower, 1)
}

// SetEnable switches photovoltaic integration on or off.
func (s *PhotovoltaicService) SetEnable(ctx context.Context, enable any) error {
	return s.c.writeOne(ctx, PhotovoltaicEnable, 1, enable)
}

// ThresholdPower returns the configured activation threshold.
func (s *PhotovoltaicService) ThresholdPower(ctx context.Context) (float64, error) {
	return s.c.readFloat(ctx, PhotovoltaicThresholdPower, 1)
}

// SetThresholdPower writes the activation threshold.
func (s *PhotovoltaicService) SetThresholdPower(ctx context.Context, power float64) error {
	return s.c.writeOne(ctx, PhotovoltaicThresholdPower, 1, power)
}

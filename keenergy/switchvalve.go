package keenergy

import "context"

// SwitchValveService exposes one switch valve by its 1-based position.
type SwitchValveService struct {
	c *Client
}

// SwitchValve returns the switch valve section service.
func (c *Client) SwitchValve() *SwitchValveService { return &SwitchValveService{c: c} }

// Name returns the valve's configured name.
func (s *SwitchValveService) Name(ctx context.Context, position int) (string, error) {
	return s.c.readText(ctx, SwitchValveName, position)
}

// Position returns the valve position as a controller integer.
func (s *SwitchValveService) Position(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, SwitchValvePosition, position)
}

// PositionName returns the valve position as a lower-cased symbolic name.
func (s *SwitchValveService) PositionName(ctx context.Context, position int) (string, error) {
	return s.c.readSymbol(ctx, SwitchValvePosition, position)
}

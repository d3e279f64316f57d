package keenergy

import "context"

// SystemService exposes the singleton system section.
type SystemService struct {
	c *Client
}

// System returns the system section service.
func (c *Client) System() *SystemService { return &SystemService{c: c} }

// Name returns the configured system name.
func (s *SystemService) Name(ctx context.Context) (string, error) {
	return s.c.readText(ctx, SystemName, 1)
}

// SetName writes the system name.
func (s *SystemService) SetName(ctx context.Context, name string) error {
	return s.c.writeOne(ctx, SystemName, 1, name)
}

// SerialNumber returns the controller serial number.
func (s *SystemService) SerialNumber(ctx context.Context) (int, error) {
	return s.c.readInt(ctx, SystemSerialNumber, 1)
}

// InfoNumber returns the controller info number.
func (s *SystemService) InfoNumber(ctx context.Context) (int, error) {
	return s.c.readInt(ctx, SystemInfoNumber, 1)
}

// OutdoorTemperature returns the outdoor sensor temperature.
func (s *SystemService) OutdoorTemperature(ctx context.Context) (float64, error) {
	return s.c.readFloat(ctx, SystemOutdoorTemperature, 1)
}

// OperatingMode returns the system operating mode as a controller integer.
func (s *SystemService) OperatingMode(ctx context.Context) (int, error) {
	return s.c.readInt(ctx, SystemOperatingMode, 1)
}

// OperatingModeName returns the system operating mode as a lower-cased
// symbolic name.
func (s *SystemService) OperatingModeName(ctx context.Context) (string, error) {
	return s.c.readSymbol(ctx, SystemOperatingMode, 1)
}

// SetOperatingMode writes the system operating mode. It accepts a symbolic
// name (case-insensitive) or a member integer.
func (s *SystemService) SetOperatingMode(ctx context.Context, mode any) error {
	return s.c.writeOne(ctx, SystemOperatingMode, 1, mode)
}

package keenergy

import "context"

// BufferTankService exposes one buffer tank by its 1-based position.
type BufferTankService struct {
	c *Client
}

// BufferTank returns the buffer tank section service.
func (c *Client) BufferTank() *BufferTankService { return &BufferTankService{c: c} }

// TopTemperature returns the tank top sensor temperature.
func (s *BufferTankService) TopTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, BufferTankTopTemperature, position)
}

// BottomTemperature returns the tank bottom sensor temperature.
func (s *BufferTankService) BottomTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, BufferTankBottomTemperature, position)
}

// MinTemperature returns the reduced set temperature limit.
func (s *BufferTankService) MinTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, BufferTankMinTemperature, position)
}

// SetMinTemperature writes the reduced set temperature limit.
func (s *BufferTankService) SetMinTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, BufferTankMinTemperature, position, temperature)
}

// MaxTemperature returns the normal set temperature limit.
func (s *BufferTankService) MaxTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, BufferTankMaxTemperature, position)
}

// SetMaxTemperature writes the normal set temperature limit.
func (s *BufferTankService) SetMaxTemperature(ctx context.Context, position int, temperature float64) error {
	return s.c.writeOne(ctx, BufferTankMaxTemperature, position, temperature)
}

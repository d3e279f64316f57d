package keenergy

import "context"

// HeatPumpService exposes one heat pump by its 1-based position.
type HeatPumpService struct {
	c *Client
}

// HeatPump returns the heat pump section service.
func (c *Client) HeatPump() *HeatPumpService { return &HeatPumpService{c: c} }

// Name returns the heat pump's configured name.
func (s *HeatPumpService) Name(ctx context.Context, position int) (string, error) {
	return s.c.readText(ctx, HeatPumpName, position)
}

// State returns the heat pump state as a controller integer.
func (s *HeatPumpService) State(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatPumpState, position)
}

// StateName returns the heat pump state as a lower-cased symbolic name.
func (s *HeatPumpService) StateName(ctx context.Context, position int) (string, error) {
	return s.c.readSymbol(ctx, HeatPumpState, position)
}

// CirculationPump returns the circulation pump speed as a scaled fraction.
func (s *HeatPumpService) CirculationPump(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpCirculationPump, position)
}

// FlowTemperature returns the heating flow temperature.
func (s *HeatPumpService) FlowTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpFlowTemperature, position)
}

// RefluxTemperature returns the heating return temperature.
func (s *HeatPumpService) RefluxTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpRefluxTemperature, position)
}

// SourceInputTemperature returns the source inlet temperature.
func (s *HeatPumpService) SourceInputTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpSourceInputTemperature, position)
}

// SourceOutputTemperature returns the source outlet temperature.
func (s *HeatPumpService) SourceOutputTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpSourceOutputTemperature, position)
}

// CompressorInputTemperature returns the compressor inlet temperature.
func (s *HeatPumpService) CompressorInputTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpCompressorInputTemperature, position)
}

// CompressorOutputTemperature returns the compressor outlet temperature.
func (s *HeatPumpService) CompressorOutputTemperature(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpCompressorOutputTemperature, position)
}

// Compressor returns the compressor load as a scaled fraction.
func (s *HeatPumpService) Compressor(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpCompressor, position)
}

// HighPressure returns the refrigerant high pressure.
func (s *HeatPumpService) HighPressure(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpHighPressure, position)
}

// LowPressure returns the refrigerant low pressure.
func (s *HeatPumpService) LowPressure(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpLowPressure, position)
}

// ElectricalEnergy returns the accumulated electrical energy counter.
func (s *HeatPumpService) ElectricalEnergy(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpElectricalEnergy, position)
}

// ThermalEnergy returns the accumulated thermal energy counter.
func (s *HeatPumpService) ThermalEnergy(ctx context.Context, position int) (float64, error) {
	return s.c.readFloat(ctx, HeatPumpThermalEnergy, position)
}

// OperatingTime returns the accumulated operating time counter.
func (s *HeatPumpService) OperatingTime(ctx context.Context, position int) (int, error) {
	return s.c.readInt(ctx, HeatPumpOperatingTime, position)
}

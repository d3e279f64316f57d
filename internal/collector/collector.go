// Package collector implements the Prometheus collector interface for KEBA
// KeEnergy heat pump controllers.
package collector

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"keenergy_api/keenergy"
)

// scrapeFields is read in one batched controller call per scrape.
var scrapeFields = []*keenergy.Field{
	keenergy.SystemOutdoorTemperature,
	keenergy.SystemOperatingMode,
	keenergy.PhotovoltaicState,
	keenergy.PhotovoltaicExcessPower,
	keenergy.HeatPumpState,
	keenergy.HeatPumpCirculationPump,
	keenergy.HeatPumpCompressor,
	keenergy.HeatPumpFlowTemperature,
	keenergy.HeatPumpRefluxTemperature,
	keenergy.HeatPumpSourceInputTemperature,
	keenergy.HeatPumpSourceOutputTemperature,
	keenergy.HeatPumpHighPressure,
	keenergy.HeatPumpLowPressure,
	keenergy.HeatPumpElectricalEnergy,
	keenergy.HeatPumpThermalEnergy,
	keenergy.HeatPumpOperatingTime,
	keenergy.HeatCircuitTemperature,
	keenergy.HeatCircuitTargetTemperature,
	keenergy.HeatCircuitOperatingMode,
	keenergy.HeatCircuitHeatRequest,
	keenergy.HotWaterTankTemperature,
	keenergy.HotWaterTankOperatingMode,
	keenergy.HotWaterTankHeatRequest,
	keenergy.BufferTankTopTemperature,
	keenergy.BufferTankBottomTemperature,
	keenergy.SolarCircuitTemperature,
	keenergy.SolarCircuitTargetTemperature,
	keenergy.SolarCircuitHeatRequest,
	keenergy.ExternalHeatSourceTemperature,
	keenergy.ExternalHeatSourceTargetTemperature,
	keenergy.ExternalHeatSourceHeatRequest,
	keenergy.SwitchValvePosition,
}

// KeenergyCollector implements prometheus.Collector for one controller.
type KeenergyCollector struct {
	client  *keenergy.Client
	logger  *slog.Logger
	timeout time.Duration
	metrics *MetricSet
}

// NewKeenergyCollector creates a new controller collector.
func NewKeenergyCollector(client *keenergy.Client, timeout time.Duration, logger *slog.Logger) *KeenergyCollector {
	return &KeenergyCollector{
		client:  client,
		logger:  logger,
		timeout: timeout,
		metrics: newMetricSet(),
	}
}

// Describe implements prometheus.Collector.
func (c *KeenergyCollector) Describe(ch chan<- *prometheus.Desc) {
	m := c.metrics

	// System metrics
	ch <- m.outdoorTemp
	ch <- m.operatingMode
	ch <- m.installed

	// Photovoltaic metrics
	ch <- m.pvState
	ch <- m.pvExcessPower

	// Heat pump metrics
	ch <- m.hpState
	ch <- m.hpCirculationPump
	ch <- m.hpCompressor
	ch <- m.hpFlowTemp
	ch <- m.hpRefluxTemp
	ch <- m.hpSourceInTemp
	ch <- m.hpSourceOutTemp
	ch <- m.hpHighPressure
	ch <- m.hpLowPressure
	ch <- m.hpElectricalEnergy
	ch <- m.hpThermalEnergy
	ch <- m.hpOperatingTime

	// Heat circuit metrics
	ch <- m.hcTemp
	ch <- m.hcTargetTemp
	ch <- m.hcMode
	ch <- m.hcHeatRequest

	// Hot water tank metrics
	ch <- m.hwtTemp
	ch <- m.hwtMode
	ch <- m.hwtHeatRequest

	// Buffer tank metrics
	ch <- m.btTopTemp
	ch <- m.btBottomTemp

	// Solar circuit metrics
	ch <- m.scTemp
	ch <- m.scTargetTemp
	ch <- m.scHeatRequest

	// External heat source metrics
	ch <- m.ehsTemp
	ch <- m.ehsTargetTemp
	ch <- m.ehsHeatRequest

	// Switch valve metrics
	ch <- m.svPosition

	// Scrape metrics
	m.scrapeErrors.Describe(ch)
	m.scrapeDuration.Describe(ch)
}

// Collect implements prometheus.Collector. It performs on-demand scraping when
// Prometheus scrapes the /metrics endpoint.
func (c *KeenergyCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		c.metrics.scrapeDuration.Observe(time.Since(start).Seconds())
		c.metrics.scrapeDuration.Collect(ch)
		c.metrics.scrapeErrors.Collect(ch)
	}()

	c.logger.Debug("Starting scrape")
	positions, err := c.client.InstalledPositions(ctx)
	if err != nil {
		c.metrics.scrapeErrors.Inc()
		c.logger.Error("Failed to read installed devices", "error", err)
		return
	}

	readings, err := c.client.ReadFields(ctx, scrapeFields, keenergy.SelectPositions(positions), keenergy.ReadOptions{})
	if err != nil {
		c.metrics.scrapeErrors.Inc()
		c.logger.Error("Failed to read controller values", "error", err)
		return
	}

	c.emitInstalled(ch, positions)
	c.emitSystem(ch, readings)
	c.emitPhotovoltaic(ch, readings)
	c.emitHeatPumps(ch, readings)
	c.emitHeatCircuits(ch, readings)
	c.emitHotWaterTanks(ch, readings)
	c.emitBufferTanks(ch, readings)
	c.emitSolarCircuits(ch, readings)
	c.emitExternalHeatSources(ch, readings)
	c.emitSwitchValves(ch, readings)
}

// emitInstalled emits the installed device counts per device type.
func (c *KeenergyCollector) emitInstalled(ch chan<- prometheus.Metric, positions keenergy.Positions) {
	counts := map[string]int{
		keenergy.SectionHeatPump.Tag():           positions.HeatPump,
		keenergy.SectionHeatCircuit.Tag():        positions.HeatCircuit,
		keenergy.SectionSolarCircuit.Tag():       positions.SolarCircuit,
		keenergy.SectionBufferTank.Tag():         positions.BufferTank,
		keenergy.SectionHotWaterTank.Tag():       positions.HotWaterTank,
		keenergy.SectionExternalHeatSource.Tag(): positions.ExternalHeatSource,
		keenergy.SectionSwitchValve.Tag():        positions.SwitchValve,
	}
	for device, n := range counts {
		ch <- prometheus.MustNewConstMetric(c.metrics.installed, prometheus.GaugeValue, float64(n), device)
	}
}

func (c *KeenergyCollector) emitSystem(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	if vals := readings.Get(keenergy.SystemOutdoorTemperature); len(vals) > 0 {
		ch <- prometheus.MustNewConstMetric(c.metrics.outdoorTemp, prometheus.GaugeValue, vals.One().Float())
	}
	if vals := readings.Get(keenergy.SystemOperatingMode); len(vals) > 0 {
		c.emitOneHot(ch, c.metrics.operatingMode, keenergy.SystemOperatingModes, vals.One().Int(), nil)
	}
}

func (c *KeenergyCollector) emitPhotovoltaic(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	if vals := readings.Get(keenergy.PhotovoltaicState); len(vals) > 0 {
		ch <- prometheus.MustNewConstMetric(c.metrics.pvState, prometheus.GaugeValue, float64(vals.One().Int()))
	}
	if vals := readings.Get(keenergy.PhotovoltaicExcessPower); len(vals) > 0 {
		ch <- prometheus.MustNewConstMetric(c.metrics.pvExcessPower, prometheus.GaugeValue, vals.One().Float())
	}
}

func (c *KeenergyCollector) emitHeatPumps(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	for i, entry := range readings.Get(keenergy.HeatPumpState).Flat() {
		c.emitOneHot(ch, c.metrics.hpState, keenergy.HeatPumpStates, entry.Int(), []string{positionLabel(i)})
	}

	gauges := []struct {
		field *keenergy.Field
		desc  *prometheus.Desc
	}{
		{keenergy.HeatPumpCirculationPump, c.metrics.hpCirculationPump},
		{keenergy.HeatPumpCompressor, c.metrics.hpCompressor},
		{keenergy.HeatPumpFlowTemperature, c.metrics.hpFlowTemp},
		{keenergy.HeatPumpRefluxTemperature, c.metrics.hpRefluxTemp},
		{keenergy.HeatPumpSourceInputTemperature, c.metrics.hpSourceInTemp},
		{keenergy.HeatPumpSourceOutputTemperature, c.metrics.hpSourceOutTemp},
		{keenergy.HeatPumpHighPressure, c.metrics.hpHighPressure},
		{keenergy.HeatPumpLowPressure, c.metrics.hpLowPressure},
		{keenergy.HeatPumpElectricalEnergy, c.metrics.hpElectricalEnergy},
		{keenergy.HeatPumpThermalEnergy, c.metrics.hpThermalEnergy},
	}
	for _, g := range gauges {
		c.emitPerPosition(ch, g.desc, readings.Get(g.field))
	}

	for i, entry := range readings.Get(keenergy.HeatPumpOperatingTime).Flat() {
		ch <- prometheus.MustNewConstMetric(c.metrics.hpOperatingTime, prometheus.CounterValue, float64(entry.Int()), positionLabel(i))
	}
}

func (c *KeenergyCollector) emitHeatCircuits(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	c.emitPerPosition(ch, c.metrics.hcTemp, readings.Get(keenergy.HeatCircuitTemperature))
	c.emitPerPosition(ch, c.metrics.hcTargetTemp, readings.Get(keenergy.HeatCircuitTargetTemperature))
	for i, entry := range readings.Get(keenergy.HeatCircuitOperatingMode).Flat() {
		c.emitOneHot(ch, c.metrics.hcMode, keenergy.HeatCircuitOperatingModes, entry.Int(), []string{positionLabel(i)})
	}
	for i, entry := range readings.Get(keenergy.HeatCircuitHeatRequest).Flat() {
		ch <- prometheus.MustNewConstMetric(c.metrics.hcHeatRequest, prometheus.GaugeValue, float64(entry.Int()), positionLabel(i))
	}
}

func (c *KeenergyCollector) emitHotWaterTanks(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	c.emitPerPosition(ch, c.metrics.hwtTemp, readings.Get(keenergy.HotWaterTankTemperature))
	for i, entry := range readings.Get(keenergy.HotWaterTankOperatingMode).Flat() {
		c.emitOneHot(ch, c.metrics.hwtMode, keenergy.HotWaterTankOperatingModes, entry.Int(), []string{positionLabel(i)})
	}
	for i, entry := range readings.Get(keenergy.HotWaterTankHeatRequest).Flat() {
		ch <- prometheus.MustNewConstMetric(c.metrics.hwtHeatRequest, prometheus.GaugeValue, float64(entry.Int()), positionLabel(i))
	}
}

func (c *KeenergyCollector) emitBufferTanks(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	c.emitPerPosition(ch, c.metrics.btTopTemp, readings.Get(keenergy.BufferTankTopTemperature))
	c.emitPerPosition(ch, c.metrics.btBottomTemp, readings.Get(keenergy.BufferTankBottomTemperature))
}

// emitSolarCircuits emits every collector sensor of every circuit.
func (c *KeenergyCollector) emitSolarCircuits(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	c.emitPerSensor(ch, c.metrics.scTemp, readings.Get(keenergy.SolarCircuitTemperature), false)
	c.emitPerSensor(ch, c.metrics.scTargetTemp, readings.Get(keenergy.SolarCircuitTargetTemperature), false)
	c.emitPerSensor(ch, c.metrics.scHeatRequest, readings.Get(keenergy.SolarCircuitHeatRequest), true)
}

func (c *KeenergyCollector) emitExternalHeatSources(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	c.emitPerPosition(ch, c.metrics.ehsTemp, readings.Get(keenergy.ExternalHeatSourceTemperature))
	c.emitPerPosition(ch, c.metrics.ehsTargetTemp, readings.Get(keenergy.ExternalHeatSourceTargetTemperature))
	for i, entry := range readings.Get(keenergy.ExternalHeatSourceHeatRequest).Flat() {
		ch <- prometheus.MustNewConstMetric(c.metrics.ehsHeatRequest, prometheus.GaugeValue, float64(entry.Int()), positionLabel(i))
	}
}

func (c *KeenergyCollector) emitSwitchValves(ch chan<- prometheus.Metric, readings keenergy.Readings) {
	for i, entry := range readings.Get(keenergy.SwitchValvePosition).Flat() {
		c.emitOneHot(ch, c.metrics.svPosition, keenergy.SwitchValvePositions, entry.Int(), []string{positionLabel(i)})
	}
}

// emitPerPosition emits one gauge per device position from a quantity-1 field.
func (c *KeenergyCollector) emitPerPosition(ch chan<- prometheus.Metric, desc *prometheus.Desc, vals keenergy.FieldValues) {
	for i, entry := range vals.Flat() {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, entry.Float(), positionLabel(i))
	}
}

// emitPerSensor emits one gauge per pool sensor of a quantity-2 field.
func (c *KeenergyCollector) emitPerSensor(ch chan<- prometheus.Metric, desc *prometheus.Desc, vals keenergy.FieldValues, integer bool) {
	for i, block := range vals {
		for k, entry := range block {
			value := entry.Float()
			if integer {
				value = float64(entry.Int())
			}
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value, positionLabel(i), strconv.Itoa(k+1))
		}
	}
}

// emitOneHot emits one time series per enumeration member, with value 1 on the
// member matching current.
func (c *KeenergyCollector) emitOneHot(ch chan<- prometheus.Metric, desc *prometheus.Desc, enum *keenergy.Enum, current int, labels []string) {
	for _, name := range enum.Names() {
		v, _ := enum.ValueOf(name)
		value := 0.0
		if v == current {
			value = 1.0
		}
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value, append(labels, strings.ToLower(name))...)
	}
}

func positionLabel(i int) string {
	return strconv.Itoa(i + 1)
}

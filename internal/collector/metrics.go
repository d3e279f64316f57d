package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label names shared by the exporter metrics.
const (
	labelPosition = "position"
	labelMode     = "mode"
	labelState    = "state"
	labelSensor   = "sensor"
	labelDevice   = "device"
)

// MetricSet holds all Prometheus metric descriptors for the keenergy exporter.
type MetricSet struct {
	// System metrics
	outdoorTemp   *prometheus.Desc
	operatingMode *prometheus.Desc
	installed     *prometheus.Desc

	// Photovoltaic metrics
	pvState       *prometheus.Desc
	pvExcessPower *prometheus.Desc

	// Heat pump metrics
	hpState            *prometheus.Desc
	hpCirculationPump  *prometheus.Desc
	hpCompressor       *prometheus.Desc
	hpFlowTemp         *prometheus.Desc
	hpRefluxTemp       *prometheus.Desc
	hpSourceInTemp     *prometheus.Desc
	hpSourceOutTemp    *prometheus.Desc
	hpHighPressure     *prometheus.Desc
	hpLowPressure      *prometheus.Desc
	hpElectricalEnergy *prometheus.Desc
	hpThermalEnergy    *prometheus.Desc
	hpOperatingTime    *prometheus.Desc

	// Heat circuit metrics
	hcTemp        *prometheus.Desc
	hcTargetTemp  *prometheus.Desc
	hcMode        *prometheus.Desc
	hcHeatRequest *prometheus.Desc

	// Hot water tank metrics
	hwtTemp        *prometheus.Desc
	hwtMode        *prometheus.Desc
	hwtHeatRequest *prometheus.Desc

	// Buffer tank metrics
	btTopTemp    *prometheus.Desc
	btBottomTemp *prometheus.Desc

	// Solar circuit metrics
	scTemp        *prometheus.Desc
	scTargetTemp  *prometheus.Desc
	scHeatRequest *prometheus.Desc

	// External heat source metrics
	ehsTemp        *prometheus.Desc
	ehsTargetTemp  *prometheus.Desc
	ehsHeatRequest *prometheus.Desc

	// Switch valve metrics
	svPosition *prometheus.Desc

	// Scrape metrics
	scrapeErrors   prometheus.Counter
	scrapeDuration prometheus.Histogram
}

// newMetricSet creates all metric descriptors.
func newMetricSet() *MetricSet {
	position := []string{labelPosition}
	positionMode := []string{labelPosition, labelMode}
	positionState := []string{labelPosition, labelState}

	return &MetricSet{
		// System metrics
		outdoorTemp: prometheus.NewDesc(
			"keenergy_outdoor_temperature_celsius",
			"Outdoor sensor temperature (°C)",
			nil, nil,
		),
		operatingMode: prometheus.NewDesc(
			"keenergy_system_operating_mode",
			"System operating mode one-hot (1 for current)",
			[]string{labelMode}, nil,
		),
		installed: prometheus.NewDesc(
			"keenergy_installed_devices",
			"Number of installed devices per device type",
			[]string{labelDevice}, nil,
		),

		// Photovoltaic metrics
		pvState: prometheus.NewDesc(
			"keenergy_photovoltaic_state",
			"Photovoltaic integration state (0/1)",
			nil, nil,
		),
		pvExcessPower: prometheus.NewDesc(
			"keenergy_photovoltaic_excess_power_watts",
			"Photovoltaic excess power (W)",
			nil, nil,
		),

		// Heat pump metrics
		hpState: prometheus.NewDesc(
			"keenergy_heat_pump_state",
			"Heat pump state one-hot (1 for current)",
			positionState, nil,
		),
		hpCirculationPump: prometheus.NewDesc(
			"keenergy_heat_pump_circulation_pump_ratio",
			"Circulation pump scaled output (0..1)",
			position, nil,
		),
		hpCompressor: prometheus.NewDesc(
			"keenergy_heat_pump_compressor_ratio",
			"Compressor scaled output (0..1)",
			position, nil,
		),
		hpFlowTemp: prometheus.NewDesc(
			"keenergy_heat_pump_flow_temperature_celsius",
			"Heat flow temperature (°C)",
			position, nil,
		),
		hpRefluxTemp: prometheus.NewDesc(
			"keenergy_heat_pump_reflux_temperature_celsius",
			"Heat reflux temperature (°C)",
			position, nil,
		),
		hpSourceInTemp: prometheus.NewDesc(
			"keenergy_heat_pump_source_input_temperature_celsius",
			"Source input temperature (°C)",
			position, nil,
		),
		hpSourceOutTemp: prometheus.NewDesc(
			"keenergy_heat_pump_source_output_temperature_celsius",
			"Source output temperature (°C)",
			position, nil,
		),
		hpHighPressure: prometheus.NewDesc(
			"keenergy_heat_pump_high_pressure_bar",
			"High pressure (bar)",
			position, nil,
		),
		hpLowPressure: prometheus.NewDesc(
			"keenergy_heat_pump_low_pressure_bar",
			"Low pressure (bar)",
			position, nil,
		),
		hpElectricalEnergy: prometheus.NewDesc(
			"keenergy_heat_pump_electrical_energy_kwh",
			"Accumulated electrical energy (kWh)",
			position, nil,
		),
		hpThermalEnergy: prometheus.NewDesc(
			"keenergy_heat_pump_thermal_energy_kwh",
			"Accumulated thermal energy (kWh)",
			position, nil,
		),
		hpOperatingTime: prometheus.NewDesc(
			"keenergy_heat_pump_operating_time_seconds",
			"Accumulated compressor operating time (seconds)",
			position, nil,
		),

		// Heat circuit metrics
		hcTemp: prometheus.NewDesc(
			"keenergy_heat_circuit_temperature_celsius",
			"Heat circuit flow set value (°C)",
			position, nil,
		),
		hcTargetTemp: prometheus.NewDesc(
			"keenergy_heat_circuit_target_temperature_celsius",
			"Heat circuit day set temperature (°C)",
			position, nil,
		),
		hcMode: prometheus.NewDesc(
			"keenergy_heat_circuit_operating_mode",
			"Heat circuit operating mode one-hot (1 for current)",
			positionMode, nil,
		),
		hcHeatRequest: prometheus.NewDesc(
			"keenergy_heat_circuit_heat_request",
			"Heat circuit heat request (0/1)",
			position, nil,
		),

		// Hot water tank metrics
		hwtTemp: prometheus.NewDesc(
			"keenergy_hot_water_tank_temperature_celsius",
			"Hot water tank temperature (°C)",
			position, nil,
		),
		hwtMode: prometheus.NewDesc(
			"keenergy_hot_water_tank_operating_mode",
			"Hot water tank operating mode one-hot (1 for current)",
			positionMode, nil,
		),
		hwtHeatRequest: prometheus.NewDesc(
			"keenergy_hot_water_tank_heat_request",
			"Hot water tank heat request (0/1)",
			position, nil,
		),

		// Buffer tank metrics
		btTopTemp: prometheus.NewDesc(
			"keenergy_buffer_tank_top_temperature_celsius",
			"Buffer tank top temperature (°C)",
			position, nil,
		),
		btBottomTemp: prometheus.NewDesc(
			"keenergy_buffer_tank_bottom_temperature_celsius",
			"Buffer tank bottom temperature (°C)",
			position, nil,
		),

		// Solar circuit metrics. Each circuit reports two collector sensors.
		scTemp: prometheus.NewDesc(
			"keenergy_solar_circuit_temperature_celsius",
			"Solar circuit collector temperature (°C)",
			[]string{labelPosition, labelSensor}, nil,
		),
		scTargetTemp: prometheus.NewDesc(
			"keenergy_solar_circuit_target_temperature_celsius",
			"Solar circuit target temperature (°C)",
			[]string{labelPosition, labelSensor}, nil,
		),
		scHeatRequest: prometheus.NewDesc(
			"keenergy_solar_circuit_heat_request",
			"Solar circuit heat request (0/1)",
			[]string{labelPosition, labelSensor}, nil,
		),

		// External heat source metrics
		ehsTemp: prometheus.NewDesc(
			"keenergy_external_heat_source_temperature_celsius",
			"External heat source temperature (°C)",
			position, nil,
		),
		ehsTargetTemp: prometheus.NewDesc(
			"keenergy_external_heat_source_target_temperature_celsius",
			"External heat source target temperature (°C)",
			position, nil,
		),
		ehsHeatRequest: prometheus.NewDesc(
			"keenergy_external_heat_source_heat_request",
			"External heat source heat request (0/1)",
			position, nil,
		),

		// Switch valve metrics
		svPosition: prometheus.NewDesc(
			"keenergy_switch_valve_position",
			"Switch valve position one-hot (1 for current)",
			positionState, nil,
		),

		// Scrape metrics
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keenergy_scrape_errors_total",
			Help: "Total number of scrape errors",
		}),
		scrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "keenergy_scrape_duration_seconds",
			Help:    "Time spent scraping the controller",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

package keenergy

// Kind is the value domain of a controller field.
type Kind int

const (
	KindReal Kind = iota
	KindInteger
	KindText
)

// Field describes one logical controller variable: the symbolic path template
// it lives under, its value kind, whether it accepts writes, an optional
// enumeration binding and the number of adjacent sub-indices one logical
// value spans (Quantity, defaults to 1).
//
// Descriptors are immutable and process-wide; application code passes them by
// pointer identity.
type Field struct {
	Section  Section
	Name     string
	Path     string
	Kind     Kind
	Writable bool
	Enum     *Enum
	Quantity int

	// Expand, when set, turns one write into additional child writes that
	// are appended to the same payload.
	Expand func(value any) []WriteSpec
}

func (f *Field) quantity() int {
	if f.Quantity < 1 {
		return 1
	}
	return f.Quantity
}

// Tag returns the snake_case field tag used as the inner key of grouped
// readings.
func (f *Field) Tag() string { return f.Name }

const (
	paramPrefix = "APPL.CtrlAppl.sParam"
	statsPrefix = "APPL.CtrlAppl.sStatisticalData"
)

// System section (singleton).
var (
	SystemName = &Field{
		Section: SectionSystem, Name: "name",
		Path: paramPrefix + ".param.name",
		Kind: KindText, Writable: true,
	}
	SystemSerialNumber = &Field{
		Section: SectionSystem, Name: "serial_number",
		Path: paramPrefix + ".param.serialNumber",
		Kind: KindInteger,
	}
	SystemInfoNumber = &Field{
		Section: SectionSystem, Name: "info_number",
		Path: paramPrefix + ".param.infoNumber",
		Kind: KindInteger,
	}
	SystemOutdoorTemperature = &Field{
		Section: SectionSystem, Name: "outdoor_temperature",
		Path: paramPrefix + ".outdoorTemp.values.actValue",
		Kind: KindReal,
	}
	SystemOperatingMode = &Field{
		Section: SectionSystem, Name: "operating_mode",
		Path: paramPrefix + ".param.operatingMode",
		Kind: KindInteger, Writable: true, Enum: SystemOperatingModes,
	}
	SystemNumberOfHeatPumps = &Field{
		Section: SectionSystem, Name: "number_of_heat_pumps",
		Path: paramPrefix + ".options.systemNumberOfHeatPumps",
		Kind: KindInteger,
	}
	SystemNumberOfHeatCircuits = &Field{
		Section: SectionSystem, Name: "number_of_heat_circuits",
		Path: paramPrefix + ".options.systemNumberOfHeatingCircuits",
		Kind: KindInteger,
	}
	SystemNumberOfSolarCircuits = &Field{
		Section: SectionSystem, Name: "number_of_solar_circuits",
		Path: paramPrefix + ".options.systemNumberOfSolarCircuits",
		Kind: KindInteger,
	}
	SystemNumberOfBufferTanks = &Field{
		Section: SectionSystem, Name: "number_of_buffer_tanks",
		Path: paramPrefix + ".options.systemNumberOfBufferTanks",
		Kind: KindInteger,
	}
	SystemNumberOfHotWaterTanks = &Field{
		Section: SectionSystem, Name: "number_of_hot_water_tanks",
		Path: paramPrefix + ".options.systemNumberOfHotWaterTanks",
		Kind: KindInteger,
	}
	SystemNumberOfExternalHeatSources = &Field{
		Section: SectionSystem, Name: "number_of_external_heat_sources",
		Path: paramPrefix + ".options.systemNumberOfExtHeatSources",
		Kind: KindInteger,
	}
	SystemNumberOfSwitchValves = &Field{
		Section: SectionSystem, Name: "number_of_switch_valves",
		Path: paramPrefix + ".options.systemNumberOfSwitchValves",
		Kind: KindInteger,
	}
)

// Photovoltaic section (singleton).
var (
	PhotovoltaicState = &Field{
		Section: SectionPhotovoltaic, Name: "state",
		Path: paramPrefix + ".photovoltaics.values.state",
		Kind: KindInteger, Enum: PhotovoltaicStates,
	}
	PhotovoltaicExcessPower = &Field{
		Section: SectionPhotovoltaic, Name: "excess_power",
		Path: paramPrefix + ".photovoltaics.values.excessPower",
		Kind: KindReal,
	}
	PhotovoltaicEnable = &Field{
		Section: SectionPhotovoltaic, Name: "enable",
		Path: paramPrefix + ".photovoltaics.param.enable",
		Kind: KindInteger, Writable: true, Enum: PhotovoltaicStates,
	}
	PhotovoltaicThresholdPower = &Field{
		Section: SectionPhotovoltaic, Name: "threshold_power",
		Path: paramPrefix + ".photovoltaics.param.thresholdPower",
		Kind: KindReal, Writable: true,
	}
)

// Buffer tank section (per position).
var (
	BufferTankTopTemperature = &Field{
		Section: SectionBufferTank, Name: "top_temperature",
		Path: paramPrefix + ".bufferTank[%d].topTemp.values.actValue",
		Kind: KindReal,
	}
	BufferTankBottomTemperature = &Field{
		Section: SectionBufferTank, Name: "bottom_temperature",
		Path: paramPrefix + ".bufferTank[%d].bottomTemp.values.actValue",
		Kind: KindReal,
	}
	BufferTankMinTemperature = &Field{
		Section: SectionBufferTank, Name: "min_temperature",
		Path: paramPrefix + ".bufferTank[%d].param.reducedSetTempMax.value",
		Kind: KindReal, Writable: true,
	}
	BufferTankMaxTemperature = &Field{
		Section: SectionBufferTank, Name: "max_temperature",
		Path: paramPrefix + ".bufferTank[%d].param.normalSetTempMax.value",
		Kind: KindReal, Writable: true,
	}
)

// Hot water tank section (per position).
var (
	HotWaterTankTemperature = &Field{
		Section: SectionHotWaterTank, Name: "temperature",
		Path: paramPrefix + ".hotWaterTank[%d].topTemp.values.actValue",
		Kind: KindReal,
	}
	HotWaterTankOperatingMode = &Field{
		Section: SectionHotWaterTank, Name: "operating_mode",
		Path: paramPrefix + ".hotWaterTank[%d].param.operatingMode",
		Kind: KindInteger, Writable: true, Enum: HotWaterTankOperatingModes,
	}
	HotWaterTankMinTemperature = &Field{
		Section: SectionHotWaterTank, Name: "min_temperature",
		Path: paramPrefix + ".hotWaterTank[%d].param.reducedSetTempMax.value",
		Kind: KindReal, Writable: true,
	}
	HotWaterTankMaxTemperature = &Field{
		Section: SectionHotWaterTank, Name: "max_temperature",
		Path: paramPrefix + ".hotWaterTank[%d].param.normalSetTempMax.value",
		Kind: KindReal, Writable: true,
	}
	HotWaterTankHeatRequest = &Field{
		Section: SectionHotWaterTank, Name: "heat_request",
		Path: paramPrefix + ".hotWaterTank[%d].values.heatRequestTop",
		Kind: KindInteger,
	}
)

// Heat pump section (per position).
var (
	HeatPumpName = &Field{
		Section: SectionHeatPump, Name: "name",
		Path: paramPrefix + ".heatpump[%d].param.name",
		Kind: KindText,
	}
	HeatPumpState = &Field{
		Section: SectionHeatPump, Name: "state",
		Path: paramPrefix + ".heatpump[%d].values.heatpumpState",
		Kind: KindInteger, Enum: HeatPumpStates,
	}
	HeatPumpCirculationPump = &Field{
		Section: SectionHeatPump, Name: "circulation_pump",
		Path: paramPrefix + ".heatpump[%d].CircPump.values.setValueScaled",
		Kind: KindReal,
	}
	HeatPumpFlowTemperature = &Field{
		Section: SectionHeatPump, Name: "flow_temperature",
		Path: paramPrefix + ".heatpump[%d].TempHeatFlow.values.actValue",
		Kind: KindReal,
	}
	HeatPumpRefluxTemperature = &Field{
		Section: SectionHeatPump, Name: "reflux_temperature",
		Path: paramPrefix + ".heatpump[%d].TempHeatReflux.values.actValue",
		Kind: KindReal,
	}
	HeatPumpSourceInputTemperature = &Field{
		Section: SectionHeatPump, Name: "source_input_temperature",
		Path: paramPrefix + ".heatpump[%d].TempSourceIn.values.actValue",
		Kind: KindReal,
	}
	HeatPumpSourceOutputTemperature = &Field{
		Section: SectionHeatPump, Name: "source_output_temperature",
		Path: paramPrefix + ".heatpump[%d].TempSourceOut.values.actValue",
		Kind: KindReal,
	}
	HeatPumpCompressorInputTemperature = &Field{
		Section: SectionHeatPump, Name: "compressor_input_temperature",
		Path: paramPrefix + ".heatpump[%d].TempCompressorIn.values.actValue",
		Kind: KindReal,
	}
	HeatPumpCompressorOutputTemperature = &Field{
		Section: SectionHeatPump, Name: "compressor_output_temperature",
		Path: paramPrefix + ".heatpump[%d].TempCompressorOut.values.actValue",
		Kind: KindReal,
	}
	HeatPumpCompressor = &Field{
		Section: SectionHeatPump, Name: "compressor",
		Path: paramPrefix + ".heatpump[%d].Compressor.values.setValueScaled",
		Kind: KindReal,
	}
	HeatPumpHighPressure = &Field{
		Section: SectionHeatPump, Name: "high_pressure",
		Path: paramPrefix + ".heatpump[%d].HighPressure.values.actValue",
		Kind: KindReal,
	}
	HeatPumpLowPressure = &Field{
		Section: SectionHeatPump, Name: "low_pressure",
		Path: paramPrefix + ".heatpump[%d].LowPressure.values.actValue",
		Kind: KindReal,
	}
	HeatPumpElectricalEnergy = &Field{
		Section: SectionHeatPump, Name: "electrical_energy",
		Path: statsPrefix + ".heatpump[%d].values.electricalEnergy",
		Kind: KindReal,
	}
	HeatPumpThermalEnergy = &Field{
		Section: SectionHeatPump, Name: "thermal_energy",
		Path: statsPrefix + ".heatpump[%d].values.thermalEnergy",
		Kind: KindReal,
	}
	HeatPumpOperatingTime = &Field{
		Section: SectionHeatPump, Name: "operating_time",
		Path: statsPrefix + ".heatpump[%d].values.operatingTime",
		Kind: KindInteger,
	}
)

// Heat circuit section (per position).
var (
	HeatCircuitName = &Field{
		Section: SectionHeatCircuit, Name: "name",
		Path: paramPrefix + ".heatCircuit[%d].param.name",
		Kind: KindText,
	}
	HeatCircuitOperatingMode = &Field{
		Section: SectionHeatCircuit, Name: "operating_mode",
		Path: paramPrefix + ".heatCircuit[%d].param.operatingMode",
		Kind: KindInteger, Writable: true, Enum: HeatCircuitOperatingModes,
	}
	HeatCircuitTemperature = &Field{
		Section: SectionHeatCircuit, Name: "temperature",
		Path: paramPrefix + ".heatCircuit[%d].values.setValue",
		Kind: KindReal,
	}
	HeatCircuitTargetTemperature = &Field{
		Section: SectionHeatCircuit, Name: "target_temperature",
		Path: paramPrefix + ".heatCircuit[%d].param.normalSetTemp",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitTargetTemperatureThreshold = &Field{
		Section: SectionHeatCircuit, Name: "target_temperature_threshold",
		Path: paramPrefix + ".heatCircuit[%d].param.thresholdDayTemp.value",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitNightTemperature = &Field{
		Section: SectionHeatCircuit, Name: "night_temperature",
		Path: paramPrefix + ".heatCircuit[%d].param.reducedSetTemp",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitNightTemperatureThreshold = &Field{
		Section: SectionHeatCircuit, Name: "night_temperature_threshold",
		Path: paramPrefix + ".heatCircuit[%d].param.thresholdNightTemp.value",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitHolidayTemperature = &Field{
		Section: SectionHeatCircuit, Name: "holiday_temperature",
		Path: paramPrefix + ".heatCircuit[%d].param.holidaySetTemp",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitOffsetTemperature = &Field{
		Section: SectionHeatCircuit, Name: "offset_temperature",
		Path: paramPrefix + ".heatCircuit[%d].param.offsetRoomTemp",
		Kind: KindReal, Writable: true,
	}
	HeatCircuitHeatRequest = &Field{
		Section: SectionHeatCircuit, Name: "heat_request",
		Path: paramPrefix + ".heatCircuit[%d].values.heatRequest",
		Kind: KindInteger,
	}
	HeatCircuitExternalCoolRequest = &Field{
		Section: SectionHeatCircuit, Name: "external_cool_request",
		Path: paramPrefix + ".heatCircuit[%d].param.external.coolRequest",
		Kind: KindInteger,
	}
	HeatCircuitExternalHeatRequest = &Field{
		Section: SectionHeatCircuit, Name: "external_heat_request",
		Path: paramPrefix + ".heatCircuit[%d].param.external.heatRequest",
		Kind: KindInteger,
	}
)

// Solar circuit section (per position). Solar circuits share the genericHeat
// pool: each circuit owns a block of two consecutive pool slots, so these
// fields carry Quantity 2 and their templates take the pool sub-index.
var (
	SolarCircuitTemperature = &Field{
		Section: SectionSolarCircuit, Name: "temperature",
		Path: paramPrefix + ".genericHeat[%d].values.actTemp",
		Kind: KindReal, Quantity: 2,
	}
	SolarCircuitTargetTemperature = &Field{
		Section: SectionSolarCircuit, Name: "target_temperature",
		Path: paramPrefix + ".genericHeat[%d].param.setTemp",
		Kind: KindReal, Writable: true, Quantity: 2,
	}
	SolarCircuitHeatRequest = &Field{
		Section: SectionSolarCircuit, Name: "heat_request",
		Path: paramPrefix + ".genericHeat[%d].values.heatRequest",
		Kind: KindInteger, Quantity: 2,
	}
)

// External heat source section (per position).
var (
	ExternalHeatSourceTemperature = &Field{
		Section: SectionExternalHeatSource, Name: "temperature",
		Path: paramPrefix + ".extHeatSource[%d].values.actTemp",
		Kind: KindReal,
	}
	ExternalHeatSourceTargetTemperature = &Field{
		Section: SectionExternalHeatSource, Name: "target_temperature",
		Path: paramPrefix + ".extHeatSource[%d].param.setTemp",
		Kind: KindReal, Writable: true,
	}
	ExternalHeatSourceHeatRequest = &Field{
		Section: SectionExternalHeatSource, Name: "heat_request",
		Path: paramPrefix + ".extHeatSource[%d].values.heatRequest",
		Kind: KindInteger,
	}
)

// Switch valve section (per position).
var (
	SwitchValveName = &Field{
		Section: SectionSwitchValve, Name: "name",
		Path: paramPrefix + ".switchValve[%d].param.name",
		Kind: KindText,
	}
	SwitchValvePosition = &Field{
		Section: SectionSwitchValve, Name: "position",
		Path: paramPrefix + ".switchValve[%d].values.position",
		Kind: KindInteger, Enum: SwitchValvePositions,
	}
)

var allFields = []*Field{
	SystemName,
	SystemSerialNumber,
	SystemInfoNumber,
	SystemOutdoorTemperature,
	SystemOperatingMode,
	SystemNumberOfHeatPumps,
	SystemNumberOfHeatCircuits,
	SystemNumberOfSolarCircuits,
	SystemNumberOfBufferTanks,
	SystemNumberOfHotWaterTanks,
	SystemNumberOfExternalHeatSources,
	SystemNumberOfSwitchValves,
	PhotovoltaicState,
	PhotovoltaicExcessPower,
	PhotovoltaicEnable,
	PhotovoltaicThresholdPower,
	BufferTankTopTemperature,
	BufferTankBottomTemperature,
	BufferTankMinTemperature,
	BufferTankMaxTemperature,
	HotWaterTankTemperature,
	HotWaterTankOperatingMode,
	HotWaterTankMinTemperature,
	HotWaterTankMaxTemperature,
	HotWaterTankHeatRequest,
	HeatPumpName,
	HeatPumpState,
	HeatPumpCirculationPump,
	HeatPumpFlowTemperature,
	HeatPumpRefluxTemperature,
	HeatPumpSourceInputTemperature,
	HeatPumpSourceOutputTemperature,
	HeatPumpCompressorInputTemperature,
	HeatPumpCompressorOutputTemperature,
	HeatPumpCompressor,
	HeatPumpHighPressure,
	HeatPumpLowPressure,
	HeatPumpElectricalEnergy,
	HeatPumpThermalEnergy,
	HeatPumpOperatingTime,
	HeatCircuitName,
	HeatCircuitOperatingMode,
	HeatCircuitTemperature,
	HeatCircuitTargetTemperature,
	HeatCircuitTargetTemperatureThreshold,
	HeatCircuitNightTemperature,
	HeatCircuitNightTemperatureThreshold,
	HeatCircuitHolidayTemperature,
	HeatCircuitOffsetTemperature,
	HeatCircuitHeatRequest,
	HeatCircuitExternalCoolRequest,
	HeatCircuitExternalHeatRequest,
	SolarCircuitTemperature,
	SolarCircuitTargetTemperature,
	SolarCircuitHeatRequest,
	ExternalHeatSourceTemperature,
	ExternalHeatSourceTargetTemperature,
	ExternalHeatSourceHeatRequest,
	SwitchValveName,
	SwitchValvePosition,
}

// Catalog returns every known field descriptor in catalog order.
func Catalog() []*Field {
	out := make([]*Field, len(allFields))
	copy(out, allFields)
	return out
}

// SectionFields returns the catalog entries belonging to one section.
func SectionFields(s Section) []*Field {
	var out []*Field
	for _, f := range allFields {
		if f.Section == s {
			out = append(out, f)
		}
	}
	return out
}

// installedCountFields lists the seven "numberOf" descriptors read when a
// caller does not supply device positions, in Positions field order.
var installedCountFields = []*Field{
	SystemNumberOfHeatPumps,
	SystemNumberOfHeatCircuits,
	SystemNumberOfSolarCircuits,
	SystemNumberOfBufferTanks,
	SystemNumberOfHotWaterTanks,
	SystemNumberOfExternalHeatSources,
	SystemNumberOfSwitchValves,
}

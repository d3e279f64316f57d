package keenergy

// Section is a top-level grouping of controller fields. It decides whether a
// field exists once per system (singleton) or once per installed device, and
// it provides the stable tag used as the outer key of grouped readings.
type Section int

const (
	SectionSystem Section = iota
	SectionPhotovoltaic
	SectionBufferTank
	SectionHotWaterTank
	SectionHeatPump
	SectionHeatCircuit
	SectionSolarCircuit
	SectionExternalHeatSource
	SectionSwitchValve
)

// positionNone marks a singleton field: the path template is rendered without
// substituting a device index.
const positionNone = -1

var sectionTags = map[Section]string{
	SectionSystem:             "system",
	SectionPhotovoltaic:       "photovoltaic",
	SectionBufferTank:         "buffer_tank",
	SectionHotWaterTank:       "hot_water_tank",
	SectionHeatPump:           "heat_pump",
	SectionHeatCircuit:        "heat_circuit",
	SectionSolarCircuit:       "solar_circuit",
	SectionExternalHeatSource: "external_heat_source",
	SectionSwitchValve:        "switch_valve",
}

// Tag returns the stable section tag used in grouped readings.
func (s Section) Tag() string { return sectionTags[s] }

// Singleton reports whether the section exists exactly once per system.
func (s Section) Singleton() bool {
	return s == SectionSystem || s == SectionPhotovoltaic
}

// Sections returns every section in grouping order.
func Sections() []Section {
	return []Section{
		SectionSystem,
		SectionPhotovoltaic,
		SectionBufferTank,
		SectionHotWaterTank,
		SectionHeatPump,
		SectionHeatCircuit,
		SectionSolarCircuit,
		SectionExternalHeatSource,
		SectionSwitchValve,
	}
}

// Positions holds the installed device count for every per-position section.
// A Positions value is immutable for the duration of a call.
type Positions struct {
	HeatPump           int
	HeatCircuit        int
	SolarCircuit       int
	BufferTank         int
	HotWaterTank       int
	ExternalHeatSource int
	SwitchValve        int
}

func (p Positions) count(s Section) int {
	switch s {
	case SectionHeatPump:
		return p.HeatPump
	case SectionHeatCircuit:
		return p.HeatCircuit
	case SectionSolarCircuit:
		return p.SolarCircuit
	case SectionBufferTank:
		return p.BufferTank
	case SectionHotWaterTank:
		return p.HotWaterTank
	case SectionExternalHeatSource:
		return p.ExternalHeatSource
	case SectionSwitchValve:
		return p.SwitchValve
	}
	return 0
}

// Selector narrows a request to specific device positions. A nil *Selector
// means "consult the device for the installed counts".
type Selector struct {
	positions *Positions
	list      []int
}

// SelectPositions addresses every installed device per the given counts.
func SelectPositions(p Positions) *Selector {
	return &Selector{positions: &p}
}

// SelectList addresses the given 1-based device positions. Position 0 is a
// legacy alias for position 1 kept for backward compatibility.
func SelectList(positions ...int) *Selector {
	return &Selector{list: positions}
}

// SelectOne addresses a single 1-based device position.
func SelectOne(position int) *Selector {
	return &Selector{list: []int{position}}
}

// resolve maps the selector to 0-based device indices for one section.
// Singleton sections always yield the no-substitution sentinel. A count of
// zero yields an empty slice so the field is dropped from the payload.
func (s *Selector) resolve(sec Section) []int {
	if sec.Singleton() {
		return []int{positionNone}
	}
	if s.positions != nil {
		n := s.positions.count(sec)
		idx := make([]int, 0, n)
		for i := 0; i < n; i++ {
			idx = append(idx, i)
		}
		return idx
	}
	idx := make([]int, 0, len(s.list))
	seen := make(map[int]bool, len(s.list))
	for _, p := range s.list {
		// Position 0 collapses to position 1; duplicates keep their
		// first occurrence.
		i := p - 1
		if i < 0 {
			i = 0
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	return idx
}

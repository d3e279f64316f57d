package keenergy

import (
	"reflect"
	"testing"
)

func TestResolve_Singleton(t *testing.T) {
	sel := SelectPositions(Positions{HeatPump: 3})
	got := sel.resolve(SectionSystem)
	if !reflect.DeepEqual(got, []int{positionNone}) {
		t.Errorf("resolve(system) = %v, want sentinel", got)
	}

	// The sentinel applies regardless of selector shape.
	got = SelectList(2, 3).resolve(SectionPhotovoltaic)
	if !reflect.DeepEqual(got, []int{positionNone}) {
		t.Errorf("resolve(photovoltaic) = %v, want sentinel", got)
	}
}

func TestResolve_PositionRecord(t *testing.T) {
	sel := SelectPositions(Positions{HeatPump: 2, HeatCircuit: 3})

	if got := sel.resolve(SectionHeatPump); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("resolve(heat_pump) = %v, want [0 1]", got)
	}
	if got := sel.resolve(SectionHeatCircuit); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("resolve(heat_circuit) = %v, want [0 1 2]", got)
	}
}

func TestResolve_ZeroCountYieldsEmpty(t *testing.T) {
	sel := SelectPositions(Positions{HeatPump: 2})
	if got := sel.resolve(SectionSolarCircuit); len(got) != 0 {
		t.Errorf("resolve(solar_circuit) = %v, want empty", got)
	}
}

func TestResolve_List(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		want      []int
	}{
		{"simple", []int{1, 3}, []int{0, 2}},
		{"zero collapses to first position", []int{0, 1, 3}, []int{0, 2}},
		{"duplicates keep first occurrence", []int{2, 2, 1}, []int{1, 0}},
		{"single", []int{2}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectList(tt.positions...).resolve(SectionHeatCircuit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resolve(%v) = %v, want %v", tt.positions, got, tt.want)
			}
		})
	}
}

func TestSectionTags(t *testing.T) {
	want := map[Section]string{
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
	for s, tag := range want {
		if s.Tag() != tag {
			t.Errorf("Tag(%d) = %q, want %q", s, s.Tag(), tag)
		}
	}
	if len(Sections()) != len(want) {
		t.Errorf("Sections() has %d entries, want %d", len(Sections()), len(want))
	}
}

func TestSingletonSections(t *testing.T) {
	for _, s := range Sections() {
		singleton := s == SectionSystem || s == SectionPhotovoltaic
		if s.Singleton() != singleton {
			t.Errorf("Singleton(%s) = %v, want %v", s.Tag(), s.Singleton(), singleton)
		}
	}
}

package keenergy

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum binds controller integers to symbolic names. The member order is the
// declaration order and is preserved in error messages.
type Enum struct {
	name    string
	members []enumMember
	byValue map[int]string
	byName  map[string]int
}

type enumMember struct {
	name  string
	value int
}

func newEnum(name string, members ...enumMember) *Enum {
	e := &Enum{
		name:    name,
		members: members,
		byValue: make(map[int]string, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for _, m := range members {
		e.byValue[m.value] = m.name
		e.byName[m.name] = m.value
	}
	return e
}

// Name returns the enumeration's name.
func (e *Enum) Name() string { return e.name }

// Names lists every symbolic name in declaration order.
func (e *Enum) Names() []string {
	out := make([]string, 0, len(e.members))
	for _, m := range e.members {
		out = append(out, m.name)
	}
	return out
}

// NameOf returns the symbolic name for a controller integer.
func (e *Enum) NameOf(value int) (string, bool) {
	n, ok := e.byValue[value]
	return n, ok
}

// ValueOf returns the controller integer for a symbolic name. The lookup is
// case-insensitive.
func (e *Enum) ValueOf(name string) (int, bool) {
	v, ok := e.byName[strings.ToUpper(name)]
	return v, ok
}

// Allowed lists every symbolic name interleaved with its integer value, in
// declaration order. It is used verbatim in validation errors.
func (e *Enum) Allowed() []string {
	out := make([]string, 0, 2*len(e.members))
	for _, m := range e.members {
		out = append(out, m.name, strconv.Itoa(m.value))
	}
	return out
}

func (e *Enum) invalidValue(v any) *ValidationError {
	quoted := make([]string, 0, 2*len(e.members))
	for _, s := range e.Allowed() {
		quoted = append(quoted, "'"+s+"'")
	}
	return &ValidationError{
		Message: fmt.Sprintf("Invalid value! Allowed values are [%s], got %v", strings.Join(quoted, ", "), v),
	}
}

// Enumerations carried by the catalog. The value sets are normative; user
// visible errors list them verbatim.
var (
	SystemOperatingModes = newEnum("system operating mode",
		enumMember{"SETUP", -1},
		enumMember{"STANDBY", 0},
		enumMember{"SUMMER", 1},
		enumMember{"AUTO_HEAT", 2},
		enumMember{"AUTO_COOL", 3},
		enumMember{"AUTO", 4},
	)

	HotWaterTankOperatingModes = newEnum("hot water tank operating mode",
		enumMember{"OFF", 0},
		enumMember{"AUTO", 1},
		enumMember{"ON", 2},
		enumMember{"HEAT_UP", 3},
	)

	HeatPumpStates = newEnum("heat pump state",
		enumMember{"STANDBY", 0},
		enumMember{"FLOW", 1},
		enumMember{"AUTO_HEAT", 2},
		enumMember{"DEFROST", 3},
		enumMember{"AUTO_COOL", 4},
		enumMember{"INFLOW", 5},
		enumMember{"PUMP_DOWN", 6},
		enumMember{"SHUTDOWN", 7},
		enumMember{"ERROR", 8},
	)

	HeatCircuitOperatingModes = newEnum("heat circuit operating mode",
		enumMember{"OFF", 0},
		enumMember{"AUTO", 1},
		enumMember{"DAY", 2},
		enumMember{"NIGHT", 3},
		enumMember{"HOLIDAY", 4},
		enumMember{"PARTY", 5},
		enumMember{"EXTERNAL", 8},
		enumMember{"ROOM_CONTROL", 9},
	)

	SwitchValvePositions = newEnum("switch valve position",
		enumMember{"NEUTRAL", 0},
		enumMember{"OPEN", 1},
		enumMember{"CLOSED", 2},
	)

	PhotovoltaicStates = newEnum("photovoltaic state",
		enumMember{"OFF", 0},
		enumMember{"ON", 1},
	)
)

package keenergy

import (
	"errors"
	"strings"
	"testing"
)

func TestCoerceValue_Real(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"10.808357", 10.81},
		{"-2.345", -2.35},
		{"0", 0},
		{"21", 21},
	}

	for _, tt := range tests {
		got, err := coerceValue(SystemOutdoorTemperature, tt.raw, false)
		if err != nil {
			t.Fatalf("coerceValue(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("coerceValue(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCoerceValue_Integer(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2", 2},
		{"-1", -1},
		{"true", 1},
		{"false", 0},
		{"3.000000", 3},
	}

	for _, tt := range tests {
		got, err := coerceValue(SystemSerialNumber, tt.raw, false)
		if err != nil {
			t.Fatalf("coerceValue(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("coerceValue(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCoerceValue_Text(t *testing.T) {
	got, err := coerceValue(HeatPumpName, "WPS 26", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WPS 26" {
		t.Errorf("got %v, want WPS 26", got)
	}

	// Boolean text literals land in the integer domain.
	got, err = coerceValue(HeatPumpName, "true", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestCoerceValue_HumanReadable(t *testing.T) {
	got, err := coerceValue(SystemOperatingMode, "2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "auto_heat" {
		t.Errorf("got %v, want auto_heat", got)
	}

	got, err = coerceValue(SystemOperatingMode, "-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "setup" {
		t.Errorf("got %v, want setup", got)
	}
}

func TestCoerceValue_HumanReadableOutOfRange(t *testing.T) {
	_, err := coerceValue(SystemOperatingMode, "99", true)
	if err == nil {
		t.Fatal("expected error for value outside enumeration")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestFilterAttributes(t *testing.T) {
	got := filterAttributes(map[string]string{
		"lowerLimit":    "-100",
		"upperLimit":    "100",
		"unitId":        "Temp",
		"longText":      "Outdoor temp.",
		"formatId":      "fmtTemp",
		"dynLowerLimit": "1",
		"dynUpperLimit": "1",
	})

	want := map[string]string{
		"lower_limit": "-100",
		"upper_limit": "100",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d attributes %v, want %d", len(got), got, len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attribute %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lowerLimit", "lower_limit"},
		{"upperLimit", "upper_limit"},
		{"unit", "unit"},
		{"dynLowerLimit", "dyn_lower_limit"},
	}

	for _, tt := range tests {
		if got := camelToSnake(tt.in); got != tt.want {
			t.Errorf("camelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatWriteValue_Enum(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"AUTO_HEAT", "2"},
		{"auto_heat", "2"},
		{"SETUP", "-1"},
		{2, "2"},
	}

	for _, tt := range tests {
		got, err := formatWriteValue(SystemOperatingMode, tt.value)
		if err != nil {
			t.Fatalf("formatWriteValue(%v) error = %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("formatWriteValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatWriteValue_InvalidSymbol(t *testing.T) {
	_, err := formatWriteValue(SystemOperatingMode, "INVALID")
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}

	// The message interleaves every symbol with its integer value.
	want := "['SETUP', '-1', 'STANDBY', '0', 'SUMMER', '1', 'AUTO_HEAT', '2', 'AUTO_COOL', '3', 'AUTO', '4']"
	if !strings.Contains(verr.Message, want) {
		t.Errorf("message %q does not list %q", verr.Message, want)
	}
	if !strings.HasPrefix(verr.Message, "Invalid value! Allowed values are") {
		t.Errorf("unexpected message prefix: %q", verr.Message)
	}
}

func TestFormatWriteValue_Scalars(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{22.5, "22.5"},
		{21, "21"},
		{true, "1"},
		{false, "0"},
		{"WPS 26", "WPS 26"},
	}

	for _, tt := range tests {
		got, err := formatWriteValue(HeatCircuitTargetTemperature, tt.value)
		if err != nil {
			t.Fatalf("formatWriteValue(%v) error = %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("formatWriteValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestEnumRoundTrip(t *testing.T) {
	// Writing a symbol and decoding the written integer in human readable
	// mode yields the same lower-cased symbol.
	for _, enum := range []*Enum{
		SystemOperatingModes,
		HotWaterTankOperatingModes,
		HeatPumpStates,
		HeatCircuitOperatingModes,
		SwitchValvePositions,
	} {
		for _, m := range enum.members {
			v, ok := enum.ValueOf(strings.ToLower(m.name))
			if !ok {
				t.Fatalf("%s: ValueOf(%q) not found", enum.Name(), m.name)
			}
			name, ok := enum.NameOf(v)
			if !ok || name != m.name {
				t.Errorf("%s: NameOf(%d) = %q, want %q", enum.Name(), v, name, m.name)
			}
		}
	}
}

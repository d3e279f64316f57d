package collector

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"keenergy_api/keenergy"
)

// controllerValues is a complete variable table for a system with one heat
// pump and one heat circuit.
var controllerValues = map[string]string{
	"APPL.CtrlAppl.sParam.options.systemNumberOfHeatPumps":       "1",
	"APPL.CtrlAppl.sParam.options.systemNumberOfHeatingCircuits": "1",
	"APPL.CtrlAppl.sParam.options.systemNumberOfSolarCircuits":   "0",
	"APPL.CtrlAppl.sParam.options.systemNumberOfBufferTanks":     "0",
	"APPL.CtrlAppl.sParam.options.systemNumberOfHotWaterTanks":   "0",
	"APPL.CtrlAppl.sParam.options.systemNumberOfExtHeatSources":  "0",
	"APPL.CtrlAppl.sParam.options.systemNumberOfSwitchValves":    "0",

	"APPL.CtrlAppl.sParam.outdoorTemp.values.actValue": "10.808357",
	"APPL.CtrlAppl.sParam.param.operatingMode":         "2",

	"APPL.CtrlAppl.sParam.photovoltaics.values.state":       "1",
	"APPL.CtrlAppl.sParam.photovoltaics.values.excessPower": "1250.5",

	"APPL.CtrlAppl.sParam.heatpump[0].values.heatpumpState":           "3",
	"APPL.CtrlAppl.sParam.heatpump[0].CircPump.values.setValueScaled": "0.5",
	"APPL.CtrlAppl.sParam.heatpump[0].Compressor.values.setValueScaled": "0.8",
	"APPL.CtrlAppl.sParam.heatpump[0].TempHeatFlow.values.actValue":     "35.2",
	"APPL.CtrlAppl.sParam.heatpump[0].TempHeatReflux.values.actValue":   "30.1",
	"APPL.CtrlAppl.sParam.heatpump[0].TempSourceIn.values.actValue":     "8.4",
	"APPL.CtrlAppl.sParam.heatpump[0].TempSourceOut.values.actValue":    "5.2",
	"APPL.CtrlAppl.sParam.heatpump[0].HighPressure.values.actValue":     "18.3",
	"APPL.CtrlAppl.sParam.heatpump[0].LowPressure.values.actValue":      "4.1",
	"APPL.CtrlAppl.sStatisticalData.heatpump[0].values.electricalEnergy": "1532.7",
	"APPL.CtrlAppl.sStatisticalData.heatpump[0].values.thermalEnergy":    "6320.4",
	"APPL.CtrlAppl.sStatisticalData.heatpump[0].values.operatingTime":    "86400",

	"APPL.CtrlAppl.sParam.heatCircuit[0].values.setValue":      "34.5",
	"APPL.CtrlAppl.sParam.heatCircuit[0].param.normalSetTemp":  "22",
	"APPL.CtrlAppl.sParam.heatCircuit[0].param.operatingMode":  "1",
	"APPL.CtrlAppl.sParam.heatCircuit[0].values.heatRequest":   "true",
}

func testCollector(t *testing.T) *KeenergyCollector {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var vars []struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&vars); err != nil {
			t.Errorf("decode request: %v", err)
		}
		type record struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		}
		out := make([]record, 0, len(vars))
		for _, v := range vars {
			value, ok := controllerValues[v.Name]
			if !ok {
				t.Errorf("unexpected variable %q requested", v.Name)
			}
			out = append(out, record{Name: v.Name, Value: value})
		}
		json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(server.Close)

	client := keenergy.NewClient(server.URL, keenergy.WithLogger(slog.Default()))
	return NewKeenergyCollector(client, 10*time.Second, slog.Default())
}

func gather(t *testing.T, c *KeenergyCollector) map[string]*dto.MetricFamily {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("register collector: %v", err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, fam := range families {
		out[fam.GetName()] = fam
	}
	return out
}

func metricValue(fam *dto.MetricFamily, wantLabels map[string]string) (float64, bool) {
	for _, m := range fam.GetMetric() {
		labels := make(map[string]string)
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		match := true
		for k, v := range wantLabels {
			if labels[k] != v {
				match = false
				break
			}
		}
		if match {
			if m.GetGauge() != nil {
				return m.GetGauge().GetValue(), true
			}
			return m.GetCounter().GetValue(), true
		}
	}
	return 0, false
}

func TestCollect(t *testing.T) {
	families := gather(t, testCollector(t))

	if v, ok := metricValue(families["keenergy_outdoor_temperature_celsius"], nil); !ok || v != 10.81 {
		t.Errorf("outdoor temperature = %v (%v), want 10.81", v, ok)
	}

	if v, ok := metricValue(families["keenergy_installed_devices"], map[string]string{"device": "heat_pump"}); !ok || v != 1 {
		t.Errorf("installed heat pumps = %v (%v), want 1", v, ok)
	}
	if v, ok := metricValue(families["keenergy_installed_devices"], map[string]string{"device": "solar_circuit"}); !ok || v != 0 {
		t.Errorf("installed solar circuits = %v (%v), want 0", v, ok)
	}

	if v, ok := metricValue(families["keenergy_heat_pump_flow_temperature_celsius"], map[string]string{"position": "1"}); !ok || v != 35.2 {
		t.Errorf("flow temperature = %v (%v), want 35.2", v, ok)
	}
	if v, ok := metricValue(families["keenergy_heat_pump_operating_time_seconds"], map[string]string{"position": "1"}); !ok || v != 86400 {
		t.Errorf("operating time = %v (%v), want 86400", v, ok)
	}

	if v, ok := metricValue(families["keenergy_heat_circuit_heat_request"], map[string]string{"position": "1"}); !ok || v != 1 {
		t.Errorf("heat request = %v (%v), want 1", v, ok)
	}
}

func TestCollect_OperatingModeOneHot(t *testing.T) {
	families := gather(t, testCollector(t))

	fam := families["keenergy_system_operating_mode"]
	if fam == nil {
		t.Fatal("operating mode family missing")
	}
	if got := len(fam.GetMetric()); got != 6 {
		t.Fatalf("got %d mode series, want 6", got)
	}
	if v, ok := metricValue(fam, map[string]string{"mode": "auto_heat"}); !ok || v != 1 {
		t.Errorf("auto_heat = %v (%v), want 1", v, ok)
	}
	if v, ok := metricValue(fam, map[string]string{"mode": "standby"}); !ok || v != 0 {
		t.Errorf("standby = %v (%v), want 0", v, ok)
	}
}

func TestCollect_HeatPumpStateOneHot(t *testing.T) {
	families := gather(t, testCollector(t))

	fam := families["keenergy_heat_pump_state"]
	if fam == nil {
		t.Fatal("heat pump state family missing")
	}
	if v, ok := metricValue(fam, map[string]string{"position": "1", "state": "defrost"}); !ok || v != 1 {
		t.Errorf("defrost = %v (%v), want 1", v, ok)
	}
	if v, ok := metricValue(fam, map[string]string{"position": "1", "state": "standby"}); !ok || v != 0 {
		t.Errorf("standby = %v (%v), want 0", v, ok)
	}
}

func TestCollect_ControllerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := keenergy.NewClient(server.URL)
	c := NewKeenergyCollector(client, 5*time.Second, slog.Default())
	families := gather(t, c)

	fam := families["keenergy_scrape_errors_total"]
	if fam == nil {
		t.Fatal("scrape errors family missing")
	}
	if v, ok := metricValue(fam, nil); !ok || v != 1 {
		t.Errorf("scrape errors = %v (%v), want 1", v, ok)
	}
	if _, ok := families["keenergy_outdoor_temperature_celsius"]; ok {
		t.Error("no controller metrics expected when the controller is down")
	}
}

package keenergy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// curveController serves a fixed pool of heating curve tables. Pool slot 0
// holds a seven point curve, every other roster slot a minimal two point one.
func curveController(t *testing.T) http.HandlerFunc {
	t.Helper()
	names := map[int]string{
		0: "HC1", 1: "HC2", 2: "HC3", 3: "HC4", 4: "HC5",
		5: "HC6", 6: "HC7", 7: "HC8", 12: "HC FBH", 13: "HC HK",
	}
	return func(w http.ResponseWriter, r *http.Request) {
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
			var pool int
			var leaf string
			if _, err := fmt.Sscanf(v.Name, "APPL.CtrlAppl.sParam.linTabPool[%d].%s", &pool, &leaf); err != nil {
				t.Errorf("unexpected variable %q", v.Name)
				continue
			}
			rec := record{Name: v.Name}
			switch {
			case leaf == "name":
				rec.Value = names[pool]
			case leaf == "noOfPoints":
				if pool == 0 {
					rec.Value = "7"
				} else {
					rec.Value = "2"
				}
			case strings.HasPrefix(leaf, "xVal["):
				j, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(leaf, "xVal["), "]"))
				rec.Value = strconv.Itoa(-20 + 5*j)
			case strings.HasPrefix(leaf, "yVal["):
				j, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(leaf, "yVal["), "]"))
				rec.Value = strconv.FormatFloat(65-4.5*float64(j), 'f', -1, 64)
			default:
				t.Errorf("unexpected leaf %q", leaf)
			}
			out = append(out, rec)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

func TestHeatingCurves(t *testing.T) {
	c := testClient(t, curveController(t))

	curves, err := c.HeatingCurves(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curves) != 10 {
		t.Fatalf("got %d curves, want 10", len(curves))
	}
	for _, key := range []string{"hc1", "hc8", "hc fbh", "hc hk"} {
		if _, ok := curves[key]; !ok {
			t.Errorf("curve %q missing", key)
		}
	}

	hc1 := curves["hc1"]
	if len(hc1) != 7 {
		t.Fatalf("hc1 has %d points, want 7", len(hc1))
	}
	if hc1[0] != (CurvePoint{OutdoorTemperature: -20, FlowTemperature: 65}) {
		t.Errorf("hc1[0] = %+v", hc1[0])
	}
	if hc1[6] != (CurvePoint{OutdoorTemperature: 10, FlowTemperature: 38}) {
		t.Errorf("hc1[6] = %+v", hc1[6])
	}
	if len(curves["hc2"]) != 2 {
		t.Errorf("hc2 has %d points, want 2", len(curves["hc2"]))
	}
}

func TestHeatingCurve_CaseInsensitiveName(t *testing.T) {
	c := testClient(t, curveController(t))

	points, err := c.HeatingCurve(context.Background(), "Hc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 7 {
		t.Errorf("got %d points, want 7", len(points))
	}
}

func TestHeatingCurve_NotFound(t *testing.T) {
	c := testClient(t, curveController(t))

	_, err := c.HeatingCurve(context.Background(), "HC10")
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if aerr.Message != `Heating curve "HC10" not found` {
		t.Errorf("message = %q", aerr.Message)
	}
}

func TestWriteHeatingCurve(t *testing.T) {
	var rc recordingController
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery == "" {
			// Name verification read.
			rc.queries = append(rc.queries, "")
			rc.bodies = append(rc.bodies, nil)
			fmt.Fprint(w, `[{"name":"APPL.CtrlAppl.sParam.linTabPool[1].name","value":"HC2"}]`)
			return
		}
		rc.handler(t)(w, r)
	}
	c := testClient(t, handler)

	points := []CurvePoint{{-20, 65}, {0, 44}, {20, 22}}
	if err := c.WriteHeatingCurve(context.Background(), "hc2", points); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"", "action=set", "action=set"}
	if !reflect.DeepEqual(rc.queries, want) {
		t.Fatalf("request sequence = %v, want %v", rc.queries, want)
	}

	body := rc.bodies[1]
	if len(body) != 34 {
		t.Fatalf("write body has %d entries, want 34", len(body))
	}
	if body[0]["name"] != "APPL.CtrlAppl.sParam.linTabPool[1].noOfPoints" || body[0]["value"] != "3" {
		t.Errorf("point count entry = %v", body[0])
	}
	if body[1]["name"] != "APPL.CtrlAppl.sParam.linTabPool[1].xVal[0]" || body[1]["value"] != "-20" {
		t.Errorf("first x entry = %v", body[1])
	}
	if body[2]["value"] != "65" {
		t.Errorf("first y entry = %v", body[2])
	}
	// Unused table slots are zero-padded.
	if body[7]["name"] != "APPL.CtrlAppl.sParam.linTabPool[1].xVal[3]" || body[7]["value"] != "0" {
		t.Errorf("padding entry = %v", body[7])
	}
	last := body[len(body)-1]
	if last["name"] != "APPL.CtrlAppl.sParam.linTabPoolSave" || last["value"] != "192" {
		t.Errorf("commit entry = %v", last)
	}

	commit := rc.bodies[2]
	if len(commit) != 1 || commit[0]["name"] != "APPL.CtrlAppl.sParam.linTabPoolSave" || commit[0]["value"] != "192" {
		t.Errorf("second commit = %v", commit)
	}
}

func TestWriteHeatingCurve_UnknownName(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	err := c.WriteHeatingCurve(context.Background(), "HC10", nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !strings.Contains(verr.Message, "'HC1'") || !strings.Contains(verr.Message, "'HC HK'") {
		t.Errorf("message does not list the roster: %q", verr.Message)
	}
}

func TestWriteHeatingCurve_TooManyPoints(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	points := make([]CurvePoint, heatingCurveMaxPoints+1)
	err := c.WriteHeatingCurve(context.Background(), "HC1", points)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestWriteHeatingCurve_StoredNameMismatch(t *testing.T) {
	writes := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			writes++
		}
		fmt.Fprint(w, `[{"name":"APPL.CtrlAppl.sParam.linTabPool[0].name","value":"HC2"}]`)
	})

	err := c.WriteHeatingCurve(context.Background(), "HC1", []CurvePoint{{0, 30}, {10, 25}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if writes != 0 {
		t.Errorf("%d writes were issued despite the mismatch", writes)
	}
}

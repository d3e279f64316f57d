package keenergy

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// CurvePoint is one (outdoor temperature, flow temperature) pair of a heating
// curve table.
type CurvePoint struct {
	OutdoorTemperature float64
	FlowTemperature    float64
}

// The controller keeps heating curves in a shared pool of linear tables. The
// caller-facing names map onto non-contiguous pool indices.
var heatingCurveRoster = []struct {
	name string
	pool int
}{
	{"HC1", 0},
	{"HC2", 1},
	{"HC3", 2},
	{"HC4", 3},
	{"HC5", 4},
	{"HC6", 5},
	{"HC7", 6},
	{"HC8", 7},
	{"HC FBH", 12},
	{"HC HK", 13},
}

const (
	heatingCurveMaxPoints = 16
	heatingCurveMinPoints = 2

	// Writing this value to the save path makes a curve edit durable.
	heatingCurveCommitValue = "192"
	heatingCurveCommitPath  = paramPrefix + ".linTabPoolSave"
)

func curvePath(pool int, leaf string) string {
	return fmt.Sprintf("%s.linTabPool[%d].%s", paramPrefix, pool, leaf)
}

// curveReadEntries emits the 34 read entries of one pool table: name, point
// count, then all 16 (x, y) pairs.
func curveReadEntries(pool int) []readVar {
	out := make([]readVar, 0, 2+2*heatingCurveMaxPoints)
	out = append(out,
		readVar{Name: curvePath(pool, "name"), Attr: "0"},
		readVar{Name: curvePath(pool, "noOfPoints"), Attr: "0"},
	)
	for j := 0; j < heatingCurveMaxPoints; j++ {
		out = append(out,
			readVar{Name: curvePath(pool, fmt.Sprintf("xVal[%d]", j)), Attr: "0"},
			readVar{Name: curvePath(pool, fmt.Sprintf("yVal[%d]", j)), Attr: "0"},
		)
	}
	return out
}

// HeatingCurves reads every pool table and returns the curves whose stored
// name belongs to the known roster, keyed by lower-cased name. Tables with
// unrecognised names are skipped.
func (c *Client) HeatingCurves(ctx context.Context) (map[string][]CurvePoint, error) {
	return c.readHeatingCurves(ctx)
}

// HeatingCurve reads one named curve.
func (c *Client) HeatingCurve(ctx context.Context, name string) ([]CurvePoint, error) {
	curves, err := c.readHeatingCurves(ctx)
	if err != nil {
		return nil, err
	}
	points, ok := curves[strings.ToLower(name)]
	if !ok {
		return nil, &APIError{Message: fmt.Sprintf("Heating curve %q not found", name)}
	}
	return points, nil
}

func (c *Client) readHeatingCurves(ctx context.Context) (map[string][]CurvePoint, error) {
	var payload []readVar
	for _, entry := range heatingCurveRoster {
		payload = append(payload, curveReadEntries(entry.pool)...)
	}

	records, err := c.postVars(ctx, endpointRead, payload)
	if err != nil {
		return nil, err
	}
	perTable := 2 + 2*heatingCurveMaxPoints
	if len(records) != len(heatingCurveRoster)*perTable {
		return nil, &APIError{
			Message: fmt.Sprintf("expected %d heating curve records, got %d", len(heatingCurveRoster)*perTable, len(records)),
		}
	}

	out := make(map[string][]CurvePoint)
	for t := range heatingCurveRoster {
		table := records[t*perTable : (t+1)*perTable]
		name := table[0].Value.String()
		if !rosterMember(name) {
			continue
		}
		count, err := parseWireInt(table[1].Value.String())
		if err != nil {
			return nil, &APIError{Message: fmt.Sprintf("heating curve %q: %v", name, err)}
		}
		if count < 0 {
			count = 0
		}
		if count > heatingCurveMaxPoints {
			count = heatingCurveMaxPoints
		}
		points := make([]CurvePoint, 0, count)
		for j := 0; j < count; j++ {
			x, err := strconv.ParseFloat(table[2+2*j].Value.String(), 64)
			if err != nil {
				return nil, &APIError{Message: fmt.Sprintf("heating curve %q point %d: %v", name, j, err)}
			}
			y, err := strconv.ParseFloat(table[3+2*j].Value.String(), 64)
			if err != nil {
				return nil, &APIError{Message: fmt.Sprintf("heating curve %q point %d: %v", name, j, err)}
			}
			points = append(points, CurvePoint{OutdoorTemperature: x, FlowTemperature: y})
		}
		out[strings.ToLower(name)] = points
	}
	return out, nil
}

func rosterMember(name string) bool {
	for _, entry := range heatingCurveRoster {
		if entry.name == name {
			return true
		}
	}
	return false
}

// WriteHeatingCurve replaces the named curve. The stored table name is read
// and verified before anything is written; the commit marker making the edit
// durable is written once inside the main payload and once more afterwards,
// matching the controller's observed commit sequence.
func (c *Client) WriteHeatingCurve(ctx context.Context, name string, points []CurvePoint) error {
	canonical, pool, ok := rosterLookup(name)
	if !ok {
		names := make([]string, 0, len(heatingCurveRoster))
		for _, entry := range heatingCurveRoster {
			names = append(names, "'"+entry.name+"'")
		}
		return &ValidationError{
			Message: fmt.Sprintf("Invalid heating curve name! Allowed names are [%s]", strings.Join(names, ", ")),
		}
	}
	if len(points) > heatingCurveMaxPoints {
		return &ValidationError{
			Message: fmt.Sprintf("heating curve takes at most %d points, got %d", heatingCurveMaxPoints, len(points)),
		}
	}

	records, err := c.postVars(ctx, endpointRead, []readVar{{Name: curvePath(pool, "name"), Attr: "0"}})
	if err != nil {
		return err
	}
	if len(records) != 1 {
		return &APIError{Message: fmt.Sprintf("expected 1 record for heating curve name, got %d", len(records))}
	}
	if stored := records[0].Value.String(); stored != canonical {
		return &ValidationError{
			Message: fmt.Sprintf("heating curve %q is stored as %q at pool index %d", canonical, stored, pool),
		}
	}

	count := len(points)
	if count == 0 {
		count = heatingCurveMinPoints
	}
	payload := make([]writeVar, 0, 2+2*heatingCurveMaxPoints)
	payload = append(payload, writeVar{Name: curvePath(pool, "noOfPoints"), Value: strconv.Itoa(count)})
	for j := 0; j < heatingCurveMaxPoints; j++ {
		var p CurvePoint
		if j < len(points) {
			p = points[j]
		}
		payload = append(payload,
			writeVar{Name: curvePath(pool, fmt.Sprintf("xVal[%d]", j)), Value: strconv.FormatFloat(p.OutdoorTemperature, 'f', -1, 64)},
			writeVar{Name: curvePath(pool, fmt.Sprintf("yVal[%d]", j)), Value: strconv.FormatFloat(p.FlowTemperature, 'f', -1, 64)},
		)
	}
	payload = append(payload, writeVar{Name: heatingCurveCommitPath, Value: heatingCurveCommitValue})

	if _, err := c.postVars(ctx, endpointWrite, payload); err != nil {
		return err
	}

	// The firmware wants the save marker repeated after the table write.
	_, err = c.postVars(ctx, endpointWrite, []writeVar{{Name: heatingCurveCommitPath, Value: heatingCurveCommitValue}})
	return err
}

func rosterLookup(name string) (canonical string, pool int, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, entry := range heatingCurveRoster {
		if entry.name == upper {
			return entry.name, entry.pool, true
		}
	}
	return "", 0, false
}

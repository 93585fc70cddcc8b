package solvers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/solventlabs/solvent/interval"
	"github.com/solventlabs/solvent/parallel"
	"github.com/solventlabs/solvent/parsec"
)

// Day 15: sensors reporting their nearest beacon, one per line
// ("Sensor at x=2, y=18: closest beacon is at x=-2, y=15"). Each
// sensor excludes a diamond of Manhattan radius |sensor-beacon|.
// Part 1 counts excluded positions on one row; part 2 finds the single
// uncovered point in a bounded square and reports x*4000000+y.

const (
	beaconTargetRow    = 2_000_000
	beaconSearchBound  = 4_000_000
	tuningFreqMultiple = 4_000_000
)

type sensorReading struct {
	sensorX, sensorY int64
	beaconX, beaconY int64
}

// radius is the sensor's Manhattan reach.
func (r sensorReading) radius() int64 {
	return absInt64(r.sensorX-r.beaconX) + absInt64(r.sensorY-r.beaconY)
}

// rowSlice returns the interval of columns the sensor excludes on row
// y, or ok=false when the row is outside its reach.
func (r sensorReading) rowSlice(y int64) (interval.Interval, bool) {
	half := r.radius() - absInt64(r.sensorY-y)
	if half < 0 {
		return interval.Interval{}, false
	}
	return interval.Interval{Start: r.sensorX - half, End: r.sensorX + half}, true
}

// readingRule matches one sensor line.
func readingRule(s parsec.State) (sensorReading, parsec.State, error) {
	coord := parsec.SeparatedPair(
		parsec.Preceded(parsec.Tag("x="), parsec.Rule[int64](parsec.Int64)),
		parsec.Tag(", "),
		parsec.Preceded(parsec.Tag("y="), parsec.Rule[int64](parsec.Int64)),
	)
	return parsec.Map(
		parsec.SeparatedPair(
			parsec.Preceded(parsec.Tag("Sensor at "), coord),
			parsec.Tag(": closest beacon is at "),
			coord,
		),
		func(p parsec.Pair[parsec.Pair[int64, int64], parsec.Pair[int64, int64]]) sensorReading {
			return sensorReading{
				sensorX: p.First.First, sensorY: p.First.Second,
				beaconX: p.Second.First, beaconY: p.Second.Second,
			}
		},
	)(s)
}

func parseReadings(input string) ([]sensorReading, error) {
	rule := parsec.Terminated(
		parsec.Lines(parsec.Rule[sensorReading](readingRule)),
		parsec.Opt(parsec.Rule[string](parsec.Newline)),
	)
	return parsec.ParseAll(rule, input)
}

// beaconRowCoverage counts the positions on row y where no undetected
// beacon can sit: merged sensor coverage minus known beacons on the row.
func beaconRowCoverage(input string, y int64) (int64, error) {
	readings, err := parseReadings(input)
	if err != nil {
		return 0, fmt.Errorf("beacon: %w", err)
	}

	var slices []interval.Interval
	for _, r := range readings {
		if iv, ok := r.rowSlice(y); ok {
			slices = append(slices, iv)
		}
	}
	covered := interval.Merge(slices)

	// Known beacons on the row sit inside their own sensor's diamond;
	// deduplicate since several sensors may share a beacon.
	onRow := map[int64]struct{}{}
	for _, r := range readings {
		if r.beaconY == y && covered.Covers(r.beaconX) {
			onRow[r.beaconX] = struct{}{}
		}
	}
	return covered.Count() - int64(len(onRow)), nil
}

// beaconTuningFrequency locates the single point in [0,bound]² not
// covered by any sensor, scanning rows in parallel, and returns
// x*4000000 + y.
func beaconTuningFrequency(ctx context.Context, input string, bound int64) (int64, error) {
	readings, err := parseReadings(input)
	if err != nil {
		return 0, fmt.Errorf("beacon: %w", err)
	}

	rows := make([]int64, bound+1)
	for i := range rows {
		rows[i] = int64(i)
	}
	box := interval.Interval{Start: 0, End: bound}

	freq, err := parallel.FirstMatch(ctx, rows, 0,
		func(_ context.Context, y int64) (int64, bool, error) {
			var slices []interval.Interval
			for _, r := range readings {
				if iv, ok := r.rowSlice(y); ok {
					slices = append(slices, iv)
				}
			}
			x, ok := interval.Merge(slices).Clamp(box).FirstGap(box)
			if !ok {
				return 0, false, nil
			}
			return x*tuningFreqMultiple + y, true, nil
		})
	if err != nil {
		return 0, fmt.Errorf("beacon: %w", err)
	}
	return freq, nil
}

func solveBeaconRow(input string) (string, error) {
	n, err := beaconRowCoverage(input, beaconTargetRow)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func solveBeaconTuning(input string) (string, error) {
	freq, err := beaconTuningFrequency(context.Background(), input, beaconSearchBound)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(freq, 10), nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

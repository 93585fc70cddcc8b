package solvers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventlabs/solvent/parallel"
)

const beaconSample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3`

// The registered solvers target the full-size row and search bound, so
// the sample assertions exercise the parameterized internals directly.

func TestBeaconRowCoverage_Sample(t *testing.T) {
	n, err := beaconRowCoverage(beaconSample, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(26), n)
}

func TestBeaconTuningFrequency_Sample(t *testing.T) {
	freq, err := beaconTuningFrequency(context.Background(), beaconSample, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(56000011), freq)
}

func TestBeaconTuningFrequency_FullyCovered(t *testing.T) {
	// One huge sensor blankets the whole box: no free point exists.
	input := "Sensor at x=10, y=10: closest beacon is at x=10, y=90"
	_, err := beaconTuningFrequency(context.Background(), input, 20)
	assert.ErrorIs(t, err, parallel.ErrNoMatch)
}

func TestSensorReading_RowSlice(t *testing.T) {
	r := sensorReading{sensorX: 8, sensorY: 7, beaconX: 2, beaconY: 10}
	require.EqualValues(t, 9, r.radius())

	iv, ok := r.rowSlice(10)
	require.True(t, ok)
	assert.EqualValues(t, 2, iv.Start)
	assert.EqualValues(t, 14, iv.End)

	_, ok = r.rowSlice(17)
	assert.False(t, ok, "row beyond the diamond")

	iv, ok = r.rowSlice(-2)
	require.True(t, ok, "radius reaches exactly this far")
	assert.Equal(t, iv.Start, iv.End)
}

func TestBeacon_Malformed(t *testing.T) {
	_, err := beaconRowCoverage("Sensor at x=1: lost", 0)
	assert.Error(t, err)
}

package fault_test

import (
	"testing"

	"github.com/bjaus/fault"
	"github.com/stretchr/testify/require"
)

func TestProbability_FixedOutcomes(t *testing.T) {
	tests := map[string]struct {
		p    float64
		want bool
	}{
		"zero never fires":           {p: 0.0, want: false},
		"one always fires":           {p: 1.0, want: true},
		"negative clamps to never":   {p: -0.5, want: false},
		"above one clamps to always": {p: 1.5, want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := fault.Probability[int](tc.p)
			for i := range 10_000 {
				require.Equal(t, tc.want, d.Decide(i))
			}
		})
	}
}

func TestProbability_TriggerRateApproximatesP(t *testing.T) {
	const (
		p         = 0.5
		trials    = 20_000
		tolerance = 0.02
	)

	d := fault.Probability[int](p)

	fired := 0
	for i := range trials {
		if d.Decide(i) {
			fired++
		}
	}

	rate := float64(fired) / trials
	require.InDelta(t, p, rate, tolerance, "trigger rate %f out of tolerance", rate)
}

func TestDeciderFunc_SeesRequest(t *testing.T) {
	d := fault.DeciderFunc[int](func(req int) bool {
		return req%2 == 0
	})

	require.True(t, d.Decide(6))
	require.False(t, d.Decide(7))
}

func TestAlwaysNever(t *testing.T) {
	always := fault.Always[string]()
	never := fault.Never[string]()

	for _, req := range []string{"", "a", "b"} {
		require.True(t, always.Decide(req))
		require.False(t, never.Decide(req))
	}
}

func TestNot_InvertsDecider(t *testing.T) {
	require.False(t, fault.Not(fault.Always[int]()).Decide(1))
	require.True(t, fault.Not(fault.Never[int]()).Decide(1))
}

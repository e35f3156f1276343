package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceToDefault_Reference(t *testing.T) {
	in := MertonInput{AssetValue: 200, DebtValue: 100, RiskFreeRate: 0.05, HorizonYears: 1, Volatility: 0.3}

	dd, err := DistanceToDefault(in)
	require.NoError(t, err)

	// (ln 2 + (0.05 + 0.045)·1) / 0.3
	want := (math.Log(2) + 0.095) / 0.3
	assert.InDelta(t, want, dd, 1e-12)
	assert.InDelta(t, 2.6272, dd, 1e-4)

	res, err := ProbabilityOfDefault(in)
	require.NoError(t, err)
	assert.InDelta(t, dd, res.DistanceToDefault, 1e-12)
	assert.Greater(t, res.ProbabilityOfDefault, 0.0040)
	assert.Less(t, res.ProbabilityOfDefault, 0.0047)
}

func TestDistanceToDefault_RoundTrip(t *testing.T) {
	in := MertonInput{AssetValue: 500, DebtValue: 320, RiskFreeRate: 0.03, HorizonYears: 2, Volatility: 0.25}

	dd, err := DistanceToDefault(in)
	require.NoError(t, err)

	// DD·σ√T − (r + σ²/2)T = ln(V/D)
	recovered := dd*in.Volatility*math.Sqrt(in.HorizonYears) -
		(in.RiskFreeRate+in.Volatility*in.Volatility/2)*in.HorizonYears
	assert.InDelta(t, math.Log(in.AssetValue/in.DebtValue), recovered, 1e-9)
}

func TestPDFromDD(t *testing.T) {
	assert.Equal(t, 0.5, PDFromDD(0))

	prev := PDFromDD(-5)
	for dd := -4.9; dd <= 5; dd += 0.1 {
		pd := PDFromDD(dd)
		assert.LessOrEqual(t, pd, prev, "dd=%v", dd)
		assert.GreaterOrEqual(t, pd, 0.0)
		assert.LessOrEqual(t, pd, 1.0)
		prev = pd
	}
}

func TestProbabilityOfDefault_MoreLeverageMoreRisk(t *testing.T) {
	low, err := ProbabilityOfDefault(MertonInput{AssetValue: 200, DebtValue: 100, RiskFreeRate: 0.05, HorizonYears: 1, Volatility: 0.4})
	require.NoError(t, err)
	high, err := ProbabilityOfDefault(MertonInput{AssetValue: 110, DebtValue: 100, RiskFreeRate: 0.05, HorizonYears: 1, Volatility: 0.4})
	require.NoError(t, err)

	assert.Greater(t, high.ProbabilityOfDefault, low.ProbabilityOfDefault)
}

func TestDistanceToDefault_Errors(t *testing.T) {
	valid := MertonInput{AssetValue: 200, DebtValue: 100, RiskFreeRate: 0.05, HorizonYears: 1, Volatility: 0.3}

	tests := []struct {
		name    string
		mutate  func(in *MertonInput)
		wantErr error
	}{
		{"zero volatility", func(in *MertonInput) { in.Volatility = 0 }, ErrDivision},
		{"zero horizon", func(in *MertonInput) { in.HorizonYears = 0 }, ErrDivision},
		{"zero assets", func(in *MertonInput) { in.AssetValue = 0 }, ErrDomain},
		{"negative debt", func(in *MertonInput) { in.DebtValue = -1 }, ErrDomain},
		{"negative volatility", func(in *MertonInput) { in.Volatility = -0.2 }, ErrDomain},
		{"NaN rate", func(in *MertonInput) { in.RiskFreeRate = math.NaN() }, ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := ProbabilityOfDefault(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

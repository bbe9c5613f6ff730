package univariate

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Grenka054/Optimization-Methods/common"
	"github.com/Grenka054/Optimization-Methods/functions"
	"github.com/Grenka054/Optimization-Methods/write"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchInvalidInterval(t *testing.T) {
	for _, test := range []struct {
		name         string
		lower, upper float64
	}{
		{"empty", 1, 1},
		{"reversed", 1, -1},
		{"NaN", math.NaN(), 1},
		{"infinite", -1, math.Inf(1)},
	} {
		t.Run(test.name, func(t *testing.T) {
			obj := &counting{f: functions.Cubic{}}
			s, err := NewSearch(obj, test.lower, test.upper)
			assert.ErrorIs(t, err, ErrInvalidInterval)
			assert.Nil(t, s)
			assert.Empty(t, obj.evals)
		})
	}

	_, err := NewSearch(nil, -1, 1)
	assert.Error(t, err)
}

func TestFindMin(t *testing.T) {
	s, err := NewSearch(functions.Cubic{}, -1, 1)
	require.NoError(t, err)
	assert.Nil(t, s.Points())

	lower, upper := s.Interval()
	assert.Equal(t, -1.0, lower)
	assert.Equal(t, 1.0, upper)

	result, err := s.FindMin(0.015, 0.2, false)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(3), result.Loc, 0.01)
	assert.InDelta(t, 0.9615, result.Obj, 1e-4)
	assert.Equal(t, result.Points, s.Points())
}

func TestFindMinInvalidParameters(t *testing.T) {
	obj := &counting{f: functions.Cubic{}}
	s, err := NewSearch(obj, -1, 1)
	require.NoError(t, err)

	_, err = s.FindMin(0, 0.2, false)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
	_, err = s.FindMin(-0.1, 0.2, false)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
	_, err = s.FindMin(0.015, 0, false)
	assert.ErrorIs(t, err, ErrInvalidLipschitz)
	_, err = s.FindMin(0.015, -1, true)
	assert.ErrorIs(t, err, ErrInvalidLipschitz)

	assert.Empty(t, obj.evals)
	assert.Nil(t, s.Points())
}

func TestFindMinDeterministic(t *testing.T) {
	p, _ := functions.Lookup("sinesum")
	run := func() *Result {
		s, err := NewSearch(p, p.Lower, p.Upper)
		require.NoError(t, err)
		result, err := s.FindMin(1e-3, p.Lipschitz, false)
		require.NoError(t, err)
		return result
	}
	first, second := run(), run()
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(common.CommonResult{}, "Runtime")); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}

	// running the same search twice gives the same answer too
	s, err := NewSearch(p, p.Lower, p.Upper)
	require.NoError(t, err)
	a, err := s.FindMin(1e-3, p.Lipschitz, false)
	require.NoError(t, err)
	b, err := s.FindMin(1e-3, p.Lipschitz, false)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b, cmpopts.IgnoreFields(common.CommonResult{}, "Runtime")))
}

func TestFindMinDebug(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	settings := DefaultSettings()
	settings.Observer = rec
	settings.WriteSettings = &write.WriteSettings{
		DisplayWriters: []write.Writer{{Writer: &buf, T: write.Logger}},
	}

	s, err := NewSearch(functions.Cubic{}, -1, 1)
	require.NoError(t, err)
	s.Settings = settings

	result, err := s.FindMin(0.015, 0.2, true)
	require.NoError(t, err)
	require.Len(t, rec.its, result.Iterations)

	last := rec.its[len(rec.its)-1]
	assert.Equal(t, result.Loc, last.Loc)
	assert.Equal(t, result.Obj, last.Obj)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3+result.Iterations)
	assert.Equal(t, "Iter,FnEval,Loc,Obj,Bound,Gap", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "1,3,"), lines[3])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "6,8,"), lines[len(lines)-1])

	// the caller's settings are left alone
	assert.Same(t, rec, settings.Observer)

	// without debug the observer stays quiet
	rec.its = nil
	buf.Reset()
	_, err = s.FindMin(0.015, 0.2, false)
	require.NoError(t, err)
	assert.Empty(t, rec.its)
}

func TestFindMinNonConvergence(t *testing.T) {
	settings := DefaultSettings()
	settings.MaximumIterations = 3

	s, err := NewSearch(functions.Cubic{}, -1, 1)
	require.NoError(t, err)
	s.Settings = settings

	result, err := s.FindMin(0.015, 0.2, false)
	assert.ErrorIs(t, err, ErrNonConvergence)
	require.NotNil(t, result)
	assert.Equal(t, common.MaximumIterations, result.Status)
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, 5, result.FunctionEvaluations)

	// best evaluated point so far is f(0.5)
	assert.InDelta(t, 0.5, result.Loc, 1e-12)
	assert.InDelta(t, 0.9625, result.Obj, 1e-12)
	assert.NotEmpty(t, s.Points())
}

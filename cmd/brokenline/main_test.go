package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Grenka054/Optimization-Methods/univariate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { newLogger = orig })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// minimum extracts the reported point from the command output
func minimum(t *testing.T, out string) (x, f float64) {
	t.Helper()
	i := strings.Index(out, "minimum: ")
	require.GreaterOrEqual(t, i, 0, out)
	_, err := fmt.Sscanf(out[i:], "minimum: (%g, %g)", &x, &f)
	require.NoError(t, err, out)
	return x, f
}

func TestRootDefault(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "minimum: (0.5777"), out)
	assert.Contains(t, out, "0.96151")
}

func TestRootFunctionAndOverrides(t *testing.T) {
	out, err := execute(t, "--function", "vee", "--lower", "0", "--upper", "2", "--sigma", "1e-4")
	require.NoError(t, err)
	x, f := minimum(t, out)
	assert.InDelta(t, 0.3, x, 1e-3)
	assert.InDelta(t, 0, f, 1e-3)

	_, err = execute(t, "--function", "nope")
	assert.ErrorContains(t, err, "unknown function")

	_, err = execute(t, "--sigma", "0")
	assert.ErrorIs(t, err, univariate.ErrInvalidPrecision)

	_, err = execute(t, "--lipschitz=-1")
	assert.ErrorIs(t, err, univariate.ErrInvalidLipschitz)

	_, err = execute(t, "--lower", "1", "--upper", "1")
	assert.ErrorIs(t, err, univariate.ErrInvalidInterval)
}

func TestRootDebug(t *testing.T) {
	out, err := execute(t, "--debug")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Beginning Optimization"), out)
	assert.Contains(t, out, "Iter")
	assert.Contains(t, out, "Gap")
	assert.Contains(t, out, "minimum: (0.5777")
}

func TestRootNonConvergence(t *testing.T) {
	out, err := execute(t, "--max-iterations", "3")
	assert.ErrorIs(t, err, univariate.ErrNonConvergence)
	// the best point so far is still reported
	x, f := minimum(t, out)
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0.9625, f, 1e-9)
}

func TestRootConfigFile(t *testing.T) {
	path := writeConfig(t, "function: sinesum\nsigma: 0.01\n")
	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	x, _ := minimum(t, out)
	assert.InDelta(t, 5.1457, x, 0.05)

	// flags win over the file
	out, err = execute(t, "--config", path, "--function", "cubic")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "minimum: (0.5777"), out)
}

func TestRootFlagsOverConfigFile(t *testing.T) {
	path := writeConfig(t, "sigma: 0.5\nmax_iterations: 100\n")

	// the file alone stops at the first candidate
	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	x, f := minimum(t, out)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, f)

	// the flags ask for more than one iteration can give
	_, err = execute(t, "--config", path, "--sigma", "0.0001", "--max-iterations", "1")
	assert.ErrorIs(t, err, univariate.ErrNonConvergence)

	out, err = execute(t, "--config", path, "--debug", "--samples", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Beginning Optimization"), out)
}

func TestRootPlotAndFrames(t *testing.T) {
	dir := t.TempDir()
	plotPath := filepath.Join(dir, "result.png")
	framesDir := filepath.Join(dir, "frames")

	out, err := execute(t, "--plot", plotPath, "--frames", framesDir, "--samples", "100")
	require.NoError(t, err)
	// frames imply the per-iteration table
	assert.Contains(t, out, "Beginning Optimization")

	_, err = os.Stat(plotPath)
	assert.NoError(t, err)
	frames, err := filepath.Glob(filepath.Join(framesDir, "frame-*.png"))
	require.NoError(t, err)
	assert.Len(t, frames, 6)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "cubic"), lines[0])
	for _, name := range []string{"ramp", "shubert", "sinesum", "vee"} {
		assert.Contains(t, out, name)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/compass/coordinate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `# a ring
0 0
1 0
1 1
0 0

# doubles back on itself
0 0 1
1 1 1
1 1 1
`

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].Len())
	assert.Equal(t, 3, lines[1].Len())
	c, _ := lines[1].Get(0)
	assert.Equal(t, coordinate.C(0, 0, 1), c)
}

func TestReadLinesErrors(t *testing.T) {
	_, err := readLines(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, "line 2: expected 2 or 3 ordinates, got 1")

	_, err = readLines(strings.NewReader("0 zero\n"))
	assert.Error(t, err)

	_, err = readLines(strings.NewReader("0 0\nNaN 1\n"))
	assert.Equal(t, coordinate.ErrNaNValue, errors.Cause(err))
}

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	status := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	status, stdout, _ := runWith(t, input, "--no-color")
	assert.Equal(t, exitNotSimple, status)
	assert.Equal(t,
		"line 0: 4 points, simple, closed, duplicates\n"+
			"line 1: 3 points, not simple, open, duplicates\n",
		stdout)
}

func TestRunAllSimple(t *testing.T) {
	status, stdout, _ := runWith(t, "0 0\n1 1\n2 2\n", "--no-color")
	assert.Equal(t, exitSimple, status)
	assert.Equal(t, "line 0: 3 points, simple, open, no duplicates\n", stdout)
}

func TestRunVerboseLogsViolation(t *testing.T) {
	_, _, stderr := runWith(t, input, "--no-color", "-v")
	assert.Contains(t, stderr, "checked line")
	assert.Contains(t, stderr, `violation="(1, 1, 1)"`)
}

func TestRunErrors(t *testing.T) {
	status, _, stderr := runWith(t, "")
	assert.Equal(t, exitError, status)
	assert.Contains(t, stderr, "no lines in input")

	status, _, _ = runWith(t, "1 2 3 4\n")
	assert.Equal(t, exitError, status)

	status, _, _ = runWith(t, input, "--scale=0")
	assert.Equal(t, exitError, status)

	status, _, _ = runWith(t, input, "--bogus")
	assert.Equal(t, exitError, status)

	status, _, _ = runWith(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitError, status)

	status, _, stderr = runWith(t, "0 0\n1e300 1e300\n", "--png", filepath.Join(t.TempDir(), "huge.png"))
	assert.Equal(t, exitError, status)
	assert.Contains(t, stderr, "drawing too large")
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 1\n"), 0o644))
	status, stdout, _ := runWith(t, "", "--no-color", path)
	assert.Equal(t, exitSimple, status)
	assert.Contains(t, stdout, "2 points")
}

func TestRunRendersPNG(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "out.png")
	config := filepath.Join(dir, "compass.toml")
	require.NoError(t, os.WriteFile(config, []byte("png = \""+filepath.ToSlash(png)+"\"\nscale = 20\ncolor = false\n"), 0o644))

	status, stdout, _ := runWith(t, input, "--config", config)
	assert.Equal(t, exitNotSimple, status)
	// color = false came from the file
	assert.NotContains(t, stdout, "\x1b[")

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "compass.toml")
	require.NoError(t, os.WriteFile(config, []byte("scale = 3\nverbose = true\npng = \"a.png\"\n"), 0o644))

	opts := &options{}
	app := newApp(opts)
	_, err := app.Parse([]string{"-c", config, "--scale", "7", "--no-verbose"})
	require.NoError(t, err)

	cfg, err := opts.resolve()
	require.NoError(t, err)
	// Flags win, the file fills in the rest, defaults cover what neither set
	assert.Equal(t, 7.0, cfg.Scale)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "a.png", cfg.PNG)
	assert.True(t, cfg.Color)
}

func TestResolveBadConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "compass.toml")
	require.NoError(t, os.WriteFile(config, []byte("scale = \"big\"\n"), 0o644))
	opts := &options{configPath: config}
	_, err := opts.resolve()
	assert.Error(t, err)
}

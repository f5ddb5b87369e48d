package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	defer log.SetOutput(log.Writer())
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// TestRun_BothParts checks the labelled answers for the worked example.
func TestRun_BothParts(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-input", writeInput(t, exampleInput))
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "Day 6 part 1 : 41\nDay 6 part 2 : 6\n", stdout)
}

// TestRun_SinglePart checks the -part selector.
func TestRun_SinglePart(t *testing.T) {
	path := writeInput(t, exampleInput)

	code, stdout, _ := runCLI(t, "-input", path, "-part", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Day 6 part 1 : 41\n", stdout)

	code, stdout, _ = runCLI(t, "-input", path, "-part", "2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Day 6 part 2 : 6\n", stdout)
}

// TestRun_FatalInput checks that unusable input aborts without a result.
func TestRun_FatalInput(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"Missing", filepath.Join(t.TempDir(), "nope.txt"), "no such file"},
		{"NoStart", writeInput(t, "...\n.#.\n"), "no start position"},
		{"Loop", writeInput(t, ".#...\n....#\n.^...\n#....\n...#.\n"), "loop detected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "-input", tc.path)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

// TestRun_BadFlags checks usage errors.
func TestRun_BadFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "-part", "3")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid -part 3")

	code, _, _ = runCLI(t, "-nope")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "-h")
	assert.Equal(t, 0, code)
}

// TestRun_MaxSteps checks that a step budget too small for the route fails.
func TestRun_MaxSteps(t *testing.T) {
	code, _, stderr := runCLI(t, "-input", writeInput(t, exampleInput), "-part", "1", "-max-steps", "10")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "step limit exceeded")
}

// TestRun_Debug checks that -debug logs progress to stderr.
func TestRun_Debug(t *testing.T) {
	code, _, stderr := runCLI(t, "-input", writeInput(t, exampleInput), "-part", "1", "-debug")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "patrol: ")
	assert.Contains(t, stderr, "grid 10x10, guard at (4,6) facing N")
	assert.Contains(t, stderr, "guard left from (7,9) facing S after 54 steps")
}

//----------------------------------------------------------------------------//
// setupLogging
//----------------------------------------------------------------------------//

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(log.Writer())

	f, err := setupLogging(false, "", os.Stderr)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_File(t *testing.T) {
	defer log.SetOutput(log.Writer())
	path := filepath.Join(t.TempDir(), "patrol.log")

	f, err := setupLogging(true, path, os.Stderr)
	require.NoError(t, err)
	require.NotNil(t, f)

	log.Println("hello")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "patrol: "), "prefix missing: %q", data)
	assert.Contains(t, string(data), "hello")
}

func TestSetupLogging_BadPath(t *testing.T) {
	defer log.SetOutput(log.Writer())

	_, err := setupLogging(true, filepath.Join(t.TempDir(), "missing", "patrol.log"), os.Stderr)
	assert.Error(t, err)
}

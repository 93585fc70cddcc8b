package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventlabs/solvent/solvers"
)

const treetopInput = "30373\n25512\n65332\n33549\n35390\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day08.txt")
	require.NoError(t, os.WriteFile(path, []byte(treetopInput), 0o644))

	out, err := execute(t, "8", "1", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "21")
	assert.Contains(t, out, "treetop")
}

func TestRunCommand_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	inputs := filepath.Join(dir, "puzzles")
	require.NoError(t, os.Mkdir(inputs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day08.txt"), []byte(treetopInput), 0o644))

	cfgPath := filepath.Join(dir, "solvent.toml")
	cfg := "inputs = \"" + inputs + "\"\nday = 8\npart = 2\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "8", "best scenic score")
}

func TestRunCommand_UnknownSolver(t *testing.T) {
	_, err := execute(t, "99", "1")
	assert.ErrorIs(t, err, solvers.ErrUnknownSolver)
}

func TestRunCommand_BadArgs(t *testing.T) {
	_, err := execute(t, "eight", "1")
	assert.Error(t, err)

	_, err = execute(t, "8", "two")
	assert.Error(t, err)
}

func TestRunCommand_MissingInput(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "solvent.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("inputs = \"/nonexistent\"\n"), 0o644))

	_, err := execute(t, "8", "1", "--config", cfgPath)
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	cmd := newListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"crates", "treetop", "hillclimb", "regolith", "beacon", "monkeymath"} {
		assert.Contains(t, out.String(), name)
	}
}

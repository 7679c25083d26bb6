package filewise

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given args and returns stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		xdg.Reload()
	})

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "report.txt", "r")
	testutil.CreateFile(t, dir, "notes.TXT", "n")
	testutil.CreateFile(t, dir, "data.csv", "d")
	testutil.CreateDir(t, dir, "sub")
	testutil.CreateFile(t, filepath.Join(dir, "sub"), "deep.txt", "x")
	return dir
}

func TestFilesCmd_JSON(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "files", dir, "txt", "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []string{
		filepath.Join(dir, "notes.TXT"),
		filepath.Join(dir, "report.txt"),
		filepath.Join(dir, "sub", "deep.txt"),
	}, results)
}

func TestFilesCmd_TopOnly(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "files", dir, "txt", "--top-only", "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.NotContains(t, results, filepath.Join(dir, "sub", "deep.txt"))
	assert.Contains(t, results, filepath.Join(dir, "report.txt"))
}

func TestFilesCmd_Exclude(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "files", dir, "txt", "-e", "sub", "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.NotContains(t, results, filepath.Join(dir, "sub", "deep.txt"))
}

func TestFilesCmd_InvalidMatchType(t *testing.T) {
	dir := setupTree(t)

	_, err := runCommand(t, "files", dir, "txt", "-m", "bogus")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMatchType))
}

func TestDirsCmd(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "dirs", dir, "txt", "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []string{dir, filepath.Join(dir, "sub")}, results)
}

func TestItemsCmd_Extensions(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "items", dir, "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []string{".TXT", ".csv", ".txt"}, results)
}

func TestItemsCmd_SkipExt(t *testing.T) {
	dir := setupTree(t)

	out, err := runCommand(t, "items", dir, "--skip-ext", "csv,TXT", "-o", "json")
	require.NoError(t, err)

	var results []string
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []string{".txt"}, results)
}

func TestItemsCmd_InvalidTask(t *testing.T) {
	dir := setupTree(t)

	_, err := runCommand(t, "items", dir, "--task", "bogus")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTask))
}

func TestMoveCmd_RequiresSource(t *testing.T) {
	_, err := runCommand(t, "move", "txt", "--to", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMoveCmd(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutil.CreateFile(t, src, "a.txt", "a")
	testutil.CreateFile(t, src, "b.csv", "b")

	_, err := runCommand(t, "move", "txt", "--from", src, "--to", dst)
	require.NoError(t, err)

	assert.True(t, testutil.FileExists(t, filepath.Join(dst, "a.txt")))
	assert.False(t, testutil.FileExists(t, filepath.Join(src, "a.txt")))
	assert.True(t, testutil.FileExists(t, filepath.Join(src, "b.csv")))
}

func TestRenameCmd(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "old.txt", "x")

	_, err := runCommand(t, "rename",
		filepath.Join(dir, "old.txt"), filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "new.txt")))
}

func TestRenameCmd_OddArgs(t *testing.T) {
	_, err := runCommand(t, "rename", "/only-one")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCatCmd(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "notes.txt", "hello\n")

	out, err := runCommand(t, "cat", filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestGenConfigCmd(t *testing.T) {
	out, err := runCommand(t, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "output")
}

func TestGenConfigCmd_Write(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	_, err = runCommand(t, "gen-config", "-w")
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, ".filewise.toml")))
}

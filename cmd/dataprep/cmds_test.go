package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godataprep/dataerr"
	"github.com/sartorproj/godataprep/table"
)

const peopleCSV = `name,age,city
 Alice ,25,SCL
Bob,NA,LPZ
,35,SCL
 Carol  ,120,LPZ
`

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return stdout.String(), err
}

func TestTrimCommand(t *testing.T) {
	path := writeFile(t, peopleCSV)

	out, err := run(t, "trim", path, "--columns", "name", "--numeric", "age")
	require.NoError(t, err)
	assert.Equal(t, "name,age,city\nAlice,25,SCL\nBob,,LPZ\n,35,SCL\nCarol,120,LPZ\n", out)
}

func TestTrimCommandRejectsNumericColumn(t *testing.T) {
	path := writeFile(t, peopleCSV)

	_, err := run(t, "trim", path, "--columns", "age", "--numeric", "age")
	assert.True(t, errors.Is(err, dataerr.ErrTypeMismatch), "got %v", err)
}

func TestDropnaCommandKeepsLabels(t *testing.T) {
	path := writeFile(t, peopleCSV)

	out, err := run(t, "dropna", path, "--columns", "name,age", "--numeric", "age", "--index", "row")
	require.Error(t, err, "input has no row column")
	assert.True(t, errors.Is(err, dataerr.ErrColumnNotFound))
	assert.Empty(t, out)

	labelled := writeFile(t, "row,name,age\n10,a,1\n11,,2\n12,c,NA\n13,d,4\n")
	out, err = run(t, "dropna", labelled, "--columns", "name,age", "--numeric", "age", "--index", "row")
	require.NoError(t, err)
	assert.Equal(t, "row,name,age\n10,a,1\n13,d,4\n", out)
}

func TestOutliersCommand(t *testing.T) {
	path := writeFile(t, "v\n20\n21\n19\n20\n22\n1000\n")

	out, err := run(t, "outliers", path, "--column", "v", "--numeric", "v")
	require.NoError(t, err)
	assert.Equal(t, "v\n20\n21\n19\n20\n22\n", out)

	_, err = run(t, "outliers", path, "--column", "v", "--numeric", "v", "--factor", "0")
	assert.True(t, errors.Is(err, dataerr.ErrInvalidParameter))

	_, err = run(t, "outliers", path)
	assert.Error(t, err)
}

func TestMovavgCommand(t *testing.T) {
	path := writeFile(t, "t,v\n0,1\n1,2\n2,NA\n3,3\n4,4\n")

	out, err := run(t, "movavg", path, "--column", "v", "--window", "2", "--numeric", "v", "--index", "t")
	require.NoError(t, err)
	assert.Equal(t, "t,v_ma\n1,1.5\n3,2.5\n4,3.5\n", out)

	_, err = run(t, "movavg", path, "--column", "v", "--window", "9", "--numeric", "v")
	assert.True(t, errors.Is(err, dataerr.ErrInvalidParameter))
}

func TestStatCommandsRequireNumericColumn(t *testing.T) {
	path := writeFile(t, "v\n1\n2\n")

	for _, name := range []string{"movavg", "zscore", "minmax"} {
		_, err := run(t, name, path, "--column", "v")
		assert.True(t, errors.Is(err, dataerr.ErrTypeMismatch), "%s: got %v", name, err)
	}
}

func TestMinmaxCommand(t *testing.T) {
	path := writeFile(t, "v\n2\n4\n6\n")

	out, err := run(t, "minmax", path, "--column", "v", "--numeric", "v")
	require.NoError(t, err)
	assert.Equal(t, "v_scaled\n0\n0.5\n1\n", out)

	constant := writeFile(t, "v\n3\n3\n3\n")
	_, err = run(t, "minmax", constant, "--column", "v", "--numeric", "v")
	assert.True(t, errors.Is(err, dataerr.ErrInvalidParameter))
}

func TestZscoreCommand(t *testing.T) {
	path := writeFile(t, "v\n10\n20\n30\n40\n50\n")

	out, err := run(t, "zscore", path, "--column", "v", "--numeric", "v", "--format", "arrow")
	require.NoError(t, err)

	result, err := table.ReadArrowStream(bytes.NewBufferString(out), nil)
	require.NoError(t, err)
	c, err := result.Column("v_zscore")
	require.NoError(t, err)
	assert.Len(t, c.Floats(), 5)
	assert.InDelta(t, 0.0, c.Floats()[2], 1e-12)
}

func TestOutputFlag(t *testing.T) {
	path := writeFile(t, "v\n2\n4\n6\n")
	target := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, "minmax", path, "--column", "v", "--numeric", "v", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "v_scaled\n0\n0.5\n1\n", string(data))
}

func TestInvalidFlags(t *testing.T) {
	path := writeFile(t, "v\n2\n4\n6\n")

	_, err := run(t, "minmax", path, "--column", "v", "--numeric", "v", "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "minmax", path, "--column", "v", "--delimiter", ";;")
	assert.Error(t, err)

	root := newRootCommand()
	root.SetArgs([]string{"minmax", path, "--column", "v", "--log-level", "loud"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

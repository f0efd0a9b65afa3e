package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreCatalog = `
domain: "one::errc"
name: core
messages:
  0: failure
  1: unknown
`

func writeCatalog(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.yaml"), []byte(coreCatalog), 0o644))
	return dir
}

func runDecode(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Arguments(t *testing.T) {
	dir := writeCatalog(t)

	stdout, _, err := runDecode(t, "", "--color=never", "-c", dir,
		"82AFFE53: 00000000",
		"82AFFE53: 00000007",
		"DEADBEEF: 00000001",
		"not packed at all",
	)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"core: failure",
		"core: 00000007 (7)",
		"DEADBEEF: 00000001 (1)",
		"not packed at all",
	}, "\n")+"\n", stdout)
}

func TestRun_Stdin(t *testing.T) {
	dir := writeCatalog(t)

	stdin := "82AFFE53: 00000001\n00000000: 00000000\nFFFFFFFE: 00000000\n"
	stdout, _, err := runDecode(t, stdin, "--color", "never", "--catalog", filepath.Join(dir, "core.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "core: unknown\nsuccess: 00000000 (0)\nsystem: success\n", stdout)
}

func TestRun_StdinLongLines(t *testing.T) {
	stdin := "DEADBEEF: 00000010 " + strings.Repeat("x", 70000) + "\n" +
		"DEADBEEF: 00000001\r\n" +
		"DEADBEEF: 00000002"

	stdout, _, err := runDecode(t, stdin, "--color=never")
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF: 00000010 (16)\nDEADBEEF: 00000001 (1)\nDEADBEEF: 00000002 (2)\n", stdout)
}

func TestRun_PackageDomainWithoutCatalogs(t *testing.T) {
	stdout, _, err := runDecode(t, "", "--color=never", "CF29C7FC: 00000001")
	require.NoError(t, err)
	assert.Equal(t, "errdomain: result not initialized\n", stdout)
}

func TestRun_Fields(t *testing.T) {
	dir := writeCatalog(t)

	stdout, _, err := runDecode(t, "", "--color=never", "-c", dir, "--type", "82AFFE53", "--code", "00000001")
	require.NoError(t, err)
	assert.Equal(t, "core: unknown\n", stdout)

	stdout, _, err = runDecode(t, "", "--color=never", "-c", dir, "--type", "82AFFE53", "--code", "oops")
	require.NoError(t, err)
	assert.Equal(t, "core: oops\n", stdout)
}

func TestRun_FieldsRequireBoth(t *testing.T) {
	_, _, err := runDecode(t, "", "--type", "82AFFE53")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

	_, _, err = runDecode(t, "", "--type", "82AFFE53", "--code", "00000001", "extra")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRun_Color(t *testing.T) {
	dir := writeCatalog(t)

	stdout, _, err := runDecode(t, "", "--color=always", "-c", dir, "82AFFE53: 00000000", "plain")
	require.NoError(t, err)

	lines := strings.SplitAfter(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "\x1b[32m")
	assert.Contains(t, lines[0], "core: failure")
	assert.NotContains(t, stdout[strings.Index(stdout, "plain"):], "\x1b[32m")

	_, _, err = runDecode(t, "", "--color=sometimes")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRun_ColorAutoNotTerminal(t *testing.T) {
	dir := writeCatalog(t)

	stdout, _, err := runDecode(t, "", "-c", dir, "82AFFE53: 00000000")
	require.NoError(t, err)
	assert.Equal(t, "core: failure\n", stdout)
}

func TestRun_MissingCatalog(t *testing.T) {
	_, _, err := runDecode(t, "", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRun_DuplicateCatalogs(t *testing.T) {
	dir := writeCatalog(t)

	stdout, stderr, err := runDecode(t, "", "--color=never", "-c", dir, "-c", dir, "82AFFE53: 00000000")
	require.NoError(t, err)
	assert.Equal(t, "core: failure\n", stdout)
	assert.Contains(t, stderr, "skipped duplicate catalogs")
}

func TestRun_Verbose(t *testing.T) {
	dir := writeCatalog(t)

	_, stderr, err := runDecode(t, "", "--color=never", "-v", "-c", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "registered category")
	assert.Contains(t, stderr, "name=core")
	assert.Contains(t, stderr, "loaded catalogs")
}

func TestRun_Help(t *testing.T) {
	stdout, stderr, err := runDecode(t, "", "--help")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, "--catalog")
}

func TestRun_UnknownFlag(t *testing.T) {
	_, _, err := runDecode(t, "", "--bogus")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

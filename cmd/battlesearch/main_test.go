package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSearchCommand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "2021-01-01")
	writeLog(t, filepath.Join(root, "gen8ou-1.log.json"),
		`{"p1":"Annika","p2":"Bob","winner":"Annika","endType":"normal"}`)
	writeLog(t, filepath.Join(root, "gen8ou-2.log.json"),
		`{"p1":"Carol","p2":"Bob","winner":"Bob"}`)
	writeLog(t, filepath.Join(root, "later", "gen8ou-3.log.json"),
		`{"p1":"Bob","p2":"A n n i k a","winner":"Bob","endType":"forfeit"}`)

	stdout, _, err := execute(t, "-j", "3", "Annika", root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"(2021-01-01) <<gen8ou-1>> annika vs. bob (annika won normally)",
		"(2021-01-01) <<gen8ou-3>> bob vs. annika (bob won by forfeit)",
	}, strings.Split(strings.TrimSuffix(stdout, "\n"), "\n"))

	stdout, _, err = execute(t, "-w", "Annika", root)
	require.NoError(t, err)
	assert.Equal(t, "(2021-01-01) <<gen8ou-1>> annika vs. bob (annika won normally)\n", stdout)
}

func TestSearchCommand_Summary(t *testing.T) {
	root := filepath.Join(t.TempDir(), "day")
	writeLog(t, filepath.Join(root, "r.log.json"), `{"p1":"a","p2":"b"}`)

	stdout, stderr, err := execute(t, "--summary", "a", root)
	require.NoError(t, err)
	assert.Equal(t, "(day) <<r>> a vs. b (there was no winner)\n", stdout)
	assert.Contains(t, stderr, "1 match in 1 file from 1 root")
}

func TestSearchCommand_Errors(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err, "username is required")

	_, _, err = execute(t, "annika", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory unreadable")
}

func TestSearchCommand_UsernameNamedLikeSubcommand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "day")
	writeLog(t, filepath.Join(root, "r.log.json"),
		`{"p1":"Version","p2":"Completion","winner":"Completion"}`)

	for _, user := range []string{"version", "completion"} {
		t.Run(user, func(t *testing.T) {
			stdout, _, err := execute(t, "--", user, root)
			require.NoError(t, err)
			assert.Equal(t, "(day) <<r>> version vs. completion (completion won normally)\n", stdout)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "battlesearch dev (commit: none, built: unknown)\n", stdout)
}

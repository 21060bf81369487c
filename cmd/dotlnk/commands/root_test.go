// cmd/dotlnk/commands/root_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Real filesystem (temp dirs)
// PURPOSE: Test flag parsing, command wiring, and rendered output

package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pviana/dotlnk/cmd/dotlnk/commands"
)

type cliFixture struct {
	root string
	home string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	base := t.TempDir()
	f := &cliFixture{
		root: filepath.Join(base, "dotfiles"),
		home: filepath.Join(base, "home"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, "zsh"), 0755))
	require.NoError(t, os.MkdirAll(f.home, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "zsh", "zshrc"), []byte("managed"), 0644))

	manifest := `
backups_root = "` + filepath.Join(base, "backups") + `"

[[links]]
source = "zsh/zshrc"
target = "` + filepath.Join(f.home, ".zshrc") + `"
`
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "dotlnk.toml"), []byte(manifest), 0644))
	return f
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLinkCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "link", "--root", f.root, "--yes")
	require.NoError(t, err)

	assert.Contains(t, out, "linked")
	assert.Contains(t, out, "Summary:")

	target, err := os.Readlink(filepath.Join(f.home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "zsh", "zshrc"), target)
}

func TestLinkCommandYAMLOutput(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "link", "--root", f.root, "--yes", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Target  string `yaml:"target"`
			Outcome string `yaml:"outcome"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "linked", doc.Results[0].Outcome)
	assert.Equal(t, filepath.Join(f.home, ".zshrc"), doc.Results[0].Target)
}

func TestLinkCommandDryRun(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "link", "--root", f.root, "--dry-run", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "DRY RUN")

	_, err = os.Lstat(filepath.Join(f.home, ".zshrc"))
	assert.True(t, os.IsNotExist(err), "dry run must not create links")
}

func TestLinkCommandRejectsConflictingFlags(t *testing.T) {
	f := newCLIFixture(t)

	_, err := runCLI(t, "link", "--root", f.root, "--yes", "--no-input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLinkCommandRejectsUnknownFormat(t *testing.T) {
	f := newCLIFixture(t)

	_, err := runCLI(t, "link", "--root", f.root, "--yes", "--format", "xml")
	require.Error(t, err)
}

func TestStatusCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := runCLI(t, "status", "--root", f.root)
	require.NoError(t, err)
	assert.Contains(t, out, "unlinked")

	_, err = runCLI(t, "link", "--root", f.root, "--yes")
	require.NoError(t, err)

	out, err = runCLI(t, "status", "--root", f.root)
	require.NoError(t, err)
	assert.Contains(t, out, "linked")
	assert.NotContains(t, out, "unlinked")
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "init", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "dotlnk.toml")

	_, err = os.Stat(filepath.Join(root, "dotlnk.toml"))
	assert.NoError(t, err)
}

func TestRootCommandWithoutSubcommand(t *testing.T) {
	_, err := runCLI(t)
	require.Error(t, err)
}

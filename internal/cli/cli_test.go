package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattn/go-isatty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"ttsedit/internal/config"
	"ttsedit/internal/description"
)

type env struct {
	dir    string
	config string
	save   string
}

func setup(t *testing.T) env {
	t.Helper()
	t.Setenv(config.EnvDefaultFile, "")
	dir := t.TempDir()

	data, err := os.ReadFile("../assets/testdata/army.json")
	require.NoError(t, err)
	save := filepath.Join(dir, "army.json")
	require.NoError(t, os.WriteFile(save, data, 0o644))

	cfg := config.Default()
	cfg.LogFile = filepath.Join(dir, "debug.log")
	cfg.HistoryDB = filepath.Join(dir, "history.db")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.Save(path))

	return env{dir: dir, config: path, save: save}
}

func run(t *testing.T, e env, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", e.config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTemplateCommand(t *testing.T) {
	e := setup(t)

	out, err := run(t, e, "template", "ranged")
	require.NoError(t, err)
	assert.Equal(t, description.Template(description.SectionRanged), out)

	out, err = run(t, e, "template", "Abilities")
	require.NoError(t, err)
	assert.Equal(t, description.Template(description.SectionAbilities), out)

	_, err = run(t, e, "template", "psychic")
	assert.ErrorContains(t, err, "unknown section")

	_, err = run(t, e, "template")
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	e := setup(t)

	out, err := run(t, e, "show", e.save)
	require.NoError(t, err)
	assert.Contains(t, out, "Intercessor Squad (4 objects)\n  Standard (×2)\n")
	assert.Contains(t, out, "    melee Power fist  A:5 WS:2+ S:8 AP:-2 D:2\n")
	assert.Contains(t, out, "    abilities: Rites of Battle, Finest Hour\n")

	out, err = run(t, e, "show", e.save, "--unit", "CAPTAIN")
	require.NoError(t, err)
	assert.NotContains(t, out, "Intercessor")

	_, err = run(t, e, "show", e.save, "--unit", "Ghost")
	assert.ErrorContains(t, err, "not found")
}

func TestShowCommand_YAML(t *testing.T) {
	e := setup(t)

	out, err := run(t, e, "show", e.save, "--yaml", "--unit", "aggressor squad")
	require.NoError(t, err)

	var units []unitView
	require.NoError(t, yaml.Unmarshal([]byte(out), &units))
	require.Len(t, units, 1)
	require.Len(t, units[0].Profiles, 1)

	parsed := units[0].Profiles[0].Parsed
	require.Len(t, parsed.RangedWeapons, 1)
	assert.Equal(t, "D6+1", parsed.RangedWeapons[0].A)
	assert.Equal(t, description.Ranged, parsed.RangedWeapons[0].Kind)
	assert.Equal(t, "Ignores Cover, Torrent, Twin-linked", parsed.RangedWeapons[0].Abilities)
	assert.Equal(t, []int{6}, units[0].Profiles[0].Indices)
}

func TestNormalizeCommand_DryRun(t *testing.T) {
	e := setup(t)
	before, err := os.ReadFile(e.save)
	require.NoError(t, err)

	out, err := run(t, e, "normalize", e.save, "--unit", "captain", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "Captain / Standard: 1 object(s)\n1 profile(s) changed\n", out)

	after, err := os.ReadFile(e.save)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestNormalizeCommand_WritesAndJournals(t *testing.T) {
	e := setup(t)

	_, err := run(t, e, "normalize", e.save, "--unit", "Captain")
	require.NoError(t, err)

	_, err = os.Stat(e.save + ".bak")
	assert.NoError(t, err, "backup written")

	out, err := run(t, e, "show", e.save, "--yaml", "--unit", "Captain")
	require.NoError(t, err)
	var units []unitView
	require.NoError(t, yaml.Unmarshal([]byte(out), &units))
	text := units[0].Profiles[0].Description
	assert.Equal(t, description.Normalize(text), text)

	out, err = run(t, e, "history", "--unit", "Captain")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Captain")
	assert.Contains(t, out, e.save)

	out, err = run(t, e, "normalize", e.save, "--unit", "Captain")
	require.NoError(t, err)
	assert.Equal(t, "0 profile(s) changed\n", out)
}

func TestNormalizeCommand_Output(t *testing.T) {
	e := setup(t)
	before, err := os.ReadFile(e.save)
	require.NoError(t, err)
	target := filepath.Join(e.dir, "out.json")

	_, err = run(t, e, "normalize", e.save, "-o", target)
	require.NoError(t, err)

	after, err := os.ReadFile(e.save)
	require.NoError(t, err)
	assert.Equal(t, before, after, "input untouched")

	out, err := run(t, e, "normalize", target, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "0 profile(s) changed\n", out)
}

func TestNormalizeCommand_FailedWriteNotJournaled(t *testing.T) {
	e := setup(t)
	target := filepath.Join(e.dir, "missing", "out.json")

	_, err := run(t, e, "normalize", e.save, "-o", target)
	require.Error(t, err)

	out, err := run(t, e, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no edits recorded")
}

func TestHistoryCommand_Empty(t *testing.T) {
	e := setup(t)

	out, err := run(t, e, "history")
	require.NoError(t, err)
	assert.Equal(t, "no edits recorded in "+filepath.Join(e.dir, "history.db")+"\n", out)
}

func TestEditCommand_Errors(t *testing.T) {
	e := setup(t)

	_, err := run(t, e, "edit")
	assert.ErrorContains(t, err, "no save file given")

	if isatty.IsTerminal(os.Stdout.Fd()) {
		t.Skip("stdout is a terminal")
	}
	_, err = run(t, e, "edit", e.save)
	assert.ErrorIs(t, err, ErrNoTerminal)

	_, err = run(t, e, e.save)
	assert.ErrorIs(t, err, ErrNoTerminal, "editor is the default command")
}

func TestConfigErrors(t *testing.T) {
	e := setup(t)
	e.config = filepath.Join(e.dir, "missing.yaml")

	_, err := run(t, e, "template", "stats")
	assert.Error(t, err)
}

func TestInitConfigCommand(t *testing.T) {
	e := setup(t)
	path := filepath.Join(e.dir, "nested", "config.yaml")

	out, err := run(t, env{config: path}, "init-config")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, env{config: path}, "init-config")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, env{config: path}, "init-config", "--force")
	assert.NoError(t, err)
}

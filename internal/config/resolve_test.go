package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackyter/stackyter/internal/errors"
	"github.com/stackyter/stackyter/internal/logger"
)

const homeDir = "/home/alice"

func homeFs(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if content != "" {
		writeFile(t, fs, filepath.Join(homeDir, ConfigFileName), content)
	}
	return fs
}

func TestResolve_DefaultProfileFillsDefaults(t *testing.T) {
	fs := homeFs(t, `
default_config: gpu
gpu:
  host: gpu.example.org
  jupyter: lab
  runbefore: "module load cuda,echo ready"
  colour: blue
cpu:
  host: cpu.example.org
`)
	log := logger.NewBufferLogger()

	r, err := Resolve(ResolveInput{
		Fs:  fs,
		Env: envMap(map[string]string{"HOME": homeDir}),
		CLI: Values{KeyUsername: "alice"},
		Log: log,
	})
	require.NoError(t, err)

	require.NotNil(t, r.Selection)
	assert.Equal(t, "gpu", r.Selection.Name)
	assert.Equal(t, ByDefaultKey, r.Selection.Reason)

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Equal(t, "gpu.example.org", opts.Host)
	assert.Equal(t, "alice", opts.Username)
	assert.Equal(t, "lab", opts.Jupyter)
	assert.Equal(t, []string{"module load cuda", "echo ready"}, opts.RunBefore)

	assert.Equal(t, SourceProfile, r.Source(KeyHost))
	assert.Equal(t, SourceCLI, r.Source(KeyUsername))
	assert.Equal(t, SourceDefault, r.Source(KeyWorkdir))

	assert.True(t, log.HasLevel("info"))
	assert.True(t, log.HasLevel("warn"), "unknown key 'colour' should be reported")
}

func TestResolve_ExplicitProfile(t *testing.T) {
	fs := homeFs(t, `
default_config: gpu
gpu:
  host: gpu.example.org
cpu:
  host: cpu.example.org
  workdir: /scratch
`)

	r, err := Resolve(ResolveInput{
		Fs:      fs,
		Env:     envMap(map[string]string{"HOME": homeDir}),
		Profile: "cpu",
		CLI:     Values{KeyWorkdir: "/home/alice"},
	})
	require.NoError(t, err)

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Equal(t, "cpu.example.org", opts.Host)
	assert.Equal(t, "/home/alice", opts.Workdir)
}

func TestResolve_NoFile(t *testing.T) {
	fs := homeFs(t, "")

	r, err := Resolve(ResolveInput{
		Fs:  fs,
		Env: envMap(map[string]string{"HOME": homeDir}),
		CLI: Values{KeyHost: "h"},
	})
	require.NoError(t, err)
	assert.Nil(t, r.Selection)

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Equal(t, "h", opts.Host)
	assert.Equal(t, DefaultJupyterMode, opts.Jupyter)
}

func TestResolve_ProfileWithoutFile(t *testing.T) {
	fs := homeFs(t, "")

	_, err := Resolve(ResolveInput{
		Fs:      fs,
		Env:     envMap(map[string]string{"HOME": homeDir}),
		Profile: "gpu",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "No (default) configuration file found")
}

func TestResolve_ExplicitConfigFile(t *testing.T) {
	fs := homeFs(t, "home:\n  host: from-home\n")
	writeFile(t, fs, "/work/team.yaml", "team:\n  host: from-team\n")

	r, err := Resolve(ResolveInput{
		Fs:         fs,
		Env:        envMap(map[string]string{"HOME": homeDir}),
		ConfigFile: "/work/team.yaml",
	})
	require.NoError(t, err)

	opts, err := r.Options()
	require.NoError(t, err)
	assert.Equal(t, "from-team", opts.Host)
	assert.Equal(t, SoleEntry, r.Selection.Reason)
}

func TestResolve_AmbiguousFile(t *testing.T) {
	fs := homeFs(t, twoProfiles)

	_, err := Resolve(ResolveInput{
		Fs:  fs,
		Env: envMap(map[string]string{"HOME": homeDir}),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestResolve_MissingEnvOverride(t *testing.T) {
	fs := homeFs(t, twoProfiles)

	_, err := Resolve(ResolveInput{
		Fs:  fs,
		Env: envMap(map[string]string{"HOME": homeDir, ConfigEnv: "/missing.yaml"}),
		CLI: Values{KeyHost: "h"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigEnv)
}

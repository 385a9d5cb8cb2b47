package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_Precedence(t *testing.T) {
	profile := Values{
		KeyHost:     "profile-host",
		KeyWorkdir:  "/data",
		KeyJupyter:  JupyterLab,
		KeyLogDir:   "/logs",
		"favourite": "ignored",
	}
	cli := Values{
		KeyHost:    "cli-host",
		KeyJupyter: JupyterNotebook,
	}

	r := Merge(DefaultValues(), profile, cli)

	// Explicit command line values win, even when equal to the default.
	assert.Equal(t, "cli-host", r.Values[KeyHost])
	assert.Equal(t, SourceCLI, r.Source(KeyHost))
	assert.Equal(t, JupyterNotebook, r.Values[KeyJupyter])
	assert.Equal(t, SourceCLI, r.Source(KeyJupyter))

	// Profile fills whatever the command line left alone.
	assert.Equal(t, "/data", r.Values[KeyWorkdir])
	assert.Equal(t, SourceProfile, r.Source(KeyWorkdir))
	assert.Equal(t, "/logs", r.Values[KeyLogDir])

	// Everything else stays at the default.
	assert.Equal(t, "", r.Values[KeyUsername])
	assert.Equal(t, SourceDefault, r.Source(KeyUsername))
	assert.Equal(t, false, r.Values[KeyTensorBoard])

	assert.Equal(t, []string{"favourite"}, r.Ignored)
	assert.NotContains(t, r.Values, "favourite")
}

func TestMerge_CLIAlwaysPreserved(t *testing.T) {
	defaults := DefaultValues()
	profile := Values{}
	for key := range defaults {
		profile[key] = "from-profile"
	}

	for key := range defaults {
		t.Run(key, func(t *testing.T) {
			cli := Values{key: "from-cli"}
			r := Merge(defaults, profile, cli)

			assert.Equal(t, "from-cli", r.Values[key])
			assert.Equal(t, SourceCLI, r.Source(key))
			for other := range defaults {
				if other != key {
					assert.Equal(t, "from-profile", r.Values[other])
				}
			}
		})
	}
}

func TestMerge_NoProfile(t *testing.T) {
	r := Merge(DefaultValues(), nil, Values{KeyHost: "h"})

	assert.Equal(t, "h", r.Values[KeyHost])
	assert.Equal(t, DefaultJupyterMode, r.Values[KeyJupyter])
	assert.Nil(t, r.Ignored)
	assert.Nil(t, r.Selection)
}

func TestResolved_Options(t *testing.T) {
	tests := []struct {
		name   string
		values Values
		check  func(t *testing.T, o Options)
	}{
		{
			name:   "comma separated hooks are split in order",
			values: Values{KeyRunBefore: "echo a,echo b"},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, []string{"echo a", "echo b"}, o.RunBefore)
			},
		},
		{
			name:   "list hooks pass through unchanged",
			values: Values{KeyRunAfter: []any{"export A=1,2", "echo $A"}},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, []string{"export A=1,2", "echo $A"}, o.RunAfter)
			},
		},
		{
			name:   "empty hooks",
			values: Values{},
			check: func(t *testing.T, o Options) {
				assert.Empty(t, o.RunBefore)
				assert.Empty(t, o.RunAfter)
			},
		},
		{
			name: "scalars",
			values: Values{
				KeyHost:        "h",
				KeyUsername:    "u",
				KeyWorkdir:     "~/w",
				KeyJupyter:     "lab",
				KeyMySetup:     "~/setup.sh",
				KeyCompression: true,
				KeyTensorBoard: "true",
				KeyLogDir:      "/logs",
			},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, Options{
					Host:        "h",
					Username:    "u",
					Workdir:     "~/w",
					Jupyter:     "lab",
					MySetup:     "~/setup.sh",
					RunBefore:   []string{},
					RunAfter:    []string{},
					Compression: true,
					TensorBoard: true,
					LogDir:      "/logs",
				}, o)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Merge(DefaultValues(), tt.values, nil)
			opts, err := r.Options()
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestResolved_OptionsBadType(t *testing.T) {
	r := Merge(DefaultValues(), Values{KeyCompression: "sometimes"}, nil)

	_, err := r.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid option value")
}

func TestOptions_Target(t *testing.T) {
	assert.Equal(t, "host", Options{Host: "host"}.Target())
	assert.Equal(t, "bob@host", Options{Host: "host", Username: "bob"}.Target())
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "default", SourceDefault.String())
	assert.Equal(t, "profile", SourceProfile.String())
	assert.Equal(t, "command line", SourceCLI.String())
}

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackyter/stackyter/internal/errors"
)

func loadString(t *testing.T, content string) *File {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg.yaml", content)
	f, err := LoadFile(fs, "/cfg.yaml")
	require.NoError(t, err)
	return f
}

const twoProfiles = `
a:
  host: host-a
b:
  host: host-b
`

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		request    string
		wantName   string
		wantHost   string
		wantReason SelectReason
		wantErr    string
	}{
		{
			name:       "default_config picks a",
			content:    twoProfiles + "default_config: a\n",
			wantName:   "a",
			wantHost:   "host-a",
			wantReason: ByDefaultKey,
		},
		{
			name:       "explicit b overrides default_config",
			content:    twoProfiles + "default_config: a\n",
			request:    "b",
			wantName:   "b",
			wantHost:   "host-b",
			wantReason: ByName,
		},
		{
			name:    "ambiguous without default_config",
			content: twoProfiles,
			wantErr: "default_config",
		},
		{
			name:       "sole entry is used",
			content:    "only:\n  host: lonely\n",
			wantName:   "only",
			wantHost:   "lonely",
			wantReason: SoleEntry,
		},
		{
			name:    "unknown explicit name",
			content: twoProfiles + "default_config: a\n",
			request: "c",
			wantErr: "Configuration 'c' does not exist",
		},
		{
			name:    "default_config naming a missing profile",
			content: twoProfiles + "default_config: z\n",
			wantErr: "'z'",
		},
		{
			name:    "empty file",
			content: "",
			wantErr: "empty",
		},
		{
			name:    "sole entry that is not a mapping",
			content: "host: lonely\n",
			wantErr: "not a configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadString(t, tt.content)

			sel, err := Select(f, tt.request)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, sel.Name)
			assert.Equal(t, tt.wantReason, sel.Reason)
			assert.Equal(t, tt.wantHost, sel.Values[KeyHost])
			assert.Equal(t, "/cfg.yaml", sel.Path)
		})
	}
}

func TestSelect_ErrorListsProfiles(t *testing.T) {
	f := loadString(t, twoProfiles)

	_, err := Select(f, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available configurations: a, b")
}

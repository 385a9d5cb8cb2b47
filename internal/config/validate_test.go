package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackyter/stackyter/internal/errors"
)

func TestValidate(t *testing.T) {
	valid := Options{Host: "h", Jupyter: JupyterNotebook}

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr string
	}{
		{name: "minimal options", mutate: func(o *Options) {}},
		{name: "lab mode", mutate: func(o *Options) { o.Jupyter = JupyterLab }},
		{
			name:    "missing host",
			mutate:  func(o *Options) { o.Host = "" },
			wantErr: "valid host name",
		},
		{
			name:    "blank host",
			mutate:  func(o *Options) { o.Host = "   " },
			wantErr: "valid host name",
		},
		{
			name:    "host with space",
			mutate:  func(o *Options) { o.Host = "my host" },
			wantErr: "whitespace",
		},
		{
			name:    "username with host baked in",
			mutate:  func(o *Options) { o.Username = "bob@h" },
			wantErr: "contains '@'",
		},
		{
			name:    "unknown jupyter mode",
			mutate:  func(o *Options) { o.Jupyter = "console" },
			wantErr: "isn't a Jupyter mode",
		},
		{
			name:    "tensorboard without logdir",
			mutate:  func(o *Options) { o.TensorBoard = true },
			wantErr: "logdir",
		},
		{
			name: "tensorboard with logdir",
			mutate: func(o *Options) {
				o.TensorBoard = true
				o.LogDir = "/logs"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			err := Validate(opts)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import "sort"

// Option keys. These are both the long flag names and the keys accepted
// inside a profile of the configuration file.
const (
	KeyHost        = "host"
	KeyUsername    = "username"
	KeyWorkdir     = "workdir"
	KeyJupyter     = "jupyter"
	KeyMySetup     = "mysetup"
	KeyRunBefore   = "runbefore"
	KeyRunAfter    = "runafter"
	KeyCompression = "compression"
	KeyTensorBoard = "tensorboard"
	KeyLogDir      = "logdir"
)

// Jupyter front ends that can be launched on the remote host.
const (
	JupyterNotebook = "notebook"
	JupyterLab      = "lab"
)

// DefaultJupyterMode is used when neither the command line nor a profile picks one.
const DefaultJupyterMode = JupyterNotebook

// JupyterModes lists the accepted values for the jupyter option.
var JupyterModes = []string{JupyterNotebook, JupyterLab}

// Options is the effective set of values used to build the remote session.
type Options struct {
	// Host is the SSH target. Can be a hostname or an alias from ~/.ssh/config.
	Host string `mapstructure:"host"`

	// Username is prefixed onto Host as user@host when set.
	Username string `mapstructure:"username"`

	// Workdir is the directory to cd into on the remote before anything else.
	Workdir string `mapstructure:"workdir"`

	// Jupyter is the front end to launch: "notebook" or "lab".
	Jupyter string `mapstructure:"jupyter"`

	// MySetup is a file on the remote host that gets sourced to set up the environment.
	MySetup string `mapstructure:"mysetup"`

	// RunBefore commands run before MySetup is sourced.
	// A comma-separated string is split into separate commands.
	RunBefore []string `mapstructure:"runbefore"`

	// RunAfter commands run after MySetup is sourced.
	RunAfter []string `mapstructure:"runafter"`

	// Compression adds -C to the ssh invocation.
	Compression bool `mapstructure:"compression"`

	// TensorBoard launches and tunnels a TensorBoard instance next to Jupyter.
	TensorBoard bool `mapstructure:"tensorboard"`

	// LogDir is the TensorBoard log directory on the remote host.
	LogDir string `mapstructure:"logdir"`
}

// Target returns the ssh destination, user@host when a username is set.
func (o Options) Target() string {
	if o.Username == "" {
		return o.Host
	}
	return o.Username + "@" + o.Host
}

// Values maps option keys to raw values, before they are decoded into Options.
// Every tier of the merge (defaults, profile, command line) has this shape.
type Values map[string]any

// Keys returns the keys in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultValues returns the built-in defaults for every option.
// This is the baseline that the command line and profiles are layered on.
func DefaultValues() Values {
	return Values{
		KeyHost:        "",
		KeyUsername:    "",
		KeyWorkdir:     "",
		KeyJupyter:     DefaultJupyterMode,
		KeyMySetup:     "",
		KeyRunBefore:   "",
		KeyRunAfter:    "",
		KeyCompression: false,
		KeyTensorBoard: false,
		KeyLogDir:      "",
	}
}

// Source records where an option's effective value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceProfile
	SourceCLI
)

func (s Source) String() string {
	switch s {
	case SourceProfile:
		return "profile"
	case SourceCLI:
		return "command line"
	default:
		return "default"
	}
}

package script

import "time"

// Kind identifies a step type.
type Kind int

const (
	KindConnect Kind = iota
	KindCd
	KindRun
	KindSource
	KindLaunch
	KindPoll
	KindToken
	KindPrint
	KindForeground
	KindCleanup
	KindEnd
)

var kindNames = map[Kind]string{
	KindConnect:    "connect",
	KindCd:         "cd",
	KindRun:        "run",
	KindSource:     "source",
	KindLaunch:     "launch",
	KindPoll:       "poll",
	KindToken:      "token",
	KindPrint:      "print",
	KindForeground: "foreground",
	KindCleanup:    "cleanup",
	KindEnd:        "end",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Step is one statement of the remote session.
type Step interface {
	Kind() Kind
}

// Forward is a local port forwarded to a port on the remote loopback.
type Forward struct {
	Local  int
	Remote int
}

// ConnectStep opens the ssh session. Every later step runs on the remote host.
type ConnectStep struct {
	Target      string
	Compression bool
	Forwards    []Forward
}

// CdStep changes to the remote working directory.
type CdStep struct {
	Dir string
}

// Hook says whether a RunStep happens before or after the setup file is sourced.
type Hook int

const (
	HookBefore Hook = iota
	HookAfter
)

// RunStep is a user command run as is.
type RunStep struct {
	Command string
	Hook    Hook
}

// SourceStep sources the remote setup file.
type SourceStep struct {
	Path string
}

// Tool is a server launched in the background on the remote host.
type Tool int

const (
	ToolJupyter Tool = iota
	ToolTensorBoard
)

func (t Tool) String() string {
	if t == ToolTensorBoard {
		return "tensorboard"
	}
	return "jupyter"
}

// LaunchStep starts a server in the background.
type LaunchStep struct {
	Tool Tool
	// Mode is the jupyter front end ("notebook" or "lab").
	Mode string
	Port int
	// LogDir is only used by TensorBoard.
	LogDir string
}

// PollStep waits until a Jupyter server is listening on Port.
type PollStep struct {
	Port     int
	Interval time.Duration
}

// TokenStep extracts the access token of the server listening on Port.
type TokenStep struct {
	Port int
}

// PrintStep shows the local URL of a tunnelled server.
type PrintStep struct {
	Tool      Tool
	LocalPort int
	// WithToken appends the token extracted by a TokenStep.
	WithToken bool
}

// ForegroundStep brings the backgrounded Jupyter job back to the foreground,
// keeping the session attached while the server runs.
type ForegroundStep struct{}

// CleanupStep force-kills leftover server processes once the foreground job exits.
type CleanupStep struct {
	Tool Tool
}

// EndStep closes the heredoc.
type EndStep struct{}

func (ConnectStep) Kind() Kind    { return KindConnect }
func (CdStep) Kind() Kind         { return KindCd }
func (RunStep) Kind() Kind        { return KindRun }
func (SourceStep) Kind() Kind     { return KindSource }
func (LaunchStep) Kind() Kind     { return KindLaunch }
func (PollStep) Kind() Kind       { return KindPoll }
func (TokenStep) Kind() Kind      { return KindToken }
func (PrintStep) Kind() Kind      { return KindPrint }
func (ForegroundStep) Kind() Kind { return KindForeground }
func (CleanupStep) Kind() Kind    { return KindCleanup }
func (EndStep) Kind() Kind        { return KindEnd }

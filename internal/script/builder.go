// Package script turns resolved options into the ssh session that starts
// Jupyter on the remote host.
//
// Building and rendering are separate: Build produces an ordered list of
// typed steps, and a Renderer serialises them into shell text. All quoting
// and heredoc escaping lives in the renderer.
package script

import (
	"strings"
	"time"

	"github.com/stackyter/stackyter/internal/config"
	"github.com/stackyter/stackyter/internal/errors"
)

// PollInterval is how long the remote readiness loop sleeps between checks.
const PollInterval = time.Second

// Script is an ordered, immutable list of steps.
type Script struct {
	steps []Step
	ports Ports
}

// Steps returns a copy of the steps in execution order.
func (s *Script) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Kinds returns the kind of every step in order.
func (s *Script) Kinds() []Kind {
	kinds := make([]Kind, len(s.steps))
	for i, st := range s.steps {
		kinds[i] = st.Kind()
	}
	return kinds
}

// Ports returns the remote ports the script was built with.
func (s *Script) Ports() Ports {
	return s.ports
}

// Build validates opts and assembles the session steps.
func Build(opts config.Options, ports Ports) (*Script, error) {
	if err := config.Validate(opts); err != nil {
		return nil, err
	}
	if err := checkHooks("runbefore", opts.RunBefore); err != nil {
		return nil, err
	}
	if err := checkHooks("runafter", opts.RunAfter); err != nil {
		return nil, err
	}

	b := &builder{}

	forwards := []Forward{{Local: LocalJupyterPort, Remote: ports.Jupyter}}
	if opts.TensorBoard {
		forwards = append(forwards, Forward{Local: LocalTensorBoardPort, Remote: ports.TensorBoard})
	}
	b.add(ConnectStep{
		Target:      opts.Target(),
		Compression: opts.Compression,
		Forwards:    forwards,
	})

	if opts.Workdir != "" {
		b.add(CdStep{Dir: opts.Workdir})
	}

	for _, cmd := range opts.RunBefore {
		b.add(RunStep{Command: cmd, Hook: HookBefore})
	}

	if opts.MySetup != "" {
		b.add(SourceStep{Path: opts.MySetup})
	}

	for _, cmd := range opts.RunAfter {
		b.add(RunStep{Command: cmd, Hook: HookAfter})
	}

	b.add(LaunchStep{Tool: ToolJupyter, Mode: opts.Jupyter, Port: ports.Jupyter})
	if opts.TensorBoard {
		b.add(LaunchStep{Tool: ToolTensorBoard, Port: ports.TensorBoard, LogDir: opts.LogDir})
	}

	b.add(PollStep{Port: ports.Jupyter, Interval: PollInterval})
	b.add(TokenStep{Port: ports.Jupyter})

	b.add(PrintStep{Tool: ToolJupyter, LocalPort: LocalJupyterPort, WithToken: true})
	if opts.TensorBoard {
		b.add(PrintStep{Tool: ToolTensorBoard, LocalPort: LocalTensorBoardPort})
	}

	b.add(ForegroundStep{})

	b.add(CleanupStep{Tool: ToolJupyter})
	if opts.TensorBoard {
		b.add(CleanupStep{Tool: ToolTensorBoard})
	}

	b.add(EndStep{})

	return &Script{steps: b.steps, ports: ports}, nil
}

type builder struct {
	steps []Step
}

func (b *builder) add(s Step) {
	b.steps = append(b.steps, s)
}

// checkHooks rejects commands that would close the heredoc early.
func checkHooks(option string, cmds []string) error {
	for _, cmd := range cmds {
		for _, line := range strings.Split(cmd, "\n") {
			if strings.TrimSpace(line) == HeredocDelimiter {
				return errors.Newf(errors.ErrConfig,
					"That line would end the remote session early. Reword the command.",
					"A %s command contains a line that is just '%s'", option, HeredocDelimiter)
			}
		}
	}
	return nil
}

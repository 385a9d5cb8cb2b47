package script

import (
	"fmt"
	"strings"

	"github.com/stackyter/stackyter/internal/util"
)

// HeredocDelimiter opens and closes the remote session body.
const HeredocDelimiter = "EOF"

// jupyterList is the command used to find running servers on the remote.
const jupyterList = "jupyter notebook list"

// Renderer serialises a Script into shell lines.
type Renderer interface {
	Render(s *Script) []string
}

// Text renders s with r and joins the lines with newlines.
func Text(r Renderer, s *Script) string {
	return strings.Join(r.Render(s), "\n")
}

// Bash renders a script as a local ssh invocation whose heredoc body is run
// by a bash-compatible remote shell.
//
// The heredoc delimiter is unquoted, so the local shell expands $, ` and \
// inside the body. Everything meant for the remote shell is escaped here so
// that expansion happens on the remote host instead.
type Bash struct{}

// Render implements Renderer.
func (r Bash) Render(s *Script) []string {
	var lines []string
	for _, st := range s.steps {
		lines = append(lines, r.step(st)...)
	}
	return lines
}

func (r Bash) step(st Step) []string {
	switch st := st.(type) {
	case ConnectStep:
		return []string{r.connect(st)}
	case CdStep:
		return []string{"cd " + remoteWord(st.Dir)}
	case RunStep:
		return []string{EscapeHeredoc(st.Command)}
	case SourceStep:
		return []string{"source " + remoteWord(st.Path)}
	case LaunchStep:
		return []string{r.launch(st)}
	case PollStep:
		return r.poll(st)
	case TokenStep:
		return r.token(st)
	case PrintStep:
		return []string{r.print(st)}
	case ForegroundStep:
		return []string{"fg"}
	case CleanupStep:
		return []string{fmt.Sprintf("kill -9 \\`ps | grep %s | awk '{print \\$1}'\\`", st.Tool)}
	case EndStep:
		return []string{HeredocDelimiter}
	default:
		panic(fmt.Sprintf("script: no rendering for %T", st))
	}
}

func (r Bash) connect(st ConnectStep) string {
	parts := []string{"ssh", "-Y", "-tt"}
	if st.Compression {
		parts = append(parts, "-C")
	}
	for _, fw := range st.Forwards {
		parts = append(parts, "-L", fmt.Sprintf("%d:localhost:%d", fw.Local, fw.Remote))
	}
	parts = append(parts, util.ShellQuote(st.Target), "<<", HeredocDelimiter)
	return strings.Join(parts, " ")
}

func (r Bash) launch(st LaunchStep) string {
	if st.Tool == ToolTensorBoard {
		return fmt.Sprintf("tensorboard --logdir=%s --port=%d &", remoteWord(st.LogDir), st.Port)
	}
	return fmt.Sprintf("jupyter %s --no-browser --port=%d --ip=127.0.0.1 &", st.Mode, st.Port)
}

// poll spins until the server on st.Port shows up in the server list.
// There is no timeout: a server that never starts keeps the loop going.
func (r Bash) poll(st PollStep) []string {
	secs := int(st.Interval.Seconds())
	if secs < 1 {
		secs = 1
	}
	return []string{
		fmt.Sprintf("export servers=\\`%s\\`", jupyterList),
		fmt.Sprintf("while [[ \\$servers != *'%s'* ]];do sleep %d;servers=\\`%s\\`;echo waiting...;done",
			listenAddr(st.Port), secs, jupyterList),
	}
}

// token keeps the "?token=..." part of the matching server URL in $TOKEN.
func (r Bash) token(st TokenStep) []string {
	return []string{
		fmt.Sprintf("export servers=\\`%s | grep '%s'\\`", jupyterList, listenAddr(st.Port)),
		"export TOKEN=\\`echo \\$servers | sed 's/\\//\\n/g' | grep token | sed 's/ /\\n/g' | grep token\\`",
	}
}

func (r Bash) print(st PrintStep) string {
	url := fmt.Sprintf("http://localhost:%d/", st.LocalPort)
	if st.Tool == ToolTensorBoard {
		return fmt.Sprintf("printf ' TensorBoard \\x1B[01;92m       '\"%s\"' \\x1B[0m\\n\\n'", url)
	}
	if st.WithToken {
		url += "\\$TOKEN"
	}
	return fmt.Sprintf("printf '\\n Copy/paste this URL into your browser to run the notebook locally \\n\\x1B[01;92m       '\"%s\"' \\x1B[0m\\n\\n'", url)
}

// listenAddr is the address prefix Jupyter lists for a server bound to loopback.
func listenAddr(port int) string {
	return fmt.Sprintf("127.0.0.1:%d/", port)
}

// EscapeHeredoc escapes the characters the local shell would otherwise
// expand inside an unquoted heredoc.
func EscapeHeredoc(s string) string {
	return heredocEscaper.Replace(s)
}

var heredocEscaper = strings.NewReplacer(
	`\`, `\\`,
	`$`, `\$`,
	"`", "\\`",
)

// remoteWord prepares a path for the remote shell. ~ and $VARS still expand
// on the remote host.
func remoteWord(s string) string {
	return EscapeHeredoc(util.QuoteIfNeeded(s))
}

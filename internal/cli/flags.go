package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stackyter/stackyter/internal/config"
)

// rootFlags holds the flags that steer the tool itself. Flags that are also
// configuration options are read back through collectOptionFlags so that
// only explicitly given values override a profile.
type rootFlags struct {
	profile    string
	configFile string
	showConfig bool
	dryRun     bool
	verbose    bool
	noColor    bool

	host        string
	username    string
	workdir     string
	jupyter     jupyterFlag
	mySetup     string
	runBefore   string
	runAfter    string
	compression bool
	tensorBoard bool
	logDir      string
}

// addRootFlags registers every root flag on cmd. Option flags are named after
// their configuration keys.
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	fs := cmd.Flags()

	fs.StringVarP(&f.profile, "config", "c", "", "name of the configuration to use from the configuration file")
	fs.StringVarP(&f.configFile, "configfile", "f", "", "configuration file to use instead of ~/"+config.ConfigFileName)
	fs.BoolVarP(&f.showConfig, "showconfig", "S", false, "print the configuration file and exit")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the generated script instead of running it")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print debug output")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	fs.StringVarP(&f.host, config.KeyHost, "H", "", "remote host, or an alias from ~/.ssh/config")
	fs.StringVarP(&f.username, config.KeyUsername, "u", "", "user name on the remote host")
	fs.StringVarP(&f.workdir, config.KeyWorkdir, "w", "", "directory to start Jupyter in on the remote host")
	fs.VarP(&f.jupyter, config.KeyJupyter, "j", "Jupyter front end: "+strings.Join(config.JupyterModes, " or "))
	fs.StringVar(&f.mySetup, config.KeyMySetup, "", "remote file to source before starting Jupyter")
	fs.StringVar(&f.runBefore, config.KeyRunBefore, "", "comma-separated commands to run before sourcing --mysetup")
	fs.StringVar(&f.runAfter, config.KeyRunAfter, "", "comma-separated commands to run after sourcing --mysetup")
	fs.BoolVarP(&f.compression, config.KeyCompression, "C", false, "compress the ssh connection")
	fs.BoolVarP(&f.tensorBoard, config.KeyTensorBoard, "T", false, "also start TensorBoard and tunnel it to localhost:20002")
	fs.StringVarP(&f.logDir, config.KeyLogDir, "l", "", "TensorBoard log directory on the remote host")
}

// collectOptionFlags returns the configuration options that were explicitly
// set on the command line. A flag given with its default value still counts.
func collectOptionFlags(fs *pflag.FlagSet) config.Values {
	known := config.DefaultValues()
	cli := config.Values{}

	fs.Visit(func(f *pflag.Flag) {
		if _, ok := known[f.Name]; !ok {
			return
		}
		if f.Value.Type() == "bool" {
			v, err := fs.GetBool(f.Name)
			if err == nil {
				cli[f.Name] = v
			}
			return
		}
		cli[f.Name] = f.Value.String()
	})

	return cli
}

// jupyterFlag only accepts a known Jupyter front end, so a bad value fails
// while parsing flags.
type jupyterFlag string

func (j *jupyterFlag) String() string {
	return string(*j)
}

func (j *jupyterFlag) Set(v string) error {
	if !slices.Contains(config.JupyterModes, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(config.JupyterModes, ", "))
	}
	*j = jupyterFlag(v)
	return nil
}

func (j *jupyterFlag) Type() string {
	return "mode"
}

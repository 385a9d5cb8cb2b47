package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stackyter/stackyter/internal/errors"
)

const (
	// ConfigFileName is the default config file name, looked up in $HOME.
	ConfigFileName = ".stackyter-config.yaml"

	// ConfigEnv overrides the location of the default config file.
	ConfigEnv = "STACKYTERCONFIG"

	// DefaultConfigKey is the reserved top-level key naming the profile to
	// use when none is requested.
	DefaultConfigKey = "default_config"
)

// LookupEnv reads an environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// File is a loaded configuration file.
type File struct {
	// Path is where the file was read from.
	Path string

	// Raw is the file content, byte for byte.
	Raw []byte

	// Keys are the top-level keys in document order, default_config included.
	Keys []string

	// DefaultConfig is the value of the default_config key, if any.
	DefaultConfig string

	// profiles holds every top-level entry that is a mapping, keyed by lowercased name.
	profiles map[string]Values
}

// ProfileNames returns the profile names in document order.
func (f *File) ProfileNames() []string {
	names := make([]string, 0, len(f.Keys))
	for _, k := range f.Keys {
		if k == DefaultConfigKey {
			continue
		}
		names = append(names, k)
	}
	return names
}

// Profile returns the values of the named profile.
func (f *File) Profile(name string) (Values, bool) {
	p, ok := f.profiles[strings.ToLower(name)]
	return p, ok
}

// Locate finds the configuration file to use, in this order:
//  1. explicit path (from --configfile), which must exist
//  2. $STACKYTERCONFIG, which must exist when set
//  3. $HOME/.stackyter-config.yaml
//
// Returns an empty path when no file is found and none was required.
func Locate(fs afero.Fs, env LookupEnv, explicit string) (string, error) {
	if explicit != "" {
		if err := mustExist(fs, explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path given to --configfile.")
		}
		return explicit, nil
	}

	if path, ok := env(ConfigEnv); ok && path != "" {
		if err := mustExist(fs, path); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("$%s is defined but the file does not exist: %s", ConfigEnv, path),
				fmt.Sprintf("Point $%s at an existing file, or unset it to use ~/%s.", ConfigEnv, ConfigFileName))
		}
		return path, nil
	}

	home, ok := env("HOME")
	if !ok || home == "" {
		return "", nil
	}

	path := filepath.Join(home, ConfigFileName)
	if exists, _ := afero.Exists(fs, path); exists {
		return path, nil
	}

	return "", nil
}

func mustExist(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if !exists {
		return &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return nil
}

// LoadFile reads and parses the configuration file at path.
func LoadFile(fs afero.Fs, path string) (*File, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Check the path, or unset $"+ConfigEnv)
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check file permissions on "+path)
	}

	keys, err := topLevelKeys(raw)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file is valid YAML")
	}

	f := &File{
		Path:          path,
		Raw:           raw,
		Keys:          keys,
		DefaultConfig: v.GetString(DefaultConfigKey),
		profiles:      make(map[string]Values),
	}

	for _, key := range keys {
		if key == DefaultConfigKey {
			continue
		}
		sub := v.Sub(key)
		if sub == nil {
			continue
		}
		f.profiles[strings.ToLower(key)] = Values(sub.AllSettings())
	}

	return f, nil
}

// topLevelKeys returns the keys of the top-level mapping in document order.
// viper hands back maps, so it can't tell us the order the user wrote them in.
func topLevelKeys(raw []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping of configuration names, got %s", nodeKind(root.Kind))
	}

	keys := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	return keys, nil
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a single value"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "something else"
	}
}

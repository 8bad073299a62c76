package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DOTR_"

// Prompt modes
const (
	AssumeAsk = "ask"
	AssumeYes = "yes"
	AssumeNo  = "no"
)

// Settings is the resolved configuration
type Settings struct {
	StorageDir string         `koanf:"storage_dir"`
	BaseDir    string         `koanf:"base_dir"`
	Git        GitSettings    `koanf:"git"`
	Prompt     PromptSettings `koanf:"prompt"`

	// ConfigFile is the user file that was loaded, if any
	ConfigFile string `koanf:"-"`
}

// GitSettings configures the git collaborator
type GitSettings struct {
	Binary        string `koanf:"binary"`
	CommitMessage string `koanf:"commit_message"`
	Remote        string `koanf:"remote"`
}

// PromptSettings configures the missing-file policy
type PromptSettings struct {
	Assume string `koanf:"assume"`
}

// LoadOptions tweaks where settings come from
type LoadOptions struct {
	// ConfigDir defaults to $XDG_CONFIG_HOME/dotr
	ConfigDir string

	// Overrides are applied last, keyed by dotted setting name
	Overrides map[string]interface{}
}

// sectioned env keys: DOTR_GIT_COMMIT_MESSAGE -> git.commit_message
var envSections = []string{"git_", "prompt_"}

// Load resolves settings from all layers
func Load(opts LoadOptions) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	// 2. User file
	xdg.Reload()
	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, paths.DotrDirName)
	}
	userFile := ""
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
	} {
		path := filepath.Join(configDir, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path)
		}
		userFile = path
		break
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply setting overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       trimStringHook(),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	s.ConfigFile = userFile

	if err := s.finalize(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("storage_dir", s.StorageDir).
		Str("base_dir", s.BaseDir).
		Str("config_file", s.ConfigFile).
		Msg("Settings loaded")
	return &s, nil
}

// envKey maps DOTR_STORAGE_DIR to storage_dir and DOTR_GIT_REMOTE to git.remote
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range envSections {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

func trimStringHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

// finalize fills derived defaults and validates
func (s *Settings) finalize() error {
	if s.StorageDir == "" {
		s.StorageDir = paths.DefaultStorageRoot()
	}
	if s.BaseDir == "" {
		home, err := paths.GetHomeDirectory()
		if err != nil {
			return err
		}
		s.BaseDir = home
	}

	var err error
	if s.StorageDir, err = paths.NormalizePath(s.StorageDir); err != nil {
		return err
	}
	if s.BaseDir, err = paths.NormalizePath(s.BaseDir); err != nil {
		return err
	}

	if s.Git.Binary == "" {
		s.Git.Binary = "git"
	}
	if s.Git.CommitMessage == "" {
		return errors.New(errors.ErrConfigParse, "git.commit_message cannot be empty")
	}

	s.Prompt.Assume = strings.ToLower(s.Prompt.Assume)
	switch s.Prompt.Assume {
	case AssumeAsk, AssumeYes, AssumeNo:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"prompt.assume must be one of ask, yes or no, got %q", s.Prompt.Assume)
	}
	return nil
}

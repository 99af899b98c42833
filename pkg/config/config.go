// Package config loads daybook settings from .daybook.yaml, DAYBOOK_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the data directory used when none is configured.
	DefaultPath = "~/.daybook"
	// DefaultDebounce is the quiet period before the editor autosaves.
	DefaultDebounce = 500 * time.Millisecond

	envPrefix     = "DAYBOOK"
	configName    = ".daybook" // .yaml is implicit
	audioResource = "sounds/background.m4a"
	logFileName   = "daybook.log"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Log levels accepted by log.level.
var logLevels = []interface{}{"trace", "debug", "info", "warn", "error", "disabled"}

// Settings is the effective daybook configuration.
type Settings struct {
	Path   string         `mapstructure:"path" yaml:"path"`
	Editor EditorSettings `mapstructure:"editor" yaml:"editor"`
	Audio  AudioSettings  `mapstructure:"audio" yaml:"audio"`
	Log    LogSettings    `mapstructure:"log" yaml:"log"`
	Keys   KeySettings    `mapstructure:"keys" yaml:"keys"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// EditorSettings tune the journal editor.
type EditorSettings struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// AudioSettings locate the ambient audio resource and the player used for it.
// Command is an argv template; "{file}" is replaced by File. An empty Command
// picks the first known player on PATH.
type AudioSettings struct {
	File    string   `mapstructure:"file" yaml:"file"`
	Command []string `mapstructure:"command" yaml:"command,omitempty"`
}

// LogSettings configure the rotating log file.
type LogSettings struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// KeySettings lists the keystrokes bound to each editor action.
type KeySettings struct {
	Focus      []string `mapstructure:"focus" yaml:"focus"`
	Blur       []string `mapstructure:"blur" yaml:"blur"`
	Save       []string `mapstructure:"save" yaml:"save"`
	Clear      []string `mapstructure:"clear" yaml:"clear"`
	Fullscreen []string `mapstructure:"fullscreen" yaml:"fullscreen"`
	Playback   []string `mapstructure:"playback" yaml:"playback"`
	Quit       []string `mapstructure:"quit" yaml:"quit"`
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeySettings {
	return KeySettings{
		Focus:      []string{"tab"},
		Blur:       []string{"esc"},
		Save:       []string{"ctrl+s", "super+s", "meta+s"},
		Clear:      []string{"ctrl+backspace", "super+backspace", "meta+backspace"},
		Fullscreen: []string{"ctrl+shift+f"},
		Playback:   []string{"ctrl+m", "alt+m"},
		Quit:       []string{"ctrl+c", "ctrl+q"},
	}
}

// BasePath implements store.Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Path, validation.Required),
	); err != nil {
		return err
	}
	if err := s.Editor.Validate(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if err := s.Audio.Validate(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	if err := s.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := s.Keys.Validate(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// Validate validates the editor settings.
func (e *EditorSettings) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Debounce, validation.Required, validation.Min(10*time.Millisecond), validation.Max(time.Minute)),
	)
}

// Validate validates the audio settings.
func (a *AudioSettings) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.File, validation.Required),
		validation.Field(&a.Command, validation.Each(validation.Required)),
	)
}

// Validate validates the log settings.
func (l *LogSettings) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.File, validation.Required),
		validation.Field(&l.Level, validation.Required, validation.In(logLevels...)),
	)
}

// Validate validates the key bindings.
func (k *KeySettings) Validate() error {
	bound := validation.Each(validation.Required)
	return validation.ValidateStruct(k,
		validation.Field(&k.Focus, validation.Required, bound),
		validation.Field(&k.Blur, validation.Required, bound),
		validation.Field(&k.Save, validation.Required, bound),
		validation.Field(&k.Clear, validation.Required, bound),
		validation.Field(&k.Fullscreen, validation.Required, bound),
		validation.Field(&k.Playback, validation.Required, bound),
		validation.Field(&k.Quit, validation.Required, bound),
	)
}

// Options control where Load looks for configuration.
type Options struct {
	// ConfigPaths are searched for .daybook.yaml in order. When empty,
	// DAYBOOK_CONFIG_PATH, the working directory and $HOME are searched.
	ConfigPaths []string
	// EnvFile is loaded into the environment before reading settings.
	// Missing files are ignored. Defaults to ".env".
	EnvFile string
}

// Load reads, resolves and validates Settings.
func Load(opts Options) (*Settings, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("editor.debounce", DefaultDebounce)
	v.SetDefault("audio.file", "")
	v.SetDefault("audio.command", []string{})
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	keys := DefaultKeys()
	v.SetDefault("keys.focus", keys.Focus)
	v.SetDefault("keys.blur", keys.Blur)
	v.SetDefault("keys.save", keys.Save)
	v.SetDefault("keys.clear", keys.Clear)
	v.SetDefault("keys.fullscreen", keys.Fullscreen)
	v.SetDefault("keys.playback", keys.Playback)
	v.SetDefault("keys.quit", keys.Quit)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	paths := opts.ConfigPaths
	if len(paths) == 0 {
		if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
			paths = append(paths, override)
		}
		paths = append(paths, "./")
		if home, err := homedir.Dir(); err == nil {
			paths = append(paths, home)
		}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	s.File = v.ConfigFileUsed()

	if err := s.resolve(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// resolve expands ~ and fills paths derived from the data directory.
func (s *Settings) resolve() error {
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return fmt.Errorf("config: expand path: %w", err)
	}
	s.Path = filepath.Clean(path)

	if s.Audio.File == "" {
		s.Audio.File = filepath.Join(s.Path, audioResource)
	} else if s.Audio.File, err = homedir.Expand(s.Audio.File); err != nil {
		return fmt.Errorf("config: expand audio.file: %w", err)
	}

	if s.Log.File == "" {
		s.Log.File = filepath.Join(s.Path, logFileName)
	} else if s.Log.File, err = homedir.Expand(s.Log.File); err != nil {
		return fmt.Errorf("config: expand log.file: %w", err)
	}
	return nil
}

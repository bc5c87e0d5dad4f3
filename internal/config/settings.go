// internal/config/settings.go
//
// Game settings file (json, yaml or toml) read with viper:
//
//	{ "words": ["crane", ...], "wordsFile": "words.txt", "maxRounds": 6, "caseSensitive": false }
//
// words and wordsFile are merged. A missing settings file falls back to the
// embedded dictionary with default rules. A relative wordsFile is resolved
// against the settings file's directory.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-tracker/internal/game"
	"github.com/robalobadob/wordle-tracker/internal/words"
)

const defaultMaxRounds = 6

// Settings mirrors the settings file.
type Settings struct {
	Words         []string `mapstructure:"words"`
	WordsFile     string   `mapstructure:"wordsFile"`
	MaxRounds     int      `mapstructure:"maxRounds"`
	CaseSensitive bool     `mapstructure:"caseSensitive"`
}

// SettingsSource reads, and optionally watches, one settings file.
type SettingsSource struct {
	path   string
	v      *viper.Viper
	loaded bool
}

// NewSettingsSource prepares a source for path; nothing is read yet.
func NewSettingsSource(path string) *SettingsSource {
	v := viper.New()
	v.SetDefault("maxRounds", defaultMaxRounds)
	v.SetDefault("caseSensitive", false)
	return &SettingsSource{path: path, v: v}
}

// LoadSettings is a one-shot NewSettingsSource(path).Load().
func LoadSettings(path string) (*game.Config, error) {
	return NewSettingsSource(path).Load()
}

// Load reads the settings file and builds an immutable game config.
func (s *SettingsSource) Load() (*game.Config, error) {
	if s.path != "" {
		if _, err := os.Stat(s.path); err == nil {
			s.v.SetConfigFile(s.path)
			if err := s.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read settings %s: %w", s.path, err)
			}
			s.loaded = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat settings %s: %w", s.path, err)
		} else {
			log.Warn().Str("path", s.path).Msg("settings file not found, using embedded dictionary")
		}
	}
	return s.build()
}

// Watch calls onChange with a freshly built config whenever the settings file
// changes. Invalid edits are logged and skipped; the previous config stays live.
// Watch is a no-op when Load found no file.
func (s *SettingsSource) Watch(onChange func(*game.Config)) {
	if !s.loaded {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := s.build()
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name).Str("op", e.Op.String()).Msg("settings reload rejected")
			return
		}
		log.Info().Str("file", e.Name).Int("words", len(cfg.Words())).Msg("settings reloaded")
		onChange(cfg)
	})
	s.v.WatchConfig()
}

func (s *SettingsSource) build() (*game.Config, error) {
	var st Settings
	if err := s.v.Unmarshal(&st); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	list := append([]string(nil), st.Words...)
	switch {
	case st.WordsFile != "":
		path := st.WordsFile
		if !filepath.IsAbs(path) && s.loaded {
			path = filepath.Join(filepath.Dir(s.path), path)
		}
		more, err := words.Load(path)
		if err != nil {
			return nil, err
		}
		list = append(list, more...)
	case len(list) == 0 && !s.loaded:
		def, err := words.Load("")
		if err != nil {
			return nil, fmt.Errorf("load embedded words: %w", err)
		}
		list = def
	}

	if ls := words.Lengths(list); len(ls) > 1 {
		return nil, fmt.Errorf("dictionary mixes word lengths %v: %w", ls, game.ErrConfiguration)
	}
	return game.NewConfig(list, st.MaxRounds, st.CaseSensitive)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var cfgFile = "chessgame/config.json"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

func invalid(format string, args ...interface{}) error {
	return &InvalidConfig{fmt.Sprintf(format, args...)}
}

type ServerConfig struct {
	Addr        string `json:"addr"`
	WebDir      string `json:"web_dir"`
	OpenBrowser bool   `json:"open_browser"`
}

type ClockConfig struct {
	// TurnSeconds is the budget per move; 0 disables the clock.
	TurnSeconds int `json:"turn_seconds"`
}

func (c ClockConfig) Enabled() bool { return c.TurnSeconds > 0 }

func (c ClockConfig) Turn() time.Duration {
	return time.Duration(c.TurnSeconds) * time.Second
}

type RecordsConfig struct {
	// Path of the players file; empty means the XDG data dir.
	Path        string `json:"path"`
	WhitePlayer string `json:"white_player"`
	BlackPlayer string `json:"black_player"`
}

type ConfigColors struct {
	LightSquare int `json:"light_square"`
	DarkSquare  int `json:"dark_square"`
	WhitePiece  int `json:"white_piece"`
	BlackPiece  int `json:"black_piece"`
	Selected    int `json:"selected"`
	Destination int `json:"destination"`
	Check       int `json:"check"`
	Cursor      int `json:"cursor"`
}

type ConfigSymbols struct {
	Destination rune `json:"destination"`
	Empty       rune `json:"empty"`
}

type Theme struct {
	UnicodePieces bool          `json:"unicode_pieces"`
	Colors        ConfigColors  `json:"colors"`
	Symbols       ConfigSymbols `json:"symbols"`
}

type Config struct {
	Server  ServerConfig  `json:"server"`
	Clock   ClockConfig   `json:"clock"`
	Records RecordsConfig `json:"records"`
	Theme   Theme         `json:"theme"`
}

// Load overlays the user's config file, if any, on DefaultConfig.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		cfg := DefaultConfig
		return &cfg, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs error
	if c.Server.Addr == "" {
		errs = multierror.Append(errs, invalid("server.addr is empty"))
	}
	if c.Clock.TurnSeconds < 0 || c.Clock.TurnSeconds > 3600 {
		errs = multierror.Append(errs, invalid("clock.turn_seconds %d not in 0..3600", c.Clock.TurnSeconds))
	}
	if c.Records.WhitePlayer != "" && c.Records.WhitePlayer == c.Records.BlackPlayer {
		errs = multierror.Append(errs, invalid("records: white and black player are both %q", c.Records.WhitePlayer))
	}
	colors := map[string]int{
		"light_square": c.Theme.Colors.LightSquare,
		"dark_square":  c.Theme.Colors.DarkSquare,
		"white_piece":  c.Theme.Colors.WhitePiece,
		"black_piece":  c.Theme.Colors.BlackPiece,
		"selected":     c.Theme.Colors.Selected,
		"destination":  c.Theme.Colors.Destination,
		"check":        c.Theme.Colors.Check,
		"cursor":       c.Theme.Colors.Cursor,
	}
	for _, name := range []string{"light_square", "dark_square", "white_piece", "black_piece", "selected", "destination", "check", "cursor"} {
		if v := colors[name]; v < 0 || v > 255 {
			errs = multierror.Append(errs, invalid("theme.colors.%s %d not in 0..255", name, v))
		}
	}
	for _, r := range []rune{c.Theme.Symbols.Destination, c.Theme.Symbols.Empty} {
		if !unicode.IsPrint(r) {
			errs = multierror.Append(errs, invalid("theme symbol %U is not printable", r))
		}
	}
	return errs
}

func (c *Config) Save() error {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "resolve config path")
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0o664); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

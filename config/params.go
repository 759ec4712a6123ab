package config

import (
	"time"

	"github.com/flokiorg/tpinlock/settings"
)

type AppConfig struct {
	ConfigFile string `short:"c" long:"config" description:"Path to configuration file"`
	Datadir    string `short:"d" long:"datadir" description:"Directory holding settings, pins and logs"`
	LogLevel   string `long:"loglevel" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" choice:"panic" default:"info" description:"Logging level for tpinlock output"`
	Version    bool   `short:"v" description:"Print version"`

	Store        string        `long:"store" choice:"file" choice:"redis" choice:"memory" default:"file" description:"Backend for settings and pins"`
	RedisAddr    string        `long:"redisaddr" default:"127.0.0.1:6379" description:"Redis address when --store=redis"`
	RedisPrefix  string        `long:"redisprefix" default:"tpl" description:"Prefix of the redis keys"`
	StoreTimeout time.Duration `long:"storetimeout" default:"5s" description:"Timeout of the startup store check. Valid time units are {ms, s, m, h}."`

	Key      string `short:"k" long:"key" default:"default" description:"Key the pin is stored under"`
	External bool   `long:"external" description:"Do not store the pin; check it against --digest instead"`
	Digest   string `long:"digest" description:"Externally stored digest checked in --external mode"`
	New      bool   `long:"new" description:"Create a new pin even if one is stored"`
	Repeat   int    `short:"r" long:"repeat" default:"-1" description:"Times a new pin must be entered (negative for the default)"`

	Hash   string `long:"hash" description:"Print the digest of a pin and exit"`
	Copy   bool   `long:"copy" description:"Copy the --hash digest to the clipboard"`
	Forget bool   `long:"forget" description:"Delete the pin stored under --key and exit"`

	Configure   bool   `long:"configure" description:"Store the lock settings below and exit"`
	Placeholder string `long:"placeholder" choice:"on" choice:"off" description:"Show hint circles for the pin length"`
	Preview     string `long:"preview" choice:"on" choice:"off" description:"Show a circle for every entered digit"`
	MinLength   *int   `long:"min" description:"Minimum pin length"`
	MaxLength   *int   `long:"max" description:"Maximum pin length"`
	Shuffle     string `long:"shuffle" choice:"on" choice:"off" description:"Randomize the digit layout"`
}

// Overlay returns base with the settings options given on the command line.
// Unset options keep the value of base.
func (c *AppConfig) Overlay(base settings.Settings) settings.Settings {
	s := base
	if c.Placeholder != "" {
		s.ShowPlaceholder = c.Placeholder == "on"
	}
	if c.Preview != "" {
		s.ShowPreview = c.Preview == "on"
	}
	if c.Shuffle != "" {
		s.ShuffleButtons = c.Shuffle == "on"
	}
	if c.MinLength != nil {
		s.MinLength = *c.MinLength
	}
	if c.MaxLength != nil {
		s.MaxLength = *c.MaxLength
	}
	return s
}

// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/pinstore"
	"github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/store"
	"github.com/flokiorg/tpinlock/tui"
	. "github.com/flokiorg/tpinlock/utils"
	"github.com/flokiorg/tpinlock/utils/clip"
)

const (
	exitLocked = 2
)

var (
	defaultAppDataDir     = "tpinlock"
	defaultConfigFilename = "tpinlock.conf"
	defaultStoreTimeout   = 5 * time.Second

	parser *flags.Parser
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {

	var cfg config.AppConfig

	parser = flags.NewParser(&cfg, flags.Default|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("failed to parse command line")
	}

	if cfg.Version {
		fmt.Println("Version:", Version)
		return
	}

	if cfg.Hash != "" {
		runHash(&cfg)
		return
	}

	defaultConfigPath, err := GetFullPath(defaultConfigFilename)
	if err != nil {
		showHelpAndExit("failed to resolve default config path", err)
	}
	if opt := parser.FindOptionByShortName('c'); !optionDefined(opt) && FileExists(defaultConfigPath) {
		cfg.ConfigFile = defaultConfigPath
	}

	if cfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
		if err != nil {
			showHelpAndExit("failed to parse configuration file", err)
		}
	}

	if opt := parser.FindOptionByShortName('d'); !optionDefined(opt) && cfg.Datadir == "" {
		cfg.Datadir, err = AppDataDir(defaultAppDataDir)
		if err != nil {
			showHelpAndExit("failed to resolve data directory", err)
		}
	}

	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}

	if cfg.Key == "" {
		cfg.Key = shared.DefaultPinKey
	}

	if cfg.External && cfg.New && cfg.Digest != "" {
		showHelpAndExit("--new and --digest cannot be combined in --external mode", nil)
	}

	kv, closer, err := load.OpenStore(&cfg)
	if err != nil {
		showHelpAndExit("failed to open store", err)
	}

	var code int
	switch {
	case cfg.Configure:
		runConfigure(&cfg, kv)
	case cfg.Forget:
		runForget(&cfg, kv)
	default:
		code = runApp(&cfg, kv)
	}

	closer.Close()
	if code != 0 {
		os.Exit(code)
	}
}

// runApp runs the lock screen and returns the exit code: 0 once unlocked,
// exitLocked otherwise.
func runApp(cfg *config.AppConfig, kv store.KV) int {

	fmt.Println(ArtOrange + ArtBright + ArtText + "\nv" + Version + "\n" + ArtReset)

	logLevel := shared.ParseLogLevel(cfg.LogLevel)
	logPath := filepath.Join(cfg.Datadir, "tpinlock.log")
	logger, logFile, err := shared.CreateFileLogger(logPath, logLevel)
	if err != nil {
		showHelpAndExit("failed to create log file", err)
	}
	defer logFile.Close()
	log.Logger = logger
	log.Info().
		Str("store", cfg.Store).
		Str("datadir", cfg.Datadir).
		Str("key", cfg.Key).
		Bool("external", cfg.External).
		Str("log_level", logLevel.String()).
		Msg("starting tpinlock")

	app := tui.NewApp(cfg, kv, shared.NamedLogger("tui"))

	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			app.Stop()
			app.Close()
			log.Error().Interface("panic", r).Bytes("stack", stack).Msg("unhandled panic")
			fmt.Fprintf(os.Stderr, "\npanic: %v\n%s", r, stack)
			os.Exit(1)
		}
	}()

	if err := app.Run(); err != nil {
		app.Stop()
		log.Fatal().Err(err).Msg("app failed")
	}
	unlocked := app.Unlocked()
	app.Close()
	log.Info().Bool("unlocked", unlocked).Msg("shutdown complete")

	if !unlocked {
		return exitLocked
	}
	return 0
}

func runHash(cfg *config.AppConfig) {
	digest, err := pinhash.Hash(cfg.Hash)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash pin")
	}
	fmt.Println(digest)

	if !cfg.Copy {
		return
	}
	method, err := clip.CopyText(digest)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to copy digest")
	}
	fmt.Fprintf(os.Stderr, "copied with %s\n", method)
}

func runConfigure(cfg *config.AppConfig, kv store.KV) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	base, err := settings.Load(ctx, kv)
	if err != nil {
		log.Fatal().Err(err).Msg(FormatBootError(err))
	}

	s := cfg.Overlay(base)
	if err := settings.Configure(ctx, kv, s); err != nil {
		showHelpAndExit("invalid settings", err)
	}
	fmt.Printf("placeholder=%t preview=%t min=%d max=%d shuffle=%t\n",
		s.ShowPlaceholder, s.ShowPreview, s.MinLength, s.MaxLength, s.ShuffleButtons)
}

func runForget(cfg *config.AppConfig, kv store.KV) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	if err := pinstore.New(kv, nil).Delete(ctx, cfg.Key); err != nil {
		log.Fatal().Err(err).Msg(FormatBootError(err))
	}
	fmt.Printf("pin %q deleted\n", cfg.Key)
}

func showHelpAndExit(msg string, err error) {
	if msg != "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		} else {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
	fmt.Fprintln(os.Stderr)
	if parser != nil {
		parser.WriteHelp(os.Stderr)
	}
	os.Exit(1)
}

func optionDefined(opt *flags.Option) bool {
	return opt != nil && opt.IsSet()
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/ik5/speechwav/internal/config"
)

// version is set via ldflags at build time
var version = "dev"

// App is bound into every command's Run method.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

var CLI struct {
	EnvFile  []string         `help:"Env files to load instead of .env" type:"existingfile"`
	LogLevel string           `help:"Override LOG_LEVEL (debug, info, warn, error)"`
	Version  kong.VersionFlag `help:"Show version information"`

	Say     SayCmd     `cmd:"" help:"Speak text with Gemini and save it as WAV"`
	Encode  EncodeCmd  `cmd:"" help:"Wrap base64 PCM into a WAV file"`
	Inspect InspectCmd `cmd:"" help:"Show the header of WAV files"`
	Convert ConvertCmd `cmd:"" help:"Convert wav, mp3, ogg or aiff into mono 16-bit WAV"`
	Voices  VoicesCmd  `cmd:"" help:"List the available voices"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("speechwav"),
		kong.Description("Turn text into speech and speech payloads into WAV files."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	// Set before loading so env files cannot override it and it is validated.
	if CLI.LogLevel != "" {
		os.Setenv("LOG_LEVEL", CLI.LogLevel) //nolint:errcheck
	}

	cfg, err := config.Load(CLI.EnvFile...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "speechwav:", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "speechwav: creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	app := &App{cfg: cfg, logger: logger, stdin: os.Stdin, stdout: os.Stdout}
	if err := ctx.Run(app); err != nil {
		logger.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

// initLogger writes development style logs to stderr, keeping stdout for
// command output.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = cfg.App.GetLogLevel()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.DisableStacktrace = true

	return zapCfg.Build()
}

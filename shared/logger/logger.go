package logger

import (
	"frontdesk/config"
	"frontdesk/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const fieldComponent = "component"

// InitLogger writes human readable logs tagged with the running binary (api, worker, migrate).
func InitLogger(component string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	setOutput(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, component)
	log.Trace().Msg("Zerolog initialized.")
}

func setOutput(out io.Writer, component string) {
	logger := zerolog.New(out).With().Timestamp()
	if component != "" {
		logger = logger.Str(fieldComponent, component)
	}

	log.Logger = logger.Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level. Production switches to JSON lines
// so the desk's log shipper can index them.
func SetLogLevel(config *config.Config, component string) {
	if config.Server.Env == constant.ServerEnvProduction {
		setOutput(os.Stdout, component)
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

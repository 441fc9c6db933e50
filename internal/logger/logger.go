// Package logger wraps zerolog behind the small surface the rest of the
// service uses. Messages take optional key-value pairs:
//
//	logger.Info("reservation created", "id", res.ID, "court", courtNumber)
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

func fields(kv []interface{}) map[string]interface{} {
	if len(kv) == 0 {
		return nil
	}
	m := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		m[key] = kv[i+1]
	}
	return m
}

func Info(msg string, kv ...interface{}) {
	log.Info().Fields(fields(kv)).Msg(msg)
}

func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Warn(msg string, kv ...interface{}) {
	log.Warn().Fields(fields(kv)).Msg(msg)
}

func Error(msg string, kv ...interface{}) {
	log.Error().Fields(fields(kv)).Msg(msg)
}

func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Debug(msg string, kv ...interface{}) {
	log.Debug().Fields(fields(kv)).Msg(msg)
}

func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

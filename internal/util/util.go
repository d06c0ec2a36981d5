package util

import (
	"os"
	"strings"
	"unicode"

	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
)

func Chomp(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	return s
}

func InLambda() bool {
	_, inLambda := os.LookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	return inLambda
}

func OtelConfigPresent() bool {
	_, present := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	return present
}

func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(Chomp(level)) {
	case "panic":
		return zerolog.PanicLevel
	case "fatal":
		return zerolog.FatalLevel
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.WarnLevel
	}
}

func SetLogLevel() {
	if level, exists := os.LookupEnv("LOG_LEVEL"); exists {
		zerolog.SetGlobalLevel(ParseLogLevel(level))
		return
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// Wraps a zerolog.Logger so the AWS SDK can report retries through it

type RetryLogger struct {
	Log *zerolog.Logger
}

func (l *RetryLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	switch classification {
	case logging.Warn:
		l.Log.Warn().Msgf(format, v...)
	case logging.Debug:
		if strings.Contains(format, "retrying request") {
			l.Log.Info().Msgf(format, v...)
		} else {
			l.Log.Debug().Msgf(format, v...)
		}
	default:
		l.Log.Error().Msgf(format, v...)
	}
}

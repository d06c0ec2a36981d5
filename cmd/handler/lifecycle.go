package handler

import (
	"context"

	"github.com/linecard/echo/internal/util"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BeforeEach applies LOG_LEVEL and returns a logger scoped to the invocation.
func BeforeEach(ctx context.Context) zerolog.Logger {
	util.SetLogLevel()

	logger := log.With().Str("function", lambdacontext.FunctionName)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.Str("request_id", lc.AwsRequestID)
	}

	return logger.Logger()
}

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/linecard/echo/cmd/cli/router"
	"github.com/linecard/echo/internal/util"
	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/sdk"

	"github.com/alexflint/go-arg"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

func Invoke(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, span := otel.Tracer("").Start(ctx, "cli")
	defer span.End()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	var root router.Root
	arg.MustParse(&root)

	cfg := config.FromEnv()

	retryLogger := util.RetryLogger{
		Log: &log.Logger,
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithLogger(&retryLogger),
		awsconfig.WithClientLogMode(aws.LogRetries))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	root.Handle(ctx, cfg, sdk.Init(ctx, awsConfig, cfg))
}

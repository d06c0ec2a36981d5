package handler

import (
	"context"

	"github.com/linecard/echo/pkg/echo"

	"github.com/aws/aws-lambda-go/lambda"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-lambda-go/otellambda"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Listen for events from the AWS Lambda runtime.
func Listen(tp *sdktrace.TracerProvider) {
	instrumented := otellambda.InstrumentHandler(Handler,
		otellambda.WithTracerProvider(tp),
		otellambda.WithFlusher(tp),
	)

	lambda.Start(instrumented)
}

// Handler echoes the event body. Malformed input is returned as an error so
// the runtime reports an unhandled function error.
func Handler(ctx context.Context, event echo.Event) (echo.Response, error) {
	logger := BeforeEach(ctx)

	ctx, span := otel.Tracer("").Start(ctx, "handler")
	defer span.End()

	span.SetAttributes(
		attribute.Int("echo.body.length", len(event.Body)),
		attribute.Bool("echo.body.base64", event.IsBase64Encoded),
	)

	response, err := echo.Handle(ctx, event)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Error().Err(err).Msg("failed to decode request body")
		return response, err
	}

	logger.Debug().
		Int("status", response.StatusCode).
		Msg("request received")

	return response, nil
}

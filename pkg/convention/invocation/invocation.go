package invocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/echo"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNoFunction = errors.New("no function name configured")

type FunctionService interface {
	Inspect(ctx context.Context, name string) (*lambda.GetFunctionConfigurationOutput, error)
	Invoke(ctx context.Context, name string, payload []byte) (*lambda.InvokeOutput, error)
}

type Services struct {
	Function FunctionService
}

type Convention struct {
	Config  config.Config
	Service Services
}

// FunctionError is the error payload the Lambda runtime reports when the
// handler fails instead of returning an envelope.
type FunctionError struct {
	Kind         string `json:"errorType"`
	Message      string `json:"errorMessage"`
	FunctionName string `json:"-"`
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("function %s failed: %s: %s", e.FunctionName, e.Kind, e.Message)
}

func FromServices(c config.Config, f FunctionService) Convention {
	return Convention{
		Config: c,
		Service: Services{
			Function: f,
		},
	}
}

// Payload renders body as the API Gateway proxy event the deployed handler expects.
func Payload(body string) ([]byte, error) {
	return json.Marshal(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	})
}

func (c Convention) Remote(ctx context.Context, name, body string) (echo.Response, error) {
	var response echo.Response

	ctx, span := otel.Tracer("").Start(ctx, "invocation.Remote")
	defer span.End()

	if name == "" {
		name = c.Config.Function.Name
	}

	if name == "" {
		return response, ErrNoFunction
	}

	span.SetAttributes(attribute.String("echo.invoke.function", name))

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		c.describe(ctx, name)
	}

	payload, err := Payload(body)
	if err != nil {
		return response, fmt.Errorf("failed to encode invocation payload: %w", err)
	}

	output, err := c.Service.Function.Invoke(ctx, name, payload)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return response, fmt.Errorf("failed to invoke function: %w", err)
	}

	if output.FunctionError != nil {
		functionErr := &FunctionError{FunctionName: name, Kind: aws.ToString(output.FunctionError)}
		if err := json.Unmarshal(output.Payload, functionErr); err != nil {
			functionErr.Message = string(output.Payload)
		}
		span.SetStatus(codes.Error, functionErr.Error())
		return response, functionErr
	}

	if err := json.Unmarshal(output.Payload, &response); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return response, fmt.Errorf("failed to decode function response: %w", err)
	}

	return response, nil
}

// describe logs the resolved function arn. It needs lambda:GetFunctionConfiguration
// on top of lambda:InvokeFunction, so failures are only logged.
func (c Convention) describe(ctx context.Context, name string) {
	configuration, err := c.Service.Function.Inspect(ctx, name)
	if err != nil {
		log.Debug().Err(err).Str("function", name).Msg("failed to inspect function")
		return
	}

	log.Debug().
		Str("function", name).
		Str("arn", aws.ToString(configuration.FunctionArn)).
		Msg("invoking")
}

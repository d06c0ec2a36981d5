package function

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
)

var ErrFunctionNotFound = errors.New("function not found")

func (s Service) Inspect(ctx context.Context, name string) (*lambda.GetFunctionConfigurationOutput, error) {
	var apiErr smithy.APIError

	output, err := s.Client.Lambda.GetFunctionConfiguration(ctx, &lambda.GetFunctionConfigurationInput{
		FunctionName: aws.String(name),
	})

	if err != nil {
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
			return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
		}
		return nil, err
	}

	return output, nil
}

func (s Service) Invoke(ctx context.Context, name string, payload []byte) (*lambda.InvokeOutput, error) {
	var apiErr smithy.APIError

	output, err := s.Client.Lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: types.InvocationTypeRequestResponse,
		LogType:        types.LogTypeNone,
		Payload:        payload,
	})

	if err != nil {
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
			return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
		}
		return nil, err
	}

	return output, nil
}

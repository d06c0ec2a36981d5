package function

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type LambdaClient interface {
	GetFunctionConfiguration(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error)
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type Clients struct {
	Lambda LambdaClient
}

type Service struct {
	Client Clients
}

func FromClients(lambdaClient LambdaClient) Service {
	return Service{
		Client: Clients{
			Lambda: lambdaClient,
		},
	}
}

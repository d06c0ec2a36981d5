package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/mock"
)

type MockLambdaClient struct {
	mock.Mock
}

func (m *MockLambdaClient) GetFunctionConfiguration(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.GetFunctionConfigurationOutput), args.Error(1)
}

func (m *MockLambdaClient) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*lambda.InvokeOutput), args.Error(1)
}

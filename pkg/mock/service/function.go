package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/mock"
)

// MockFunctionService is a mock of FunctionService interface
type MockFunctionService struct {
	mock.Mock
}

func (m *MockFunctionService) Inspect(ctx context.Context, name string) (*lambda.GetFunctionConfigurationOutput, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*lambda.GetFunctionConfigurationOutput), args.Error(1)
}

func (m *MockFunctionService) Invoke(ctx context.Context, name string, payload []byte) (*lambda.InvokeOutput, error) {
	args := m.Called(ctx, name, payload)
	return args.Get(0).(*lambda.InvokeOutput), args.Error(1)
}

package sdk

import (
	"context"
	"net/http"

	// config
	"github.com/linecard/echo/pkg/convention/config"

	// handler
	"github.com/linecard/echo/pkg/echo"

	// services
	"github.com/linecard/echo/pkg/service/function"
	"github.com/linecard/echo/pkg/service/sigv4"

	// conventions
	"github.com/linecard/echo/pkg/convention/curl"
	"github.com/linecard/echo/pkg/convention/httproxy"
	"github.com/linecard/echo/pkg/convention/invocation"

	// clients
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type Clients struct {
	LambdaClient function.LambdaClient
}

type Services struct {
	Function function.Service
	Sigv4    sigv4.Service
}

type Conventions struct {
	Invocation invocation.Convention
	Httproxy   httproxy.Convention
	Curl       curl.Convention
}

type API struct {
	Clients
	Services
	Conventions
}

// Init builds the API from a loaded AWS configuration. Clients resolve
// credentials lazily, so nothing here can fail before first use.
func Init(ctx context.Context, awsConfig aws.Config, cfg config.Config) API {
	signer := sigv4.FromClients(awsConfig.Credentials, awsConfig.Region)
	return FromClients(cfg, lambda.NewFromConfig(awsConfig), signer)
}

func FromClients(cfg config.Config, lambdaClient function.LambdaClient, signer sigv4.Service) API {
	var api API

	api.Clients = Clients{
		LambdaClient: lambdaClient,
	}

	api.Services = Services{
		Function: function.FromClients(api.Clients.LambdaClient),
		Sigv4:    signer,
	}

	api.Conventions = Conventions{
		Invocation: invocation.FromServices(cfg, api.Services.Function),
		Httproxy:   httproxy.FromHandler(cfg, echo.Handle),
		Curl:       curl.FromServices(cfg, api.Services.Sigv4, http.DefaultClient),
	}

	return api
}

package method

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/linecard/echo/cmd/cli/param"
	"github.com/linecard/echo/cmd/cli/view"
	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/echo"
	"github.com/linecard/echo/pkg/sdk"

	"github.com/rs/zerolog/log"
)

func RunLocal(ctx context.Context, cfg config.Config, api sdk.API, p *param.Run) {
	body, err := ReadBody(p.BodyOpts, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read request body")
	}

	response, err := echo.Handle(ctx, echo.Event{Body: body})
	if err != nil {
		fmt.Fprintln(os.Stderr, view.Failure(err))
		log.Fatal().Err(err).Msg("handler failed")
	}

	printResponse(response)
}

func ServeLocal(ctx context.Context, cfg config.Config, api sdk.API, p *param.Serve) {
	proxy := api.Httproxy
	if p.Listen != "" {
		proxy.Config.Httproxy.Listen = p.Listen
	}

	if err := proxy.Serve(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}

func InvokeRemote(ctx context.Context, cfg config.Config, api sdk.API, p *param.Invoke) {
	body, err := ReadBody(p.BodyOpts, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read request body")
	}

	response, err := api.Invocation.Remote(ctx, p.Function, body)
	if err != nil {
		fmt.Fprintln(os.Stderr, view.Failure(err))
		log.Fatal().Err(err).Msg("failed to invoke function")
	}

	printResponse(response)
}

func PostHttp(ctx context.Context, cfg config.Config, api sdk.API, p *param.Post) {
	body, err := ReadBody(p.BodyOpts, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read request body")
	}

	response, err := api.Curl.Post(ctx, p.Url, body, p.Sign)
	if err != nil {
		fmt.Fprintln(os.Stderr, view.Failure(err))
		log.Fatal().Err(err).Msg("failed to post request")
	}

	printResponse(response)
}

func PrintConfig(ctx context.Context, cfg config.Config, api sdk.API, p *param.Config) {
	j, err := cfg.Json()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render configuration")
	}

	fmt.Println(j)
}

// ReadBody resolves the request body from flags, falling back to stdin.
func ReadBody(opts param.BodyOpts, stdin io.Reader) (string, error) {
	switch {
	case opts.Body != "":
		return opts.Body, nil

	case opts.File == "-" || opts.File == "":
		b, err := io.ReadAll(stdin)
		return string(b), err

	default:
		b, err := os.ReadFile(opts.File)
		return string(b), err
	}
}

func printResponse(response echo.Response) {
	j, err := view.Envelope(response)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render response")
	}

	fmt.Fprintln(os.Stderr, view.Status(response))
	fmt.Println(j)
}

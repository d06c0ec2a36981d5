package router

import (
	"context"
	"os"

	"github.com/linecard/echo/cmd/cli/method"
	"github.com/linecard/echo/cmd/cli/param"
	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/sdk"

	"github.com/alexflint/go-arg"
)

type Root struct {
	Run    *param.Run    `arg:"subcommand:run" help:"Invoke the handler in-process"`
	Serve  *param.Serve  `arg:"subcommand:serve" help:"Serve the handler over local HTTP"`
	Invoke *param.Invoke `arg:"subcommand:invoke" help:"Invoke the deployed function"`
	Post   *param.Post   `arg:"subcommand:post" help:"Post a body to an HTTP endpoint fronting the function"`
	Config *param.Config `arg:"subcommand:config" help:"Print configuration"`
}

func (c Root) Handle(ctx context.Context, cfg config.Config, api sdk.API) {
	switch {
	case c.Run != nil:
		method.RunLocal(ctx, cfg, api, c.Run)

	case c.Serve != nil:
		method.ServeLocal(ctx, cfg, api, c.Serve)

	case c.Invoke != nil:
		method.InvokeRemote(ctx, cfg, api, c.Invoke)

	case c.Post != nil:
		method.PostHttp(ctx, cfg, api, c.Post)

	case c.Config != nil:
		method.PrintConfig(ctx, cfg, api, c.Config)

	default:
		arg.MustParse(&c).WriteHelp(os.Stdout)

	}
}

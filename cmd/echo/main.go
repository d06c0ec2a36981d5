package main

import (
	"context"

	"github.com/linecard/echo/cmd/cli"
	"github.com/linecard/echo/cmd/handler"
	"github.com/linecard/echo/internal/tracing"
	"github.com/linecard/echo/internal/util"
)

func main() {
	util.SetLogLevel()

	ctx := context.Background()
	tp, shutdown := tracing.InitOtel(ctx)
	defer shutdown()

	if util.InLambda() {
		handler.Listen(tp)
		return
	}

	cli.Invoke(ctx)
}

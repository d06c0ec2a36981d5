// Package httproxy serves the echo handler over plain HTTP, translating each
// request into an invocation event the way API Gateway proxy integrations do.
package httproxy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/echo"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type HandlerFunc func(ctx context.Context, event echo.Event) (echo.Response, error)

type Convention struct {
	Config  config.Config
	Handler HandlerFunc
}

func FromHandler(c config.Config, h HandlerFunc) Convention {
	return Convention{
		Config:  c,
		Handler: h,
	}
}

func (c Convention) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog())
	router.NoRoute(c.proxy)
	return router
}

func (c Convention) proxy(ctx *gin.Context) {
	spanCtx, span := otel.Tracer("").Start(ctx.Request.Context(), "httproxy.proxy")
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", ctx.Request.Method),
		attribute.String("http.path", ctx.Request.URL.Path),
	)

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
		return
	}

	response, err := c.Handler(spanCtx, echo.Event{Body: string(body)})
	if err != nil {
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("handler failed")
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx.Data(response.StatusCode, "application/json", []byte(response.Body))
}

func accessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Serve blocks until ctx is cancelled or the listener fails.
func (c Convention) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:    c.Config.Httproxy.Listen,
		Handler: c.Router(),
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("listen", server.Addr).Msg("serving")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

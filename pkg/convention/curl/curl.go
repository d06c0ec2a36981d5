package curl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/echo"

	"github.com/rs/zerolog/log"
)

type Sigv4Service interface {
	SignRequest(ctx context.Context, request *http.Request) (err error)
}

type Service struct {
	Sigv4 Sigv4Service
	Http  *http.Client
}

type Convention struct {
	Config  config.Config
	Service Service
}

func FromServices(c config.Config, sigv4 Sigv4Service, client *http.Client) Convention {
	return Convention{
		Config: c,
		Service: Service{
			Sigv4: sigv4,
			Http:  client,
		},
	}
}

// Post sends body to an HTTP endpoint fronting the function and reads the
// reply back into an envelope. Requests to non-local hosts are sigv4 signed
// when sign is set.
func (c Convention) Post(ctx context.Context, url, body string, sign bool) (echo.Response, error) {
	var response echo.Response

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return response, err
	}
	request.Header.Set("Content-Type", "application/json")

	if sign && !local(request) {
		if err := c.Service.Sigv4.SignRequest(ctx, request); err != nil {
			return response, fmt.Errorf("failed to sign request: %w", err)
		}
	}

	log.Info().Str("url", url).Bool("signed", sign).Msg("posting")

	reply, err := c.Service.Http.Do(request)
	if err != nil {
		return response, err
	}
	defer reply.Body.Close()

	b, err := io.ReadAll(reply.Body)
	if err != nil {
		return response, fmt.Errorf("failed to read response body: %w", err)
	}

	response.StatusCode = reply.StatusCode
	response.Body = string(b)

	return response, nil
}

func local(request *http.Request) bool {
	host := request.URL.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

package curl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linecard/echo/pkg/convention/config"
	"github.com/linecard/echo/pkg/convention/httproxy"
	"github.com/linecard/echo/pkg/echo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSigv4 struct {
	mock.Mock
}

func (m *mockSigv4) SignRequest(ctx context.Context, request *http.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func TestPost(t *testing.T) {
	ctx := context.Background()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(httproxy.FromHandler(config.Config{}, echo.Handle).Router())
	defer server.Close()

	t.Run("local endpoints are never signed", func(t *testing.T) {
		signer := &mockSigv4{}
		c := FromServices(config.Config{}, signer, server.Client())

		got, err := c.Post(ctx, server.URL+"/echo", `{"a":1}`, true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, got.StatusCode)
		assert.Equal(t, `{"message":"Request received","data":{"a":1}}`, got.Body)
		signer.AssertNotCalled(t, "SignRequest", mock.Anything, mock.Anything)
	})

	t.Run("malformed body comes back as a server error", func(t *testing.T) {
		c := FromServices(config.Config{}, &mockSigv4{}, server.Client())

		got, err := c.Post(ctx, server.URL, `{`, false)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.JSONEq(t, `{"message":"Internal server error"}`, got.Body)
	})

	t.Run("remote endpoints are signed", func(t *testing.T) {
		signer := &mockSigv4{}
		signer.On("SignRequest", mock.Anything, mock.Anything).Return(assert.AnError)
		c := FromServices(config.Config{}, signer, server.Client())

		_, err := c.Post(ctx, "https://abc123.execute-api.us-west-2.amazonaws.com/echo", `{}`, true)
		assert.ErrorIs(t, err, assert.AnError)
		signer.AssertExpectations(t)
	})
}

package sigv4

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignRequest(t *testing.T) {
	ctx := context.Background()
	s := FromClients(credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""), "us-west-2")

	request, err := http.NewRequest(http.MethodPost, "https://abc123.execute-api.us-west-2.amazonaws.com/echo", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)

	require.NoError(t, s.SignRequest(ctx, request))

	authorization := request.Header.Get("Authorization")
	assert.Contains(t, authorization, "AWS4-HMAC-SHA256")
	assert.Contains(t, authorization, "Credential=AKIDEXAMPLE/")
	assert.Contains(t, authorization, "/us-west-2/execute-api/aws4_request")
	assert.NotEmpty(t, request.Header.Get("X-Amz-Date"))

	body, err := io.ReadAll(request.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))
}

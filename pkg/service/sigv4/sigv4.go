package sigv4

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

type Service struct {
	creds  aws.CredentialsProvider
	region string
}

func FromClients(creds aws.CredentialsProvider, region string) Service {
	return Service{
		creds:  creds,
		region: region,
	}
}

// SignRequest signs request for execute-api, restoring the body it consumes.
func (s Service) SignRequest(ctx context.Context, request *http.Request) (err error) {
	var payload []byte

	if request.Body != nil {
		if payload, err = io.ReadAll(request.Body); err != nil {
			return
		}
		request.Body = io.NopCloser(bytes.NewReader(payload))
	}

	if s.creds == nil {
		return errors.New("no AWS credentials available for signing")
	}

	creds, err := s.creds.Retrieve(ctx)
	if err != nil {
		return
	}

	signer := v4.NewSigner()
	bodyHash := sha256.Sum256(payload)
	encodedPayload := hex.EncodeToString(bodyHash[:])

	err = signer.SignHTTP(
		ctx,
		creds,
		request,
		encodedPayload,
		"execute-api",
		s.region,
		time.Now(),
	)

	return
}

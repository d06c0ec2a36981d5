package util

import (
	"bytes"
	"os"
	"testing"

	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		teardown func()
		expected zerolog.Level
	}{
		{
			name:     "defaults to warn when unset",
			setup:    func() { os.Unsetenv("LOG_LEVEL") },
			expected: zerolog.WarnLevel,
		},
		{
			name:     "honours LOG_LEVEL case-insensitively",
			setup:    func() { os.Setenv("LOG_LEVEL", " DEBUG ") },
			teardown: func() { os.Unsetenv("LOG_LEVEL") },
			expected: zerolog.DebugLevel,
		},
		{
			name:     "unknown level falls back to warn",
			setup:    func() { os.Setenv("LOG_LEVEL", "verbose") },
			teardown: func() { os.Unsetenv("LOG_LEVEL") },
			expected: zerolog.WarnLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			SetLogLevel()
			assert.Equal(t, tc.expected, zerolog.GlobalLevel())

			if tc.teardown != nil {
				tc.teardown()
			}
		})
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestInLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "echo")
	assert.True(t, InLambda())

	os.Unsetenv("AWS_LAMBDA_FUNCTION_NAME")
	assert.False(t, InLambda())
}

func TestRetryLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	retryLogger := RetryLogger{Log: &logger}

	retryLogger.Logf(logging.Debug, "retrying request %s", "Invoke")
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "retrying request Invoke")

	buf.Reset()
	retryLogger.Logf(logging.Warn, "slow down")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	retryLogger.Logf(logging.Classification("OTHER"), "boom")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

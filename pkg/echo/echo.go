// Package echo decodes an invocation body and wraps it in the fixed
// response envelope returned to the calling platform.
package echo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const Message = "Request received"

var ErrMalformedInput = errors.New("malformed input")

// Event is the subset of an API Gateway proxy event the handler reads.
type Event struct {
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded,omitempty"`
}

// UnmarshalJSON reads a null body as the text "null", which is what the
// platform hands a function for requests without a body. An absent body
// stays empty and fails to decode.
func (e *Event) UnmarshalJSON(b []byte) error {
	var wire struct {
		Body            json.RawMessage `json:"body"`
		IsBase64Encoded bool            `json:"isBase64Encoded"`
	}

	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	e.IsBase64Encoded = wire.IsBase64Encoded
	e.Body = ""

	switch {
	case wire.Body == nil:
	case string(wire.Body) == "null":
		e.Body = "null"
	default:
		if err := json.Unmarshal(wire.Body, &e.Body); err != nil {
			return err
		}
	}

	return nil
}

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode parses body as a single JSON value and returns its compact
// encoding. Number literals and first-seen key order survive; a repeated
// object key keeps its last value.
func Decode(body string) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()

	var out bytes.Buffer
	if err := decodeValue(dec, &out, true); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty body", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid character after top-level value at offset %d", ErrMalformedInput, dec.InputOffset())
	}

	return out.Bytes(), nil
}

func decodeValue(dec *json.Decoder, out *bytes.Buffer, top bool) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF && !top {
			return io.ErrUnexpectedEOF
		}
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec, out)
		case '[':
			return decodeArray(dec, out)
		default:
			return fmt.Errorf("unexpected %q", rune(v))
		}
	case string:
		return encodeString(out, v)
	case json.Number:
		out.WriteString(v.String())
	case bool:
		if v {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	case nil:
		out.WriteString("null")
	}

	return nil
}

func decodeObject(dec *json.Decoder, out *bytes.Buffer) error {
	var keys []string
	values := map[string][]byte{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("object key is not a string: %v", tok)
		}

		var value bytes.Buffer
		if err := decodeValue(dec, &value, false); err != nil {
			return err
		}

		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value.Bytes()
	}

	if err := closing(dec, '}'); err != nil {
		return err
	}

	out.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			out.WriteByte(',')
		}
		if err := encodeString(out, key); err != nil {
			return err
		}
		out.WriteByte(':')
		out.Write(values[key])
	}
	out.WriteByte('}')

	return nil
}

func decodeArray(dec *json.Decoder, out *bytes.Buffer) error {
	out.WriteByte('[')
	for i := 0; dec.More(); i++ {
		if i > 0 {
			out.WriteByte(',')
		}
		if err := decodeValue(dec, out, false); err != nil {
			return err
		}
	}

	if err := closing(dec, ']'); err != nil {
		return err
	}

	out.WriteByte(']')
	return nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

func encodeString(out *bytes.Buffer, s string) error {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}

	out.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}

func Handle(ctx context.Context, event Event) (Response, error) {
	body := event.Body

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return Response{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		body = string(decoded)
	}

	data, err := Decode(body)
	if err != nil {
		return Response{}, err
	}

	encoded, err := Encode(data)
	if err != nil {
		return Response{}, err
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       encoded,
	}, nil
}

// Encode renders the envelope body for an already decoded payload.
func Encode(data json.RawMessage) (string, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(envelope{Message: Message, Data: data}); err != nil {
		return "", fmt.Errorf("failed to encode envelope: %w", err)
	}

	return string(bytes.TrimRight(b.Bytes(), "\n")), nil
}

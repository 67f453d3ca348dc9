package request

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/NeuralTrust/MailSlot/pkg/common"
	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/valyala/fastjson"
)

const emailField = "email"

// EmailRequest is a validated POST body.
type EmailRequest struct {
	value *fastjson.Value
}

// ParseEmailRequest checks a POST body against its declared Content-Length
// and decodes it as strict JSON. Only the first contentLength bytes are
// read.
func ParseEmailRequest(contentLength int, body []byte) (*EmailRequest, error) {
	if contentLength <= 0 {
		return nil, domain.ErrNoDataProvided
	}
	if len(body) > contentLength {
		body = body[:contentLength]
	}
	if !utf8.Valid(body) {
		return nil, domain.NewInternalErrorf("request body is not valid UTF-8")
	}

	// Parser alone accepts bad escapes and raw control characters.
	if err := fastjson.ValidateBytes(body); err != nil {
		return nil, domain.ErrInvalidJSON
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, domain.ErrInvalidJSON
	}
	return &EmailRequest{value: v}, nil
}

// Email returns the "email" field as JSON text, so non-string values keep
// their type. A missing field yields NoEmailProvided. With duplicate keys
// the last one wins.
func (r *EmailRequest) Email() (json.RawMessage, error) {
	obj, err := r.value.Object()
	if err != nil {
		return nil, domain.NewInternalErrorf("request body is a JSON %s, not an object", r.value.Type())
	}

	var email *fastjson.Value
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if string(key) == emailField {
			email = v
		}
	})

	if email == nil {
		return json.Marshal(common.NoEmailProvided)
	}
	return email.MarshalTo(nil), nil
}

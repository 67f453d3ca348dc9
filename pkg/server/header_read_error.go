package server

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

const (
	headerReadErrorPrefix = "error when reading request headers"
	contentLengthParseErr = "cannot parse Content-Length"
	errorContentsMarker   = "contents: "
)

var errInvalidContentLength = errors.New("invalid Content-Length header")

// mapHeaderReadError replaces the error fasthttp reports for an unparsable
// request head. That error embeds the raw request bytes, so it is never
// rendered. A Content-Length that is an integer <= 0 means no data; any
// other unparsable Content-Length is a server error; the rest is a plain
// bad request.
func mapHeaderReadError(c *fiber.Ctx, err error) (error, bool) {
	var fiberErr *fiber.Error
	if !errors.As(err, &fiberErr) || !strings.HasPrefix(fiberErr.Message, headerReadErrorPrefix) {
		return nil, false
	}

	if !strings.Contains(fiberErr.Message, contentLengthParseErr) {
		return fiber.ErrBadRequest, true
	}

	value, ok := contentLengthValue(c.Request().Header.RawHeaders())
	if !ok {
		value, ok = contentLengthValue(rawHeadFromMessage(fiberErr.Message))
	}
	if ok {
		if n, convErr := strconv.Atoi(strings.TrimSpace(value)); convErr == nil && n <= 0 {
			return domain.ErrNoDataProvided, true
		}
	}
	return domain.NewInternalError(errInvalidContentLength), true
}

// contentLengthValue finds the Content-Length value in a raw header block.
func contentLengthValue(raw []byte) (string, bool) {
	for _, line := range bytes.Split(raw, []byte("\n")) {
		name, value, found := bytes.Cut(bytes.TrimRight(line, "\r"), []byte(":"))
		if !found {
			continue
		}
		if strings.EqualFold(string(bytes.TrimSpace(name)), fiber.HeaderContentLength) {
			return string(bytes.TrimSpace(value)), true
		}
	}
	return "", false
}

// rawHeadFromMessage recovers the quoted request snippet fasthttp appends
// to its header errors.
func rawHeadFromMessage(message string) []byte {
	i := strings.Index(message, errorContentsMarker)
	if i < 0 {
		return nil
	}
	quoted, err := strconv.QuotedPrefix(message[i+len(errorContentsMarker):])
	if err != nil {
		return nil
	}
	head, err := strconv.Unquote(quoted)
	if err != nil {
		return nil
	}
	return []byte(head)
}

package response

import (
	"encoding/json"

	"github.com/NeuralTrust/MailSlot/pkg/common"
)

// EmailOutput echoes the stored value, which is already JSON text.
type EmailOutput struct {
	Status string          `json:"status"`
	Email  json.RawMessage `json:"email"`
}

type EmailReceivedOutput struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Email   json.RawMessage `json:"email"`
}

type QueryEchoOutput struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	ReceivedData map[string][]string `json:"received_data"`
}

type ErrorOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorOutput(message string) ErrorOutput {
	return ErrorOutput{
		Status:  common.StatusError,
		Message: message,
	}
}

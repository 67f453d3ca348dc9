package common

const (
	EmailPath = "/steal-email"

	RequestIDHeader = "X-Request-ID"

	NoEmailStored   = "No email stored"
	NoEmailProvided = "No email provided"

	StatusSuccess = "success"
	StatusError   = "error"
)

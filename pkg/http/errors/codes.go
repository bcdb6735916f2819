package errors

// Fixed messages for error envelopes. Clients match on these strings, so they
// never vary per request.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternal         = "internal server error"
)

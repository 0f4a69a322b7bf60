package errors

// ErrorInfo is the error half of the API envelope.
type ErrorInfo struct {
	// Code is a stable machine code such as "VEHICLE_NOT_FOUND" or "LISTING_LIMIT_REACHED".
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details holds per-field validation messages or a short hint; never set on 5xx.
	Details any `json:"details,omitempty"`
}

// MetaInfo travels with every response so clients can quote the request in support tickets.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the body of every 2xx answer.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewSuccessResponse wraps data for the request.
func NewSuccessResponse(requestID string, data any) SuccessResponse {
	return SuccessResponse{Data: data, Meta: &MetaInfo{RequestID: requestID}}
}

// NewErrorResponse wraps an error code for the request.
func NewErrorResponse(requestID, code, message string, details any) ErrorResponse {
	return ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}

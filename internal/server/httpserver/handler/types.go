package handler

import "time"

// Response is the standard API response envelope.
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// PutKeyRequest is the request body for PUT /v1/keys/{key}.
type PutKeyRequest struct {
	Value int64 `json:"value"`
}

// KeyResponse is the response body for key operations.
// Previous and Removed are pointers so absence serializes as omitted
// rather than zero, which is a legal stored value.
type KeyResponse struct {
	Key      int64  `json:"key"`
	Value    *int64 `json:"value,omitempty"`
	Previous *int64 `json:"previous,omitempty"`
	Removed  *int64 `json:"removed,omitempty"`
	Existed  bool   `json:"existed"`
}

// DumpBucket is one non-empty bucket in the dump listing.
type DumpBucket struct {
	Bucket  int        `json:"bucket"`
	Entries []DumpPair `json:"entries"`
}

// DumpPair is one key/value pair inside a bucket, in chain order.
type DumpPair struct {
	Key   int64 `json:"key"`
	Value int64 `json:"value"`
}

// DumpResponse is the response body for GET /v1/dump.
type DumpResponse struct {
	Buckets []DumpBucket `json:"buckets"`
}

package imagen

import (
	"fmt"
	"time"
)

// ErrorKind classifies generation failures so callers can match on the
// failure mode without string comparison.
type ErrorKind int

const (
	KindConfig ErrorKind = iota
	KindHTTP
	KindTimeout
	KindParse
	KindEmptyResult
	KindDecode
	KindStore
)

// GenError is a generation failure with a stable kind. RawBody is populated
// for parse failures so the offending backend response can be inspected.
type GenError struct {
	Kind    ErrorKind
	Message string
	Cause   error
	RawBody string
}

func (e *GenError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.RawBody != "" {
		msg = fmt.Sprintf("%s\nThe response was: %s", msg, e.RawBody)
	}
	return msg
}

func (e *GenError) Unwrap() error {
	return e.Cause
}

// Error constructors for each failure mode

func errConfig(message string) *GenError {
	return &GenError{Kind: KindConfig, Message: message}
}

func errHTTP(cause error) *GenError {
	return &GenError{
		Kind:    KindHTTP,
		Message: "request to image generation API failed",
		Cause:   cause,
	}
}

func errTimeout(limit time.Duration, cause error) *GenError {
	return &GenError{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("image generation API did not respond within %v", limit),
		Cause:   cause,
	}
}

func errParse(cause error, rawBody string) *GenError {
	return &GenError{
		Kind:    KindParse,
		Message: "failed to parse Gemini response",
		Cause:   cause,
		RawBody: rawBody,
	}
}

func errEmptyResult() *GenError {
	return &GenError{Kind: KindEmptyResult, Message: "no images were generated"}
}

func errDecode(cause error) *GenError {
	return &GenError{
		Kind:    KindDecode,
		Message: "failed to decode image data",
		Cause:   cause,
	}
}

func errStore(cause error) *GenError {
	return &GenError{
		Kind:    KindStore,
		Message: "failed to save generated image",
		Cause:   cause,
	}
}

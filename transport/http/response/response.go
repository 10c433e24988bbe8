package response

import (
	"encoding/json"
	"net/http"

	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/failure"
	"boatsandjoy/shared/logger"
)

// Envelope is the uniform API response shape: data carries the payload on
// success and an ErrorInfo when error is true.
type Envelope struct {
	Error bool `json:"error"`
	Data  any  `json:"data"`
}

// Data is the success envelope, parameterized for swagger annotations.
type Data[T any] struct {
	Error bool `json:"error"`
	Data  T    `json:"data"`
}

// Error is the failure envelope as rendered on the wire.
type Error struct {
	Error bool      `json:"error"`
	Data  ErrorInfo `json:"data"`
}

type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WithJSON sends a success envelope wrapping the payload.
func WithJSON(writer http.ResponseWriter, code int, payload interface{}) {
	respond(writer, code, Envelope{Data: payload})
}

// WithMessage sends a success envelope with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Envelope{Data: message})
}

// WithError sends a failure envelope; the HTTP status mirrors the failure code.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	respond(writer, code, Envelope{
		Error: true,
		Data:  ErrorInfo{Code: code, Message: err.Error()},
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	respond(writer, http.StatusTooManyRequests, Envelope{
		Error: true,
		Data:  ErrorInfo{Code: http.StatusTooManyRequests, Message: constant.ResponseErrorRequestLimitExceeded},
	})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	respond(writer, http.StatusServiceUnavailable, Envelope{
		Error: true,
		Data:  ErrorInfo{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorPrepareShutdown},
	})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	respond(writer, http.StatusServiceUnavailable, Envelope{
		Error: true,
		Data:  ErrorInfo{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorUnhealthy},
	})
}

func respond(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}

// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package api provides a small framework for exposing validated,
// dependency-injected handlers over HTTP. Requests and responses are JSON;
// handler errors carry gRPC status codes which are mapped to HTTP statuses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Message is a validated request type.
type Message interface {
	Validate() error
}

// Deps is a marker type for dependency containers.
type Deps any

// InitDeps initializes dependencies from context.
type InitDeps[D Deps] func(context.Context) (D, error)

// HandlerFunc is a transport-agnostic operation over a validated input.
type HandlerFunc[I Message, O any, D Deps] func(context.Context, I, D) (*O, error)

// NoDeps is a zero-value dependency container.
type NoDeps struct{}

// NoDepsInit is an InitDeps that returns NoDeps.
func NoDepsInit(context.Context) (*NoDeps, error) { return &NoDeps{}, nil }

// NoReturn is a zero-value output for handlers that only produce side effects.
type NoReturn struct{}

// AsStatus creates a gRPC status error with the given code and error message.
func AsStatus(code codes.Code, err error) error {
	return status.New(code, err.Error()).Err()
}

var grpcToHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           499, // Client Closed Request
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

// Handler adapts a HandlerFunc into an http.HandlerFunc. The request body is
// decoded as JSON into I and validated before the handler runs. A non-nil
// handler error is converted to a gRPC status and mapped to the
// corresponding HTTP status so that push-based event delivery retries it;
// a (nil, nil) return produces an empty 200 response.
func Handler[I Message, O any, D Deps](initDeps InitDeps[D], handler HandlerFunc[I, O, D]) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req I
		// An empty body decodes as the zero-value request.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			log.Println(errors.Wrap(err, "decoding request"))
			http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			log.Println(errors.Wrap(err, "validating request"))
			http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		deps, err := initDeps(ctx)
		if err != nil {
			log.Println(errors.Wrap(err, "initializing dependencies"))
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		o, err := handler(ctx, req, deps)
		s := status.Convert(err)
		httpStatus, ok := grpcToHTTP[s.Code()]
		if !ok {
			log.Printf("unknown error code: %s\n", s.Code())
			httpStatus = http.StatusInternalServerError
		}
		if httpStatus != http.StatusOK {
			log.Println(s.Err())
			// NOTE: Use s.Message() as the body instead of err.Error() to
			// avoid the verbose gRPC rendering when err is already a status.
			http.Error(rw, s.Message(), httpStatus)
			return
		}
		if o != nil {
			if err := json.NewEncoder(rw).Encode(o); err != nil {
				log.Println(errors.Wrap(err, "encoding response"))
				http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}
	}
}

// Translator converts a raw request body into a canonical request message.
type Translator[O Message] func(io.ReadCloser) (O, error)

// Translate applies a Translator to the request body, replacing it with the
// JSON serialization of the translated message before invoking the handler.
// This adapts externally-defined event payloads (e.g. GCS notifications)
// into handler request types.
func Translate[O Message](t Translator[O], h http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		m, err := t(r.Body)
		if err != nil {
			log.Println(errors.Wrap(err, "translating request"))
			http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		body, err := json.Marshal(m)
		if err != nil {
			log.Println(errors.Wrap(err, "marshalling request"))
			http.Error(rw, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		h(rw, r)
	}
}

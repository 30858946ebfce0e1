/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes kerrors values as HTTP error responses.
//
// The body is a google.rpc.Status encoded with protojson, the same shape
// gRPC-JSON gateways produce, so HTTP and gRPC clients decode one format.
package httpx

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/grpcx"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Meta carries extra context that the HTTP layer can add on top of an error.
// All fields are optional and typically come from request context, headers,
// or rate-limiter output.
type Meta struct {
	// RequestID is copied into the ErrorInfo metadata as "request_id".
	RequestID string
	// RetryAfterSeconds sets the Retry-After header and a RetryInfo detail.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that turns an error into an HTTP response using
// the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves err with the Mapper and writes the status line and a
// protojson google.rpc.Status body. Errors that carry no errno are written
// as EIO. A nil err writes nothing.
//
// No automatic redaction or filtering is performed here: the message of the
// error is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	e := kerrors.From(err)

	var metaFn grpcx.MetaFn
	if meta.RequestID != "" {
		metaFn = func(context.Context, *kerrors.Error) map[string]string {
			return map[string]string{"request_id": meta.RequestID}
		}
	}
	st := grpcx.StatusWith(context.Background(), w.Mapper, metaFn, e)
	if meta.RetryAfterSeconds > 0 {
		retry := &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		}
		if with, derr := st.WithDetails(retry); derr == nil {
			st = with
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Errno", e.Errno.String())
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(w.Mapper.HTTPStatus(e.Errno))

	// protojson is required for Any details and json_name field names.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(st.Proto())
	_, _ = rw.Write(b)
}

// Handler adapts a handler that returns an error into an http.Handler that
// writes failures with w.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err, Meta{RequestID: r.Header.Get("X-Request-Id")})
		}
	})
}

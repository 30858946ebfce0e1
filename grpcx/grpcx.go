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

// Package grpcx carries kerrors values across gRPC.
//
// The server interceptor projects a failing handler's error onto a gRPC
// status using an apis.Mapper and attaches a google.rpc.ErrorInfo detail
// whose Reason is the errno name. The client interceptor turns such a status
// back into a *kerrors.Error, so errors.Is(err, errno.ENOENT) keeps working
// on the far side of the connection.
//
// # Wire format
//
// For kerrors.E(kind.NotFound, "no inode", kerrors.WithOpOption("vfs.lookup"))
// the server sends:
//
//	code:    NOT_FOUND (from the Mapper)
//	message: "no inode"
//	details: google.rpc.ErrorInfo{
//	    reason:   "ENOENT",
//	    domain:   "kerrors.dirpx.dev",
//	    metadata: {errno: "2", kind: "NotFound", op: "vfs.lookup"},
//	}
//
// The reason is the errno name rather than the number, because names are
// the same on every architecture. The numeric errno in metadata is
// informational.
package grpcx

import (
	"context"
	"errors"
	"maps"
	"strconv"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain used for kerrors details. ExtractInfo
// ignores ErrorInfo details from other domains.
const Domain = "kerrors.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaErrno = "errno"
	MetaKind  = "kind"
	MetaOp    = "op"
)

// MetaFn extracts extra ErrorInfo metadata from context and the error.
// The errno, kind and op keys are owned by StatusWith: values a MetaFn
// returns for them are dropped.
type MetaFn func(ctx context.Context, e *kerrors.Error) map[string]string

// Status projects err onto a gRPC status. Errors that carry no errno (see
// kerrors.ErrnoOf) are returned as gstatus.Convert does. A nil err yields nil.
func Status(m apis.Mapper, err error) *gstatus.Status {
	return StatusWith(context.Background(), m, nil, err)
}

// StatusWith is Status with extra ErrorInfo metadata from metaFn, which may
// be nil.
func StatusWith(ctx context.Context, m apis.Mapper, metaFn MetaFn, err error) *gstatus.Status {
	if err == nil {
		return nil
	}
	if _, ok := kerrors.ErrnoOf(err); !ok {
		return gstatus.Convert(err)
	}
	e := kerrors.From(err)

	meta := map[string]string{}
	if metaFn != nil {
		maps.Copy(meta, metaFn(ctx, e))
	}
	delete(meta, MetaKind)
	delete(meta, MetaOp)
	meta[MetaErrno] = strconv.Itoa(e.Errno.Code())
	if e.Kind.Valid() {
		meta[MetaKind] = e.Kind.String()
	}
	if e.Op != "" {
		meta[MetaOp] = e.Op
	}

	msg := e.Message
	if msg == "" {
		msg = e.Errno.Description()
	}
	base := gstatus.New(m.GRPCStatus(e.Errno), msg)

	// Attach the detail when possible; the bare status is still usable.
	with, derr := base.WithDetails(&errdetails.ErrorInfo{
		Reason:   e.Errno.String(),
		Domain:   Domain,
		Metadata: meta,
	})
	if derr != nil {
		return base
	}
	return with
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors carrying an errno into gRPC statuses with a google.rpc.ErrorInfo
// detail. Other errors are returned as-is.
//
// The optional MetaFn adds metadata to the detail. It may be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := kerrors.ErrnoOf(err); !ok {
			// Not ours.
			return nil, err
		}
		return nil, StatusWith(ctx, m, metaFn, err).Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// statuses produced by UnaryServerInterceptor back into *kerrors.Error. The
// original status error stays reachable as the cause.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if e, ok := FromStatus(err); ok {
			return e
		}
		return err
	}
}

// ExtractInfo pulls the kerrors ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FromStatus rebuilds a *kerrors.Error from a gRPC error carrying a kerrors
// ErrorInfo detail. The status message becomes the Message and err the
// Cause.
//
// The errno comes from the detail's Reason; an unknown name makes FromStatus
// report false. The kind is optional and is kept only when it converts to
// that errno, so the result never carries a kind/errno pair that E could not
// have produced.
func FromStatus(err error) (*kerrors.Error, bool) {
	info, ok := ExtractInfo(err)
	if !ok {
		return nil, false
	}
	en, perr := errno.Parse(info.GetReason())
	if perr != nil {
		return nil, false
	}
	st, _ := gstatus.FromError(err)

	e := &kerrors.Error{
		Errno:   en,
		Op:      info.GetMetadata()[MetaOp],
		Message: st.Message(),
		Cause:   err,
	}
	// A kind only travels with the errno it converts to.
	if name, ok := info.GetMetadata()[MetaKind]; ok {
		if k, kerr := kind.Parse(name); kerr == nil && errno.FromKind(k) == en {
			e.Kind = k
		}
	}
	return e, true
}

// IsErrno reports whether err is a gRPC status error carrying the given errno.
func IsErrno(err error, en errno.Errno) bool {
	e, ok := FromStatus(err)
	return ok && errors.Is(e, en)
}

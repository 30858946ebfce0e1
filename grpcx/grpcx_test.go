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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"dirpx.dev/kerrors/mapper"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/vfs.v1.VFS/Lookup"}

func serve(t *testing.T, metaFn MetaFn, herr error) error {
	t.Helper()
	intercept := UnaryServerInterceptor(mapper.Default, metaFn)
	resp, err := intercept(context.Background(), "req", info, func(context.Context, any) (any, error) {
		if herr != nil {
			return nil, herr
		}
		return "ok", nil
	})
	if herr == nil {
		require.NoError(t, err)
		require.Equal(t, "ok", resp)
	}
	return err
}

func TestServerInterceptor_Kind(t *testing.T) {
	err := serve(t, nil, kerrors.E(kind.NotFound, "no inode for name", kerrors.WithOpOption("vfs.lookup")))
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
	require.Equal(t, "no inode for name", st.Message())

	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	require.Equal(t, "ENOENT", ei.GetReason())
	require.Equal(t, Domain, ei.GetDomain())
	require.Equal(t, map[string]string{
		MetaErrno: "2",
		MetaKind:  "NotFound",
		MetaOp:    "vfs.lookup",
	}, ei.GetMetadata())
}

func TestServerInterceptor_BareErrno(t *testing.T) {
	err := serve(t, nil, errno.EAGAIN)

	require.Equal(t, codes.Unavailable, gstatus.Code(err))
	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	require.Equal(t, "EAGAIN", ei.GetReason())
	require.NotContains(t, ei.GetMetadata(), MetaKind)
	require.Equal(t, "11", ei.GetMetadata()[MetaErrno])
}

func TestServerInterceptor_MetaFn(t *testing.T) {
	metaFn := func(_ context.Context, e *kerrors.Error) map[string]string {
		return map[string]string{"request_id": "r-1", MetaErrno: "spoofed"}
	}
	err := serve(t, metaFn, kerrors.E(kind.StorageFull, ""))

	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	require.Equal(t, "r-1", ei.GetMetadata()["request_id"])
	require.Equal(t, "28", ei.GetMetadata()[MetaErrno])
	require.Equal(t, codes.ResourceExhausted, gstatus.Code(err))
}

func TestServerInterceptor_PassThrough(t *testing.T) {
	require.NoError(t, serve(t, nil, nil))

	foreign := errors.New("boom")
	err := serve(t, nil, foreign)
	require.Same(t, foreign, err)

	_, ok := ExtractInfo(err)
	require.False(t, ok)
}

func TestClientInterceptor_RoundTrip(t *testing.T) {
	serverErr := serve(t, nil, kerrors.E(kind.PermissionDenied, "mode 0400", kerrors.WithOpOption("vfs.open")))

	intercept := UnaryClientInterceptor()
	err := intercept(context.Background(), "/vfs.v1.VFS/Open", "req", nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return serverErr
		})
	require.Error(t, err)

	var e *kerrors.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind.PermissionDenied, e.Kind)
	require.Equal(t, errno.EACCES, e.Errno)
	require.Equal(t, "vfs.open", e.Op)
	require.Equal(t, "mode 0400", e.Message)
	require.ErrorIs(t, err, kind.PermissionDenied)
	require.ErrorIs(t, err, errno.EACCES)
	require.Same(t, serverErr, errors.Unwrap(err))
	require.True(t, IsErrno(serverErr, errno.EACCES))
	require.False(t, IsErrno(serverErr, errno.EPERM))
}

func TestClientInterceptor_ForeignStatus(t *testing.T) {
	foreign := gstatus.Error(codes.Unavailable, "dial tcp: connection refused")
	intercept := UnaryClientInterceptor()
	err := intercept(context.Background(), "/m", nil, nil, nil,
		func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return foreign
		})
	require.Same(t, foreign, err)

	_, ok := FromStatus(err)
	require.False(t, ok)
}

func TestStatus(t *testing.T) {
	require.Nil(t, Status(mapper.Default, nil))

	st := Status(mapper.Default, kerrors.FromErrno(errno.ENOTRECOVERABLE, ""))
	require.Equal(t, codes.DataLoss, st.Code())
	require.Equal(t, errno.ENOTRECOVERABLE.Description(), st.Message())
	require.Len(t, st.Details(), 1)

	st = Status(mapper.Default, errors.New("boom"))
	require.Equal(t, codes.Unknown, st.Code())
	require.Empty(t, st.Details())
}

func TestServerInterceptor_MetaFnCannotSpoofKindOrOp(t *testing.T) {
	metaFn := func(context.Context, *kerrors.Error) map[string]string {
		return map[string]string{MetaKind: "NotFound", MetaOp: "spoof", "tenant": "t1"}
	}
	err := serve(t, metaFn, kerrors.FromErrno(errno.EPIPE, "pipe"))

	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	require.NotContains(t, ei.GetMetadata(), MetaKind)
	require.NotContains(t, ei.GetMetadata(), MetaOp)
	require.Equal(t, "t1", ei.GetMetadata()["tenant"])

	e, ok := FromStatus(err)
	require.True(t, ok)
	require.Equal(t, errno.EPIPE, e.Errno)
	require.False(t, e.Kind.Valid())
	require.Empty(t, e.Op)
	_, ok = kerrors.KindOf(e)
	require.False(t, ok)
}

func TestFromStatus_RejectsMismatchedKind(t *testing.T) {
	st, err := gstatus.New(codes.Unavailable, "pipe").WithDetails(&errdetails.ErrorInfo{
		Reason:   "EPIPE",
		Domain:   Domain,
		Metadata: map[string]string{MetaErrno: "32", MetaKind: "NotFound"},
	})
	require.NoError(t, err)

	e, ok := FromStatus(st.Err())
	require.True(t, ok)
	require.Equal(t, errno.EPIPE, e.Errno)
	require.False(t, e.Kind.Valid(), "NotFound does not convert to EPIPE")
}

func TestServerInterceptor_KindOnlyLiteral(t *testing.T) {
	err := serve(t, nil, &kerrors.Error{Kind: kind.TimedOut})

	require.Equal(t, codes.DeadlineExceeded, gstatus.Code(err))
	ei, ok := ExtractInfo(err)
	require.True(t, ok)
	require.Equal(t, "ETIMEDOUT", ei.GetReason())
	require.Equal(t, "TimedOut", ei.GetMetadata()[MetaKind])
}

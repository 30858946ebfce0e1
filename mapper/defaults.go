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

package mapper

import (
	"net/http"

	"dirpx.dev/kerrors/errno"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings. Every errno that
// errno.FromKind can produce has an entry; the remaining entries cover errnos
// commonly surfaced by syscalls and network stacks. Anything else resolves to
// the fallback.
var defaultHTTP = map[errno.Errno]int{
	// Lookup.
	errno.ENOENT:  http.StatusNotFound,
	errno.ESRCH:   http.StatusNotFound,
	errno.ENODEV:  http.StatusNotFound,
	errno.ENXIO:   http.StatusNotFound,
	errno.ENODATA: http.StatusNotFound,
	errno.ESTALE:  http.StatusGone,

	// Caller mistakes.
	errno.EINVAL:       http.StatusBadRequest,
	errno.EFAULT:       http.StatusBadRequest,
	errno.EBADF:        http.StatusBadRequest,
	errno.E2BIG:        http.StatusBadRequest,
	errno.ENAMETOOLONG: http.StatusBadRequest,
	errno.EILSEQ:       http.StatusBadRequest,
	errno.ENOEXEC:      http.StatusBadRequest,
	errno.ENOTTY:       http.StatusBadRequest,
	errno.ENOTSOCK:     http.StatusBadRequest,
	errno.ERANGE:       http.StatusBadRequest,
	errno.EOVERFLOW:    http.StatusBadRequest,
	errno.EBADMSG:      http.StatusBadRequest,
	errno.EMSGSIZE:     http.StatusRequestEntityTooLarge,
	errno.EFBIG:        http.StatusRequestEntityTooLarge,

	// State of the target object.
	errno.EEXIST:     http.StatusConflict,
	errno.EISCONN:    http.StatusConflict,
	errno.EADDRINUSE: http.StatusConflict,
	errno.ENOTEMPTY:  http.StatusConflict,
	errno.EBUSY:      http.StatusConflict,
	errno.EDEADLK:    http.StatusConflict,
	errno.EISDIR:     http.StatusBadRequest,
	errno.ENOTDIR:    http.StatusBadRequest,
	errno.EXDEV:      http.StatusBadRequest,
	errno.ELOOP:      http.StatusBadRequest,
	errno.EROFS:      http.StatusForbidden,

	// Access.
	errno.EACCES:       http.StatusForbidden,
	errno.EPERM:        http.StatusForbidden,
	errno.ENOKEY:       http.StatusUnauthorized,
	errno.EKEYEXPIRED:  http.StatusUnauthorized,
	errno.EKEYREVOKED:  http.StatusUnauthorized,
	errno.EKEYREJECTED: http.StatusUnauthorized,

	// Capacity.
	errno.ENOSPC: http.StatusInsufficientStorage,
	errno.EDQUOT: http.StatusInsufficientStorage,
	errno.ENOMEM: http.StatusServiceUnavailable,
	errno.EMFILE: http.StatusServiceUnavailable,
	errno.ENFILE: http.StatusServiceUnavailable,

	// Transient / retry later.
	errno.EAGAIN:      http.StatusServiceUnavailable,
	errno.EINTR:       http.StatusServiceUnavailable,
	errno.EINPROGRESS: http.StatusServiceUnavailable,
	errno.ENOTCONN:    http.StatusServiceUnavailable,
	errno.ETIMEDOUT:   http.StatusGatewayTimeout,
	errno.ECANCELED:   http.StatusRequestTimeout,

	// Peers.
	errno.ECONNREFUSED: http.StatusBadGateway,
	errno.ECONNRESET:   http.StatusBadGateway,
	errno.ECONNABORTED: http.StatusBadGateway,
	errno.EPIPE:        http.StatusBadGateway,
	errno.EHOSTUNREACH: http.StatusBadGateway,
	errno.ENETUNREACH:  http.StatusBadGateway,
	errno.ENETDOWN:     http.StatusBadGateway,
	errno.EPROTO:       http.StatusBadGateway,

	// Not implemented.
	errno.ENOSYS:          http.StatusNotImplemented,
	errno.EOPNOTSUPP:      http.StatusNotImplemented,
	errno.EAFNOSUPPORT:    http.StatusNotImplemented,
	errno.EPROTONOSUPPORT: http.StatusNotImplemented,

	// Damage.
	errno.EIO:             http.StatusInternalServerError,
	errno.EUCLEAN:         http.StatusInternalServerError,
	errno.EHWPOISON:       http.StatusInternalServerError,
	errno.ENOTRECOVERABLE: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings. It covers the
// same errnos as defaultHTTP.
var defaultGRPC = map[errno.Errno]codes.Code{
	errno.ENOENT:  codes.NotFound,
	errno.ESRCH:   codes.NotFound,
	errno.ENODEV:  codes.NotFound,
	errno.ENXIO:   codes.NotFound,
	errno.ENODATA: codes.NotFound,
	errno.ESTALE:  codes.NotFound, // gRPC has no 410

	errno.EINVAL:       codes.InvalidArgument,
	errno.EFAULT:       codes.InvalidArgument,
	errno.EBADF:        codes.InvalidArgument,
	errno.E2BIG:        codes.InvalidArgument,
	errno.ENAMETOOLONG: codes.InvalidArgument,
	errno.EILSEQ:       codes.InvalidArgument,
	errno.ENOEXEC:      codes.InvalidArgument,
	errno.ENOTTY:       codes.InvalidArgument,
	errno.ENOTSOCK:     codes.InvalidArgument,
	errno.ERANGE:       codes.OutOfRange,
	errno.EOVERFLOW:    codes.OutOfRange,
	errno.EBADMSG:      codes.InvalidArgument,
	errno.EMSGSIZE:     codes.InvalidArgument,
	errno.EFBIG:        codes.OutOfRange,

	errno.EEXIST:     codes.AlreadyExists,
	errno.EISCONN:    codes.AlreadyExists,
	errno.EADDRINUSE: codes.AlreadyExists,
	errno.ENOTEMPTY:  codes.FailedPrecondition,
	errno.EBUSY:      codes.Aborted,
	errno.EDEADLK:    codes.Aborted,
	errno.EISDIR:     codes.FailedPrecondition,
	errno.ENOTDIR:    codes.FailedPrecondition,
	errno.EXDEV:      codes.FailedPrecondition,
	errno.ELOOP:      codes.FailedPrecondition,
	errno.EROFS:      codes.FailedPrecondition,

	errno.EACCES:       codes.PermissionDenied,
	errno.EPERM:        codes.PermissionDenied,
	errno.ENOKEY:       codes.Unauthenticated,
	errno.EKEYEXPIRED:  codes.Unauthenticated,
	errno.EKEYREVOKED:  codes.Unauthenticated,
	errno.EKEYREJECTED: codes.Unauthenticated,

	errno.ENOSPC: codes.ResourceExhausted,
	errno.EDQUOT: codes.ResourceExhausted,
	errno.ENOMEM: codes.ResourceExhausted,
	errno.EMFILE: codes.ResourceExhausted,
	errno.ENFILE: codes.ResourceExhausted,

	errno.EAGAIN:      codes.Unavailable,
	errno.EINTR:       codes.Unavailable,
	errno.EINPROGRESS: codes.Unavailable,
	errno.ENOTCONN:    codes.Unavailable,
	errno.ETIMEDOUT:   codes.DeadlineExceeded,
	errno.ECANCELED:   codes.Canceled,

	errno.ECONNREFUSED: codes.Unavailable,
	errno.ECONNRESET:   codes.Unavailable,
	errno.ECONNABORTED: codes.Unavailable,
	errno.EPIPE:        codes.Unavailable,
	errno.EHOSTUNREACH: codes.Unavailable,
	errno.ENETUNREACH:  codes.Unavailable,
	errno.ENETDOWN:     codes.Unavailable,
	errno.EPROTO:       codes.Internal,

	errno.ENOSYS:          codes.Unimplemented,
	errno.EOPNOTSUPP:      codes.Unimplemented,
	errno.EAFNOSUPPORT:    codes.Unimplemented,
	errno.EPROTONOSUPPORT: codes.Unimplemented,

	errno.EIO:             codes.Internal,
	errno.EUCLEAN:         codes.DataLoss,
	errno.EHWPOISON:       codes.DataLoss,
	errno.ENOTRECOVERABLE: codes.DataLoss,
}

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

package errno

import (
	"fmt"

	"dirpx.dev/kerrors/kind"
)

// FromKind translates a generic kind to the errno used to report it through
// a POSIX-style interface.
//
// The mapping is fixed and many-to-one (InvalidData and InvalidInput both
// become EINVAL; Io, UnexpectedEof and WriteZero all become EIO). Unsupported
// always maps to ENOSYS, never EOPNOTSUPP.
//
// FromKind panics if k is not a defined kind; kinds are only ever produced by
// this module's constants.
func FromKind(k kind.Kind) Errno {
	switch k {
	case kind.AddrInUse:
		return EADDRINUSE
	case kind.AlreadyConnected:
		return EISCONN
	case kind.AlreadyExists:
		return EEXIST
	case kind.ArgumentListTooLong:
		return E2BIG
	case kind.BadAddress, kind.BadState:
		return EFAULT
	case kind.BadFileDescriptor:
		return EBADF
	case kind.BrokenPipe:
		return EPIPE
	case kind.ConnectionRefused:
		return ECONNREFUSED
	case kind.ConnectionReset:
		return ECONNRESET
	case kind.CrossesDevices:
		return EXDEV
	case kind.DirectoryNotEmpty:
		return ENOTEMPTY
	case kind.FilesystemLoop:
		return ELOOP
	case kind.IllegalBytes:
		return EILSEQ
	case kind.InProgress:
		return EINPROGRESS
	case kind.Interrupted:
		return EINTR
	case kind.InvalidData, kind.InvalidInput:
		return EINVAL
	case kind.InvalidExecutable:
		return ENOEXEC
	case kind.Io, kind.UnexpectedEof, kind.WriteZero:
		return EIO
	case kind.IsADirectory:
		return EISDIR
	case kind.NameTooLong:
		return ENAMETOOLONG
	case kind.NoMemory:
		return ENOMEM
	case kind.NoSuchDevice:
		return ENODEV
	case kind.NoSuchProcess:
		return ESRCH
	case kind.NotADirectory:
		return ENOTDIR
	case kind.NotASocket:
		return ENOTSOCK
	case kind.NotATty:
		return ENOTTY
	case kind.NotConnected:
		return ENOTCONN
	case kind.NotFound:
		return ENOENT
	case kind.OperationNotPermitted:
		return EPERM
	case kind.OutOfRange:
		return ERANGE
	case kind.PermissionDenied:
		return EACCES
	case kind.ReadOnlyFilesystem:
		return EROFS
	case kind.ResourceBusy:
		return EBUSY
	case kind.StorageFull:
		return ENOSPC
	case kind.TimedOut:
		return ETIMEDOUT
	case kind.TooManyOpenFiles:
		return EMFILE
	case kind.Unsupported:
		return ENOSYS
	case kind.WouldBlock:
		return EAGAIN
	}
	panic(fmt.Sprintf("errno: no mapping for kind %d", uint8(k)))
}

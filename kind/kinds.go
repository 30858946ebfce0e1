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

package kind

// Kind codes are assigned once, in alphabetical order of the variant name at
// the time the vocabulary was frozen, and never renumbered. New kinds are
// appended after WriteZero.
const (
	// AddrInUse indicates that a socket address could not be bound because it
	// is already in use elsewhere.
	AddrInUse Kind = 1
	// AlreadyConnected indicates a connect on an already connected endpoint.
	AlreadyConnected Kind = 2
	// AlreadyExists indicates that an entity (file, key, object) cannot be
	// created because one with the same identity already exists.
	AlreadyExists Kind = 3
	// ArgumentListTooLong indicates that an argument or environment list
	// exceeded the system limit.
	ArgumentListTooLong Kind = 4
	// BadAddress indicates that a caller-supplied address is invalid or
	// points outside the accessible address space.
	BadAddress Kind = 5
	// BadFileDescriptor indicates an invalid or closed descriptor/handle.
	BadFileDescriptor Kind = 6
	// BadState indicates that an object was found in a state that makes the
	// requested operation impossible.
	BadState Kind = 7
	// BrokenPipe indicates a write to a pipe or socket with no reader.
	BrokenPipe Kind = 8
	// ConnectionRefused indicates that the remote end actively refused the
	// connection.
	ConnectionRefused Kind = 9
	// ConnectionReset indicates that the remote end reset the connection.
	ConnectionReset Kind = 10
	// CrossesDevices indicates a link or rename across filesystems.
	CrossesDevices Kind = 11
	// DirectoryNotEmpty indicates that a directory must be empty for the
	// operation to succeed.
	DirectoryNotEmpty Kind = 12
	// FilesystemLoop indicates too many levels of symbolic links.
	FilesystemLoop Kind = 13
	// IllegalBytes indicates an invalid multibyte or wide character sequence.
	IllegalBytes Kind = 14
	// InProgress indicates that a non-blocking operation was started and
	// will complete later.
	InProgress Kind = 15
	// Interrupted indicates that a blocking operation was interrupted before
	// it could complete.
	Interrupted Kind = 16
	// InvalidData indicates that data read or received was malformed. Unlike
	// InvalidInput this is about content, not parameters.
	InvalidData Kind = 17
	// InvalidExecutable indicates an unrecognized executable image format.
	InvalidExecutable Kind = 18
	// InvalidInput indicates a parameter that violates the operation's
	// contract.
	InvalidInput Kind = 19
	// Io indicates a low-level I/O failure.
	Io Kind = 20
	// IsADirectory indicates that a directory was given where a non-directory
	// was expected.
	IsADirectory Kind = 21
	// NameTooLong indicates that a path or path component is too long.
	NameTooLong Kind = 22
	// NoMemory indicates that an allocation could not be satisfied.
	NoMemory Kind = 23
	// NoSuchDevice indicates that the addressed device does not exist.
	NoSuchDevice Kind = 24
	// NoSuchProcess indicates that the addressed process or task does not
	// exist.
	NoSuchProcess Kind = 25
	// NotADirectory indicates that a path component is not a directory.
	NotADirectory Kind = 26
	// NotASocket indicates a socket operation on a non-socket handle.
	NotASocket Kind = 27
	// NotATty indicates an I/O control operation unsupported by the target.
	NotATty Kind = 28
	// NotConnected indicates an operation that requires a connected
	// endpoint.
	NotConnected Kind = 29
	// NotFound indicates that the requested entity does not exist.
	NotFound Kind = 30
	// OperationNotPermitted indicates that the caller lacks the privilege
	// for the operation itself, regardless of object permissions.
	OperationNotPermitted Kind = 31
	// OutOfRange indicates a result or argument outside the representable
	// range.
	OutOfRange Kind = 32
	// PermissionDenied indicates that access to an object is forbidden by
	// its permissions.
	PermissionDenied Kind = 33
	// ReadOnlyFilesystem indicates a modification of a read-only filesystem.
	ReadOnlyFilesystem Kind = 34
	// ResourceBusy indicates that a device or resource is in use.
	ResourceBusy Kind = 35
	// StorageFull indicates that the underlying storage has no space left.
	StorageFull Kind = 36
	// TimedOut indicates that the operation did not complete in time.
	TimedOut Kind = 37
	// TooManyOpenFiles indicates that the per-process handle table is full.
	TooManyOpenFiles Kind = 38
	// UnexpectedEof indicates that a read ended before the expected amount
	// of data was available.
	UnexpectedEof Kind = 39
	// Unsupported indicates that the operation is not implemented or not
	// supported by this system.
	Unsupported Kind = 40
	// WouldBlock indicates that the operation needs to block to complete but
	// blocking was not requested.
	WouldBlock Kind = 41
	// WriteZero indicates that a write returned zero bytes written.
	WriteZero Kind = 42
)

// count is the number of defined kinds. Codes are dense in [1, count].
const count = 42

type info struct {
	name string
	desc string
}

// table is indexed by Kind. Index 0 is unused.
var table = [count + 1]info{
	AddrInUse:             {"AddrInUse", "Address in use"},
	AlreadyConnected:      {"AlreadyConnected", "Already connected"},
	AlreadyExists:         {"AlreadyExists", "Entity already exists"},
	ArgumentListTooLong:   {"ArgumentListTooLong", "Argument list too long"},
	BadAddress:            {"BadAddress", "Bad address"},
	BadFileDescriptor:     {"BadFileDescriptor", "Bad file descriptor"},
	BadState:              {"BadState", "Bad internal state"},
	BrokenPipe:            {"BrokenPipe", "Broken pipe"},
	ConnectionRefused:     {"ConnectionRefused", "Connection refused"},
	ConnectionReset:       {"ConnectionReset", "Connection reset"},
	CrossesDevices:        {"CrossesDevices", "Cross-device or cross-filesystem link or rename"},
	DirectoryNotEmpty:     {"DirectoryNotEmpty", "Directory not empty"},
	FilesystemLoop:        {"FilesystemLoop", "Filesystem loop or indirection limit"},
	IllegalBytes:          {"IllegalBytes", "Illegal byte sequence"},
	InProgress:            {"InProgress", "Operation in progress"},
	Interrupted:           {"Interrupted", "Operation interrupted"},
	InvalidData:           {"InvalidData", "Invalid data"},
	InvalidExecutable:     {"InvalidExecutable", "Invalid executable format"},
	InvalidInput:          {"InvalidInput", "Invalid input parameter"},
	Io:                    {"Io", "I/O error"},
	IsADirectory:          {"IsADirectory", "Is a directory"},
	NameTooLong:           {"NameTooLong", "Filename too long"},
	NoMemory:              {"NoMemory", "Not enough space/cannot allocate memory"},
	NoSuchDevice:          {"NoSuchDevice", "No such device"},
	NoSuchProcess:         {"NoSuchProcess", "No such process"},
	NotADirectory:         {"NotADirectory", "Not a directory"},
	NotASocket:            {"NotASocket", "Not a socket"},
	NotATty:               {"NotATty", "Inappropriate ioctl for device"},
	NotConnected:          {"NotConnected", "Not connected"},
	NotFound:              {"NotFound", "Entity not found"},
	OperationNotPermitted: {"OperationNotPermitted", "Operation not permitted"},
	OutOfRange:            {"OutOfRange", "Result out of range"},
	PermissionDenied:      {"PermissionDenied", "Permission denied"},
	ReadOnlyFilesystem:    {"ReadOnlyFilesystem", "Read-only filesystem"},
	ResourceBusy:          {"ResourceBusy", "Device or resource busy"},
	StorageFull:           {"StorageFull", "No storage space"},
	TimedOut:              {"TimedOut", "Timed out"},
	TooManyOpenFiles:      {"TooManyOpenFiles", "Too many open files"},
	UnexpectedEof:         {"UnexpectedEof", "Unexpected end of file"},
	Unsupported:           {"Unsupported", "Operation not supported"},
	WouldBlock:            {"WouldBlock", "Operation would block"},
	WriteZero:             {"WriteZero", "Write zero"},
}

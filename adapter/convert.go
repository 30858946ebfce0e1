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

package adapter

import (
	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
)

// ToDescriptor converts an error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the vocabulary values and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *kerrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	en := e.ErrorErrno()
	d := apis.ErrorDescriptor{
		Errno:      en.String(),
		Code:       en.Code(),
		Op:         e.Op,
		Message:    e.Message,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if e.Kind.Valid() {
		d.Kind = e.Kind.String()
		d.KindCode = e.Kind.Code()
	}
	if d.Message == "" {
		d.Message = en.Description()
	}
	return d
}

// Describe resolves err against m and flattens it. Errors that carry no
// vocabulary value are reported as EIO with the error text as message.
func Describe(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	e := kerrors.From(err)
	return ToDescriptor(e, m.Status(e.Errno))
}

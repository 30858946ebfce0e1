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

package apis

// ErrorDescriptor is a flat, transport-friendly description of an error.
//
// It uses plain strings and integers (not kind.Kind / errno.Errno) so that it
// marshals identically through encoding/json, logs and message buses.
type ErrorDescriptor struct {
	// Kind is the generic kind name, e.g. "NotFound". Empty when the error
	// was reported with a raw errno.
	Kind string `json:"kind,omitempty"`

	// KindCode is the stable numeric code of Kind. Zero when Kind is empty.
	KindCode int `json:"kind_code,omitempty"`

	// Errno is the symbolic errno name, e.g. "ENOENT".
	Errno string `json:"errno"`

	// Code is the raw errno value.
	Code int `json:"code"`

	// Op is the operation that failed, if known.
	Op string `json:"op,omitempty"`

	// Message is the human-readable message, falling back to the errno
	// description.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`
}

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

// Package kind defines the closed set of platform-agnostic error kinds.
//
// A Kind answers "what category of failure is this?" without committing to any
// platform's numbering: "not found", "would block", "storage full", ...
// Higher-level components report failures as a Kind and translate to a
// platform errno (see package errno) only when they cross into a
// POSIX-flavoured interface.
//
// Kinds are small immutable values. Each has:
//
//   - a numeric code, stable across releases (Code);
//   - a symbolic name (String), e.g. "NotFound";
//   - a fixed human-readable description (Description, Error).
//
// There is no constructor from an arbitrary integer: kinds are
// produced by the software itself, never decoded from untrusted input. Parse
// accepts symbolic names only, for configuration and tooling.
package kind

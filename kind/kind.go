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

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Kind is a platform-agnostic error category.
//
// The zero value is not a valid kind. Kind implements error so that it can be
// returned, wrapped and matched with errors.Is directly.
type Kind uint8

var (
	// ErrUnknownKind is returned when a name does not denote any Kind.
	ErrUnknownKind = errors.New("kind: unknown kind")
)

var (
	_ error                    = Kind(0)
	_ fmt.Stringer             = Kind(0)
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// byName maps normalized variant names to kinds. Built once from table.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, count)
	for k := Kind(1); k <= count; k++ {
		m[Normalize(table[k].name)] = k
	}
	return m
}()

// All returns every defined kind in code order. The slice is freshly
// allocated on each call.
func All() []Kind {
	out := make([]Kind, 0, count)
	for k := Kind(1); k <= count; k++ {
		out = append(out, k)
	}
	return out
}

// Normalize folds a kind name to its lookup form: surrounding spaces are
// trimmed, the value is lowercased and '_' / '-' separators are dropped, so
// "NotFound", "not_found" and "NOT-FOUND" all compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// Parse looks a kind up by its symbolic name.
func Parse(s string) (Kind, error) {
	if k, ok := byName[Normalize(s)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MustParse is like Parse but panics on unknown names.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 1 && k <= count
}

// Code returns the stable numeric identifier of k.
func (k Kind) Code() int {
	return int(k)
}

// String returns the variant name, e.g. "NotFound".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return table[k].name
}

// Description returns the fixed human-readable text for k.
func (k Kind) Description() string {
	if !k.Valid() {
		return "Unknown error kind " + strconv.Itoa(int(k))
	}
	return table[k].desc
}

// Error implements the error interface.
func (k Kind) Error() string {
	return k.Description()
}

// Is lets errors.Is match a Kind against the portable io/fs sentinels.
func (k Kind) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return k == NotFound
	case fs.ErrExist:
		return k == AlreadyExists || k == DirectoryNotEmpty
	case fs.ErrPermission:
		return k == PermissionDenied || k == OperationNotPermitted
	case errors.ErrUnsupported:
		return k == Unsupported
	}
	return false
}

// MarshalText implements encoding.TextMarshaler using the variant name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(table[k].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any spelling
// that Parse accepts.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

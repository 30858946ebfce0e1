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

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh command tree with args and returns its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(errno.All())+1)
	require.True(t, strings.HasPrefix(lines[0], "CODE"))
	require.Contains(t, lines[1], "EPERM")
	require.Contains(t, out, "No such file or directory")
}

func TestList_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var rows []errnoRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(errno.All()))
	require.Equal(t, errnoRow{Name: "ENOENT", Code: 2, Description: "No such file or directory"}, rows[1])
}

func TestKinds(t *testing.T) {
	out, _, err := executeCommand(t, "kinds", "--json")
	require.NoError(t, err)

	var rows []kindRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(kind.All()))
	for _, r := range rows {
		if r.Kind == "Unsupported" {
			require.Equal(t, "ENOSYS", r.Errno)
		}
	}

	out, _, err = executeCommand(t, "kinds")
	require.NoError(t, err)
	require.Contains(t, out, "WouldBlock")
	require.Contains(t, out, "EAGAIN")
}

func TestShow(t *testing.T) {
	tests := []struct {
		arg       string
		wantErrno string
		wantKind  string
	}{
		{"ENOENT", "ENOENT", ""},
		{"ewouldblock", "EAGAIN", ""},
		{"2", "ENOENT", ""},
		{"-110", "ETIMEDOUT", ""},
		{"NotFound", "ENOENT", "NotFound"},
		{"storage-full", "ENOSPC", "StorageFull"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, _, err := executeCommand(t, "show", "--json", "--", tt.arg)
			require.NoError(t, err)

			var descs []apis.ErrorDescriptor
			require.NoError(t, json.Unmarshal([]byte(out), &descs))
			require.Len(t, descs, 1)
			require.Equal(t, tt.wantErrno, descs[0].Errno)
			require.Equal(t, tt.wantKind, descs[0].Kind)
			require.NotZero(t, descs[0].HTTPStatus)
			require.NotZero(t, descs[0].GRPCCode)
		})
	}
}

func TestShow_Text(t *testing.T) {
	out, _, err := executeCommand(t, "show", "--explain", "PermissionDenied")
	require.NoError(t, err)
	require.Contains(t, out, "EACCES (13): Permission denied")
	require.Contains(t, out, "kind:")
	require.Contains(t, out, "PermissionDenied (33)")
	require.Contains(t, out, "403")
	require.Contains(t, out, "source=default")
}

func TestShow_Unknown(t *testing.T) {
	for _, arg := range []string{"58", "EBOGUS", "0"} {
		_, _, err := executeCommand(t, "show", arg)
		require.Error(t, err, arg)
		require.ErrorIs(t, err, kind.InvalidInput)
		require.Equal(t, errno.EINVAL.Code(), exitCode(err))
	}

	_, _, err := executeCommand(t, "show", "EBOGUS")
	require.ErrorIs(t, err, errno.ErrUnrecognized)
	require.ErrorIs(t, err, kind.ErrUnknownKind)
}

func TestShow_Verbose(t *testing.T) {
	prev := *kerrors.Logger()
	t.Cleanup(func() { kerrors.SetLogger(prev) })

	_, stderr, err := executeCommand(t, "show", "-v", "EIO")
	require.NoError(t, err)
	require.Contains(t, stderr, "lookup")
	require.Contains(t, stderr, "EIO")
}

func TestExitCode_Usage(t *testing.T) {
	_, _, err := executeCommand(t, "show")
	require.Error(t, err)
	require.Equal(t, 1, exitCode(err))
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "errno version dev\n", out)

	out, _, err = executeCommand(t, "version", "--json")
	require.NoError(t, err)
	require.JSONEq(t, `{"version":"dev","commit":"unknown"}`, out)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf)
	l.Warn().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Equal(t, zerolog.TraceLevel, l.GetLevel())
}

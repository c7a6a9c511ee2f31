package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testArgs = []string{"arg1", "-dfc=val", "-p", "arg3", "--flag", "--str=val", "arg5"}

var testRecords = []record{
	{Kind: "positional", Value: "arg1"},
	{Kind: "short flag", Flag: "d"},
	{Kind: "short flag", Flag: "f"},
	{Kind: "short flag", Flag: "c", Value: "val"},
	{Kind: "short flag", Flag: "p"},
	{Kind: "positional", Value: "arg3"},
	{Kind: "long flag", Flag: "flag", Terminated: true},
	{Kind: "long flag", Flag: "str", Value: "val"},
	{Kind: "positional", Value: "arg5"},
}

func runTest(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = run(args, &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func TestRun_Text(t *testing.T) {
	t.Setenv(formatEnv, "")

	code, stdout, stderr := runTest(t, testArgs...)
	require.Equal(t, 0, code)
	require.Empty(t, stderr)
	require.Equal(t, `positional "arg1"
short flag -d
short flag -f
short flag -c = "val"
short flag -p
positional "arg3"
long flag --flag
long flag --str = "val"
positional "arg5"
`, stdout)
}

func TestRun_Resolve(t *testing.T) {
	t.Setenv(formatEnv, "")

	code, stdout, _ := runTest(t, "-rn", "--", "-b", "33", "--name", "x", "-c", "-d")
	require.Equal(t, 0, code)
	require.Equal(t, `short flag -b = "33"
long flag --name = "x"
short flag -c
short flag -d
`, stdout)
}

func TestRun_JSON(t *testing.T) {
	t.Setenv(formatEnv, "")

	code, stdout, stderr := runTest(t, append([]string{"--format", "json", "--"}, testArgs...)...)
	require.Equal(t, 0, code)
	require.Empty(t, stderr)

	var actual []record
	require.NoError(t, json.Unmarshal([]byte(stdout), &actual))
	require.Equal(t, testRecords, actual)
}

func TestRun_YAML(t *testing.T) {
	t.Setenv(formatEnv, "")

	code, stdout, stderr := runTest(t, append([]string{"-f=yaml", "--"}, testArgs...)...)
	require.Equal(t, 0, code)
	require.Empty(t, stderr)

	var actual []record
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &actual))
	require.Equal(t, testRecords, actual)
}

func TestRun_FormatFromEnv(t *testing.T) {
	t.Setenv(formatEnv, "json")

	code, stdout, _ := runTest(t, "--", "a")
	require.Equal(t, 0, code)
	var actual []record
	require.NoError(t, json.Unmarshal([]byte(stdout), &actual))
	require.Equal(t, []record{{Kind: "positional", Value: "a"}}, actual)

	// option overrides the environment
	code, stdout, _ = runTest(t, "-f", "text", "--", "a")
	require.Equal(t, 0, code)
	require.Equal(t, "positional \"a\"\n", stdout)
}

func TestRun_Empty(t *testing.T) {
	t.Setenv(formatEnv, "json")

	code, stdout, _ := runTest(t)
	require.Equal(t, 0, code)
	require.JSONEq(t, "[]", stdout)
}

func TestRun_Help(t *testing.T) {
	t.Setenv(formatEnv, "")

	code, stdout, _ := runTest(t, "--help", "--")
	require.Equal(t, 0, code)
	require.Equal(t, usage, stdout)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Setenv(formatEnv, "")

	testCases := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "unknown_short",
			args:   []string{"-x", "--", "a"},
			errMsg: "unknown option -x",
		},
		{
			name:   "unknown_long",
			args:   []string{"--verbose", "--", "a"},
			errMsg: "unknown option --verbose",
		},
		{
			name:   "missing_value",
			args:   []string{"-f", "-r", "--", "a"},
			errMsg: "-f requires a value",
		},
		{
			name:   "bad_format",
			args:   []string{"--format=xml", "--"},
			errMsg: `unknown format "xml"`,
		},
		{
			name:   "unexpected_value",
			args:   []string{"--resolve=yes", "--"},
			errMsg: "--resolve=yes doesn't take a value",
		},
		{
			name:   "positional",
			args:   []string{"json", "--", "a"},
			errMsg: `unexpected argument "json"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runTest(t, tc.args...)
			require.Equal(t, 2, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "capdump: ")
			require.Contains(t, stderr, tc.errMsg)
			require.Contains(t, stderr, usage)
		})
	}
}

func TestRun_BadEnvFormat(t *testing.T) {
	t.Setenv(formatEnv, "toml")

	code, _, stderr := runTest(t, "--", "a")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "$CAPDUMP_FORMAT")
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	optionArgs, subject := splitArgs([]string{"-r", "--", "a", "--", "b"})
	require.Equal(t, []string{"-r"}, optionArgs)
	require.Equal(t, []string{"a", "--", "b"}, subject)

	optionArgs, subject = splitArgs([]string{"a", "-b"})
	require.Nil(t, optionArgs)
	require.Equal(t, []string{"a", "-b"}, subject)
}

package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithInput(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, nil, args...)
}

func tempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestSplitCommand(t *testing.T) {
	out, err := run(t, "split", ",", "a,,b")
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", out)

	out, err = run(t, "--skip-empty", "split", ",", "a,,b")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = run(t, "split", "-E", `\d+`, "a1b22c")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", out)

	out, err = run(t, "-i", "split", "X", "axbXc")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", out)

	_, err = run(t, "split", "-E", "(", "text")
	require.Error(t, err)
}

func TestSplitBehaviorFromConfig(t *testing.T) {
	cfg := tempFile(t, "cfg.toml", []byte(`split_behavior = "skip"`))
	out, err := run(t, "--config", cfg, "split", ",", ",a,,b,")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestTokenizeCommand(t *testing.T) {
	out, err := run(t, "tokenize", "-n", "2", " ", "one two three")
	require.NoError(t, err)
	assert.Equal(t, "0\tone\n1\ttwo\n", out)

	out, err = run(t, "tokenize", ";", "x;y")
	require.NoError(t, err)
	assert.Equal(t, "0\tx\n1\ty\n", out)
}

func TestSearchCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"find", []string{"find", "o", "hello world"}, "4\n"},
		{"find from", []string{"find", "--from", "5", "o", "hello world"}, "7\n"},
		{"find fold", []string{"-i", "find", "WORLD", "hello world"}, "6\n"},
		{"find last", []string{"find", "--last", "o", "hello world"}, "7\n"},
		{"find miss", []string{"find", "z", "hello world"}, "-1\n"},
		{"count", []string{"count", "aa", "aaaa"}, "2\n"},
		{"count fold", []string{"-i", "count", "a", "aAa"}, "3\n"},
		{"compare", []string{"compare", "ABC", "abc"}, "-1\n"},
		{"compare fold", []string{"-i", "compare", "ABC", "abc"}, "0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInspectionCommands(t *testing.T) {
	out, err := run(t, "trim", "  hi  ")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)

	out, err = run(t, "rtl", "שלום")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "rtl", "hello")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "validate", "plain 😀")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestNumberCommand(t *testing.T) {
	out, err := run(t, "number", "--base", "0", "0x1F")
	require.NoError(t, err)
	assert.Equal(t, "int 31\n", out)

	out, err = run(t, "number", "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, "uint 18446744073709551615\n", out)

	out, err = run(t, "number", " 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, "float 2.5\n", out)

	_, err = run(t, "number", "abc")
	require.ErrorIs(t, err, errNotNumber)
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "--to", "latin1", "--hex", "é€")
	require.NoError(t, err)
	assert.Equal(t, "e93f\n", out)

	out, err = run(t, "convert", "--to", "utf16le", "--bom", "--hex", "hi")
	require.NoError(t, err)
	assert.Equal(t, "fffe68006900\n", out)

	out, err = run(t, "convert", "--to", "utf8", "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = run(t, "convert", "--to", "ebcdic", "x")
	require.Error(t, err)

	_, err = run(t, "convert", "--to", "frame", "--error-code", "300", "x")
	require.Error(t, err)
}

func TestConvertLocalFromConfig(t *testing.T) {
	prev := u16view.LocalEncodingName()
	t.Cleanup(func() {
		assert.NoError(t, u16view.SetLocalEncoding(prev))
		assert.Equal(t, prev, u16view.LocalEncodingName())
	})

	cfg := tempFile(t, "cfg.yaml", []byte("local_encoding: iso-8859-15\n"))
	out, err := run(t, "--config", cfg, "convert", "--to", "local", "--hex", "€")
	require.NoError(t, err)
	assert.Equal(t, "a4\n", out)
}

func TestFrameRoundTrip(t *testing.T) {
	frame, err := run(t, "convert", "--to", "frame", "frame text")
	require.NoError(t, err)
	path := tempFile(t, "data.frame", []byte(frame))

	out, err := run(t, "--file", path, "inspect")
	require.NoError(t, err)
	assert.Equal(t, "data frame, 32 bytes, 10 units\nframe text\n", out)

	frame, err = run(t, "convert", "--to", "frame", "--error-code", "3", "oops")
	require.NoError(t, err)
	path = tempFile(t, "error.frame", []byte(frame))

	out, err = run(t, "--file", path, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "error frame")
	assert.Contains(t, out, "code 3")
	assert.Contains(t, out, "oops")

	path = tempFile(t, "junk.frame", []byte("definitely not a frame"))
	_, err = run(t, "--file", path, "inspect")
	require.Error(t, err)
}

func TestCompressedFrameFromConfig(t *testing.T) {
	cfg := tempFile(t, "cfg.toml", []byte("[frame]\ncompress = true\n"))
	text := strings.Repeat("squeeze ", 50)
	frame, err := run(t, "--config", cfg, "convert", "--to", "frame", text)
	require.NoError(t, err)
	assert.Less(t, len(frame), 2*len(text))

	path := tempFile(t, "z.frame", []byte(frame))
	out, err := run(t, "--file", path, "inspect")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, text+"\n"))
}

func TestUTF16FileInput(t *testing.T) {
	cfg := tempFile(t, "cfg.yaml", []byte("input_encoding: utf16\n"))

	good := tempFile(t, "good.txt", []byte{0xFF, 0xFE, 'o', 0, 'k', 0})
	out, err := run(t, "--config", cfg, "--file", good, "validate")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = run(t, "--config", cfg, "--file", good, "trim")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	lone := tempFile(t, "lone.txt", []byte{'a', 0, 0x00, 0xD8})
	out, err = run(t, "--config", cfg, "--file", lone, "validate")
	require.ErrorIs(t, err, errInvalidText)
	assert.Equal(t, "invalid\n", out)
}

func TestStdinInput(t *testing.T) {
	out, err := runWithInput(t, strings.NewReader("  from stdin\n"), "--file", "-", "trim")
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", out)

	out, err = runWithInput(t, strings.NewReader("a b c"), "--file", "-", "count", " ")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRootErrors(t *testing.T) {
	_, err := run(t, "inspect")
	require.ErrorIs(t, err, errNoInput)

	cfg := tempFile(t, "bad.toml", []byte(`log_level = "loud"`))
	_, err = run(t, "--config", cfg, "version")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "--file", filepath.Join(t.TempDir(), "missing"), "trim")
	require.Error(t, err)
}

func TestVersionAndProfile(t *testing.T) {
	prof := filepath.Join(t.TempDir(), "mem.prof")
	out, err := run(t, "-v", "--memprofile", prof, "version")
	require.NoError(t, err)
	assert.Equal(t, "u16view dev\n", out)

	info, err := os.Stat(prof)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

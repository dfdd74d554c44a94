// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "shapes", cmd.Use)
	assert.Contains(t, cmd.Long, "Call scripts")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"render", "words", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	level := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "warn", level.DefValue)
}

func TestRenderCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	render, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)

	output := render.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "frame.png", output.DefValue)

	rotation := render.Flags().Lookup("rotation")
	require.NotNil(t, rotation)
	assert.Equal(t, "metadata", rotation.DefValue)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "words", "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestWordsSplit(t *testing.T) {
	out, err := execute(t, "words", "00000001-0000-0002-0000-0003ffffffff")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4294967295\n", out)
}

func TestWordsJoin(t *testing.T) {
	out, err := execute(t, "words", "--join", "1", "2", "3", "0xffffffff")
	require.NoError(t, err)
	assert.Equal(t, "00000001-0000-0002-0000-0003ffffffff\n", out)
}

func TestWordsErrors(t *testing.T) {
	_, err := execute(t, "words", "not-an-id")
	assert.Error(t, err)

	_, err = execute(t, "words", "--join", "1", "2", "3", "4294967296")
	assert.Error(t, err)

	_, err = execute(t, "words", "--join", "1", "2")
	assert.Error(t, err)
}

func TestRenderWritesImage(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "view.png")

	out, err := execute(t, "render", "--dump", "-o", output, "../script/testdata/scripts/view.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "3 render_frame ok")
	assert.Contains(t, out, "  selrect 0 0 4 4")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	// Zoom 2 with pan (4,4) paints the 4x4 square over (8,8)-(16,16).
	_, _, _, a := img.At(12, 12).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(4, 4).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestRenderTrace(t *testing.T) {
	out, err := execute(t, "render", "--trace", "-o", filepath.Join(t.TempDir(), "f.bmp"),
		"../script/testdata/scripts/nested.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "00000000-0000-0000-0000-000000000000"))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "child line %q should be indented", line)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", "--rotation", "sideways", "-o", filepath.Join(dir, "a.png"),
		"../script/testdata/scripts/view.yaml")
	assert.ErrorContains(t, err, "invalid rotation mode")

	_, err = execute(t, "render", "-o", filepath.Join(dir, "a.png"), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "render", "--format", "gif", "-o", filepath.Join(dir, "a.gif"), "../script/testdata/scripts/view.yaml")
	assert.Error(t, err)
}

func TestServeRejectsRotation(t *testing.T) {
	_, err := execute(t, "serve", "--rotation", "sideways")
	assert.ErrorContains(t, err, "invalid rotation mode")
}

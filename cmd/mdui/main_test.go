package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/mdui"
	"github.com/pthm/mdui/internal/config"
	"github.com/pthm/mdui/internal/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	originalVersion, originalCommit := version, commit
	t.Cleanup(func() {
		version, commit = originalVersion, originalCommit
	})
	version = "1.2.3"
	commit = "abcdef1"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, mdui.Version)
}

func TestHeadersDefault(t *testing.T) {
	out, err := execute(t, "headers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, strings.HasPrefix(lines[0], `<link rel="stylesheet" href="`+mdui.CDNCSS))
	require.Contains(t, out, "family=Open+Sans")
	require.Contains(t, out, mdui.MaterialIconsSharpCSS)
	require.Contains(t, out, "color-scheme: auto;")
	require.Contains(t, out, "function toggleTheme()")
}

func TestHeadersFlags(t *testing.T) {
	out, err := execute(t, "headers", "--theme", "dark", "--icons", "rounded", "--font", "none", "--tachyons", "--primary-light", "1, 2, 3")
	require.NoError(t, err)

	require.Contains(t, out, "color-scheme: dark;")
	require.Contains(t, out, mdui.TachyonsCSS)
	require.Contains(t, out, mdui.MaterialIconsRoundedCSS)
	require.NotContains(t, out, mdui.MaterialIconsSharpCSS)
	require.NotContains(t, out, "family=Open+Sans")
	require.Contains(t, out, "--mdui-color-primary-light: 1, 2, 3;")
}

func TestHeadersConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nicons: filled\nprimary_dark_color: \"9, 9, 9\"\n"), 0o600))

	out, err := execute(t, "headers", "--config", path, "--theme", "auto")
	require.NoError(t, err)
	require.Contains(t, out, "color-scheme: auto;")
	require.Contains(t, out, mdui.MaterialIconsCSS+`"`)
	require.NotContains(t, out, mdui.MaterialIconsOutlinedCSS)
	require.Contains(t, out, "--mdui-color-primary-dark: 9, 9, 9;")
}

func TestHeadersRejectsInvalidFlags(t *testing.T) {
	_, err := execute(t, "headers", "--theme", "sepia")
	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = execute(t, "headers", "--primary-light", "red")
	require.ErrorAs(t, err, &verr)

	_, err = execute(t, "headers", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGalleryRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "gallery", "--log-level", "loud")
	require.Error(t, err)
}

func TestNewEncoderUsesEnvKey(t *testing.T) {
	t.Setenv(keyEnv, "stable-key")

	a, err := newEncoder()
	require.NoError(t, err)
	b, err := newEncoder()
	require.NoError(t, err)

	token, err := mdui.EncodeFragment(a, mdui.Div(nil, "x"), false)
	require.NoError(t, err)
	_, err = mdui.DecodeFragment(b, token, false)
	require.NoError(t, err)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	require.NoError(t, serve(ctx, srv, logger.Nop()))
}

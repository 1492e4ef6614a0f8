// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "lvtensor.yaml", "csr:\n  codec: lz4\n  workers: 8\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "lz4", cfg.Csr.Codec)
	require.Equal(t, 8, cfg.Csr.Workers)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)

	opts, err := cfg.CsrOptions(nil)
	require.NoError(t, err)
	o := csr.NewOptions(opts...)
	require.Equal(t, csr.CodecLZ4, o.Codec())
	require.Equal(t, 8, o.Workers())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"level":   "log:\n  level: loud\n",
		"format":  "log:\n  format: xml\n",
		"codec":   "csr:\n  codec: snappy\n",
		"workers": "csr:\n  workers: 0\n",
	}
	for name, body := range cases {
		_, err := LoadConfig(writeFile(t, name+".yaml", body))
		require.ErrorIs(t, err, ErrConfig, name)
	}

	_, err := LoadConfig(writeFile(t, "broken.yaml", "log: [\n"))
	require.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Log.Level, cfg.Log.Format = "debug", "json"
	log, err := cfg.Logger(&buf)
	require.NoError(t, err)
	log.Debug("hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	cfg.Log.Level, cfg.Log.Format = "warn", "text"
	log, err = cfg.Logger(&buf)
	require.NoError(t, err)
	log.Info("quiet")
	require.Empty(t, buf.String())
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "word%05d\n", (i*7919)%n)
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestMeasurer_Run(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := defaultConfig
	cfg.Words = writeWords(t, 500)
	cfg.Samples = 100
	cfg.Progress = false

	var out bytes.Buffer
	results, err := (&measurer{cfg: &cfg, log: log}).Run(&out)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, r := range results {
		require.Equal(t, 100, r.Found, r.Name)
	}
	require.Contains(t, out.String(), "balanced tree")
}

func TestMeasurer_RunMissingList(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := defaultConfig
	cfg.Words = filepath.Join(t.TempDir(), "none.txt")
	_, err := (&measurer{cfg: &cfg, log: log}).Run(io.Discard)
	require.Error(t, err)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "measure.yaml")
	wrote, err := WriteDefaultConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, wrote)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)

	require.NoError(t, os.WriteFile(path, []byte("words: /tmp/w.txt\nsamples: 50\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/w.txt", cfg.Words)
	require.Equal(t, 50, cfg.Samples)
	require.Equal(t, defaultConfig.Seed, cfg.Seed)

	require.NoError(t, os.WriteFile(path, []byte("samples: 0\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "samples must be positive")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	require.Error(t, cmd.Execute())

	path := writeWords(t, 50)
	cfgPath := filepath.Join(t.TempDir(), "m.yaml")
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "-c", cfgPath})
	require.NoError(t, cmd.Execute())

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "-c", cfgPath, "-w", path, "-n", "10", "--progress=false"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, 5, strings.Count(out.String(), "10 elements are found"))
}

func TestRootCmd_RejectsNonPositiveSamples(t *testing.T) {
	path := writeWords(t, 50)
	cfgPath := filepath.Join(t.TempDir(), "m.yaml")
	_, err := WriteDefaultConfig(cfgPath)
	require.NoError(t, err)
	for _, n := range []string{"-5", "0"} {
		cmd := newRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"run", "-c", cfgPath, "-w", path, "-n", n, "--progress=false"})
		require.ErrorContains(t, cmd.Execute(), "samples must be positive", n)
	}
}

func TestMeasurer_ChainIsDegenerate(t *testing.T) {
	m := &measurer{cfg: &defaultConfig, log: logrus.New()}
	tree := m.chain([]string{"a", "b", "c", "d"})
	h, err := tree.Height()
	require.NoError(t, err)
	require.Equal(t, 3, h)
	require.Equal(t, uint(4), tree.NumNodes())
}

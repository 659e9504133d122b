package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/factory"
	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/application"
	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/generator"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{Generator: config.Generator{
		Places: generator.DefaultPlaces,
		Min:    generator.DefaultMin,
		Max:    generator.DefaultMax,
	}}
	service := application.NewGeneratorService(factory.NewStaticSinkFactory(), adapterutils.NewUtilCountParser(), zerolog.Nop())

	cmd := newRootCmd(cfg, service, zerolog.Nop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_GenerateVerifyStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.txt")

	out, err := run(t, "-o", path, "-n", "2K", "--places", "Hamburg,Cracow", "--min", "-5", "--max", "5", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully generated")

	out, err = run(t, "verify", "-f", path, "-n", "2000", "--places", "Hamburg,Cracow", "--min", "-5", "--max", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "2_000 valid records")

	out, err = run(t, "stats", "-f", path, "-w", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Cracow;"))
	assert.True(t, strings.HasPrefix(lines[1], "Hamburg;"))

	out, err = run(t, "stats", "-f", path, "--quoted")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `"Cracow";`))
}

func TestCLI_SeedReproducible(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	_, err := run(t, "-o", a, "-n", "500", "--seed", "1")
	require.NoError(t, err)
	_, err = run(t, "-o", b, "-n", "500", "--seed", "1")
	require.NoError(t, err)

	ca, err := os.ReadFile(a)
	require.NoError(t, err)
	cb, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
}

func TestCLI_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "-n", "10")
	assert.ErrorContains(t, err, `required flag(s) "output" not set`)

	_, err = run(t, "-o", filepath.Join(dir, "x.txt"), "-n", "ten")
	assert.ErrorContains(t, err, "invalid row count 'ten'")

	_, err = run(t, "-o", filepath.Join(dir, "x.txt"), "-n", "10", "--min", "9", "--max", "1")
	assert.ErrorIs(t, err, generator.ErrInvertedRange)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Hamburg;100.0\n"), 0o644))
	_, err = run(t, "verify", "-f", bad)
	assert.ErrorContains(t, err, "temperature outside the expected range")
}

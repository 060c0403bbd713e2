package logfile

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}

func TestService_Name_ReusesExisting(t *testing.T) {
	service := New()
	name, err := service.Name(context.Background(), "mothur.go.11111.logfile")
	require.NoError(t, err)
	assert.Equal(t, "mothur.go.11111.logfile", name)
}

func TestService_Name_Generates(t *testing.T) {
	chdir(t, t.TempDir())
	service := New(WithRand(rand.New(rand.NewSource(7))))
	name, err := service.Name(context.Background(), "")
	require.NoError(t, err)
	assert.Regexp(t, `^mothur\.go\.\d{5}\.logfile$`, name)
}

func TestService_Name_ResamplesOnCollision(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// predict the first sample with an identically seeded source and occupy it
	first := 10000 + rand.New(rand.NewSource(7)).Intn(90000)
	occupied := fmt.Sprintf("mothur.go.%d.logfile", first)
	require.NoError(t, os.WriteFile(filepath.Join(dir, occupied), []byte("x"), 0o644))

	service := New(WithRand(rand.New(rand.NewSource(7))))
	name, err := service.Name(context.Background(), "")
	require.NoError(t, err)
	assert.NotEqual(t, occupied, name)
}

func TestService_Remove_PlainName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mothur.go.12345.logfile"), []byte("x"), 0o644))

	service := New()
	service.Remove(context.Background(), "mothur.go.12345.logfile", "")

	_, err := os.Stat(filepath.Join(dir, "mothur.go.12345.logfile"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_Remove_FallsBackToOutputDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	outputDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outputDir, 0o755))
	relocated := filepath.Join(outputDir, "mothur.go.12345.logfile")
	require.NoError(t, os.WriteFile(relocated, []byte("x"), 0o644))

	service := New()
	service.Remove(context.Background(), "mothur.go.12345.logfile", outputDir)

	_, err := os.Stat(relocated)
	assert.True(t, os.IsNotExist(err))
}

func TestService_Remove_MissingEverywhere(t *testing.T) {
	chdir(t, t.TempDir())
	service := New()
	// must not panic or error, only warn
	service.Remove(context.Background(), "mothur.go.99999.logfile", "nowhere")
}

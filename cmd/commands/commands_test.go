package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Academic"))
	assert.Contains(t, out, "Sports")
	assert.Contains(t, lines[4], "All")
	assert.Contains(t, lines[4], "42")
}

func TestCategoriesCommandWithDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notices.json")
	data := `[
		{"id":"1","title":"Chess club","description":"Meets on Fridays.","date":"2024-01-01T10:00:00Z","category":"Clubs"},
		{"id":"2","title":"Robotics","description":"New members welcome.","date":"2024-01-02T10:00:00Z","category":"Clubs"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	out, err := execute(t, "categories", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Clubs")
	assert.Contains(t, out, "2")
	assert.NotContains(t, out, "Academic")
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "init-config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, "init-config", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init-config", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestApplyFlags(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--page-size", "5", "--delay", "250ms", "--no-toast", "--keep-loading-on-search", "--log-level", "debug", "--log-pretty"}))

	s := &settings{pageSize: 5, delay: "250ms", noToast: true, keepLoading: true, logLevel: "debug", logPretty: true}
	cfg := config.DefaultConfig()
	require.NoError(t, applyFlags(cmd, s, cfg))

	assert.Equal(t, 5, cfg.Pagination.PageSize)
	assert.Equal(t, "250ms", cfg.Pagination.LoadDelay)
	assert.False(t, cfg.Toast.Enabled)
	assert.False(t, cfg.Pagination.CancelOnQueryChange)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "", cfg.DataFile, "unset flags keep the config value")
}

func TestApplyFlagsValidates(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--page-size", "0"}))

	err := applyFlags(cmd, &settings{pageSize: 0}, config.DefaultConfig())
	assert.Error(t, err)
}

func TestUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	logFile := filepath.Join(t.TempDir(), "test.log")

	_, err := execute(t, "Cooking", "--config", path, "--log-file", logFile)
	assert.ErrorContains(t, err, `unknown category "Cooking"`)
}

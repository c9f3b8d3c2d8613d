package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv(EndpointEnvVar, "https://example.com/content/v2.1")
	t.Setenv("REPORTS_DB_DRIVER", "")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "3306")

	cfg := NewConfig()

	assert.Equal(t, "https://example.com/content/v2.1", cfg.Endpoint)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.True(t, cfg.ReportsEnabled())
}

func TestNewConfigWithoutDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("REPORTS_DB_DRIVER", "pgx")

	cfg := NewConfig()

	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.False(t, cfg.ReportsEnabled())
}

func TestFlagSet(t *testing.T) {
	fs, f := NewFlagSet("samples", io.Discard)
	require.NoError(t, fs.Parse([]string{"-config_path", "/tmp/cfg", "-log_file", "api.log", "-verbose", "products.list"}))

	assert.Equal(t, "/tmp/cfg", f.ConfigPath)
	assert.Equal(t, "api.log", f.LogFile)
	assert.True(t, f.Verbose)
	assert.False(t, f.NoConfig)
	assert.Equal(t, []string{"products.list"}, fs.Args())
}

func TestFlagSetDefaults(t *testing.T) {
	fs, f := NewFlagSet("samples", io.Discard)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, "shopping-samples", filepath.Base(f.ConfigPath))
}

func TestLoadNoConfig(t *testing.T) {
	info, err := Load(&Flags{NoConfig: true, ConfigPath: "/does/not/exist"})
	require.NoError(t, err)

	assert.Equal(t, "", info.Path)
	assert.Equal(t, "", info.File(TokenFile))
}

func TestLoadMissingConfigDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := Load(&Flags{ConfigPath: dir})

	require.Error(t, err)
	assert.Equal(t, `Configuration directory "`+dir+`" does not exist.`, err.Error())
}

func TestLoadMissingContentDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(&Flags{ConfigPath: dir})

	require.Error(t, err)
	assert.Equal(t, `Content API configuration directory "`+filepath.Join(dir, "content")+`" does not exist.`, err.Error())
}

func TestLoadMissingConfigFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "content"), 0o755))

	info, err := Load(&Flags{ConfigPath: dir})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), info.MerchantID)
	assert.Equal(t, filepath.Join(dir, "content"), info.Path)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content")
	require.NoError(t, os.Mkdir(content, 0o755))
	raw := `{"merchantId": 1234, "accountSampleUser": "user@example.com", "accountSampleAdWordsCID": 5678, "websiteUrl": "https://shop.example.com", "isMCA": true}`
	require.NoError(t, os.WriteFile(filepath.Join(content, ConfigFile), []byte(raw), 0o600))

	info, err := Load(&Flags{ConfigPath: dir})
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), info.MerchantID)
	assert.Equal(t, "user@example.com", info.AccountSampleUser)
	assert.Equal(t, uint64(5678), info.AccountSampleAdWordsCID)
	assert.Equal(t, "https://shop.example.com", info.WebsiteURL)
	assert.False(t, info.IsMCA)
	assert.Equal(t, filepath.Join(content, ServiceAccountFile), info.File(ServiceAccountFile))
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content")
	require.NoError(t, os.Mkdir(content, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(content, ConfigFile), []byte("{"), 0o600))

	_, err := Load(&Flags{ConfigPath: dir})

	assert.ErrorContains(t, err, "decoding")
}

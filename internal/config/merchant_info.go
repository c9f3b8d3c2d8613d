package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shopping-samples/internal/logger"
)

const (
	ConfigFile         = "merchant-info.json"
	TokenFile          = "stored-token.json"
	ClientSecretsFile  = "client-secrets.json"
	ServiceAccountFile = "service-account.json"

	contentDir = "content"
)

// MerchantInfo is the sample configuration read from merchant-info.json.
// IsMCA and Path are never read from the file: IsMCA is recomputed from the
// API on every run and Path is the directory holding the credential files.
type MerchantInfo struct {
	MerchantID              uint64 `json:"merchantId,omitempty"`
	AccountSampleUser       string `json:"accountSampleUser,omitempty"`
	AccountSampleAdWordsCID uint64 `json:"accountSampleAdWordsCID,omitempty"`
	WebsiteURL              string `json:"websiteUrl,omitempty"`

	IsMCA bool   `json:"-"`
	Path  string `json:"-"`
}

// File returns the path of name inside the configuration directory, or ""
// when running without one.
func (m *MerchantInfo) File(name string) string {
	if m.Path == "" {
		return ""
	}
	return filepath.Join(m.Path, name)
}

// Load reads the sample configuration selected by the flags.
func Load(f *Flags) (*MerchantInfo, error) {
	info := &MerchantInfo{}
	if f.NoConfig {
		return info, nil
	}

	if !isDir(f.ConfigPath) {
		return nil, fmt.Errorf("Configuration directory %q does not exist.", f.ConfigPath)
	}
	info.Path = filepath.Join(f.ConfigPath, contentDir)
	if !isDir(info.Path) {
		return nil, fmt.Errorf("Content API configuration directory %q does not exist.", info.Path)
	}

	file := info.File(ConfigFile)
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		logger.Warn("Configuration file does not exist, falling back to configuration based on authenticated user", "file", file)
		return info, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return info, nil
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

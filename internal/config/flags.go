package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
)

// Flags are the global command line options shared by every sample.
type Flags struct {
	ConfigPath string
	NoConfig   bool
	LogFile    string
	Verbose    bool
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopping-samples"
	}
	return filepath.Join(home, "shopping-samples")
}

// NewFlagSet registers the global flags on a new flag set named name. The
// returned Flags is filled in when the set is parsed.
func NewFlagSet(name string, output io.Writer) (*flag.FlagSet, *Flags) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config_path", defaultConfigPath(), "configuration directory for the Shopping samples")
	fs.BoolVar(&f.NoConfig, "noconfig", false, "run samples with no configuration directory")
	fs.StringVar(&f.LogFile, "log_file", "", "filename for logging API requests and responses")
	fs.BoolVar(&f.Verbose, "verbose", false, "enable debug logging")
	return fs, f
}

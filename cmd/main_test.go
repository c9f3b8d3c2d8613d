package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "help", args: []string{"-help"}, want: 0},
		{name: "unknown flag", args: []string{"-frobnicate"}, want: 2},
		{name: "unknown sample", args: []string{"-config_path", missing, "products.frobnicate"}, want: 2},
		{name: "missing argument", args: []string{"-config_path", missing, "products.get"}, want: 2},
		{name: "missing configuration", args: []string{"-config_path", missing, "products.get", "online:en:US:1"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run("samples", tt.args))
			assert.NoDirExists(t, missing)
		})
	}
}

package main

import (
	"errors"
	"net"
	"testing"

	"github.com/hamflx/imagen3-mcp/internal/imagen"
)

func TestRunMissingCredentialFailsBeforeBinding(t *testing.T) {
	t.Setenv(imagen.EnvAPIKey, "")
	addr := "127.0.0.1:19981"

	err := run(addr, t.TempDir(), "")
	if err == nil {
		t.Fatal("run() error = nil, want credential failure")
	}

	var genErr *imagen.GenError
	if !errors.As(err, &genErr) || genErr.Kind != imagen.KindConfig {
		t.Errorf("run() error = %v, want KindConfig", err)
	}

	// The failure must happen before the asset server binds its socket.
	if conn, derr := net.Dial("tcp", addr); derr == nil {
		conn.Close()
		t.Errorf("asset server is listening on %s despite missing credential", addr)
	}
}

func TestRunInvalidConfigFile(t *testing.T) {
	t.Setenv(imagen.EnvAPIKey, "k")

	if err := run("127.0.0.1:19982", t.TempDir(), "/nonexistent/config.yaml"); err == nil {
		t.Errorf("run() error = nil, want config file failure")
	}
}

func TestRootCmdFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	if got := cmd.Flags().Lookup("addr").DefValue; got != "127.0.0.1:9981" {
		t.Errorf("--addr default = %q, want 127.0.0.1:9981", got)
	}
	if got := cmd.Flags().Lookup("data-dir").DefValue; got != "" {
		t.Errorf("--data-dir default = %q, want empty", got)
	}
	if got := cmd.Flags().Lookup("config").DefValue; got != "" {
		t.Errorf("--config default = %q, want empty", got)
	}
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")

	originalDBPath, hadOriginal := os.LookupEnv(common.EnvKeyFleetDBPath)

	if err := os.Setenv(common.EnvKeyFleetDBPath, testPath); err != nil {
		t.Fatalf("Failed to set FLEET_DB_PATH: %v", err)
	}

	defer func() {
		if hadOriginal {
			_ = os.Setenv(common.EnvKeyFleetDBPath, originalDBPath)
		} else {
			_ = os.Unsetenv(common.EnvKeyFleetDBPath)
		}
		_ = os.Remove(testPath)
	}()

	s, err := NewGormStorage(UseSqliteDialector())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	if s == nil || s.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}

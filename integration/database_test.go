//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestOrgpulseWithMySQL tests the orgpulse CLI with a MySQL history backend.
func TestOrgpulseWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "orgpulse",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/orgpulse?parseTime=true", host, port.Port())
	runHistoryWorkflow(t, "mysql", connStr)
}

// TestOrgpulseWithPostgres tests the orgpulse CLI with a PostgreSQL history backend.
func TestOrgpulseWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runHistoryWorkflow(t, "postgresql", connStr)
}

// runHistoryWorkflow exercises the full run history flow against one backend:
// migrate, aggregate twice, list, status and export.
func runHistoryWorkflow(t *testing.T, backend, connStr string) {
	// Set environment variables
	_ = os.Setenv("ORGPULSE_HISTORY_BACKEND", backend)
	_ = os.Setenv("ORGPULSE_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("ORGPULSE_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("ORGPULSE_HISTORY_DB_CONNECT") }()

	rawDir := seedRawRecords(t)
	outDir := t.TempDir()

	// Run orgpulse history migrate
	err := runOrgpulseCommand(t, "history", "migrate")
	require.NoError(t, err)

	// Run orgpulse aggregate on two consecutive days
	err = runOrgpulseCommand(t, "aggregate",
		"--org", "test-org", "--raw-dir", rawDir, "--out-dir", outDir,
		"--as-of", "2024-06-01T12:00:00Z")
	require.NoError(t, err)
	err = runOrgpulseCommand(t, "aggregate",
		"--org", "test-org", "--raw-dir", rawDir, "--out-dir", outDir,
		"--as-of", "2024-06-02T12:00:00Z")
	require.NoError(t, err)

	// Run orgpulse history list
	err = runOrgpulseCommand(t, "history", "list")
	require.NoError(t, err)

	// Run orgpulse history status
	err = runOrgpulseCommand(t, "history", "status")
	require.NoError(t, err)

	// Run orgpulse history export
	exportFile := t.TempDir() + "/run-data"
	err = runOrgpulseCommand(t, "history", "export", "--output-file", exportFile)
	require.NoError(t, err)
	_, err = os.Stat(exportFile + ".runs.parquet")
	require.NoError(t, err)
	_, err = os.Stat(exportFile + ".repo_rows.parquet")
	require.NoError(t, err)
}

func runOrgpulseCommand(t *testing.T, args ...string) error {
	orgpulsePath := getOrgpulseBinary()
	cmd := exec.Command(orgpulsePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}

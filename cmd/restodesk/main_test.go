package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/restodesk/internal/domain"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "restodesk.yml")
	data := "system:\n  workdir: " + dir + "\nstorage:\n  type: bolt\n  path: state.db\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSnapshotCommand(t *testing.T) {
	cfgPath := writeConfig(t)
	out := execute(t, "snapshot", "--config", cfgPath)
	assert.Contains(t, out, `"walletBalance": 2500.75`)
	assert.Contains(t, out, `"receiptNumber": "RCP-001"`)
}

func TestExportReceiptCommand(t *testing.T) {
	cfgPath := writeConfig(t)
	outDir := t.TempDir()
	out := execute(t, "export-receipt", "1", "--config", cfgPath, "--out", outDir)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(outDir, "receipt-RCP-001.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal(data, &receipt))
	assert.Equal(t, 49.65, receipt.Total)
}

func TestExportReceiptMissing(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"export-receipt", "nope", "--config", writeConfig(t)})
	assert.Error(t, cmd.Execute())
}

func TestResetCommand(t *testing.T) {
	cfgPath := writeConfig(t)
	execute(t, "reset", "--config", cfgPath)
	out := execute(t, "snapshot", "--config", cfgPath)
	assert.Contains(t, out, `"walletBalance": 2500.75`)
}

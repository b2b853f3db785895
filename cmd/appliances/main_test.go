package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	var out bytes.Buffer
	require.NoError(t, run(path, &out))

	want := `Appliances:
Refrigerator (power: 150W, consumption: 0.5kWh)
Microwave (power: 800W, consumption: 1.2kWh)
Vacuum Cleaner (power: 1200W, consumption: 0.3kWh)

Second appliance: Microwave (power: 800W, consumption: 1.2kWh)

After replacement:
Refrigerator (power: 150W, consumption: 0.5kWh)
Oven (power: 1500W, consumption: 1.5kWh)
Vacuum Cleaner (power: 1200W, consumption: 0.3kWh)

After removal:
Refrigerator (power: 150W, consumption: 0.5kWh)
Vacuum Cleaner (power: 1200W, consumption: 0.3kWh)

After clearing, number of appliances: 0
`
	assert.Equal(t, want, out.String())
	assert.FileExists(t, path)
}

func TestRunSavesLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	logPath := filepath.Join(dir, "logs", "run.log")

	require.NoError(t, os.WriteFile(path, []byte(`{
		"log": {"level": "debug", "save": true, "path": "`+filepath.ToSlash(logPath)+`"},
		"appliances": [
			{"name": "Kettle", "power": 2000, "consumption": 0.1},
			{"name": "Iron", "power": 1000, "consumption": 0.4}
		]
	}`), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(path, &out))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "appliance replaced")
	assert.Contains(t, string(data), "old=Iron")
}

func TestRunTooFew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"appliances": [{"name": "Kettle"}]}`), 0o600))

	var out bytes.Buffer
	assert.Error(t, run(path, &out))
}

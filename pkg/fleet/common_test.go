package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

func GetTestFleetWithMemStorage(t *testing.T) *Fleet {
	t.Helper()

	fleetInstance := &Fleet{Store: store.NewMemStorage()}
	return fleetInstance.WithDefaultServices()
}

func createTestDevice(t *testing.T, f *Fleet, label string) *models.Device {
	t.Helper()

	device, err := f.Device.CreateDevice(&models.Device{
		Label:           label,
		Imei:            uuid.NewString(),
		NetworkProvider: "Verizon",
	})
	require.NoError(t, err)
	return device
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

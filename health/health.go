package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"launchpad/logger"

	"github.com/shirou/gopsutil/v3/host"
)

type Status struct {
	OK           bool   `json:"ok"`
	Version      string `json:"version"`
	Hostname     string `json:"hostname"`
	Platform     string `json:"platform"`
	Uptime       uint64 `json:"uptime_seconds"`
	UptimeString string `json:"uptime_string"`
}

// For mocking in tests
var hostInfo = host.InfoWithContext

func Check(ctx context.Context, version string) (Status, error) {
	status := Status{Version: version}

	info, err := hostInfo(ctx)
	if err != nil {
		return status, err
	}
	status.OK = true
	status.Hostname = info.Hostname
	status.Platform = info.Platform
	status.Uptime = info.Uptime
	status.UptimeString = FormatUptime(info.Uptime)

	return status, nil
}

// FormatUptime renders seconds as e.g. "3d 4h 5m"; under a minute it is "42s".
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return d.String()
	}

	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// Handler serves Check as JSON.
func Handler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := Check(r.Context(), version)
		if err != nil {
			logger.Error("health", err, "host probe failed")
			http.Error(w, "Failed to get system status: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// Package util holds small formatting helpers shared by the admin panel and notifications.
package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "2d3h", "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	if duration < 24*time.Hour {
		h := int(duration.Hours())
		m := int(duration.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	}

	d := int(duration.Hours()) / 24
	h := int(duration.Hours()) % 24

	return fmt.Sprintf("%dd%dh", d, h)
}

// RoundPercent rounds a percentage to one decimal place.
func RoundPercent(p float64) float64 {
	return math.Round(p*10) / 10
}

// FormatMinor renders an amount in minor units as "1234.50 USD".
func FormatMinor(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return strings.TrimSpace(fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency))
}

// Package system reports host resource usage for the admin panel.
package system

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/util"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleWindow is how long CPU usage is sampled per snapshot.
const cpuSampleWindow = 200 * time.Millisecond

type monitor struct {
	logger    *slog.Logger
	diskPath  string
	startedAt time.Time
}

// NewSystemMonitor creates a monitor that reports disk usage for the root filesystem.
func NewSystemMonitor(logger *slog.Logger) service.SystemMonitor {
	return &monitor{
		logger:    logger,
		diskPath:  "/",
		startedAt: time.Now(),
	}
}

// Snapshot collects what it can; individual collector failures are logged and leave zero values.
func (m *monitor) Snapshot(ctx context.Context) (*entity.SystemStats, error) {
	stats := &entity.SystemStats{
		OS:            runtime.GOOS,
		Goroutines:    runtime.NumGoroutine(),
		ProcessUptime: util.FormatDuration(time.Since(m.startedAt)),
	}

	if info, err := host.InfoWithContext(ctx); err != nil {
		m.logger.Warn("[System] Failed to read host info", slog.Any("error", err))
	} else {
		stats.Hostname = info.Hostname
		stats.Platform = info.Platform + " " + info.PlatformVersion
		stats.Uptime = util.FormatDuration(time.Duration(info.Uptime) * time.Second)
	}

	if cores, err := cpu.CountsWithContext(ctx, true); err != nil {
		m.logger.Warn("[System] Failed to read cpu count", slog.Any("error", err))
	} else {
		stats.CPUCores = cores
	}

	if percents, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false); err != nil {
		m.logger.Warn("[System] Failed to read cpu usage", slog.Any("error", err))
	} else if len(percents) > 0 {
		stats.CPUPercent = util.RoundPercent(percents[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		m.logger.Warn("[System] Failed to read memory usage", slog.Any("error", err))
	} else {
		stats.MemoryTotal = util.FormatBytes(int64(vm.Total))
		stats.MemoryUsed = util.FormatBytes(int64(vm.Used))
		stats.MemoryPercent = util.RoundPercent(vm.UsedPercent)
	}

	if usage, err := disk.UsageWithContext(ctx, m.diskPath); err != nil {
		m.logger.Warn("[System] Failed to read disk usage", slog.Any("error", err))
	} else {
		stats.DiskTotal = util.FormatBytes(int64(usage.Total))
		stats.DiskUsed = util.FormatBytes(int64(usage.Used))
		stats.DiskPercent = util.RoundPercent(usage.UsedPercent)
	}

	return stats, nil
}

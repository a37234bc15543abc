// Package sysinfo reports CPU and memory load through gopsutil.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/chronois/avrora/internal/domain"
)

// DefaultSampleInterval is how long CPU usage is measured.
const DefaultSampleInterval = time.Second

// Stats implements domain.SystemStats.
type Stats struct {
	interval time.Duration
}

// New returns machine statistics sampling the CPU over interval.
func New(interval time.Duration) *Stats {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &Stats{interval: interval}
}

// CPUPercent returns the total CPU load across all cores.
func (s *Stats) CPUPercent(ctx context.Context) (float64, error) {
	pct, err := cpu.PercentWithContext(ctx, s.interval, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(pct) == 0 {
		return 0, fmt.Errorf("cpu percent: no samples")
	}
	return pct[0], nil
}

func (s *Stats) Memory(ctx context.Context) (domain.MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.MemoryStats{}, fmt.Errorf("virtual memory: %w", err)
	}
	return domain.MemoryStats{
		Total:       vm.Total,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

var _ domain.SystemStats = (*Stats)(nil)

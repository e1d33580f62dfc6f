// Package sysmon samples host-wide CPU and memory usage so that phase
// timings can be read against the load of the machine they ran on.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// String renders the sample as "cpu 12.5% mem 40.0%".
func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%% mem %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0, i.e. the usage since the previous call, which makes
// consecutive samples taken after each phase describe that phase.
// Fields that cannot be read are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host describes the machine a benchmark ran on.
type Host struct {
	Model        string
	LogicalCores int
	TotalMemory  uint64
}

// DescribeHost reads the CPU model, logical core count and installed
// memory. Missing information is left empty.
func DescribeHost() Host {
	var h Host
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.Model = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil {
		h.LogicalCores = n
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		h.TotalMemory = vmem.Total
	}
	return h
}

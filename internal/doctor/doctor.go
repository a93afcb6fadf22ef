// Package doctor probes the external tools and host resources the
// monorepo workflow depends on.
package doctor

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/phpmono/phpmono/internal/toolexec"
)

// ToolStatus is the probe result for one external binary.
type ToolStatus struct {
	Name      string
	Installed bool
	Version   string
}

// HostInfo is a small snapshot of the machine running the CLI.
type HostInfo struct {
	OS       string
	Platform string
	CPUs     int
	Memory   string
}

// probes lists every external tool the CLI shells out to, plus the
// runtimes those tools need. Order is the display order.
var probes = []struct {
	name string
	bin  string
	args []string
}{
	{"PHP", "php", []string{"--version"}},
	{"Composer", "composer", []string{"--version"}},
	{"Turborepo", "turbo", []string{"--version"}},
	{"Node", "node", []string{"--version"}},
	{"pnpm", "pnpm", []string{"--version"}},
}

// CheckTools probes every known tool. Missing tools are reported, never
// treated as errors; callers render "Not installed" text.
func CheckTools() []ToolStatus {
	statuses := make([]ToolStatus, 0, len(probes))
	for _, p := range probes {
		version, ok := toolexec.Probe(p.bin, p.args...)
		statuses = append(statuses, ToolStatus{Name: p.name, Installed: ok, Version: version})
	}
	return statuses
}

// CheckHost gathers host facts. Fields degrade to zero values when a
// probe fails; a doctor report should never abort on a sensor problem.
func CheckHost() HostInfo {
	info := HostInfo{}
	if h, err := host.Info(); err == nil {
		info.OS = h.OS
		info.Platform = fmt.Sprintf("%s %s", h.Platform, h.PlatformVersion)
	}
	if n, err := cpu.Counts(true); err == nil {
		info.CPUs = n
	}
	if m, err := mem.VirtualMemory(); err == nil {
		info.Memory = formatBytes(m.Total)
	}
	return info
}

func formatBytes(b uint64) string {
	const gb = 1 << 30
	if b >= gb {
		return fmt.Sprintf("%.1f GB", float64(b)/gb)
	}
	return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
}

package main

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// processUsage describes this process's CPU and resident memory.
func processUsage() (string, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "", err
	}
	cpu, err := proc.CPUPercent()
	if err != nil {
		return "", fmt.Errorf("cpu: %w", err)
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		return "", fmt.Errorf("memory: %w", err)
	}
	return fmt.Sprintf("cpu=%.1f%% rss=%.1fMiB", cpu, float64(mem.RSS)/1024/1024), nil
}

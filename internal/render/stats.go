package render

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ViewerStats содержит данные для текстовой панели статистики
type ViewerStats struct {
	StartTime time.Time
}

// NewViewerStats создает новый экземпляр статистики
func NewViewerStats() *ViewerStats {
	return &ViewerStats{
		StartTime: time.Now(),
	}
}

// Uptime возвращает время работы просмотрщика
func (vs *ViewerStats) Uptime() string {
	uptime := time.Since(vs.StartTime)

	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// MemoryUsageMB возвращает использование памяти в MB
func (vs *ViewerStats) MemoryUsageMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return float64(m.Alloc) / 1024 / 1024
}

// CPUPercent возвращает использование CPU процессом в процентах
func (vs *ViewerStats) CPUPercent() (float64, error) {
	pid := int32(os.Getpid())
	proc, err := process.NewProcess(pid)
	if err != nil {
		return 0, err
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		// Если не удалось получить метрику процесса, пробуем системную
		cpuPercents, err := cpu.Percent(100*time.Millisecond, false)
		if err != nil || len(cpuPercents) == 0 {
			return 0, err
		}
		return cpuPercents[0], nil
	}

	return cpuPercent, nil
}

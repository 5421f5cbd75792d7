package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-viewer/internal/animation"
	"github.com/annel0/voxel-viewer/internal/config"
	"github.com/annel0/voxel-viewer/internal/logging"
	"github.com/annel0/voxel-viewer/internal/render"
	"github.com/annel0/voxel-viewer/internal/timing"
	"github.com/annel0/voxel-viewer/internal/vec"
	"github.com/annel0/voxel-viewer/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger("viewer"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	sessionID := uuid.NewString()
	logging.LogInfo("🧊 Запуск Voxel Viewer, сессия %s", sessionID)

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.LogError("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // дефолты через геттеры
	}

	width := cfg.Render.GetWidth()
	height := cfg.Render.GetHeight()
	frames := cfg.Render.GetFrames()
	maxDistance := cfg.Render.GetMaxDistance()
	fov := cfg.Render.GetFovDegrees() * math.Pi / 180
	outputDir := cfg.Render.GetOutputDir()
	savePath := cfg.World.GetSavePath()

	logging.LogInfo("📡 Конфигурация: кадр %dx%d, облёт %d кадров, дистанция %.0f",
		width, height, frames, maxDistance)

	// === МИР ===
	grid := world.NewGrid()
	if err := grid.LoadFile(savePath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.LogWarn("Файл сетки %s не прочитан: %v", savePath, err)
		}
		seed := cfg.World.GetSeed()
		logging.LogInfo("🌍 Генерация ландшафта, сид %d...", seed)
		world.NewTerrainGenerator(seed).Generate(grid)
	} else {
		logging.LogInfo("🌍 Сетка загружена из %s", savePath)
	}

	// === МЕТРИКИ ===
	metrics := render.NewMetrics()
	metricsAddr := fmt.Sprintf(":%d", cfg.Metrics.GetMetricsPort())
	metrics.StartHTTP(metricsAddr)

	// === РЕНДЕР ===
	center := vec.Vec3Float{X: 32, Y: 28, Z: 32}
	camera := render.NewCamera(center, fov, float64(width)/float64(height), 0.1, maxDistance)
	rt := render.NewRaytracer(camera, width, height, maxDistance)
	rt.SetMetrics(metrics)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("❌ Ошибка создания директории кадров: %v", err)
	}

	stats := render.NewViewerStats()
	fpsAvg := timing.NewAverageBuffer(32)
	frameTimes := timing.NewDurationAverageBuffer(32)
	frameCounter := timing.NewCountTrigger()
	lastFrame := time.Now()

	const (
		orbitRadius = 55.0
		orbitHeight = 48.0
	)

	logging.LogInfo("🎬 Облёт сцены: %d кадров в %s", frames, outputDir)
	for i := 0; i < frames; i++ {
		// Сглаженный облёт вокруг центра сетки
		alpha := 0.0
		if frames > 1 {
			alpha = animation.SineInOut(float64(i) / float64(frames-1))
		}
		angle := alpha * 2 * math.Pi

		camera.Position = vec.Vec3Float{
			X: center.X + orbitRadius*math.Sin(angle),
			Y: orbitHeight,
			Z: center.Z + orbitRadius*math.Cos(angle),
		}
		camera.LookAt(center)

		// На середине облёта редактируем сцену: ставим блок вплотную
		// к поверхности под прицелом и убираем его кадром позже
		if frameCounter.Nth(uint64(frames / 2)) {
			editScene(grid, camera, maxDistance, true)
		}
		if frames > 2 && frameCounter.Nth(uint64(frames/2+1)) {
			editScene(grid, camera, maxDistance, false)
		}

		rt.Sync(grid)
		img := rt.RenderFrame()

		framePath := filepath.Join(outputDir, fmt.Sprintf("frame_%03d.png", i))
		if err := savePNG(framePath, img); err != nil {
			logging.LogError("❌ Ошибка сохранения кадра %s: %v", framePath, err)
			log.Fatalf("❌ Ошибка сохранения кадра: %v", err)
		}

		frameDur := time.Since(lastFrame)
		lastFrame = time.Now()
		avgFrame := frameTimes.Push(frameDur)
		if frameDur > 0 {
			fps := fpsAvg.Push(1 / frameDur.Seconds())
			if frameCounter.EveryNth(4) {
				logging.LogInfo("🖼  Кадр %d/%d, средний FPS %.2f, среднее время кадра %v",
					i+1, frames, fps, avgFrame)
			}
		}
		frameCounter.Increment()
	}

	// === ФИНАЛЬНАЯ СТАТИСТИКА ===
	logging.LogInfo("📊 Время работы: %s, память: %.1f MB", stats.Uptime(), stats.MemoryUsageMB())
	if cpuPct, err := stats.CPUPercent(); err == nil {
		logging.LogInfo("📊 CPU: %.1f%%", cpuPct)
	}

	if err := grid.SaveFile(savePath); err != nil {
		logging.LogError("❌ Ошибка сохранения сетки: %v", err)
	} else {
		logging.LogInfo("💾 Сетка сохранена в %s", savePath)
	}

	logging.LogInfo("✅ Сессия %s завершена", sessionID)
}

// editScene трассирует луч из центра кадра и либо ставит блок в ячейку
// перед точкой попадания, либо убирает сам блок. Мутации только взводят
// флаг dirty; зеркальная копия рендера обновится на ближайшем Sync.
func editScene(grid *world.Grid, camera *render.Camera, maxDistance float64, place bool) {
	ray := vec.NewRay(camera.Position, camera.Forward())
	hit, ok := grid.Raycast(ray, maxDistance)
	if !ok {
		logging.LogDebug("Прицел в пустоту, сцена не изменена")
		return
	}

	if place {
		cell := hit.AdjacentCell()
		grid.Set(cell.X, cell.Y, cell.Z, world.StoneBlockID)
		logging.LogInfo("🧱 Блок установлен в %v (грань %s, дистанция %.2f)", cell, hit.Face, hit.Distance)
	} else {
		grid.Set(hit.Coord.X, hit.Coord.Y, hit.Coord.Z, world.AirBlockID)
		logging.LogInfo("⛏  Блок убран из %v", hit.Coord)
	}
}

// savePNG записывает кадр в PNG файл
func savePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

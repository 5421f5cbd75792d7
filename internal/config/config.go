package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации просмотрщика

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed     int64  `yaml:"seed"`
	SavePath string `yaml:"save_path"`
}

type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FovDegrees  float64 `yaml:"fov_degrees"`
	MaxDistance float64 `yaml:"max_distance"`
	Frames      int     `yaml:"frames"`
	OutputDir   string  `yaml:"output_dir"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetSeed возвращает seed генератора с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("VIEWER_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1337
}

// GetSavePath возвращает путь к файлу сетки с поддержкой fallback значений
func (w *WorldConfig) GetSavePath() string {
	if w.SavePath != "" {
		return w.SavePath
	}
	if envVal := os.Getenv("VIEWER_SAVE_PATH"); envVal != "" {
		return envVal
	}
	return "world.grid"
}

// GetWidth возвращает ширину кадра с поддержкой fallback значений
func (r *RenderConfig) GetWidth() int {
	return getIntWithEnvFallback(r.Width, "VIEWER_WIDTH", 640)
}

// GetHeight возвращает высоту кадра с поддержкой fallback значений
func (r *RenderConfig) GetHeight() int {
	return getIntWithEnvFallback(r.Height, "VIEWER_HEIGHT", 360)
}

// GetFovDegrees возвращает вертикальное поле зрения в градусах
func (r *RenderConfig) GetFovDegrees() float64 {
	if r.FovDegrees > 0 {
		return r.FovDegrees
	}
	return 70
}

// GetMaxDistance возвращает бюджет дистанции трассировки
func (r *RenderConfig) GetMaxDistance() float64 {
	if r.MaxDistance > 0 {
		return r.MaxDistance
	}
	return 200
}

// GetFrames возвращает число кадров облёта
func (r *RenderConfig) GetFrames() int {
	return getIntWithEnvFallback(r.Frames, "VIEWER_FRAMES", 8)
}

// GetOutputDir возвращает директорию для сохранения кадров
func (r *RenderConfig) GetOutputDir() string {
	if r.OutputDir != "" {
		return r.OutputDir
	}
	return "frames"
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getIntWithEnvFallback(m.Port, "VIEWER_METRICS_PORT", 2112)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VIEWER_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VIEWER_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

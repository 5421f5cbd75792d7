package render

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-viewer/internal/logging"
)

// Metrics инкапсулирует Prometheus-метрики цикла рендера.
// Все методы наблюдения безопасны для nil-получателя: рендерер
// работает и без подключённого экспортера.
type Metrics struct {
	framesRendered prometheus.Counter
	raysTraced     prometheus.Counter
	raysHit        prometheus.Counter
	gridSyncs      prometheus.Counter
	frameSeconds   prometheus.Gauge
}

// NewMetrics создаёт экспортер и регистрирует метрики в глобальном
// регистре Prometheus. Вызывается не более одного раза на процесс.
func NewMetrics() *Metrics {
	m := &Metrics{
		framesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "render",
			Name:      "frames_total",
			Help:      "Общее число отрисованных кадров.",
		}),
		raysTraced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "render",
			Name:      "rays_traced_total",
			Help:      "Общее число трассированных лучей.",
		}),
		raysHit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "render",
			Name:      "rays_hit_total",
			Help:      "Число лучей, завершившихся попаданием в блок.",
		}),
		gridSyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "render",
			Name:      "grid_syncs_total",
			Help:      "Число выгрузок сетки в зеркальную копию по флагу dirty.",
		}),
		frameSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "render",
			Name:      "frame_seconds",
			Help:      "Длительность последнего кадра в секундах.",
		}),
	}

	prometheus.MustRegister(m.framesRendered, m.raysTraced, m.raysHit, m.gridSyncs, m.frameSeconds)
	return m
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе
// (например, ":2112"). Метод неблокирующий: сервер стартует в
// отдельной горутине.
func (m *Metrics) StartHTTP(addr string) {
	go func() {
		logging.LogInfo("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.LogError("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

// ObserveFrame учитывает отрисованный кадр
func (m *Metrics) ObserveFrame(d time.Duration, rays, hits uint64) {
	if m == nil {
		return
	}
	m.framesRendered.Inc()
	m.raysTraced.Add(float64(rays))
	m.raysHit.Add(float64(hits))
	m.frameSeconds.Set(d.Seconds())
}

// ObserveSync учитывает выгрузку сетки в зеркальную копию
func (m *Metrics) ObserveSync() {
	if m == nil {
		return
	}
	m.gridSyncs.Inc()
}

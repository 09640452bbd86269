package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics 收集登錄表操作的計數與目前使用者數。
// 使用獨立的 prometheus.Registry，不寫入全域 DefaultRegisterer。
type Metrics struct {
	registry   *prometheus.Registry
	Operations *prometheus.CounterVec
	Users      prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_registry_operations_total",
				Help: "Total number of registry operations by result",
			},
			[]string{"operation", "result"},
		),
		Users: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "account_registry_users",
				Help: "Current number of stored user records",
			},
		),
	}
	m.registry.MustRegister(m.Operations)
	m.registry.MustRegister(m.Users)
	return m
}

// Observe 累加一次操作；result 為 "success" 或錯誤代碼
func (m *Metrics) Observe(operation, result string) {
	m.Operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) SetUsers(n int) {
	m.Users.Set(float64(n))
}

// WriteText 以 Prometheus 文字格式輸出所有指標
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

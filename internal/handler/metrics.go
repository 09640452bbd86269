// File: internal/handler/metrics.go
package handler

import (
	"io"

	"account-registry/internal/shell"
)

// MetricsWriter 將指標以文字格式寫出
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// MetricsHandler 輸出登錄表的 Prometheus 指標
func MetricsHandler(m MetricsWriter) shell.HandlerFunc {
	return func(c *shell.Context) error {
		if c.NArg() != 0 {
			return shell.ErrUsage
		}
		return m.WriteText(c.Writer())
	}
}

package handler

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"account-registry/internal/metrics"
	"account-registry/internal/shell"

	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	WriteTextFn func(w io.Writer) error
}

func (f *fakeMetrics) WriteText(w io.Writer) error {
	if f.WriteTextFn != nil {
		return f.WriteTextFn(w)
	}
	panic("unexpected WriteText")
}

func exec(t *testing.T, m MetricsWriter, line string) string {
	t.Helper()
	out := &bytes.Buffer{}
	s := shell.New(strings.NewReader(""), out)
	s.Handle("metrics", "", "", MetricsHandler(m))
	_, err := s.Exec(line)
	require.NoError(t, err)
	return out.String()
}

func TestMetricsHandler(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		require.Contains(t, exec(t, &fakeMetrics{}, "metrics now"), "Usage: metrics")
	})

	t.Run("write error", func(t *testing.T) {
		m := &fakeMetrics{WriteTextFn: func(io.Writer) error { return errors.New("gather") }}
		require.Equal(t, "Error: gather\n", exec(t, m, "metrics"))
	})

	t.Run("ok", func(t *testing.T) {
		m := metrics.New()
		m.Observe("register", "success")
		m.SetUsers(1)
		out := exec(t, m, "metrics")
		require.Contains(t, out, `account_registry_operations_total{operation="register",result="success"} 1`)
		require.Contains(t, out, "account_registry_users 1")
	})
}

package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides operational metrics for the status endpoint
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordSweep records the outcome of a scoring sweep for a given month
func (m *Monitor) RecordSweep(month string, scored, skipped, failed int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	prefix := "sweep_" + month + "_"
	m.metrics[prefix+"scored"] = scored
	m.metrics[prefix+"skipped"] = skipped
	m.metrics[prefix+"failed"] = failed
	m.metrics[prefix+"last_run"] = time.Now().Format(time.RFC3339)
}

// RecordSubmission records a campaign submission outcome
func (m *Monitor) RecordSubmission(month string, accepted bool) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	key := "submissions_" + month + "_accepted"
	if !accepted {
		key = "submissions_" + month + "_rejected"
	}
	count, _ := m.metrics[key].(int)
	m.metrics[key] = count + 1
	m.metrics["submissions_last_at"] = time.Now().Format(time.RFC3339)
}

package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordSweep(t *testing.T) {
	m := NewMonitor()

	m.RecordSweep("2025-07", 3, 2, 1)

	metrics := m.GetMetrics()

	if metrics["sweep_2025-07_scored"] != 3 {
		t.Errorf("Expected 'sweep_2025-07_scored' to be 3, but got %v", metrics["sweep_2025-07_scored"])
	}
	if metrics["sweep_2025-07_skipped"] != 2 {
		t.Errorf("Expected 'sweep_2025-07_skipped' to be 2, but got %v", metrics["sweep_2025-07_skipped"])
	}
	if metrics["sweep_2025-07_failed"] != 1 {
		t.Errorf("Expected 'sweep_2025-07_failed' to be 1, but got %v", metrics["sweep_2025-07_failed"])
	}

	// Check timestamp is recorded
	if _, exists := metrics["sweep_2025-07_last_run"]; !exists {
		t.Errorf("Expected 'sweep_2025-07_last_run' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordSubmission(t *testing.T) {
	m := NewMonitor()

	m.RecordSubmission("2025-07", true)
	m.RecordSubmission("2025-07", true)
	m.RecordSubmission("2025-07", false)

	metrics := m.GetMetrics()

	if metrics["submissions_2025-07_accepted"] != 2 {
		t.Errorf("Expected 2 accepted submissions, but got %v", metrics["submissions_2025-07_accepted"])
	}
	if metrics["submissions_2025-07_rejected"] != 1 {
		t.Errorf("Expected 1 rejected submission, but got %v", metrics["submissions_2025-07_rejected"])
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	// Our test metric should be gone, but uptime should still be there
	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

package uhash

import (
	"testing"
	"time"
)

func TestBenchmark(t *testing.T) {
	if testing.Short() {
		t.Skip("slow throughput measurement")
	}

	elapsed := Benchmark(2)
	if elapsed <= 0 {
		t.Fatalf("expected positive elapsed time, got %s", elapsed)
	}

	if rate := Hashrate(2, elapsed); rate <= 0 {
		t.Fatalf("expected positive hashrate, got %f", rate)
	}
}

func TestHashrate(t *testing.T) {
	if rate := Hashrate(100, time.Second); rate != 100 {
		t.Fatalf("expected 100, got %f", rate)
	}
	if rate := Hashrate(100, 0); rate != 0 {
		t.Fatalf("expected 0 for zero elapsed, got %f", rate)
	}
}

func TestCapabilities(t *testing.T) {
	// the report only affects speed; just exercise the probe
	_ = Capabilities()
}

package timers

import "testing"

// TestTimerNotRunning 未启动的计时器永不过期，Elapsed 返回目标时长
func TestTimerNotRunning(t *testing.T) {
	timer := NewTimer(2000)

	if timer.IsRunning() {
		t.Error("New timer should not be running")
	}
	if timer.Expired(10000) {
		t.Error("Stopped timer should never expire")
	}
	if got := timer.Elapsed(10000); got != 2000 {
		t.Errorf("Expected elapsed 2000 for stopped timer, got %f", got)
	}
}

func TestTimerExpiry(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		now      float64
		expected bool
	}{
		{"before duration", 100, 1000, false},
		{"exactly at duration", 100, 2100, true},
		{"after duration", 100, 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(2000)
			timer.Start(tt.start)

			if got := timer.Expired(tt.now); got != tt.expected {
				t.Errorf("Expected Expired=%v, got %v", tt.expected, got)
			}
		})
	}
}

// TestTimerStopFreezesElapsed 停止后已用时间冻结在停止时刻
func TestTimerStopFreezesElapsed(t *testing.T) {
	timer := NewTimer(1000)
	timer.Start(500)
	timer.Stop(800)

	if timer.IsRunning() {
		t.Error("Timer should not be running after Stop")
	}
	if got := timer.Elapsed(5000); got != 300 {
		t.Errorf("Expected frozen elapsed 300, got %f", got)
	}
	if timer.Expired(5000) {
		t.Error("Stopped timer should not expire")
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(1000)
	timer.Start(0)

	if !timer.Expired(1000) {
		t.Fatal("Timer should be expired at 1000")
	}

	timer.Reset(1000)
	if timer.Expired(1500) {
		t.Error("Timer should not be expired 500ms after reset")
	}
	if !timer.Expired(2000) {
		t.Error("Timer should expire 1000ms after reset")
	}
}

func TestGameTimeAdvance(t *testing.T) {
	gt := NewGameTime()

	gt.Advance(16)
	gt.Advance(17)

	if gt.Time != 33 {
		t.Errorf("Expected time 33, got %f", gt.Time)
	}
	if gt.LastTimestamp != 16 {
		t.Errorf("Expected last timestamp 16, got %f", gt.LastTimestamp)
	}
	if gt.Delta() != 17 {
		t.Errorf("Expected delta 17, got %f", gt.Delta())
	}

	// 负增量不应让时间倒退
	gt.Advance(-5)
	if gt.Time != 33 {
		t.Errorf("Expected time to stay 33 after negative delta, got %f", gt.Time)
	}
}

package gravity

import "testing"

func TestPowerUpsExtendNeverShorten(t *testing.T) {
	var p PowerUps

	p.Activate(PowerGhost, 1, 5)
	if p.Until(PowerGhost) != 6 {
		t.Fatalf("ghost until = %v, expected 6", p.Until(PowerGhost))
	}

	p.Activate(PowerGhost, 3, 5)
	if p.Until(PowerGhost) != 8 {
		t.Errorf("second activation should extend to now+duration, got %v", p.Until(PowerGhost))
	}

	// A shorter activation never pulls the expiry back.
	p.Activate(PowerGhost, 3.5, 1)
	if p.Until(PowerGhost) != 8 {
		t.Errorf("expiry shrank to %v", p.Until(PowerGhost))
	}

	if p.Active(PowerClone, 3) {
		t.Error("clone was never activated")
	}
}

func TestPowerUpsActiveWindow(t *testing.T) {
	var p PowerUps
	p.Activate(PowerClone, 0, 8)

	tests := []struct {
		now  float64
		want bool
	}{
		{0, true},
		{7.99, true},
		{8, false},
		{10, false},
	}
	for _, tt := range tests {
		if got := p.Active(PowerClone, tt.now); got != tt.want {
			t.Errorf("Active(clone, %v) = %v, expected %v", tt.now, got, tt.want)
		}
	}
	if r := p.Remaining(PowerClone, 10); r != 0 {
		t.Errorf("Remaining after expiry = %v, expected 0", r)
	}
}

func TestPowerUpsGhostExpiredFiresOnce(t *testing.T) {
	var p PowerUps
	if p.GhostExpired(0) {
		t.Fatal("never-active ghost cannot expire")
	}
	p.Activate(PowerGhost, 0, 1)
	if p.GhostExpired(0.5) {
		t.Fatal("ghost still active")
	}
	if !p.GhostExpired(1.2) {
		t.Fatal("ghost should report its expiry")
	}
	if p.GhostExpired(1.3) {
		t.Error("expiry should be reported once")
	}
}

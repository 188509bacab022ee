package galaxy

import "testing"

func TestDetectDevice(t *testing.T) {
	tests := []struct {
		goos   string
		cpus   int
		coarse bool
		tier   DeviceTier
	}{
		{"linux", 16, false, TierHigh},
		{"windows", 6, false, TierDefault},
		{"darwin", 4, false, TierLow},
		{"android", 8, true, TierHigh},
		{"ios", 2, true, TierLow},
		{"js", 0, false, TierDefault},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			d := detectDevice(tt.goos, tt.cpus)
			if d.Coarse != tt.coarse || d.Tier != tt.tier {
				t.Errorf("detectDevice(%s, %d) = %+v", tt.goos, tt.cpus, d)
			}
		})
	}
}

func TestDeviceProfile_NoteTouch(t *testing.T) {
	d := detectDevice("linux", 8)
	if !d.NoteTouch() || !d.Coarse {
		t.Fatal("first touch should mark the device coarse")
	}
	if d.NoteTouch() {
		t.Error("second touch reported a change")
	}

	m := detectDevice("linux", 8)
	m.NoteMouse()
	if m.NoteTouch() || m.Coarse {
		t.Error("touch after a mouse should not change the profile")
	}

	a := detectDevice("android", 8)
	if a.NoteTouch() {
		t.Error("mobile platforms are decided up front")
	}
}

func TestDeviceProfile_Scaling(t *testing.T) {
	tests := []struct {
		name    string
		d       DeviceProfile
		stars   int
		mode    ViewMode
		effects bool
	}{
		{"desktop", DeviceProfile{Tier: TierHigh}, 5000, ModeGalaxy, true},
		{"touch", DeviceProfile{Coarse: true}, 2500, ModeBoxes, false},
		{"low desktop", DeviceProfile{Tier: TierLow}, 2500, ModeBoxes, false},
		{"low touch", DeviceProfile{Coarse: true, Tier: TierLow}, 1250, ModeBoxes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.StarCount(); got != tt.stars {
				t.Errorf("StarCount = %d, want %d", got, tt.stars)
			}
			if got := tt.d.RecommendedMode(); got != tt.mode {
				t.Errorf("RecommendedMode = %s, want %s", got, tt.mode)
			}
			if got := tt.d.Effects(); got != tt.effects {
				t.Errorf("Effects = %v, want %v", got, tt.effects)
			}
		})
	}
}

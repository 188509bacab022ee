package galaxy

import "runtime"

// DeviceTier is a coarse performance class used to scale cosmetic effects.
type DeviceTier uint8

const (
	TierDefault DeviceTier = iota // unknown hardware
	TierLow                       // few cores; fewer stars, no effects
	TierHigh                      // many cores
)

// DeviceProfile describes the capabilities that change interaction and
// layout: coarse (touch-only) pointers get the compact layout and no fling.
type DeviceProfile struct {
	Coarse bool
	Tier   DeviceTier

	decided bool
}

// Star counts by pointer kind.
const (
	starsFine   = 5000
	starsCoarse = 2500
)

// DetectDevice probes the platform. Any probe that is unavailable leaves
// the safe default: fine pointer, default tier.
func DetectDevice() DeviceProfile {
	return detectDevice(runtime.GOOS, runtime.NumCPU())
}

func detectDevice(goos string, cpus int) DeviceProfile {
	var d DeviceProfile
	switch goos {
	case "android", "ios":
		d.Coarse = true
		d.decided = true
	}
	switch {
	case cpus <= 0:
		d.Tier = TierDefault
	case cpus <= 4:
		d.Tier = TierLow
	case cpus >= 8:
		d.Tier = TierHigh
	}
	return d
}

// NoteTouch records a touch as the first pointer seen. On platforms that
// did not already decide, this marks the device as coarse. It reports
// whether the profile changed.
func (d *DeviceProfile) NoteTouch() bool {
	if d.decided {
		return false
	}
	d.decided = true
	d.Coarse = true
	return true
}

// NoteMouse records a mouse as the first pointer seen.
func (d *DeviceProfile) NoteMouse() {
	d.decided = true
}

// StarCount returns the number of background stars to draw.
func (d DeviceProfile) StarCount() int {
	n := starsFine
	if d.Coarse {
		n = starsCoarse
	}
	if d.Tier == TierLow {
		n /= 2
	}
	return n
}

// RecommendedMode suggests the card grid for touch-only or low-end devices.
func (d DeviceProfile) RecommendedMode() ViewMode {
	if d.Coarse || d.Tier == TierLow {
		return ModeBoxes
	}
	return ModeGalaxy
}

// Effects reports whether optional visual effects should run.
func (d DeviceProfile) Effects() bool {
	return !d.Coarse && d.Tier != TierLow
}

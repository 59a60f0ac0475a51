package waypoint

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFadeDuration is how long animated state changes take, in seconds.
const DefaultFadeDuration = 0.25

// fade animates one opacity value toward a target. The overlay owns one per
// layer and calls update once per tick; there is no global animation manager.
type fade struct {
	tween  *gween.Tween
	value  float64
	target float64
	Done   bool
}

// to starts animating from the current value to target. Retargeting while a
// fade is running starts from wherever the value currently is.
func (f *fade) to(target float64, duration float32, fn ease.TweenFunc) {
	if target == f.target && (f.tween != nil || f.value == target) {
		return
	}
	f.target = target
	if duration <= 0 {
		f.snap(target)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	f.tween = gween.New(float32(f.value), float32(target), duration, fn)
	f.Done = false
}

// snap jumps straight to target with no interpolation.
func (f *fade) snap(target float64) {
	f.target = target
	f.value = target
	f.tween = nil
	f.Done = true
}

// update advances the fade by dt seconds.
func (f *fade) update(dt float32) {
	if f.Done || f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.value = float64(val)
	if finished {
		f.value = f.target
		f.Done = true
		f.tween = nil
	}
}

// Package viewport keeps a rendering surface's backing buffer in step with
// its displayed size and carves the surface into per-camera regions.
package viewport

// Surface is a display target whose backing pixel buffer can lag behind its
// logical (on-screen) size.
type Surface interface {
	// LogicalSize is the size the surface is displayed at.
	LogicalSize() (w, h int)
	// PixelSize is the size of the backing buffer.
	PixelSize() (w, h int)
	// SetPixelSize reallocates the backing buffer.
	SetPixelSize(w, h int)
}

// Resize matches the backing buffer of s to its logical size. It reports
// whether a resize happened; when it did, the caller must recompute any
// camera parameter that depends on the pixel size before the next render.
// A surface with a zero logical dimension is left alone.
func Resize(s Surface) bool {
	lw, lh := s.LogicalSize()
	if lw <= 0 || lh <= 0 {
		return false
	}
	pw, ph := s.PixelSize()
	if pw == lw && ph == lh {
		return false
	}
	s.SetPixelSize(lw, lh)
	return true
}

// Aspect returns w/h, or false when h is zero so callers can skip the
// update instead of storing a non-finite aspect ratio.
func Aspect(w, h int) (float64, bool) {
	if h <= 0 || w <= 0 {
		return 0, false
	}
	return float64(w) / float64(h), true
}

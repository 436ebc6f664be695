package export

// Frame is an axis-aligned rectangle used for composing raster layouts.
// Pure geometry value; freely copied.
type Frame struct {
	X, Y, W, H float64
}

// FitCover returns the draw rectangle for source dimensions covering dst:
// uniform scale max(dstW/srcW, dstH/srcH), centered, overflow cropped by
// the caller's clip.
func FitCover(srcW, srcH float64, dst Frame) Frame {
	if srcW <= 0 || srcH <= 0 {
		return dst
	}
	scale := dst.W / srcW
	if s := dst.H / srcH; s > scale {
		scale = s
	}
	w := srcW * scale
	h := srcH * scale
	return Frame{
		X: dst.X + (dst.W-w)/2,
		Y: dst.Y + (dst.H-h)/2,
		W: w,
		H: h,
	}
}

// FitContain returns the draw rectangle for source dimensions letterboxed
// inside dst: uniform scale min(dstW/srcW, dstH/srcH), centered.
func FitContain(srcW, srcH float64, dst Frame) Frame {
	if srcW <= 0 || srcH <= 0 {
		return dst
	}
	scale := dst.W / srcW
	if s := dst.H / srcH; s < scale {
		scale = s
	}
	w := srcW * scale
	h := srcH * scale
	return Frame{
		X: dst.X + (dst.W-w)/2,
		Y: dst.Y + (dst.H-h)/2,
		W: w,
		H: h,
	}
}

// FitTwoBlocks stacks two blocks of the given aspect ratios (height/width)
// inside content with a fixed gap. Both blocks share one width; each keeps
// its own aspect ratio. If the stack overflows, width and both heights
// shrink by one common factor so the total fits exactly; the stack is then
// centered in both axes.
func FitTwoBlocks(content Frame, aspectA, aspectB, gap float64) (Frame, Frame) {
	w := content.W
	hA := w * aspectA
	hB := w * aspectB

	if total := hA + hB + gap; total > content.H {
		scale := (content.H - gap) / (hA + hB)
		w *= scale
		hA *= scale
		hB *= scale
	}

	total := hA + hB + gap
	x := content.X + (content.W-w)/2
	top := content.Y + (content.H-total)/2

	a := Frame{X: x, Y: top, W: w, H: hA}
	b := Frame{X: x, Y: top + hA + gap, W: w, H: hB}
	return a, b
}

package render

// fillDiscRGBA writes a soft white disc of side size into buf as premultiplied
// RGBA. Alpha falls off quadratically from the centre to zero at the rim.
func fillDiscRGBA(buf []byte, size int) {
	if size <= 0 {
		return
	}
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - r) / r
			dy := (float64(y) + 0.5 - r) / r
			a := 1 - (dx*dx + dy*dy)
			if a < 0 {
				a = 0
			}
			v := uint8(a*255 + 0.5)
			base := (y*size + x) * 4
			buf[base+0] = v
			buf[base+1] = v
			buf[base+2] = v
			buf[base+3] = v
		}
	}
}

// DiscPixels returns the RGBA pixels of a disc sprite of side size.
func DiscPixels(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, 4*size*size)
	fillDiscRGBA(buf, size)
	return buf
}

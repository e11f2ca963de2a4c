package imagequality

// Raw interleaved RGB/RGBA buffer helpers. Alpha, when present, is ignored:
// compliance only cares about the rendered color channels.

func pixelOffset(width, channels, x, y int) int {
	return (y*width + x) * channels
}

func rgbAt(pixels []byte, width, channels, x, y int) (float64, float64, float64) {
	i := pixelOffset(width, channels, x, y)
	return float64(pixels[i]), float64(pixels[i+1]), float64(pixels[i+2])
}

// lumaAt uses the BT.601 weights, same as the rest of the pipeline.
func lumaAt(pixels []byte, width, channels, x, y int) float64 {
	r, g, b := rgbAt(pixels, width, channels, x, y)
	return 0.299*r + 0.587*g + 0.114*b
}

// sampleStep keeps per-metric pixel visits bounded on large frames.
func sampleStep(width, height int) int {
	step := 1
	for (width/step)*(height/step) > 250_000 {
		step++
	}
	return step
}

package imagequality

import (
	"math"

	"photogate.io/application/constants"
)

// laplacianVariance is the sharpness metric: variance of the discrete
// Laplacian (up+down+left+right-4*center) over sampled interior luma pixels.
// Blurred images flatten the second derivative and the variance collapses.
func (s *Service) laplacianVariance(pixels []byte, width, height, channels int) float64 {
	if width < 3 || height < 3 {
		return 0
	}
	step := sampleStep(width, height)
	var samples []float64
	for y := 1; y < height-1; y += step {
		for x := 1; x < width-1; x += step {
			center := lumaAt(pixels, width, channels, x, y)
			up := lumaAt(pixels, width, channels, x, y-1)
			down := lumaAt(pixels, width, channels, x, y+1)
			left := lumaAt(pixels, width, channels, x-1, y)
			right := lumaAt(pixels, width, channels, x+1, y)
			samples = append(samples, up+down+left+right-4*center)
		}
	}
	if len(samples) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))
	variance := 0.0
	for _, v := range samples {
		diff := v - mean
		variance += diff * diff
	}
	return variance / float64(len(samples))
}

// lumaStats returns mean luma and its standard deviation (contrast).
func (s *Service) lumaStats(pixels []byte, width, height, channels int) (float64, float64) {
	step := sampleStep(width, height)
	count := 0
	sum := 0.0
	sumSq := 0.0
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			luma := lumaAt(pixels, width, channels, x, y)
			sum += luma
			sumSq += luma * luma
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	mean := sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// cornerWhiteness samples the four corner patches and reports the average
// channel level as a 0-1 whiteness plus a strict "all channels above 240"
// white verdict.
func (s *Service) cornerWhiteness(pixels []byte, width, height, channels int) (float64, bool) {
	margin := int(0.08 * math.Min(float64(width), float64(height)))
	if margin < 12 {
		margin = 12
	}
	if margin > width/4 {
		margin = width / 4
	}
	if margin > height/4 {
		margin = height / 4
	}
	if margin < 1 {
		margin = 1
	}

	corners := [][2]int{
		{0, 0},
		{width - margin, 0},
		{0, height - margin},
		{width - margin, height - margin},
	}
	var sumR, sumG, sumB float64
	count := 0
	for _, corner := range corners {
		for y := corner[1]; y < corner[1]+margin; y++ {
			for x := corner[0]; x < corner[0]+margin; x++ {
				r, g, b := rgbAt(pixels, width, channels, x, y)
				sumR += r
				sumG += g
				sumB += b
				count++
			}
		}
	}
	if count == 0 {
		return 0, false
	}
	meanR := sumR / float64(count)
	meanG := sumG / float64(count)
	meanB := sumB / float64(count)
	whiteness := (meanR + meanG + meanB) / 3 / 255
	isWhite := meanR > constants.BACKGROUND_WHITE_CHANNEL_MIN &&
		meanG > constants.BACKGROUND_WHITE_CHANNEL_MIN &&
		meanB > constants.BACKGROUND_WHITE_CHANNEL_MIN
	return whiteness, isWhite
}

// haloHitRatio ray-casts around the expected face boundary (center at 40%
// height, radius 35% of the short side) and counts near-white, low-saturation
// pixels in the 210-248 luma band, the signature a background remover
// leaves at the subject edge.
func (s *Service) haloHitRatio(pixels []byte, width, height, channels int) float64 {
	radius := 0.35 * math.Min(float64(width), float64(height))
	if radius < 4 {
		return 0
	}
	centerX := float64(width) / 2
	centerY := 0.4 * float64(height)

	const angularSteps = 60
	radialFactors := []float64{0.95, 1.0, 1.05}

	hits := 0
	samples := 0
	for i := 0; i < angularSteps; i++ {
		angle := 2 * math.Pi * float64(i) / angularSteps
		for _, factor := range radialFactors {
			x := int(centerX + radius*factor*math.Cos(angle))
			y := int(centerY + radius*factor*math.Sin(angle))
			if x < 0 || y < 0 || x >= width || y >= height {
				continue
			}
			samples++
			r, g, b := rgbAt(pixels, width, channels, x, y)
			luma := 0.299*r + 0.587*g + 0.114*b
			if luma <= constants.HALO_LUMA_LOW || luma >= constants.HALO_LUMA_HIGH {
				continue
			}
			// skin this bright still carries strong channel spread
			spread := math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
			if spread < 30 {
				hits++
			}
		}
	}
	if samples == 0 {
		return 0
	}
	return float64(hits) / float64(samples)
}

// localGradient estimates noise as the mean absolute luma difference to the
// right and down neighbors. A value near zero is suspiciously smooth.
func (s *Service) localGradient(pixels []byte, width, height, channels int) float64 {
	if width < 2 || height < 2 {
		return 0
	}
	step := sampleStep(width, height)
	if step < 2 {
		step = 2
	}
	sum := 0.0
	count := 0
	for y := 0; y < height-1; y += step {
		for x := 0; x < width-1; x += step {
			center := lumaAt(pixels, width, channels, x, y)
			right := lumaAt(pixels, width, channels, x+1, y)
			down := lumaAt(pixels, width, channels, x, y+1)
			sum += (math.Abs(center-right) + math.Abs(center-down)) / 2
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// unnaturalSkinFraction samples the central face-sized region and classifies
// each non-white, non-black pixel against natural skin color-ratio rules.
// Pink, magenta and green casts are the telltale of aggressive retouching or
// broken white balance.
func (s *Service) unnaturalSkinFraction(pixels []byte, width, height, channels int) float64 {
	regionW := int(0.4 * float64(width))
	regionH := int(0.5 * float64(height))
	if regionW < 2 || regionH < 2 {
		return 0
	}
	startX := (width - regionW) / 2
	startY := int(0.45*float64(height)) - regionH/2
	if startY < 0 {
		startY = 0
	}
	if startY+regionH > height {
		regionH = height - startY
	}

	step := sampleStep(regionW, regionH)
	total := 0
	unnatural := 0
	for y := startY; y < startY+regionH; y += step {
		for x := startX; x < startX+regionW; x += step {
			r, g, b := rgbAt(pixels, width, channels, x, y)
			if r > 240 && g > 240 && b > 240 {
				continue
			}
			if r < 30 && g < 30 && b < 30 {
				continue
			}
			total++
			rg := r / (g + 1)
			if g > r*1.05 {
				unnatural++ // green cast
				continue
			}
			if b > g+10 {
				unnatural++ // magenta cast
				continue
			}
			if rg > 2.2 {
				unnatural++ // oversaturated pink
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(unnatural) / float64(total)
}

// manipulationScore combines the unnatural color fraction with a smoothing
// penalty when the local gradient is implausibly low for a real photo.
func (s *Service) manipulationScore(unnaturalFraction, noiseLevel float64) float64 {
	score := unnaturalFraction * 60
	if noiseLevel < 1.5 {
		score += 25
	}
	if score > 100 {
		score = 100
	}
	return score
}

// isGrayscale reports whether sampled pixels carry no meaningful channel
// spread anywhere in the image.
func (s *Service) isGrayscale(pixels []byte, width, height, channels int) bool {
	step := sampleStep(width, height)
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			r, g, b := rgbAt(pixels, width, channels, x, y)
			spread := math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
			if spread >= 3 {
				return false
			}
		}
	}
	return true
}

// lightingUniformity splits the image into a 4x4 grid and scores how evenly
// lit the regions are. 1.0 is perfectly uniform.
func (s *Service) lightingUniformity(pixels []byte, width, height, channels int) float64 {
	const gridSize = 4
	if width < gridSize || height < gridSize {
		return 0
	}
	var regionMeans []float64
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			startY := i * height / gridSize
			endY := (i + 1) * height / gridSize
			startX := j * width / gridSize
			endX := (j + 1) * width / gridSize
			sum := 0.0
			count := 0
			for y := startY; y < endY; y += 2 {
				for x := startX; x < endX; x += 2 {
					sum += lumaAt(pixels, width, channels, x, y)
					count++
				}
			}
			if count > 0 {
				regionMeans = append(regionMeans, sum/float64(count))
			}
		}
	}
	if len(regionMeans) == 0 {
		return 0
	}
	totalMean := 0.0
	for _, mean := range regionMeans {
		totalMean += mean
	}
	totalMean /= float64(len(regionMeans))
	variance := 0.0
	for _, mean := range regionMeans {
		diff := mean - totalMean
		variance += diff * diff
	}
	variance /= float64(len(regionMeans))
	return 1.0 - math.Min(variance/2500.0, 1.0)
}

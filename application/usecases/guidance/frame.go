package guidance_usecases

// VideoFrame is one camera frame handed to the session per tick. ReadyState
// mirrors the capture pipeline's readiness signal; anything below 2 means the
// frame has no decodable data yet. Pixels may be empty when the caller only
// has geometry, in which case brightness analysis is skipped.
type VideoFrame struct {
	Width      int
	Height     int
	ReadyState int
	Pixels     []byte
	Channels   int
}

func (f VideoFrame) HasPixels() bool {
	return f.Channels >= 3 && len(f.Pixels) >= f.Width*f.Height*f.Channels && f.Width > 0 && f.Height > 0
}

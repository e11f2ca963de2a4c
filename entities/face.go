package entities

// Point is a single landmark coordinate in source-image pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FaceData is the external detector's output for a single face. The bounding
// box is in source-image pixel space. Landmarks and confidence are optional;
// a detector that only produces boxes is still usable.
type FaceData struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	W          float64  `json:"w"`
	H          float64  `json:"h"`
	LeftEye    *Point   `json:"left_eye"`
	RightEye   *Point   `json:"right_eye"`
	Nose       *Point   `json:"nose"`
	Mouth      *Point   `json:"mouth"`
	Confidence *float64 `json:"confidence"`
}

// CenterX returns the horizontal center of the face box.
func (f *FaceData) CenterX() float64 {
	return f.X + f.W/2
}

// CenterY returns the vertical center of the face box.
func (f *FaceData) CenterY() float64 {
	return f.Y + f.H/2
}

// HasBothEyes reports whether the detector supplied both eye landmarks.
func (f *FaceData) HasBothEyes() bool {
	return f.LeftEye != nil && f.RightEye != nil
}

package constants

// anthropometric geometry
//
// detectors return a chin-to-eyebrow box. passport standards measure the full
// head including hair, so detected face height is scaled up by HEAD_TO_FACE_RATIO
// and the crown is assumed to sit CROWN_CLEARANCE_RATIO above the box.

var HEAD_TO_FACE_RATIO float64 = 1.4
var FACE_TO_HEAD_RATIO float64 = 1.0 / 1.4
var CROWN_CLEARANCE_RATIO float64 = 0.30

var DEFAULT_OUTPUT_DPI float64 = 300
var MM_PER_INCH float64 = 25.4

// image quality thresholds
var BLUR_THRESHOLD float64 = 100
var BLUR_FAIL_THRESHOLD float64 = 50
var EXPOSURE_MIN_LUMA float64 = 80
var EXPOSURE_MAX_LUMA float64 = 220
var EXPOSURE_HARD_MIN_LUMA float64 = 50
var EXPOSURE_HARD_MAX_LUMA float64 = 240
var BACKGROUND_WHITE_CHANNEL_MIN float64 = 240
var HALO_LUMA_LOW float64 = 210
var HALO_LUMA_HIGH float64 = 248
var HALO_HIT_RATIO float64 = 0.35
var MANIPULATION_SCORE_THRESHOLD float64 = 40
var NOISE_WARN_THRESHOLD float64 = 12
var NOISE_SCORE_SLOPE float64 = 5
var LIGHTING_UNIFORMITY_MIN float64 = 0.55
var RESOLUTION_PASS_MIN int = 600
var RESOLUTION_WARN_MIN int = 400

// head centering tolerances, as fractions of the source image dimensions
var CENTER_X_PASS_RATIO float64 = 0.10
var CENTER_X_WARN_RATIO float64 = 0.20
var CENTER_Y_PASS_RATIO float64 = 0.15
var CENTER_Y_WARN_RATIO float64 = 0.30

// user zoom is a percentage; anything outside this range is a UI bug
var MIN_USER_ZOOM_PERCENT float64 = 10
var MAX_USER_ZOOM_PERCENT float64 = 500

// live guidance
var GUIDANCE_FRAME_INTERVAL_MS int = 100
var GUIDANCE_OVAL_PADDING float64 = 1.10
var GUIDANCE_OVAL_ASPECT float64 = 0.75
var GUIDANCE_OVAL_CENTER_Y_MIN float64 = 0.35
var GUIDANCE_OVAL_CENTER_Y_MAX float64 = 0.45
var GUIDANCE_CENTER_X_TOLERANCE float64 = 0.10
var GUIDANCE_CENTER_Y_TOLERANCE float64 = 0.15
var GUIDANCE_DISTANCE_MARGIN float64 = 0.85
var GUIDANCE_DARK_LUMA_RATIO float64 = 0.25
var GUIDANCE_BRIGHT_LUMA_RATIO float64 = 0.85
var GUIDANCE_TILT_TOLERANCE_DEG float64 = 5
var FACE_ANGLE_WARN_DEG float64 = 5
var AUTO_CAPTURE_COUNTDOWN_STEPS int = 3

// standards that get the US-style glasses advisory appended to their checks
var GLASSES_ADVISORY_STANDARDS = []string{"us", "us_visa", "us_drivers", "green_card"}

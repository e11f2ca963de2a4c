package guidance_usecases

import (
	"os"
	"strconv"
	"sync"
	"time"

	"photogate.io/application/constants"
	"photogate.io/application/utils"
	"photogate.io/entities"
	"photogate.io/infrastructure/logger"
	"photogate.io/infrastructure/standards"
)

type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateAnalyzing SessionState = "analyzing"
	StateCountdown SessionState = "countdown"
	StateCaptured  SessionState = "captured"
)

// SessionParams configures one live guidance session. Now is injectable so
// throttling and the countdown are testable without sleeping; nil means
// time.Now.
type SessionParams struct {
	Standard      entities.PhotoStandard
	Registry      *standards.Registry
	AutoCapture   bool
	OnAutoCapture func()
	Now           func() time.Time
}

// Session drives the live camera guidance loop. There are no timers and no
// goroutines: the countdown is a deadline recomputed per tick, so Deactivate
// leaves nothing armed. Tick and Deactivate are safe to call from different
// goroutines.
type Session struct {
	id             string
	geometry       ovalGeometry
	autoCapture    bool
	onAutoCapture  func()
	now            func() time.Time
	interval       time.Duration
	countdownSteps int

	mu                sync.Mutex
	active            bool
	state             SessionState
	lastAnalysis      time.Time
	countdownDeadline time.Time
	countdownStep     int
	captured          bool
}

func NewSession(params SessionParams) (*Session, error) {
	spec, err := params.Registry.SpecToPx(params.Standard)
	if err != nil {
		return nil, err
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		id:             utils.GenerateULIDString(),
		geometry:       geometryFromSpec(spec),
		autoCapture:    params.AutoCapture,
		onAutoCapture:  params.OnAutoCapture,
		now:            now,
		interval:       frameIntervalFromEnv(),
		countdownSteps: countdownStepsFromEnv(),
		state:          StateIdle,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Activate arms the session. A captured session stays captured; create a new
// one for another take.
func (s *Session) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.captured {
		return
	}
	s.active = true
	s.state = StateAnalyzing
}

// Deactivate stops all guidance and cancels any running countdown.
func (s *Session) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.cancelCountdownLocked()
	if !s.captured {
		s.state = StateIdle
	}
}

// Oval projects the alignment overlay onto a viewport.
func (s *Session) Oval(viewportW, viewportH float64) OvalDimensions {
	return s.geometry.project(viewportW, viewportH)
}

// TickResult reports what one frame produced. Analyzed is false when the
// tick was skipped (inactive session, unready frame, or throttling); the
// condition and oval pointers are nil in that case.
type TickResult struct {
	Analyzed      bool
	State         SessionState
	Conditions    *CameraConditions
	Oval          *OvalDimensions
	CountdownStep int
	Captured      bool
}

// Tick processes one camera frame. Frames arrive faster than analysis is
// useful, so ticks inside the throttle interval are dropped without touching
// any state. The capture callback runs after the lock is released so it may
// call back into the session (State, Deactivate) without deadlocking.
func (s *Session) Tick(frame VideoFrame, face *entities.FaceData) TickResult {
	s.mu.Lock()
	result, capturedNow := s.tickLocked(frame, face)
	s.mu.Unlock()
	if capturedNow && s.onAutoCapture != nil {
		s.onAutoCapture()
	}
	return result
}

func (s *Session) tickLocked(frame VideoFrame, face *entities.FaceData) (TickResult, bool) {
	if !s.active || s.captured {
		return TickResult{State: s.state, Captured: s.captured}, false
	}
	if frame.ReadyState < 2 {
		return TickResult{State: s.state}, false
	}

	now := s.now()
	if !s.lastAnalysis.IsZero() && now.Sub(s.lastAnalysis) < s.interval {
		return TickResult{State: s.state, CountdownStep: s.countdownStep}, false
	}
	s.lastAnalysis = now

	oval := s.geometry.project(float64(frame.Width), float64(frame.Height))
	conditions := analyzeConditions(frame, face, oval)

	capturedNow := false
	if conditions.AllGood && s.autoCapture {
		capturedNow = s.advanceCountdownLocked(now)
	} else if !conditions.AllGood {
		s.cancelCountdownLocked()
		s.state = StateAnalyzing
	}

	return TickResult{
		Analyzed:      true,
		State:         s.state,
		Conditions:    &conditions,
		Oval:          &oval,
		CountdownStep: s.countdownStep,
		Captured:      s.captured,
	}, capturedNow
}

// advanceCountdownLocked starts the countdown on the first all-good tick and
// walks it down one step per elapsed second afterwards. Returns true on the
// tick that reaches zero; the caller fires the capture callback outside the
// lock.
func (s *Session) advanceCountdownLocked(now time.Time) bool {
	if s.state != StateCountdown {
		s.state = StateCountdown
		s.countdownStep = s.countdownSteps
		s.countdownDeadline = now.Add(time.Second)
		logger.Info("auto-capture countdown started", logger.LoggerOptions{
			Key:  "session_id",
			Data: s.id,
		}, logger.LoggerOptions{
			Key:  "steps",
			Data: s.countdownStep,
		})
		return false
	}
	for !now.Before(s.countdownDeadline) {
		s.countdownStep--
		s.countdownDeadline = s.countdownDeadline.Add(time.Second)
		if s.countdownStep <= 0 {
			s.captureLocked()
			return true
		}
	}
	return false
}

func (s *Session) captureLocked() {
	s.captured = true
	s.active = false
	s.state = StateCaptured
	s.countdownStep = 0
	s.countdownDeadline = time.Time{}
	logger.Info("auto-capture fired", logger.LoggerOptions{
		Key:  "session_id",
		Data: s.id,
	})
}

func (s *Session) cancelCountdownLocked() {
	s.countdownStep = 0
	s.countdownDeadline = time.Time{}
}

func frameIntervalFromEnv() time.Duration {
	raw := os.Getenv("GUIDANCE_FRAME_INTERVAL_MS")
	if raw == "" {
		return time.Duration(constants.GUIDANCE_FRAME_INTERVAL_MS) * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		logger.Warning("invalid GUIDANCE_FRAME_INTERVAL_MS, falling back to default", logger.LoggerOptions{
			Key:  "value",
			Data: raw,
		})
		return time.Duration(constants.GUIDANCE_FRAME_INTERVAL_MS) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func countdownStepsFromEnv() int {
	raw := os.Getenv("AUTO_CAPTURE_COUNTDOWN_STEPS")
	if raw == "" {
		return constants.AUTO_CAPTURE_COUNTDOWN_STEPS
	}
	steps, err := strconv.Atoi(raw)
	if err != nil || steps <= 0 {
		logger.Warning("invalid AUTO_CAPTURE_COUNTDOWN_STEPS, falling back to default", logger.LoggerOptions{
			Key:  "value",
			Data: raw,
		})
		return constants.AUTO_CAPTURE_COUNTDOWN_STEPS
	}
	return steps
}

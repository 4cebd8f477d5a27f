// Package demo plays the scripted verification walkthrough: a cursor clicks
// "Verify", signs in as a student and lands on a Discord profile with the
// verified role, followed by confetti.
//
// The Sequencer owns the scene and mutates it one timed step at a time; after
// every step the whole scene is handed to a Renderer. Timing comes from a
// timeline.Scheduler so tests can drive it with a manual clock.
package demo

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/timeline"
)

// Defaults for Options.
const (
	DefaultVisibilityThreshold = 0.3
	DefaultLeadIn              = 500 * time.Millisecond
	DefaultReplayDelay         = 100 * time.Millisecond
)

// Username is typed into the sign-in field.
const Username = "phil"

// Renderer receives the scene after every change.
type Renderer interface {
	RenderDemo(scene Scene)
}

// Options configures a Sequencer. Zero values fall back to the defaults.
type Options struct {
	Layout              Layout
	VisibilityThreshold float64
	LeadIn              time.Duration
	ReplayDelay         time.Duration
	// Rand seeds the confetti.
	Rand   *rand.Rand
	Logger *zap.Logger
}

// Sequencer runs the demo for one page view.
type Sequencer struct {
	runner    *timeline.Runner
	render    Renderer
	layout    Layout
	threshold float64
	leadIn    time.Duration
	replay    time.Duration
	rng       *rand.Rand
	log       *zap.Logger

	scene  Scene
	played bool
}

// New returns an idle sequencer showing the initial scene. Nothing is
// rendered until the first step or Reset.
func New(sched timeline.Scheduler, r Renderer, opts Options) *Sequencer {
	s := &Sequencer{
		runner:    timeline.NewRunner(sched),
		render:    r,
		layout:    opts.Layout,
		threshold: opts.VisibilityThreshold,
		leadIn:    opts.LeadIn,
		replay:    opts.ReplayDelay,
		rng:       opts.Rand,
		log:       opts.Logger,
		scene:     InitialScene(),
	}
	if s.layout == (Layout{}) {
		s.layout = DefaultLayout()
	}
	if s.threshold <= 0 {
		s.threshold = DefaultVisibilityThreshold
	}
	if s.leadIn <= 0 {
		s.leadIn = DefaultLeadIn
	}
	if s.replay <= 0 {
		s.replay = DefaultReplayDelay
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Scene returns the current scene.
func (s *Sequencer) Scene() Scene { return s.scene }

// HasPlayed reports whether the demo has started at least once, either on
// its own or through Replay.
func (s *Sequencer) HasPlayed() bool { return s.played }

// Running reports whether a run is pending or in progress.
func (s *Sequencer) Running() bool { return s.runner.Running() }

// Observe reports how much of the demo section is visible. The first time
// the fraction reaches the threshold the demo starts after the lead-in. It
// never starts on its own again. Observe returns true when it started a run.
func (s *Sequencer) Observe(fraction float64) bool {
	if s.played || fraction < s.threshold {
		return false
	}
	s.played = true
	s.log.Debug("demo auto start", zap.Float64("fraction", fraction))
	s.runner.Play(s.Script().Offset(s.leadIn), s.finished)
	return true
}

// Replay resets the scene and plays from the start after the replay delay.
// Anything still pending from an earlier run, including an automatic start
// that has not fired yet, is cancelled.
func (s *Sequencer) Replay() {
	s.Reset()
	s.played = true
	s.log.Debug("demo replay")
	s.runner.Play(s.Script().Offset(s.replay), s.finished)
}

// Reset cancels the current run and restores the initial scene.
func (s *Sequencer) Reset() {
	s.runner.Cancel()
	s.scene = InitialScene()
	s.render.RenderDemo(s.scene)
}

// Stop cancels the current run and leaves the scene as it is.
func (s *Sequencer) Stop() {
	s.runner.Cancel()
}

func (s *Sequencer) finished() {
	s.log.Debug("demo finished")
}

// Script returns the steps of one run, relative to its start.
func (s *Sequencer) Script() timeline.Script {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	l := s.layout
	steps := []timeline.Step{
		s.step(0, "cursor-appear", func(sc *Scene) {
			sc.Cursor.Opacity = 1
			sc.Cursor.Point = CursorStart
		}),
		s.step(ms(100), "cursor-to-verify", func(sc *Scene) {
			sc.Cursor.Transition = "left 1s ease-in-out, top 1s ease-in-out"
			sc.Cursor.Point = l.Verify
		}),
		s.step(ms(1200), "verify-press", func(sc *Scene) {
			sc.Cursor.Scale = 0.9
			sc.VerifyScale = 0.95
		}),
		s.step(ms(1400), "verify-release", func(sc *Scene) {
			sc.Cursor.Scale = 1
			sc.VerifyScale = 1
		}),
		s.step(ms(1600), "embed-fade", func(sc *Scene) {
			sc.Embed.Transition = "opacity 0.5s ease-out"
			sc.Embed.Opacity = 0
		}),
		s.step(ms(2100), "signin-show", func(sc *Scene) {
			sc.Embed.Hidden = true
			sc.SignIn.Transition = "opacity 0.5s ease-in"
			sc.SignIn.Opacity = 1
		}),
		s.step(ms(2900), "cursor-to-input", func(sc *Scene) {
			sc.Cursor.Transition = "left 0.8s ease-in-out, top 0.8s ease-in-out"
			sc.Cursor.Point = l.Input
		}),
		s.step(ms(3800), "input-press", func(sc *Scene) {
			sc.Input.Focused = true
			sc.Input.Highlight = true
			sc.Cursor.Scale = 0.9
		}),
		s.step(ms(3950), "input-release", func(sc *Scene) {
			sc.Cursor.Scale = 1
			sc.Input.Highlight = false
		}),
	}
	for i, ch := range []rune(Username) {
		steps = append(steps, s.step(ms(4100+150*i), "type", func(sc *Scene) {
			sc.Input.Value += string(ch)
		}))
	}
	steps = append(steps,
		s.step(ms(4900), "cursor-to-submit", func(sc *Scene) {
			sc.Cursor.Transition = "left 0.8s ease-in-out, top 0.8s ease-in-out"
			sc.Cursor.Point = l.Submit
		}),
		s.step(ms(5800), "submit-press", func(sc *Scene) {
			sc.Cursor.Scale = 0.9
			sc.SubmitScale = 0.98
		}),
		s.step(ms(5950), "submit-release", func(sc *Scene) {
			sc.Cursor.Scale = 1
			sc.SubmitScale = 1
		}),
		s.step(ms(6100), "confetti", func(sc *Scene) {
			sc.Confetti = Confetti{
				Particles:  NewConfetti(s.rng, ParticleCount),
				Opacity:    1,
				Transition: "all 2s cubic-bezier(0.25, 0.46, 0.45, 0.94)",
			}
		}),
		s.step(ms(6400), "signin-fade", func(sc *Scene) {
			sc.SignIn.Transition = "opacity 0.5s ease-out"
			sc.SignIn.Opacity = 0
			sc.Cursor.Opacity = 0
		}),
		s.step(ms(6900), "profile-show", func(sc *Scene) {
			sc.Input.Value = ""
			sc.SignIn.Hidden = true
			sc.Profile.Transition = "opacity 0.6s ease-in"
			sc.Profile.Opacity = 1
		}),
		s.step(ms(9700), "confetti-fade", func(sc *Scene) {
			sc.Confetti.Transition = "opacity 0.5s ease-out"
			sc.Confetti.Opacity = 0
		}),
	)
	return timeline.NewScript(steps...)
}

func (s *Sequencer) step(at time.Duration, name string, apply func(*Scene)) timeline.Step {
	return timeline.Step{At: at, Name: name, Do: func() {
		apply(&s.scene)
		s.render.RenderDemo(s.scene)
	}}
}

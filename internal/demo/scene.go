package demo

// Point is a position inside the demo panel, in CSS pixels from its top-left
// corner.
type Point struct {
	X float64 `json:"x" yaml:"x" koanf:"x"`
	Y float64 `json:"y" yaml:"y" koanf:"y"`
}

// Layout holds the anchor points the cursor travels to. The server never
// measures the page, so they have to match the stylesheet.
type Layout struct {
	Verify Point `json:"verify" yaml:"verify" koanf:"verify"`
	Input  Point `json:"input" yaml:"input" koanf:"input"`
	Submit Point `json:"submit" yaml:"submit" koanf:"submit"`
}

// DefaultLayout matches the bundled stylesheet.
func DefaultLayout() Layout {
	return Layout{
		Verify: Point{X: 96, Y: 214},
		Input:  Point{X: 74, Y: 134},
		Submit: Point{X: 280, Y: 236},
	}
}

// CursorStart is where the cursor appears.
var CursorStart = Point{X: 20, Y: 20}

// Cursor is the animated pointer.
type Cursor struct {
	Point
	Opacity    float64 `json:"opacity"`
	Scale      float64 `json:"scale"`
	Transition string  `json:"transition,omitempty"`
}

// Panel is one of the three screens of the demo.
type Panel struct {
	Opacity    float64 `json:"opacity"`
	Hidden     bool    `json:"hidden,omitempty"`
	Transition string  `json:"transition,omitempty"`
}

// Input is the sign-in text field.
type Input struct {
	Value     string `json:"value"`
	Focused   bool   `json:"focused,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Particle is one piece of confetti. TX and TY are the distance it travels
// from the panel centre.
type Particle struct {
	Color    string  `json:"color"`
	Size     float64 `json:"size"`
	TX       float64 `json:"tx"`
	TY       float64 `json:"ty"`
	Rotation float64 `json:"rotation"`
}

// Confetti is the particle layer.
type Confetti struct {
	Particles  []Particle `json:"particles"`
	Opacity    float64    `json:"opacity"`
	Transition string     `json:"transition,omitempty"`
}

// Scene is the full visual state of the demo.
type Scene struct {
	Cursor      Cursor   `json:"cursor"`
	VerifyScale float64  `json:"verifyScale"`
	SubmitScale float64  `json:"submitScale"`
	Embed       Panel    `json:"embed"`
	SignIn      Panel    `json:"signin"`
	Profile     Panel    `json:"profile"`
	Input       Input    `json:"input"`
	Confetti    Confetti `json:"confetti"`
}

// InitialScene is the state before the first step and after a reset: the
// embed is showing, everything else is transparent and the confetti layer is
// empty.
func InitialScene() Scene {
	return Scene{
		Cursor: Cursor{
			Point:      CursorStart,
			Opacity:    0,
			Scale:      1,
			Transition: "none",
		},
		VerifyScale: 1,
		SubmitScale: 1,
		Embed:       Panel{Opacity: 1, Transition: "none"},
		SignIn:      Panel{Opacity: 0, Transition: "none"},
		Profile:     Panel{Opacity: 0, Transition: "none"},
		Confetti:    Confetti{Particles: []Particle{}, Opacity: 1},
	}
}

package live

import "github.com/cbcberry/berrysite/internal/intro"

// Client message types.
const (
	typeMount    = "mount"
	typeScroll   = "scroll"
	typeInput    = "input"
	typePageShow = "pageshow"
)

// clientMessage is the union of everything the page script sends.
type clientMessage struct {
	Type string `json:"type"`

	// mount
	Path        string  `json:"path"`
	Fragment    string  `json:"fragment"`
	NavType     string  `json:"nav_type"`
	LastVisitMs int64   `json:"last_visit_ms"`
	Viewport    float64 `json:"viewport"`

	// scroll
	ScrollTop      float64 `json:"scroll_top"`
	ViewportHeight float64 `json:"viewport_height"`

	// input
	Kind   string  `json:"kind"`
	DeltaY float64 `json:"delta_y"`
	Key    string  `json:"key"`

	// pageshow
	Persisted bool `json:"persisted"`
}

type activeMessage struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

type scrollToMessage struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Key   string `json:"key"`
}

type introMessage struct {
	Type  string      `json:"type"`
	Phase intro.Phase `json:"phase"`
}

type revealMessage struct {
	Type      string `json:"type"`
	Immediate bool   `json:"immediate"`
}

type visibleMessage struct {
	Type string `json:"type"`
}

type visitMessage struct {
	Type string `json:"type"`
	AtMs int64  `json:"at_ms"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

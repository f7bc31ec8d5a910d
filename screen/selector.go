// Package screen tracks which top-level view is visible
package screen

// ID names a top-level view or overlay
type ID int

const (
	None    ID = iota
	Main       // Title screen with the idle drum
	Spin       // Interactive drum with progress ring
	Ball       // Ball emerging and rolling in
	Result     // Prize card
	Confirm    // Overlay: confirm the draw
	Cancel     // Overlay: draw cancelled
)

var names = map[ID]string{
	None:    "none",
	Main:    "main",
	Spin:    "spin",
	Ball:    "ball",
	Result:  "result",
	Confirm: "confirm",
	Cancel:  "cancel",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return "unknown"
}

// Exclusive reports whether id is a top-level view rather than an overlay
func (id ID) Exclusive() bool {
	return id >= Main && id <= Result
}

// Selector keeps exactly one exclusive screen visible with at most one overlay on top
type Selector struct {
	active   ID
	overlay  ID
	onChange func(active, overlay ID)
}

// NewSelector starts on the main screen
func NewSelector() *Selector {
	return &Selector{active: Main}
}

// OnChange registers a listener called after every visible change
func (s *Selector) OnChange(fn func(active, overlay ID)) {
	s.onChange = fn
}

// Show switches the exclusive screen and drops any overlay
// Non-exclusive ids are routed to ShowOverlay
func (s *Selector) Show(id ID) {
	if !id.Exclusive() {
		s.ShowOverlay(id)
		return
	}
	if s.active == id && s.overlay == None {
		return
	}
	s.active = id
	s.overlay = None
	s.notify()
}

// ShowOverlay places an overlay above the current screen, replacing any other overlay
func (s *Selector) ShowOverlay(id ID) {
	if id != Confirm && id != Cancel {
		return
	}
	if s.overlay == id {
		return
	}
	s.overlay = id
	s.notify()
}

// HideOverlay removes id if it is the visible overlay
func (s *Selector) HideOverlay(id ID) {
	if s.overlay != id || id == None {
		return
	}
	s.overlay = None
	s.notify()
}

// Active returns the visible exclusive screen
func (s *Selector) Active() ID {
	return s.active
}

// Overlay returns the visible overlay, None if there is none
func (s *Selector) Overlay() ID {
	return s.overlay
}

// Visible reports whether id is currently on screen
func (s *Selector) Visible(id ID) bool {
	return s.active == id || (id != None && s.overlay == id)
}

func (s *Selector) notify() {
	if s.onChange != nil {
		s.onChange(s.active, s.overlay)
	}
}

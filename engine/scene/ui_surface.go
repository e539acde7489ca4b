package scene

import (
	"log"
	"sync"
)

// UISurface shows and hides overlay panels as the camera crosses scroll zones. Panel IDs are the
// zone names: "intro-gesture", "project-ui", "contact-ui" and "summit".
type UISurface interface {
	// Show makes a panel visible. Showing a visible panel is a no-op.
	//
	// Parameters:
	//   - panelID: the panel to show
	Show(panelID string)

	// Hide hides a panel. Hiding a hidden panel is a no-op.
	//
	// Parameters:
	//   - panelID: the panel to hide
	Hide(panelID string)
}

// LogUISurface is the desktop UISurface: it tracks panel visibility and logs every change.
type LogUISurface struct {
	mu      sync.Mutex
	logger  *log.Logger
	visible map[string]bool
}

var _ UISurface = &LogUISurface{}

// NewLogUISurface creates a LogUISurface writing to logger. A nil logger uses log.Default().
//
// Parameters:
//   - logger: destination for visibility changes
//
// Returns:
//   - *LogUISurface: the surface
func NewLogUISurface(logger *log.Logger) *LogUISurface {
	if logger == nil {
		logger = log.Default()
	}
	return &LogUISurface{
		logger:  logger,
		visible: make(map[string]bool),
	}
}

func (u *LogUISurface) Show(panelID string) {
	u.set(panelID, true)
}

func (u *LogUISurface) Hide(panelID string) {
	u.set(panelID, false)
}

// Visible reports whether a panel is currently shown.
func (u *LogUISurface) Visible(panelID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.visible[panelID]
}

func (u *LogUISurface) set(panelID string, visible bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.visible[panelID] == visible {
		return
	}
	u.visible[panelID] = visible
	if visible {
		u.logger.Printf("[UI] show %s", panelID)
	} else {
		u.logger.Printf("[UI] hide %s", panelID)
	}
}

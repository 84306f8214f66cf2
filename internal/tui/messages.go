package tui

import (
	"time"

	"github.com/dbmrq/vitrina/internal/catalog"
)

// Message types for TUI state updates.

// CatalogLoadedMsg is sent when the catalog document has been fetched and decoded.
type CatalogLoadedMsg struct {
	Doc *catalog.Document
}

// LoadFailedMsg is sent when the catalog could not be loaded. The browser
// cannot show anything without the catalog.
type LoadFailedMsg struct {
	Err error
}

// FrameMsg drives carousel and gallery animations.
type FrameMsg struct {
	Time time.Time
}

// DetachLayerMsg removes a gallery layer once its slide-out is over. The id
// identifies the layer, so removals never hit a layer added later.
type DetachLayerMsg struct {
	LayerID int
}

// StatusMsg sets a transient status bar message.
type StatusMsg struct {
	Text string
}

type statusExpiredMsg struct {
	Text string
}

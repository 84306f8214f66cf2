// Package styles provides Lip Gloss styles for the vitrina TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#B45309") // Walnut
	Secondary   = lipgloss.Color("#0EA5E9") // Sky
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
	Price       = lipgloss.Color("#FBBF24") // Gold
)

// Header and tab styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// TabActiveStyle is the selected tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// TabInactiveStyle is every other tab.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Padding(0, 1)

	// SectionTitleStyle is the heading above a carousel.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true).
				Padding(0, 2)
)

// Card styles.
var (
	// CardStyle is a product card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// CardSelectedStyle is the card under the cursor.
	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// ImageRefStyle is for image file names standing in for pictures.
	ImageRefStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// NameStyle is for product names.
	NameStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// PriceStyle is for formatted prices.
	PriceStyle = lipgloss.NewStyle().
			Foreground(Price).
			Bold(true)

	// ArrowStyle is for carousel scroll buttons.
	ArrowStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Modal styles.
var (
	// ModalStyle is the product detail dialog.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// ModalTitleStyle is the product name in the dialog.
	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// GalleryFrameStyle surrounds the gallery surface.
	GalleryFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(BorderColor)

	// ControlStyle is for gallery and close controls.
	ControlStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Background(Background).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Button styles.
var (
	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDangerStyle is for danger buttons (focused).
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)

// Package tui provides the terminal user interface for vitrina.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/catalog"
	verrors "github.com/dbmrq/vitrina/internal/errors"
	"github.com/dbmrq/vitrina/internal/gallery"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/tui/components"
	"github.com/dbmrq/vitrina/internal/tui/styles"
	"github.com/dbmrq/vitrina/internal/view"
)

// LoadFunc fetches the catalog document.
type LoadFunc func(ctx context.Context) (*catalog.Document, error)

// Options configures the browser model.
type Options struct {
	// Load fetches the catalog. It runs once per (re)load.
	Load LoadFunc
	// Card configures price and placeholder rendering.
	Card card.Config
	// View configures the carousel step and the initial sort mode.
	View view.Options
	// Gallery configures the modal gallery engine.
	Gallery []gallery.Option
	// UnitsPerCell converts mouse columns into swipe units.
	UnitsPerCell float64
	// Now replaces time.Now, for tests.
	Now func() time.Time
}

// Layout constants in terminal lines.
const (
	headerLines  = 2 // header and a blank line
	footerLines  = 1 // status bar
	sectionLines = components.CardHeight + 2
	sorterLines  = 2 // sort selector and a blank line

	frameInterval = time.Second / 60
	statusTTL     = 3 * time.Second
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for the catalog browser.
type Model struct {
	// Components
	header    *components.Header
	statusBar *components.StatusBar
	help      *components.HelpOverlay
	notice    *components.NoticeDialog
	spinner   *components.Spinner
	search    *components.SearchInput
	sorter    *components.SortSelector
	modal     *components.Modal

	opts     Options
	renderer *card.Renderer
	ctrl     *view.Controller
	engine   *gallery.Engine

	// State
	loading bool
	loadErr error
	message string

	section int
	homeSel []int
	gridSel int

	modalOpen bool
	openID    int
	detail    card.Detail

	pressing bool
	pressX   int

	framing bool

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new browser model. The catalog is loaded by Init.
func New(opts Options) *Model {
	if opts.UnitsPerCell <= 0 {
		opts.UnitsPerCell = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tabs := make([]string, len(view.Tabs))
	for i, t := range view.Tabs {
		tabs[i] = t.Title()
	}

	galleryOpts := append([]gallery.Option{gallery.WithClock(opts.Now)}, opts.Gallery...)

	m := &Model{
		header:    components.NewHeader(tabs...),
		statusBar: components.NewStatusBar(),
		help:      components.NewHelpOverlay(),
		notice:    components.NewNoticeDialog(),
		spinner:   components.NewSpinner("Загрузка каталога…", opts.Now),
		search:    components.NewSearchInput(),
		sorter:    components.NewSortSelector(opts.View.Sort),
		modal:     components.NewModal(),
		opts:      opts,
		renderer:  card.NewRenderer(opts.Card),
		engine:    gallery.New(galleryOpts...),
		loading:   true,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts loading the catalog.
func (m *Model) Init() tea.Cmd {
	m.spinner.Start()
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m *Model) loadCmd() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		if load == nil {
			return LoadFailedMsg{Err: verrors.New(verrors.ErrLoad, "no catalog source configured")}
		}
		doc, err := load(context.Background())
		if err != nil {
			if !verrors.IsFatalLoad(err) {
				err = verrors.Wrap(err, verrors.ErrLoad, "failed to load the catalog")
			}
			return LoadFailedMsg{Err: err}
		}
		return CatalogLoadedMsg{Doc: doc}
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncStatus()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	// Overlays capture input while visible.
	if m.notice.IsVisible() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m.notice.Update(msg)
		}
	}
	if m.help.IsVisible() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m.help.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case CatalogLoadedMsg:
		m.setCatalog(msg.Doc)
		return m.flash(fmt.Sprintf("Загружено товаров: %d", len(msg.Doc.Stock)))

	case LoadFailedMsg:
		m.loading = false
		m.loadErr = msg.Err
		logging.Error("catalog load failed", "error", msg.Err)
		m.notice.ShowLoadFailure(msg.Err.Error(), verrors.IsRetryable(msg.Err))
		return nil

	case components.NoticeRetryMsg:
		return m.reload()

	case components.NoticeQuitMsg:
		m.quitting = true
		return tea.Quit

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		_, cmd := m.spinner.Update(msg)
		return cmd

	case FrameMsg:
		m.framing = false
		if m.ctrl != nil {
			m.ctrl.StepScroll()
		}
		if m.modalOpen {
			m.engine.Settle(m.opts.Now())
		}
		return m.ensureFrames()

	case DetachLayerMsg:
		m.engine.Detach(msg.LayerID)
		return nil

	case StatusMsg:
		return m.flash(msg.Text)

	case statusExpiredMsg:
		if m.message == msg.Text {
			m.message = ""
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return nil
}

// reload discards everything and loads the catalog from scratch.
func (m *Model) reload() tea.Cmd {
	logging.Info("reloading catalog")
	m.ctrl = nil
	m.engine.Close()
	m.modalOpen = false
	m.pressing = false
	m.loadErr = nil
	m.loading = true
	m.search.Blur()
	m.search.SetValue("")
	m.spinner.Start()
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m *Model) setCatalog(doc *catalog.Document) {
	store := catalog.NewStore(doc)
	m.ctrl = view.NewController(store, m.renderer, m.opts.View)
	m.loading = false
	m.loadErr = nil

	m.section = 0
	m.homeSel = make([]int, len(m.ctrl.Home()))
	m.gridSel = 0
	m.header.SetActive(int(m.ctrl.ActiveTab()))
	m.sorter.SetMode(m.ctrl.SortMode())
	m.ctrl.SetQuery(m.search.Value())
	m.layoutSections()

	logging.Info("catalog shown",
		"products", store.Len(),
		"sections", len(m.ctrl.Home()),
	)
}

// flash shows text in the status bar until statusTTL passes or another
// message replaces it.
func (m *Model) flash(text string) tea.Cmd {
	m.message = text
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{Text: text}
	})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.search.SetWidth(width)
	m.modal.SetSize(width, height)
	m.notice.SetWidth(min(width-4, 64))
	m.layoutSections()
	m.clampPage()
}

func (m *Model) layoutSections() {
	if m.ctrl != nil {
		m.ctrl.LayoutSections(components.CarouselViewport(m.width), components.CardSpan)
	}
}

// ensureFrames schedules the next animation frame while something moves.
// At most one frame tick is in flight.
func (m *Model) ensureFrames() tea.Cmd {
	if m.framing || !m.animating() {
		return nil
	}
	m.framing = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

func (m *Model) animating() bool {
	if m.ctrl != nil && m.ctrl.ScrollAnimating() {
		return true
	}
	return m.modalOpen && m.engine.Animating(m.opts.Now())
}

// handleKey handles keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.ctrl == nil {
		if msg.String() == "q" {
			m.quitting = true
			return tea.Quit
		}
		return nil
	}
	if m.modalOpen {
		return m.handleModalKey(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit
	case "?":
		m.help.Toggle()
		return nil
	case "tab", "shift+tab":
		m.switchTab(view.Tab((int(m.ctrl.ActiveTab()) + 1) % len(view.Tabs)))
		return nil
	case "1":
		m.switchTab(view.TabHome)
		return nil
	case "2":
		m.switchTab(view.TabAssortment)
		return nil
	case "pgdown", "ctrl+d":
		m.scrollPage(m.bodyHeight() / 2)
		return nil
	case "pgup", "ctrl+u":
		m.scrollPage(-m.bodyHeight() / 2)
		return nil
	}

	if m.ctrl.ActiveTab() == view.TabAssortment {
		return m.handleAssortmentKey(msg)
	}
	return m.handleHomeKey(msg)
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	sections := m.ctrl.Home()
	if len(sections) == 0 {
		return nil
	}

	switch msg.String() {
	case "up", "k":
		m.section = max(m.section-1, 0)
		m.revealSection()
	case "down", "j":
		m.section = min(m.section+1, len(sections)-1)
		m.revealSection()
	case "left", "h":
		m.homeSel[m.section] = max(m.homeSel[m.section]-1, 0)
		m.revealCard()
	case "right", "l":
		m.homeSel[m.section] = min(m.homeSel[m.section]+1, len(sections[m.section].Cards)-1)
		m.revealCard()
	case "[":
		m.ctrl.ScrollSection(m.section, -1)
	case "]":
		m.ctrl.ScrollSection(m.section, 1)
	case "enter", " ":
		c := sections[m.section].Cards[m.homeSel[m.section]]
		m.openProduct(c.ProductID)
	}
	return m.ensureFrames()
}

func (m *Model) handleAssortmentKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.ctrl.Grid())
	cols := components.GridColumns(m.width)

	switch msg.String() {
	case "/":
		return m.search.Focus()
	case "s":
		m.ctrl.CycleSortMode()
		m.sorter.SetMode(m.ctrl.SortMode())
		m.gridSel = 0
	case "left", "h":
		m.gridSel = max(m.gridSel-1, 0)
	case "right", "l":
		m.gridSel = min(m.gridSel+1, max(n-1, 0))
	case "up", "k":
		if m.gridSel-cols >= 0 {
			m.gridSel -= cols
		}
	case "down", "j":
		if m.gridSel+cols < n {
			m.gridSel += cols
		}
	case "enter", " ":
		if m.gridSel < n {
			m.openProduct(m.ctrl.Grid()[m.gridSel].ProductID)
		}
	}
	m.revealGridRow()
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.search.Blur()
		return nil
	}
	cmd, changed := m.search.Update(msg)
	if changed {
		m.ctrl.SetQuery(m.search.Value())
		m.gridSel = 0
	}
	return cmd
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.closeModal()
	case "left", "h":
		return m.navigate(gallery.Prev)
	case "right", "l":
		return m.navigate(gallery.Next)
	}
	return nil
}

// handleMouse handles clicks, wheel scrolling and gallery swipes.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	if m.modalOpen {
		return m.handleModalMouse(msg)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPage(-3)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollPage(3)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if msg.Y == 0 {
		if i, ok := m.header.TabAt(msg.X); ok {
			m.switchTab(view.Tabs[i])
		}
		return nil
	}

	line := msg.Y - headerLines + m.ctrl.PageOffset()
	if msg.Y < headerLines || msg.Y >= headerLines+m.bodyHeight() {
		return nil
	}
	if m.ctrl.ActiveTab() == view.TabAssortment {
		return m.clickAssortment(msg.X, line)
	}
	return m.clickHome(msg.X, line)
}

func (m *Model) clickHome(x, line int) tea.Cmd {
	sections := m.ctrl.Home()
	i, row := line/sectionLines, line%sectionLines
	if i >= len(sections) || row < 1 || row > components.CardHeight {
		return nil
	}
	s := sections[i]
	hit, idx := components.CarouselHitTest(x, s.Scroll.Offset(), s.Scroll.Viewport(), len(s.Cards), s.Scroll.Affordances())
	m.section = i
	switch hit {
	case components.HitLeftArrow:
		m.ctrl.ScrollSection(i, -1)
	case components.HitRightArrow:
		m.ctrl.ScrollSection(i, 1)
	case components.HitCard:
		m.homeSel[i] = idx
		m.openProduct(s.Cards[idx].ProductID)
	}
	return m.ensureFrames()
}

func (m *Model) clickAssortment(x, line int) tea.Cmd {
	searchLines := m.search.Height()
	switch {
	case line < searchLines:
		return m.search.Focus()
	case line == searchLines:
		m.search.Blur()
		if mode, ok := m.sorter.ModeAt(x); ok {
			m.ctrl.SetSortMode(mode)
			m.sorter.SetMode(mode)
			m.gridSel = 0
		}
		return nil
	}
	m.search.Blur()

	i, ok := components.GridHitTest(x, line-searchLines-sorterLines, m.width, len(m.ctrl.Grid()))
	if !ok {
		return nil
	}
	m.gridSel = i
	m.openProduct(m.ctrl.Grid()[i].ProductID)
	return nil
}

func (m *Model) handleModalMouse(msg tea.MouseMsg) tea.Cmd {
	box := m.renderModal()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x0, y0 := centerOrigin(m.width, m.height, w, h)
	controls := m.engine.ControlsVisible()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch m.modal.ZoneAt(msg.X-x0, msg.Y-y0, controls) {
		case components.ZoneOutside, components.ZoneClose:
			m.closeModal()
		case components.ZonePrev:
			return m.navigate(gallery.Prev)
		case components.ZoneNext:
			return m.navigate(gallery.Next)
		case components.ZoneGallery:
			m.pressing = true
			m.pressX = msg.X
		}
	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.pressing = false
		start := float64(m.pressX) * m.opts.UnitsPerCell
		end := float64(msg.X) * m.opts.UnitsPerCell
		tr, ok := m.engine.Swipe(start, end)
		if !ok {
			return nil
		}
		return m.afterTransition(tr)
	}
	return nil
}

func (m *Model) switchTab(t view.Tab) {
	if m.ctrl.SwitchTab(t) {
		m.header.SetActive(int(t))
		m.search.Blur()
	}
}

func (m *Model) openProduct(id int) {
	d, ok := m.ctrl.Detail(id)
	if !ok {
		return
	}
	p, _ := m.ctrl.Product(id)
	m.engine.Open(p)
	m.detail = d
	m.openID = id
	m.modalOpen = true
	m.pressing = false

	ctx := logging.WithProductID(context.Background(), id)
	logging.Ctx(ctx).Debug("product opened", "images", len(p.Images))
}

func (m *Model) closeModal() {
	m.engine.Close()
	m.modalOpen = false
	m.pressing = false
}

func (m *Model) navigate(dir gallery.Direction) tea.Cmd {
	tr, ok := m.engine.Navigate(dir)
	if !ok {
		return nil
	}
	return m.afterTransition(tr)
}

// afterTransition schedules the deferred detach of the leaving layer and
// starts animation frames.
func (m *Model) afterTransition(tr gallery.Transition) tea.Cmd {
	var cmds []tea.Cmd
	if tr.Animated() && tr.LeavingID != 0 {
		id := tr.LeavingID
		cmds = append(cmds, tea.Tick(tr.DetachAfter, func(time.Time) tea.Msg {
			return DetachLayerMsg{LayerID: id}
		}))
	}
	cmds = append(cmds, m.ensureFrames())
	return tea.Batch(cmds...)
}

// revealSection scrolls the page so the focused section is visible.
func (m *Model) revealSection() {
	m.revealLines(m.section*sectionLines, sectionLines)
}

// revealCard scrolls the focused carousel until the selected card is visible.
func (m *Model) revealCard() {
	s := m.ctrl.Home()[m.section]
	left := m.homeSel[m.section] * components.CardSpan
	right := left + components.CardWidth
	for guard := 0; guard < 256; guard++ {
		switch {
		case left < s.Scroll.Target():
			m.ctrl.ScrollSection(m.section, -1)
		case right > s.Scroll.Target()+s.Scroll.Viewport() && s.Scroll.Target() < s.Scroll.MaxOffset():
			m.ctrl.ScrollSection(m.section, 1)
		default:
			return
		}
	}
}

func (m *Model) revealGridRow() {
	cols := components.GridColumns(m.width)
	top := m.search.Height() + sorterLines + (m.gridSel/cols)*components.CardHeight
	m.revealLines(top, components.CardHeight)
}

func (m *Model) revealLines(top, n int) {
	offset := m.ctrl.PageOffset()
	switch {
	case top < offset:
		m.ctrl.SetPageOffset(top)
	case top+n > offset+m.bodyHeight():
		m.ctrl.SetPageOffset(top + n - m.bodyHeight())
	}
	m.clampPage()
}

func (m *Model) scrollPage(delta int) {
	if m.ctrl == nil {
		return
	}
	m.ctrl.SetPageOffset(m.ctrl.PageOffset() + delta)
	m.clampPage()
}

func (m *Model) clampPage() {
	if m.ctrl == nil {
		return
	}
	maxOffset := max(m.bodyLineCount()-m.bodyHeight(), 0)
	if m.ctrl.PageOffset() > maxOffset {
		m.ctrl.SetPageOffset(maxOffset)
	}
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

// bodyLineCount is the height of the active tab's content.
func (m *Model) bodyLineCount() int {
	if m.ctrl.ActiveTab() == view.TabAssortment {
		n := len(m.ctrl.Grid())
		if n == 0 {
			return m.search.Height() + sorterLines + 3
		}
		cols := components.GridColumns(m.width)
		rows := (n + cols - 1) / cols
		return m.search.Height() + sorterLines + rows*components.CardHeight
	}
	return max(len(m.ctrl.Home())*sectionLines, 1)
}

func (m *Model) syncStatus() {
	data := components.StatusBarData{
		Loading: m.loading,
		Message: m.message,
	}

	switch {
	case m.notice.IsVisible():
		data.Shortcuts = components.NoticeShortcuts
	case m.modalOpen:
		data.Shortcuts = components.ModalShortcuts
	case m.search.Focused():
		data.Shortcuts = components.SearchShortcuts
	case m.ctrl != nil && m.ctrl.ActiveTab() == view.TabAssortment:
		data.Shortcuts = components.AssortmentShortcuts
	default:
		data.Shortcuts = components.HomeShortcuts
	}

	if m.ctrl != nil {
		data.Total = m.ctrl.Store().Len()
		if m.ctrl.ActiveTab() == view.TabAssortment {
			data.Shown = len(m.ctrl.Grid())
			data.Sort = m.ctrl.SortMode().Label()
		}
	}
	m.statusBar.SetData(data)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.loading:
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.spinner.View())
	case m.ctrl == nil:
		body = ""
	default:
		body = viewport(m.renderBody(), m.ctrl.PageOffset(), m.bodyHeight())
	}

	screen := m.header.View() + "\n\n" + viewport(body, 0, m.bodyHeight()) + "\n" + m.statusBar.View()

	if m.modalOpen {
		box := m.renderModal()
		x, y := centerOrigin(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
		screen = overlay(screen, box, x, y)
	}
	if m.help.IsVisible() {
		screen = m.overlayCentered(screen, m.help.View())
	}
	if m.notice.IsVisible() {
		screen = m.overlayCentered(screen, m.notice.View())
	}
	return screen
}

func (m *Model) overlayCentered(screen, box string) string {
	x, y := centerOrigin(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
	return overlay(screen, box, x, y)
}

func (m *Model) renderBody() string {
	if m.ctrl.ActiveTab() == view.TabAssortment {
		return m.renderAssortment()
	}
	return m.renderHome()
}

func (m *Model) renderHome() string {
	sections := m.ctrl.Home()
	if len(sections) == 0 {
		return styles.MutedTextStyle.Render("  Подборок пока нет")
	}

	var b strings.Builder
	for i, s := range sections {
		sel := -1
		if i == m.section {
			sel = m.homeSel[i]
		}
		b.WriteString(styles.SectionTitleStyle.Render(s.Title))
		b.WriteString("\n")
		b.WriteString(components.RenderCarousel(s.Cards, sel, s.Scroll.Offset(), s.Scroll.Viewport(), s.Scroll.Affordances()))
		b.WriteString("\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderAssortment() string {
	return strings.Join([]string{
		m.search.View(),
		m.sorter.View(),
		"",
		components.RenderGrid(m.ctrl.Grid(), m.gridSel, m.width),
	}, "\n")
}

func (m *Model) renderModal() string {
	g := components.GalleryView{
		Placements: m.engine.Placements(m.opts.Now()),
		Index:      m.engine.Index(),
		Total:      m.engine.Len(),
		Controls:   m.engine.ControlsVisible(),
	}
	if m.engine.Len() == 0 {
		g.Placements = []gallery.Placement{{Image: m.detail.Cover, Phase: gallery.PhaseCentered}}
	}
	return m.modal.View(m.detail, g)
}

// Controller returns the view controller, nil until the catalog is loaded.
func (m *Model) Controller() *view.Controller {
	return m.ctrl
}

// Gallery returns the modal gallery engine.
func (m *Model) Gallery() *gallery.Engine {
	return m.engine
}

// Loading reports whether the catalog is being loaded.
func (m *Model) Loading() bool {
	return m.loading
}

// LoadError returns the last load failure.
func (m *Model) LoadError() error {
	return m.loadErr
}

// ModalOpen reports whether the product dialog is shown and for which product.
func (m *Model) ModalOpen() (int, bool) {
	return m.openID, m.modalOpen
}

package ui

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"facetgrip/internal/breakpoint"
	"facetgrip/internal/config"
	"facetgrip/internal/disclosure"
	"facetgrip/internal/domain"
	"facetgrip/internal/eventbus"
	"facetgrip/internal/intersect"
	"facetgrip/internal/pagination"
	"facetgrip/internal/panels"
	"facetgrip/internal/search"
	"facetgrip/internal/ui/input"
	inputtypes "facetgrip/internal/ui/input/types"
	"facetgrip/internal/ui/logic"
	"facetgrip/internal/ui/state"
	"facetgrip/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	// Core stores
	bp       *breakpoint.Signal
	store    *panels.Store
	arena    *disclosure.Arena
	session  *search.Session
	pager    *pagination.Controller
	observer *intersect.Observer

	categories []domain.Category
	panelCfgs  []domain.PanelConfig

	// Handlers
	navigator    *logic.Navigator
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	help         help.Model
	spinner      spinner.Model
	program      *tea.Program

	// run executes a query off the UI loop
	run func(search.Query) tea.Cmd

	pending      []tea.Cmd
	framePending bool
	spinning     bool
	inPagerMode  bool
	queryBefore  string // restored when search mode is cancelled

	// Layout of the last update
	items         []logic.SidebarItem
	sidebarLines  []string
	results       views.ResultsView
	resultLines   []string
	loadMoreIndex int
	mainHeight    int
	helpView      string
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, searcher search.Searcher) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:           ctx,
		bus:           bus,
		config:        cfg,
		state:         state.NewAppState(),
		categories:    categoriesOf(cfg),
		navigator:     logic.NewNavigator(),
		inputHandler:  input.New(),
		renderer:      views.NewRenderer(),
		help:          help.New(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		loadMoreIndex: -1,
	}
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())
	m.spinner.Style = m.renderer.Styles().StatusLoading
	m.run = m.execute

	m.bp = breakpoint.New(cfg.UI.WideThreshold)
	m.store = panels.NewStore(m.bp)
	m.arena = disclosure.NewArena(m.measurePanel, timingOf(cfg))
	m.store.Subscribe(m.arena.Sync)

	m.session = search.NewSession(searcher,
		search.WithEventBus(bus),
		search.WithHitsPerPage(cfg.Search.HitsPerPage),
	)
	m.pager = pagination.New(m.fetchNextPage, pagination.WithAutoLimit(cfg.Search.AutoLoadPages))
	m.session.SignatureSignal().Subscribe(func(sig domain.QuerySignature) {
		m.pager.OnQueryChanged(sig)
	})
	m.observer = intersect.New(m.onSentinel)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

func categoriesOf(cfg *config.Config) []domain.Category {
	if len(cfg.Categories) == 0 {
		return config.DefaultCategories()
	}
	return cfg.Categories
}

func timingOf(cfg *config.Config) disclosure.Timing {
	return disclosure.Timing{Duration: time.Duration(cfg.UI.AnimationMS) * time.Millisecond}
}

func (m *Model) frameInterval() time.Duration {
	if m.config.UI.FrameMS <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(m.config.UI.FrameMS) * time.Millisecond
}

// Init starts the first search
func (m *Model) Init() tea.Cmd {
	m.selectCategory(0)
	return m.afterUpdate()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tea.KeyMsg:
		if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			m.queryBefore = m.session.Request().Query
		}
		if m.state.Ready {
			m.layout()
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		m.queue(cmd)
		for _, action := range actions {
			m.queue(m.processAction(action))
		}

	case searchResultMsg:
		m.handleResult(msg)

	case frameMsg:
		m.framePending = false
		m.arena.Tick(time.Time(msg))

	case spinner.TickMsg:
		if !m.session.Stalled() {
			m.spinning = false
			break
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.queue(cmd)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.help.ShowAll = true
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	default:
		m.queue(m.inputHandler.Update(msg))
	}

	return m, m.afterUpdate()
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.state.Width = msg.Width
	m.state.Height = msg.Height
	m.help.Width = msg.Width

	flipped := m.bp.Update(msg.Width)
	if !m.state.Ready {
		m.state.Ready = true
		m.initPanels()
		return
	}
	if flipped {
		m.viewportChanged()
	}
}

// viewportChanged reacts to a wide/narrow flip. The registry is kept as is;
// only the accordion policy of later toggles changes.
func (m *Model) viewportChanged() {
	wide := m.bp.Get()
	log.Printf("Viewport changed: width=%d wide=%v", m.bp.Width(), wide)
	if wide {
		m.state.DrawerOpen = false
	} else if !m.state.DrawerOpen {
		m.state.PanelsFocused = false
	}
	m.publish(eventbus.ViewportChangedEvent{Width: m.bp.Width(), Wide: wide})
}

// initPanels replaces the registry with the selected category's panels
func (m *Model) initPanels() {
	wide := m.bp.Get()
	m.store.Initialize(m.panelCfgs, wide)
	m.publish(eventbus.PanelsInitializedEvent{Panels: m.store.IDs(), Wide: wide})
}

func (m *Model) selectCategory(i int) {
	if len(m.categories) == 0 {
		return
	}
	i = ((i % len(m.categories)) + len(m.categories)) % len(m.categories)
	cat := m.categories[i]
	m.state.CategoryIndex = i
	m.state.ResetCursors()
	m.panelCfgs = domain.PanelConfigs(cat.Refinements)
	if m.state.Ready {
		m.initPanels()
	}
	m.issue(m.session.SetCategory(cat))
}

func (m *Model) handleResult(msg searchResultMsg) {
	if msg.err != nil {
		if m.session.Fail(msg.query, msg.err) {
			log.Printf("Search failed: %v", msg.err)
			m.state.SetStatus(m.session.Err().Error())
		}
		return
	}
	hadErr := m.session.Err() != nil
	if !m.session.Apply(msg.query, msg.resp) {
		return
	}
	if hadErr {
		m.state.SetStatus("")
	}
	if msg.resp.Page == 0 {
		m.state.ResetResults()
	}
	// The results grew, so the sentinel is laid out anew
	m.observer.Observe()
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.state.SetStatus(e.Message)
	case eventbus.ConfigReloadedEvent:
		log.Printf("Config reloaded from %s", e.Path)
	}
}

// applyConfig takes over a reloaded configuration. Unchanged panel sets
// keep their open/closed state.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	current := ""
	if m.state.CategoryIndex < len(m.categories) {
		current = m.categories[m.state.CategoryIndex].Name
	}

	m.config = cfg
	m.categories = categoriesOf(cfg)
	m.arena.SetTiming(timingOf(cfg))
	m.pager.SetAutoLimit(cfg.Search.AutoLoadPages)
	if m.bp.SetThreshold(cfg.UI.WideThreshold) {
		m.viewportChanged()
	}

	idx := -1
	for i, cat := range m.categories {
		if cat.Name == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.selectCategory(0)
		m.state.SetStatus("Config reloaded")
		return
	}

	m.state.CategoryIndex = idx
	cat := m.categories[idx]
	m.panelCfgs = domain.PanelConfigs(cat.Refinements)
	if m.state.Ready && m.store.Reconfigure(m.panelCfgs, m.bp.Get()) {
		m.publish(eventbus.PanelsInitializedEvent{Panels: m.store.IDs(), Wide: m.bp.Get()})
		m.state.ResetCursors()
		m.issue(m.session.SetCategory(cat))
	}
	m.state.SetStatus("Config reloaded")
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SwitchFocusAction:
		if m.sidebarShown() {
			m.state.PanelsFocused = !m.state.PanelsFocused
		}

	case inputtypes.UpdateTextAction:
		m.state.ResetResults()
		m.issue(m.session.SetQuery(a.Text))

	case inputtypes.SubmitTextAction:
		if a.Text != m.session.Request().Query {
			m.state.ResetResults()
			m.issue(m.session.SetQuery(a.Text))
		}

	case inputtypes.CancelTextAction:
		if m.session.Request().Query != m.queryBefore {
			m.state.ResetResults()
			m.issue(m.session.SetQuery(m.queryBefore))
		}

	case inputtypes.TogglePanelAction:
		m.store.Toggle(domain.PanelID(a.PanelID))

	case inputtypes.ToggleAllPanelsAction:
		m.store.ToggleAll()

	case inputtypes.OpenDrawerAction:
		m.state.DrawerOpen = true
		m.state.PanelsFocused = true
		m.state.PanelIndex, m.state.PanelOffset = 0, 0

	case inputtypes.CloseDrawerAction:
		m.state.DrawerOpen = false
		m.state.PanelsFocused = false

	case inputtypes.ToggleRefinementAction:
		m.state.ResetResults()
		m.issue(m.session.ToggleRefinement(a.Attribute, a.Value))

	case inputtypes.ClearRefinementsAction:
		if m.session.TotalRefinements() > 0 {
			m.state.ResetResults()
			m.issue(m.session.ClearRefinements())
		}

	case inputtypes.CycleCategoryAction:
		m.selectCategory(m.state.CategoryIndex + 1)

	case inputtypes.CycleSortAction:
		m.state.SortIndex = (m.state.SortIndex + 1) % len(search.Sorts)
		m.state.ResetResults()
		m.issue(m.session.SetSort(search.Sorts[m.state.SortIndex]))

	case inputtypes.LoadMoreAction:
		if !m.session.Stalled() && m.loadMoreIndex >= 0 {
			m.pager.OnManualTrigger()
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	if m.state.PanelsFocused && m.sidebarShown() {
		m.navigator.UpdateState(m.state.PanelIndex, m.state.PanelOffset, m.sidebarHeight(), len(m.items))
		m.state.PanelIndex = m.navigator.Move(direction)
		return
	}
	count := len(m.results.Hits)
	if m.loadMoreIndex >= 0 {
		count++
	}
	m.navigator.UpdateState(m.state.ResultIndex, m.state.ResultOffset, m.mainHeight, count)
	m.state.ResultIndex = m.navigator.Move(direction)
}

// fetchNextPage is the pagination controller's fetch callback
func (m *Model) fetchNextPage(manual bool) {
	q := m.session.RefineNext()
	log.Printf("Pagination: page %d requested (manual=%v)", q.Request.Page, manual)
	m.publish(eventbus.PageRequestedEvent{Signature: q.Signature, Manual: manual})
	m.queue(m.run(q))
}

// onSentinel is the observer callback of the load-more control
func (m *Model) onSentinel(e intersect.Entry) {
	if !e.IsIntersecting || !m.session.HasResults() || m.session.IsLastPage() {
		return
	}
	m.pager.OnIntersect(m.session.Stalled())
}

func (m *Model) issue(q search.Query) {
	m.queue(m.run(q))
}

func (m *Model) execute(q search.Query) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		resp, err := session.Execute(ctx, q)
		return searchResultMsg{query: q, resp: resp, err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	ops := m.helpOps
	program := m.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := ops.ShowHelpInPager(helpContent)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// afterUpdate lays the screen out, feeds the sentinel observer and
// schedules the timers the new state needs
func (m *Model) afterUpdate() tea.Cmd {
	if m.state.Ready {
		m.layout()
		stalled := m.session.Stalled()
		m.observer.Update(m.sentinelVisible())
		if m.session.Stalled() != stalled {
			m.layout()
		}
	}

	if m.arena.Animating() && !m.framePending && !m.inPagerMode {
		m.framePending = true
		m.queue(tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}
	if m.session.Stalled() && !m.spinning {
		m.spinning = true
		m.queue(m.spinner.Tick)
	}
	return m.flush()
}

func (m *Model) sidebarShown() bool {
	return m.bp.Get() || m.state.DrawerOpen
}

func (m *Model) resultsShown() bool {
	return m.bp.Get() || !m.state.DrawerOpen
}

func (m *Model) sidebarHeight() int {
	if m.bp.Get() {
		return m.mainHeight
	}
	// The drawer header takes a line
	if h := m.mainHeight - 1; h > 0 {
		return h
	}
	return 1
}

func (m *Model) panelWidth() int {
	if m.bp.Get() {
		return m.sidebarWidth() - 1
	}
	return m.state.Width
}

func (m *Model) resultsWidth() int {
	if m.bp.Get() {
		return m.state.Width - m.sidebarWidth() - 2
	}
	return m.state.Width
}

func (m *Model) sidebarWidth() int {
	w := m.config.UI.SidebarWidth
	if w <= 0 {
		w = 32
	}
	return w
}

func (m *Model) sentinelVisible() bool {
	if !m.resultsShown() {
		return false
	}
	line := views.SentinelLine(m.results)
	return line >= 0 && line >= m.state.ResultOffset && line < m.state.ResultOffset+m.mainHeight
}

// layout composes both panes for the current state
func (m *Model) layout() {
	m.helpView = m.renderer.Styles().Help.Render(m.help.View(m.inputHandler.Keys()))
	m.mainHeight = m.state.Height - views.ReservedLines + 1 - lipgloss.Height(m.helpView)
	if m.mainHeight < 1 {
		m.mainHeight = 1
	}
	if !m.sidebarShown() {
		m.state.PanelsFocused = false
	}
	m.layoutSidebar()
	m.layoutResults()
}

func (m *Model) visiblePanels() []domain.PanelConfig {
	out := make([]domain.PanelConfig, 0, len(m.panelCfgs))
	for _, cfg := range m.panelCfgs {
		if !m.store.Has(cfg.ID) || !m.session.HasFacetValues(cfg.Attributes) {
			continue
		}
		out = append(out, cfg)
	}
	return out
}

func (m *Model) layoutSidebar() {
	cfgs := m.visiblePanels()
	width := m.panelWidth()

	// Selectable items first, so the cursor can be clamped before drawing
	var items []logic.SidebarItem
	pvs := make([]views.PanelView, len(cfgs))
	for i, cfg := range cfgs {
		pv := m.panelView(cfg)
		pvs[i] = pv
		items = append(items, logic.SidebarItem{Panel: cfg.ID, Header: true})
		if !pv.Expanded {
			continue
		}
		for j, v := range pv.Values {
			items = append(items, logic.SidebarItem{Panel: cfg.ID, Attribute: v.Attribute, Value: v.Value, ValueIdx: j})
		}
	}

	m.navigator.UpdateState(m.state.PanelIndex, m.state.PanelOffset, m.sidebarHeight(), len(items))
	m.state.PanelIndex = m.navigator.GetSelectedIndex()
	selected, hasSelected := logic.ItemAt(items, m.state.PanelIndex)

	var lines []string
	for i := range pvs {
		pv := &pvs[i]
		if hasSelected && !selected.Header && selected.Panel == pv.ID && pv.Overflows() {
			scroll := pv.Scroll
			if selected.ValueIdx < scroll {
				scroll = selected.ValueIdx
			}
			if selected.ValueIdx >= scroll+pv.MaxHeight {
				scroll = selected.ValueIdx - pv.MaxHeight + 1
			}
			pv.Scroll = m.clampPanelScroll(*pv, scroll)
		}
		pv.Focused = m.state.PanelsFocused
		pv.Cursor = -1
		if hasSelected && selected.Panel == pv.ID {
			pv.Cursor = 0
			if !selected.Header {
				pv.Cursor = selected.ValueIdx + 1
			}
		}

		start := len(lines)
		for k := range items {
			if items[k].Panel != pv.ID {
				continue
			}
			if items[k].Header {
				items[k].Line = start
				continue
			}
			row := items[k].ValueIdx - pv.Scroll
			if row < 0 {
				row = 0
			}
			if pv.Overflows() && row >= pv.MaxHeight {
				row = pv.MaxHeight - 1
			}
			items[k].Line = start + 1 + row
		}
		lines = append(lines, m.renderer.Panels.Render(*pv, width)...)
		lines = append(lines, "")
	}

	total := len(lines)
	if hasSelected {
		m.state.PanelOffset = m.navigator.ScrollTo(items[m.state.PanelIndex].Line, total)
	} else {
		m.state.PanelOffset = m.navigator.ScrollTo(0, total)
	}
	m.items = items
	m.sidebarLines = m.navigator.Window(lines)
}

func (m *Model) clampPanelScroll(pv views.PanelView, scroll int) int {
	scroll = views.ClampScroll(pv, scroll)
	m.state.PanelScroll[pv.ID] = scroll
	return scroll
}

// panelView builds the drawable state of one panel, including its
// current animation frame
func (m *Model) panelView(cfg domain.PanelConfig) views.PanelView {
	pv := m.panelContent(cfg)
	if a, ok := m.arena.Get(cfg.ID); ok {
		pv.RenderedRows = a.RenderedRows()
		pv.Fade = a.Container().Overlay().Rendered()
	}
	return pv
}

// panelContent builds a panel from the search state alone. The arena
// measures through it, so it must not read back from the arena.
func (m *Model) panelContent(cfg domain.PanelConfig) views.PanelView {
	var values []views.ValueLine
	for _, attr := range cfg.Attributes {
		facets := append([]domain.FacetValue(nil), m.session.Facets(attr)...)
		if cfg.Type == domain.RefinementRating {
			sort.SliceStable(facets, func(i, j int) bool {
				a, _ := strconv.Atoi(facets[i].Value)
				b, _ := strconv.Atoi(facets[j].Value)
				return a > b
			})
		}
		for _, fv := range facets {
			values = append(values, views.ValueLine{
				Attribute: attr,
				Value:     fv.Value,
				Count:     fv.Count,
				Refined:   fv.IsRefined,
			})
		}
	}

	pv := views.PanelView{
		ID:           cfg.ID,
		Header:       cfg.Header,
		Type:         cfg.Type,
		Expanded:     m.store.Read(cfg.ID),
		RefinedCount: m.session.RefinedCount(cfg.Attributes),
		Values:       values,
		Footer:       cfg.Footer,
		MaxHeight:    cfg.MaxHeight,
		Cursor:       -1,
	}
	pv.Scroll = views.ClampScroll(pv, m.state.PanelScroll[cfg.ID])
	return pv
}

// measurePanel reports a panel body's natural height
func (m *Model) measurePanel(id domain.PanelID) int {
	for _, cfg := range m.panelCfgs {
		if cfg.ID == id {
			return views.BodyRows(m.panelContent(cfg))
		}
	}
	return 0
}

func (m *Model) layoutResults() {
	hits := m.session.Hits()
	hitViews := make([]views.HitView, len(hits))
	for i, h := range hits {
		hitViews[i] = views.HitView{Title: h.Name, Rating: h.Rating, Reviews: h.Reviews, Price: h.Price}
	}
	rv := views.ResultsView{
		Hits:       hitViews,
		Focused:    !m.state.PanelsFocused,
		HasResults: m.session.HasResults(),
		NbHits:     m.session.NbHits(),
		IsLastPage: m.session.IsLastPage(),
		Stalled:    m.session.Stalled(),
		Progress:   m.session.Progress(),
		Query:      m.session.Request().Query,
	}
	if err := m.session.Err(); err != nil {
		rv.Err = err.Error()
	}
	m.loadMoreIndex = views.LoadMoreIndex(rv)

	count := len(hitViews)
	if m.loadMoreIndex >= 0 {
		count++
	}
	m.navigator.UpdateState(m.state.ResultIndex, m.state.ResultOffset, m.mainHeight, count)
	m.state.ResultIndex = m.navigator.GetSelectedIndex()
	rv.Cursor = m.state.ResultIndex

	lines := m.renderer.Results.Lines(rv, m.resultsWidth())
	m.state.ResultOffset = m.navigator.ScrollTo(views.ItemLine(rv, rv.Cursor), len(lines))
	m.results = rv
	m.resultLines = m.navigator.Window(lines)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:         m.state,
		Items:         m.items,
		LoadMoreIndex: m.loadMoreIndex,
		IsWide:        m.bp.Get(),
		IsStalled:     m.session.Stalled(),
		CurrentQuery:  m.session.Request().Query,
	}
}

// chips returns the labels of the active refinements
func (m *Model) chips() []string {
	headers := make(map[string]string)
	for _, cfg := range m.panelCfgs {
		for _, a := range cfg.Attributes {
			headers[a] = cfg.Header
		}
	}
	var out []string
	for _, r := range m.session.Refinements() {
		name := headers[r.Attribute]
		if name == "" {
			name = r.Attribute
		}
		value := r.Value
		if r.Attribute == "rating" {
			value += "★"
		}
		out = append(out, fmt.Sprintf("%s: %s ✕", name, value))
	}
	return out
}

// View renders the model
func (m *Model) View() string {
	if !m.state.Ready {
		return "Loading..."
	}

	names := make([]string, len(m.categories))
	for i, c := range m.categories {
		names[i] = c.Name
	}

	searchInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		searchInput = ti.View()
	}

	return m.renderer.Render(views.ViewState{
		Width:           m.state.Width,
		Height:          m.state.Height,
		Categories:      names,
		CategoryIndex:   m.state.CategoryIndex,
		SortLabel:       search.Sorts[m.state.SortIndex].Label(),
		Searching:       m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		SearchInput:     searchInput,
		Query:           m.session.Request().Query,
		Chips:           m.chips(),
		RefinementCount: m.session.TotalRefinements(),
		Wide:            m.bp.Get(),
		DrawerOpen:      m.state.DrawerOpen,
		SidebarWidth:    m.sidebarWidth(),
		SidebarLines:    m.sidebarLines,
		ResultLines:     m.resultLines,
		MainHeight:      m.mainHeight,
		Stalled:         m.session.Stalled(),
		Spinner:         m.spinner.View(),
		StatusMessage:   m.state.StatusMessage,
		HelpView:        m.helpView,
	})
}

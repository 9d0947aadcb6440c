package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"solarenroll/internal/domain"
	"solarenroll/internal/services/address"
	"solarenroll/internal/services/enrollment"
	"solarenroll/internal/wizard"
)

// programs is the cycle order of the assistance program selector.
var programs = []domain.AssistanceProgram{
	domain.AssistanceNone,
	domain.AssistanceMedicare,
	domain.AssistanceSNAP,
}

// Messages returned by the backend commands.
type (
	utilityMsg struct {
		lookup wizard.ZipLookup
		info   *domain.UtilityInfo
	}
	addressMsg struct {
		check wizard.AddressCheck
		resp  *domain.AddressValidationResponse
		err   error
	}
	submitMsg struct {
		resp *domain.SubscriberCreateResponse
		err  error
	}
)

// Model is the bubbletea model of one interactive enrollment session.
type Model struct {
	ctx    context.Context
	wiz    *wizard.Wizard
	addr   *address.Service
	enroll *enrollment.Service
	log    *zap.Logger

	inputs  map[wizard.Field]*textinput.Model
	order   []wizard.Field
	focus   int
	spinner spinner.Model

	pending    int
	submitting bool
	banner     string
	quitting   bool
}

// New builds a Model around w. The services perform the backend calls.
func New(ctx context.Context, w *wizard.Wizard, addr *address.Service, enroll *enrollment.Service, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = busyStyle

	m := &Model{
		ctx:     ctx,
		wiz:     w,
		addr:    addr,
		enroll:  enroll,
		log:     log,
		inputs:  make(map[wizard.Field]*textinput.Model),
		spinner: sp,
	}
	for _, f := range []wizard.Field{
		wizard.FieldFirstName, wizard.FieldLastName, wizard.FieldEmail, wizard.FieldPhone,
		wizard.FieldAddress, wizard.FieldCity, wizard.FieldZipCode,
		wizard.FieldAccountNumber,
	} {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 120
		m.inputs[f] = &ti
	}
	m.inputs[wizard.FieldZipCode].CharLimit = 10
	m.inputs[wizard.FieldPhone].CharLimit = 12
	m.syncStep()
	return m
}

// Wizard returns the session's wizard.
func (m *Model) Wizard() *wizard.Wizard { return m.wiz }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case utilityMsg:
		m.done()
		if !m.wiz.ResolveUtility(msg.lookup, msg.info) {
			m.log.Debug("dropped stale utility lookup", zap.String("zip", msg.lookup.Zip))
		}
		return m, nil

	case addressMsg:
		m.done()
		if !address.Record(m.wiz, msg.check, msg.resp, msg.err) {
			m.log.Debug("dropped stale address check")
		}
		return m, nil

	case submitMsg:
		m.done()
		m.submitting = false
		if msg.err != nil {
			m.banner = enrollment.Message(msg.err)
			return m, nil
		}
		if err := m.enroll.Complete(m.wiz, msg.resp); err != nil {
			m.banner = err.Error()
			return m, nil
		}
		m.banner = ""
		return m, m.syncStep()
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	if k.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}
	if m.wiz.Submitted() {
		switch k.String() {
		case "q", "esc":
			m.quitting = true
			return tea.Quit
		case "r", "enter":
			m.wiz.Reset()
			m.banner = ""
			return m.syncStep()
		}
		return nil
	}
	if m.submitting {
		return nil
	}

	switch k.String() {
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		return m.advance()
	case "esc", "ctrl+b":
		if m.wiz.Prev() {
			m.banner = ""
			return m.syncStep()
		}
		return nil
	case "ctrl+o":
		return m.checkAddress()
	}

	if m.focusedField() == wizard.FieldAssistanceProgram {
		switch k.String() {
		case "left":
			return m.cycleProgram(-1)
		case "right", " ":
			return m.cycleProgram(1)
		}
		return nil
	}
	return m.updateFocused(k)
}

// updateFocused forwards msg to the focused text input and pushes a changed
// value into the wizard.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	f := m.focusedField()
	ti, ok := m.inputs[f]
	if !ok {
		return nil
	}
	before := ti.Value()
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	if ti.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.apply(f, ti.Value()))
}

func (m *Model) apply(f wizard.Field, v string) tea.Cmd {
	var err error
	switch f {
	case wizard.FieldFirstName:
		err = m.wiz.ApplyPersonal(wizard.PersonalUpdate{FirstName: &v})
	case wizard.FieldLastName:
		err = m.wiz.ApplyPersonal(wizard.PersonalUpdate{LastName: &v})
	case wizard.FieldEmail:
		err = m.wiz.ApplyPersonal(wizard.PersonalUpdate{Email: &v})
	case wizard.FieldPhone:
		err = m.wiz.ApplyPersonal(wizard.PersonalUpdate{Phone: &v})
		if err == nil {
			m.inputs[f].SetValue(m.wiz.Record().Phone)
		}
	case wizard.FieldAddress:
		_, err = m.wiz.ApplyAddress(wizard.AddressUpdate{Address: &v})
	case wizard.FieldCity:
		_, err = m.wiz.ApplyAddress(wizard.AddressUpdate{City: &v})
	case wizard.FieldZipCode:
		var l wizard.ZipLookup
		l, err = m.wiz.ApplyAddress(wizard.AddressUpdate{ZipCode: &v})
		if err == nil && l.Needed {
			return m.lookup(l)
		}
	case wizard.FieldAccountNumber:
		err = m.wiz.ApplyUtility(wizard.UtilityUpdate{AccountNumber: &v})
	}
	if err != nil {
		m.log.Warn("update refused", zap.String("field", string(f)), zap.Error(err))
	}
	return nil
}

func (m *Model) cycleProgram(delta int) tea.Cmd {
	cur := m.wiz.Record().AssistanceProgram
	i := 0
	for j, p := range programs {
		if p == cur {
			i = j
		}
	}
	next := string(programs[(i+delta+len(programs))%len(programs)])
	if err := m.wiz.ApplyUtility(wizard.UtilityUpdate{AssistanceProgram: &next}); err != nil {
		m.banner = err.Error()
	}
	return nil
}

func (m *Model) advance() tea.Cmd {
	if m.wiz.Step() == wizard.StepUtility {
		return m.submit()
	}
	if err := m.wiz.Next(); err != nil {
		// Field errors are rendered next to the fields.
		return nil
	}
	m.banner = ""
	return m.syncStep()
}

func (m *Model) submit() tea.Cmd {
	payload, err := m.enroll.Prepare(m.wiz)
	if err != nil {
		if !errors.Is(err, wizard.ErrStepIncomplete) {
			m.banner = enrollment.Message(err)
		}
		return nil
	}
	m.submitting = true
	m.banner = ""
	ctx, enroll := m.ctx, m.enroll
	return m.start(func() tea.Msg {
		resp, err := enroll.Send(ctx, payload)
		return submitMsg{resp: resp, err: err}
	})
}

func (m *Model) lookup(l wizard.ZipLookup) tea.Cmd {
	ctx, addr := m.ctx, m.addr
	return m.start(func() tea.Msg {
		return utilityMsg{lookup: l, info: addr.Lookup(ctx, l)}
	})
}

func (m *Model) checkAddress() tea.Cmd {
	if m.wiz.Step() != wizard.StepAddress {
		return nil
	}
	c, err := m.wiz.BeginAddressCheck()
	if err != nil {
		m.banner = "Fill in street address, city, state and ZIP code to validate the address"
		return nil
	}
	ctx, addr := m.ctx, m.addr
	return m.start(func() tea.Msg {
		resp, err := addr.CheckAddress(ctx, c.Request)
		return addressMsg{check: c, resp: resp, err: err}
	})
}

// start runs cmd in the background and keeps the spinner going until its
// message arrives.
func (m *Model) start(cmd tea.Cmd) tea.Cmd {
	m.pending++
	if m.pending == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *Model) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *Model) focusedField() wizard.Field {
	if m.focus < 0 || m.focus >= len(m.order) {
		return ""
	}
	return m.order[m.focus]
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.order) == 0 {
		return nil
	}
	m.focus = (m.focus + delta + len(m.order)) % len(m.order)
	return m.refocus()
}

func (m *Model) refocus() tea.Cmd {
	var cmd tea.Cmd
	for f, ti := range m.inputs {
		if f == m.focusedField() {
			cmd = ti.Focus()
			continue
		}
		ti.Blur()
	}
	return cmd
}

// syncStep loads the current step's values into the inputs and focuses its
// first editable field.
func (m *Model) syncStep() tea.Cmd {
	m.order = m.order[:0]
	for _, v := range m.wiz.Fields() {
		if v.ReadOnly {
			continue
		}
		m.order = append(m.order, v.Name)
		if ti, ok := m.inputs[v.Name]; ok {
			ti.SetValue(v.Value)
			ti.Placeholder = v.Placeholder
		}
	}
	m.focus = 0
	return m.refocus()
}

// Run drives m on the terminal until the user quits or ctx is done.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	_, err := tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

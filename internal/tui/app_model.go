package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tobel158/waveportal/internal/logger"
	"github.com/Tobel158/waveportal/internal/service"
	"github.com/Tobel158/waveportal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageTitle      = "🤙🏽 Sup!"
	bioLine        = "I am Tobel! I am a Software Engineer exploring Web3 technologies. Connect your Ethereum wallet and wave at me!"
	noProviderText = "Get MetaMask!"
	statusDuration = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	client    service.WaveClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	input   textinput.Model
	spinner spinner.Model
	list    waveListModel
	account models.Account

	// submissions maps a submission id to the cancel func of its context.
	// The map is shared by all copies of the model.
	submissions  map[int]context.CancelFunc
	nextSubmitID int
	connecting   bool

	status        string
	errMsg        string
	showNotice    bool
	notice        noticeOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, client service.WaveClient, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	input := textinput.New()
	input.Placeholder = "Sup!"
	input.Width = 50
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:         ctx,
		client:      client,
		buildInfo:   buildInfo,
		logger:      log,
		input:       input,
		spinner:     s,
		account:     client.Account(),
		submissions: make(map[int]context.CancelFunc),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdCheckWalletConnection())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case walletCheckedMsg:
		// A missing provider or an empty authorization is not shown.
		m.syncState()
		return m, nil
	case walletConnectedMsg:
		m.connecting = false
		m.syncState()
		// Only the missing provider is shown. Other wallet failures are
		// logged by the wave client.
		if errors.Is(msg.err, service.ErrProviderNotFound) {
			m.showNoticef(noProviderText)
		}
		return m, nil
	case waveSubmittedMsg:
		return m.handleSubmitted(msg)
	case wavesRefreshedMsg:
		m.syncState()
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.cancelSubmissions()
		return m, tea.Quit
	}

	if m.showNotice {
		if key.Matches(msg, keys.wave) || key.Matches(msg, keys.esc) {
			m.showNotice = false
			m.notice.message = ""
		}
		return m, nil
	}

	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.wave):
		return m.startSubmission()
	case key.Matches(msg, keys.esc):
		if n := m.cancelSubmissions(); n > 0 {
			m.status = fmt.Sprintf("Canceling %d wave(s)...", n)
		}
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.connect):
		if m.account.IsConnected() || m.connecting {
			return m, nil
		}
		m.connecting = true
		m.errMsg = ""
		return m, m.cmdConnectWallet()
	case key.Matches(msg, keys.refresh):
		m.errMsg = ""
		return m, m.cmdRefreshWaves()
	case key.Matches(msg, keys.up):
		m.list.up()
		return m, nil
	case key.Matches(msg, keys.down):
		m.list.down()
		return m, nil
	case key.Matches(msg, keys.copy):
		w, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(w.Address)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) startSubmission() (tea.Model, tea.Cmd) {
	message := m.input.Value()

	ctx, cancel := context.WithCancel(m.ctx)
	m.nextSubmitID++
	id := m.nextSubmitID
	m.submissions[id] = cancel

	m.errMsg = ""
	m.status = ""

	cmds := []tea.Cmd{m.cmdSubmitWave(ctx, id, message)}
	// one tick loop serves every in-flight submission
	if len(m.submissions) == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) handleSubmitted(msg waveSubmittedMsg) (tea.Model, tea.Cmd) {
	if cancel, ok := m.submissions[msg.id]; ok {
		cancel()
		delete(m.submissions, msg.id)
	}

	m.syncState()

	switch {
	case msg.err == nil:
		m.input.Reset()
		m.status = "Mined -- " + msg.receipt.TxHash
		return m, cmdClearStatus()
	case errors.Is(msg.err, context.Canceled):
		m.status = "Wave canceled"
		return m, cmdClearStatus()
	}

	// The input is kept for another try. The failure is in the log only.
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(bioLine)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("I got %s waves so far!\n\n", countStyle.Render(fmt.Sprint(len(m.list.waves)))))

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if addr, ok := m.account.Address(); ok {
		b.WriteString("Account: " + addr + "\n")
	} else if m.connecting {
		b.WriteString("Connecting " + m.spinner.View() + "\n")
	} else {
		b.WriteString("[ Connect Wallet ]  ctrl+o\n")
	}

	if n := len(m.submissions); n > 0 {
		b.WriteString(fmt.Sprintf("%s Mining %d wave(s)...\n", m.spinner.View(), n))
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.list.View())

	body := renderPage(pageTitle, b.String(), m.hotKeys())
	if m.showNotice {
		body += "\n\n" + m.notice.View()
	}

	return appStyle.Render(body)
}

func (m appModel) hotKeys() string {
	parts := []string{"enter: Wave!"}
	if !m.account.IsConnected() {
		parts = append(parts, "ctrl+o: connect wallet")
	}
	parts = append(parts, "↑/↓: select", "ctrl+y: copy address", "ctrl+r: reload")
	if m.submitting() {
		parts = append(parts, "esc: cancel")
	}
	parts = append(parts, "f1: about")

	return strings.Join(parts, " │ ")
}

func (m *appModel) showNoticef(message string) {
	m.showNotice = true
	m.notice.message = message
}

// syncState copies the view state from the wave client.
func (m *appModel) syncState() {
	m.account = m.client.Account()
	m.list.setWaves(m.client.Waves())
}

func (m appModel) submitting() bool {
	return len(m.submissions) > 0
}

// cancelSubmissions cancels every in-flight submission and returns how many
// there were. Their completion messages still arrive and clean up.
func (m appModel) cancelSubmissions() int {
	for _, cancel := range m.submissions {
		cancel()
	}
	return len(m.submissions)
}

func (m appModel) cmdCheckWalletConnection() tea.Cmd {
	return func() tea.Msg {
		return walletCheckedMsg{err: m.client.CheckWalletConnection(m.ctx)}
	}
}

func (m appModel) cmdConnectWallet() tea.Cmd {
	return func() tea.Msg {
		return walletConnectedMsg{err: m.client.ConnectWallet(m.ctx)}
	}
}

func (m appModel) cmdRefreshWaves() tea.Cmd {
	return func() tea.Msg {
		return wavesRefreshedMsg{err: m.client.RefreshWaveList(m.ctx)}
	}
}

func (m appModel) cmdSubmitWave(ctx context.Context, id int, message string) tea.Cmd {
	return func() tea.Msg {
		receipt, err := m.client.SubmitWave(ctx, message)
		return waveSubmittedMsg{id: id, receipt: receipt, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

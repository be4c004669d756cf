package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/kapral18/ghthread/internal/config"
	"github.com/kapral18/ghthread/internal/github"
	"github.com/kapral18/ghthread/internal/thread"
)

// Status message durations
const (
	statusShort = 3 * time.Second
	statusLong  = 10 * time.Second
)

// App is the root Bubbletea model for the commit thread viewer.
type App struct {
	// Panel models
	threadPanel ThreadPanelModel
	outline     OutlinePanelModel
	statusBar   StatusBarModel

	// Overlays (nil when closed)
	helpOverlay    HelpOverlayModel
	actionMenu     *ActionMenuModel
	reactionPicker *ReactionPickerModel
	confirm        *ConfirmModel
	preview        *PreviewModel

	// Pending overlay subjects
	deleteTarget *github.Comment

	// GitHub client (nil until GHClientReadyMsg)
	client GitHubService

	// Thread state shared with the thread panel
	store *thread.Store

	owner string
	repo  string
	sha   string

	cfg *config.Config

	// Layout state
	focused        Panel
	width          int
	height         int
	outlineVisible bool
	initialized    bool

	// Background polling and notifications
	pollInterval    time.Duration
	notifyEnabled   bool
	initialLoadDone bool
	knownComments   map[int64]bool
}

// NewApp creates the root model for viewing one commit's thread.
func NewApp(cfg *config.Config, owner, repo, sha string) App {
	store := thread.NewStore()

	threadPanel := NewThreadPanelModel(store)
	threadPanel.SetCommit(sha)
	threadPanel.SetFocused(true)

	statusBar := NewStatusBarModel()
	statusBar.SetCommitID(sha)

	return App{
		threadPanel:    threadPanel,
		outline:        NewOutlinePanelModel(),
		statusBar:      statusBar,
		helpOverlay:    NewHelpOverlayModel(),
		store:          store,
		owner:          owner,
		repo:           repo,
		sha:            sha,
		cfg:            cfg,
		focused:        PanelThread,
		outlineVisible: !cfg.OutlineCollapsed,
		pollInterval:   cfg.PollIntervalDuration(),
		notifyEnabled:  !cfg.DisableNotifications,
		knownComments:  map[int64]bool{},
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(initGHClientCmd, pollTickCmd(a.pollInterval))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.initialized = true
		a.applyLayout()
		return a, nil

	case GHClientReadyMsg:
		a.client = msg.Client
		cmd := a.statusBar.SetTemporaryMessage("Loading thread...", StatusInfo, statusLong)
		return a, tea.Batch(
			cmd,
			loadThreadCmd(a.client, a.owner, a.repo, a.sha),
			fetchPullsCmd(a.client, a.owner, a.repo, a.sha),
		)

	case GHClientErrorMsg:
		log.Error().Err(msg.Err).Msg("github client init failed")
		cmd := a.statusBar.SetTemporaryMessage("GitHub client error: "+msg.Err.Error(), StatusError, statusLong)
		return a, cmd

	case ThreadLoadedMsg:
		return a.handleThreadLoaded(msg)

	case pollThreadLoadedMsg:
		return a.handleThreadLoaded(ThreadLoadedMsg{
			CommitID: msg.CommitID,
			Commit:   msg.Commit,
			Comments: msg.Comments,
		})

	case PullsLoadedMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Msg("pull lookup failed")
			return a, nil
		}
		a.outline.SetPulls(msg.Pulls)
		return a, nil

	case CommentCreatedMsg:
		if msg.Err == nil {
			a.clearDraft(msg.CommitID)
		}
		return a.handleMutationDone(msg.CommitID, "Comment posted", msg.Err)

	case CommentUpdatedMsg:
		if msg.Err == nil {
			a.clearDraft(msg.CommitID)
		}
		return a.handleMutationDone(msg.CommitID, "Comment updated", msg.Err)

	case CommentDeletedMsg:
		return a.handleMutationDone(msg.CommitID, "Comment deleted", msg.Err)

	case ReactionToggledMsg:
		if msg.Err != nil {
			return a.handleMutationDone(msg.CommitID, "", msg.Err)
		}
		verb := "Removed"
		if msg.Added {
			verb = "Added"
		}
		return a.handleMutationDone(msg.CommitID, fmt.Sprintf("%s %s reaction", verb, msg.Kind), nil)

	case pollTickMsg:
		cmds := []tea.Cmd{pollTickCmd(a.pollInterval)}
		if a.client != nil {
			cmds = append(cmds, pollLoadThreadCmd(a.client, a.owner, a.repo, a.sha))
		}
		return a, tea.Batch(cmds...)

	case StatusBarClearMsg:
		a.statusBar.ClearIfSeqMatch(msg.Seq)
		return a, nil

	case SubmitRequestedMsg:
		return a.submit(msg.CommitID)

	case ActionMenuRequestedMsg:
		a.actionMenu = NewActionMenuModel(msg.Anchor)
		return a, a.actionMenu.Init()

	case ReactRequestedMsg:
		a.reactionPicker = NewReactionPickerModel(msg.Comment)
		return a, a.reactionPicker.Init()

	case PreviewRequestedMsg:
		a.preview = NewPreviewModel(msg.Comment)
		a.preview.SetSize(a.width, a.height)
		return a, nil

	case CancelEditRequestedMsg:
		return a.cancelEdit(msg.CommitID)

	case HelpClosedMsg:
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Overlays swallow all keys while open.
	if a.helpOverlay.IsVisible() {
		var cmd tea.Cmd
		a.helpOverlay, cmd = a.helpOverlay.Update(msg)
		return a, cmd
	}
	if a.actionMenu != nil {
		cmd := a.actionMenu.Update(msg)
		if action, ok, finished := a.actionMenu.Done(); finished {
			anchor := a.actionMenu.Anchor()
			a.actionMenu = nil
			if ok {
				return a.dispatchAction(action, anchor)
			}
		}
		return a, cmd
	}
	if a.reactionPicker != nil {
		cmd := a.reactionPicker.Update(msg)
		if kind, ok, finished := a.reactionPicker.Done(); finished {
			comment := a.reactionPicker.Comment()
			a.reactionPicker = nil
			if ok {
				if a.client == nil {
					status := a.statusBar.SetTemporaryMessage("Not signed in", StatusError, statusShort)
					return a, status
				}
				status := a.statusBar.SetTemporaryMessage("Toggling reaction...", StatusInfo, statusLong)
				return a, tea.Batch(status, toggleReactionCmd(a.client, a.owner, a.repo, a.sha, comment, kind))
			}
		}
		return a, cmd
	}
	if a.confirm != nil {
		cmd := a.confirm.Update(msg)
		if confirmed, finished := a.confirm.Done(); finished {
			target := a.deleteTarget
			a.confirm = nil
			a.deleteTarget = nil
			if confirmed && target != nil {
				status := a.statusBar.SetTemporaryMessage("Deleting comment...", StatusInfo, statusLong)
				return a, tea.Batch(status, deleteCommentCmd(a.client, a.owner, a.repo, a.sha, target.ID))
			}
		}
		return a, cmd
	}
	if a.preview != nil {
		cmd := a.preview.Update(msg)
		if a.preview.Done() {
			a.preview = nil
		}
		return a, cmd
	}

	// Global keys apply only while the cursor is outside the compose
	// area; inside it these runes are typed text.
	inserting := a.focused == PanelThread && a.threadPanel.Inserting()
	if !inserting {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "?":
			a.helpOverlay.SetSize(a.width, a.height)
			a.helpOverlay.Show()
			return a, nil
		case "tab":
			a.setFocus(a.focused.Next())
			return a, nil
		case "R":
			if a.client == nil {
				return a, nil
			}
			status := a.statusBar.SetTemporaryMessage("Refreshing...", StatusInfo, statusLong)
			return a, tea.Batch(status, a.refreshAllCmd(), fetchPullsCmd(a.client, a.owner, a.repo, a.sha))
		case "]":
			a.outlineVisible = !a.outlineVisible
			if !a.outlineVisible && a.focused == PanelOutline {
				a.setFocus(PanelThread)
			}
			a.applyLayout()
			a.cfg.OutlineCollapsed = !a.outlineVisible
			return a, saveConfigCmd(a.cfg)
		}
	}

	switch a.focused {
	case PanelThread:
		var cmd tea.Cmd
		a.threadPanel, cmd = a.threadPanel.Update(msg)
		return a, cmd
	case PanelOutline:
		var cmd tea.Cmd
		a.outline, cmd = a.outline.Update(msg)
		return a, cmd
	}
	return a, nil
}

// dispatchAction runs a choice from the action menu.
func (a App) dispatchAction(action ThreadAction, anchor thread.Anchor) (tea.Model, tea.Cmd) {
	switch action {
	case ActionEdit:
		if anchor.Comment == nil {
			return a, nil
		}
		if a.client == nil || anchor.Comment.Author.Login != a.client.GetUsername() {
			cmd := a.statusBar.SetTemporaryMessage("Only the comment author can edit it", StatusError, statusShort)
			return a, cmd
		}
		a.threadPanel.EditComment(anchor.Comment)
		return a, nil

	case ActionDelete:
		if anchor.Comment == nil {
			return a, nil
		}
		// No local authorship check. Maintainers can delete comments
		// they did not write, so the server is the arbiter here.
		a.deleteTarget = anchor.Comment
		a.confirm = NewConfirmModel(
			"Delete comment?",
			fmt.Sprintf("This removes the comment by %s permanently.", anchor.Comment.Author.Login),
		)
		return a, a.confirm.Init()

	case ActionOpenBrowser:
		url := fmt.Sprintf("https://github.com/%s/%s/commit/%s", a.owner, a.repo, a.sha)
		if anchor.Comment != nil {
			url = fmt.Sprintf("%s#commitcomment-%d", url, anchor.Comment.ID)
		}
		return a, openBrowserCmd(url)
	}
	return a, nil
}

func (a App) handleThreadLoaded(msg ThreadLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Error().Err(msg.Err).Str("commit", msg.CommitID).Msg("thread load failed")
		cmd := a.statusBar.SetTemporaryMessage("Load failed: "+msg.Err.Error(), StatusError, statusLong)
		return a, cmd
	}

	var fresh []github.Comment
	for _, c := range msg.Comments {
		if !a.knownComments[c.ID] {
			fresh = append(fresh, c)
		}
	}

	a.threadPanel.InstallThread(msg.CommitID, msg.Commit, msg.Comments)
	a.outline.SetCommit(msg.Commit)
	a.statusBar.ClearMessage()

	for _, c := range msg.Comments {
		a.knownComments[c.ID] = true
	}

	var cmds []tea.Cmd
	if a.initialLoadDone && a.notifyEnabled && len(fresh) > 0 {
		cmds = append(cmds, notifyNewCommentsCmd(msg.CommitID, fresh, a.cfg.NotifyThreshold))
	}
	a.initialLoadDone = true

	return a, tea.Batch(cmds...)
}

// handleMutationDone reports the outcome of a mutation and, on success,
// refreshes every loaded thread from the server.
func (a App) handleMutationDone(commitID, successMsg string, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		log.Error().Err(err).Str("commit", commitID).Msg("mutation failed")
		cmd := a.statusBar.SetTemporaryMessage("Error: "+err.Error(), StatusError, statusLong)
		return a, cmd
	}
	status := a.statusBar.SetTemporaryMessage(successMsg, StatusSuccess, statusShort)
	return a, tea.Batch(status, a.refreshAllCmd())
}

// refreshAllCmd reloads every thread the store knows about.
func (a App) refreshAllCmd() tea.Cmd {
	if a.client == nil {
		return nil
	}
	ids := a.store.CommitIDs()
	if len(ids) == 0 {
		ids = []string{a.sha}
	}
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, loadThreadCmd(a.client, a.owner, a.repo, id))
	}
	return tea.Batch(cmds...)
}

func (a App) submit(commitID string) (tea.Model, tea.Cmd) {
	st := a.store.Get(commitID)
	if st == nil || a.client == nil {
		return a, nil
	}
	if st.DraftIsEmpty() {
		cmd := a.statusBar.SetTemporaryMessage("Nothing to submit", StatusInfo, statusShort)
		return a, cmd
	}

	// The draft stays in place until the mutation succeeds. The editing
	// flag does not: a submit always consumes it.
	body := st.Draft()
	if editing := st.EditingComment; editing != nil {
		st.EditingComment = nil
		status := a.statusBar.SetTemporaryMessage("Saving comment...", StatusInfo, statusLong)
		return a, tea.Batch(status, updateCommentCmd(a.client, a.owner, a.repo, commitID, editing.ID, body))
	}

	status := a.statusBar.SetTemporaryMessage("Posting comment...", StatusInfo, statusLong)
	return a, tea.Batch(status, createCommentCmd(a.client, a.owner, a.repo, commitID, body))
}

// clearDraft discards the editable region after a successful submit, so
// the follow-up reload does not restore the submitted text as a draft.
func (a *App) clearDraft(commitID string) {
	st := a.store.Get(commitID)
	if st == nil {
		return
	}
	st.EditingComment = nil
	st.ClearEditable()
}

// cancelEdit discards an in-progress comment edit and restores the
// rendered document from the cached thread data.
func (a App) cancelEdit(commitID string) (tea.Model, tea.Cmd) {
	st := a.store.Get(commitID)
	if st == nil || st.EditingComment == nil {
		return a, nil
	}
	st.EditingComment = nil
	st.ClearEditable()
	a.threadPanel.InstallThread(commitID, st.Commit, st.Comments)
	cmd := a.statusBar.SetTemporaryMessage("Edit cancelled", StatusInfo, statusShort)
	return a, cmd
}

func (a *App) setFocus(p Panel) {
	a.focused = p
	a.threadPanel.SetFocused(p == PanelThread)
	a.outline.SetFocused(p == PanelOutline)
}

func (a *App) applyLayout() {
	sizes := CalculatePanelSizes(a.width, a.height, !a.outlineVisible)
	if sizes.TooSmall {
		return
	}
	a.threadPanel.SetSize(sizes.ThreadWidth, sizes.PanelHeight)
	a.outline.SetSize(sizes.OutlineWidth, sizes.PanelHeight)
	a.helpOverlay.SetSize(a.width, a.height)
	a.statusBar.SetWidth(a.width)
}

func (a App) mode() AppMode {
	if a.helpOverlay.IsVisible() || a.actionMenu != nil || a.reactionPicker != nil || a.confirm != nil || a.preview != nil {
		return ModeOverlay
	}
	if a.focused == PanelThread && a.threadPanel.Inserting() {
		return ModeInsert
	}
	return ModeNavigation
}

func (a App) View() string {
	if !a.initialized {
		return "Initializing..."
	}

	sizes := CalculatePanelSizes(a.width, a.height, !a.outlineVisible)
	if sizes.TooSmall {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			"Terminal too small")
	}

	a.statusBar.SetState(a.focused, a.mode())

	var body string
	if sizes.OutlineWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.threadPanel.View(), a.outline.View())
	} else {
		body = a.threadPanel.View()
	}

	if overlay := a.overlayView(); overlay != "" {
		body = lipgloss.Place(a.width, sizes.PanelHeight, lipgloss.Center, lipgloss.Center, overlay)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

func (a App) overlayView() string {
	switch {
	case a.helpOverlay.IsVisible():
		return a.helpOverlay.View()
	case a.actionMenu != nil:
		return a.actionMenu.View()
	case a.reactionPicker != nil:
		return a.reactionPicker.View()
	case a.confirm != nil:
		return a.confirm.View()
	case a.preview != nil:
		return a.preview.View()
	default:
		return ""
	}
}

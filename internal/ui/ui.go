// Package ui is the fyne desktop front end.
package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/AndrivA89/mindnotes/internal/app"
	"github.com/AndrivA89/mindnotes/internal/domain"
)

type UI struct {
	fyneApp fyne.App
	win     fyne.Window
	app     *app.App
	logger  zerolog.Logger

	ctx  context.Context
	user *domain.User

	auth  *authView
	notes *notesView

	// async runs slow calls (summaries) off the event loop.
	async func(func())
}

func New(fyneApp fyne.App, a *app.App) *UI {
	w := fyneApp.NewWindow("MindNotes")
	w.Resize(fyne.NewSize(900, 650))
	return &UI{
		fyneApp: fyneApp,
		win:     w,
		app:     a,
		logger:  a.Logger.With().Str("component", "ui").Logger(),
		ctx:     context.Background(),
		async:   func(f func()) { go f() },
	}
}

// Run shows the notes of a persisted session, or the sign-in form, and
// blocks until the window is closed.
func (u *UI) Run() {
	u.Start()
	u.win.ShowAndRun()
}

func (u *UI) Start() {
	ctx, user, err := u.app.SignIn(context.Background())
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			u.fail("Could not restore session", err)
		}
		u.showAuth()
		return
	}
	u.ctx, u.user = ctx, user
	u.showNotes()
}

func (u *UI) showAuth() {
	u.ctx, u.user = context.Background(), nil
	u.notes = nil
	u.auth = newAuthView(u)
	u.win.SetContent(u.auth.content())
}

func (u *UI) showNotes() {
	u.auth = nil
	u.notes = newNotesView(u)
	u.win.SetContent(u.notes.content())
	u.notes.refresh()
}

func (u *UI) signedIn(user *domain.User) {
	ctx, err := u.app.Start(context.Background(), user)
	if err != nil {
		u.fail("Could not load starter notes", err)
	}
	u.ctx, u.user = ctx, user
	u.showNotes()
}

func (u *UI) logout() {
	if err := u.app.Sessions.Logout(context.Background()); err != nil {
		u.fail("Logout failed", err)
		return
	}
	u.showAuth()
}

// toast is the transient confirmation shown after a successful action.
func (u *UI) toast(title, content string) {
	u.fyneApp.SendNotification(fyne.NewNotification(title, content))
}

// fail logs err and surfaces it to the user. Nothing here is fatal.
func (u *UI) fail(title string, err error) {
	u.logger.Error().Err(err).Msg(title)
	u.toast(title, err.Error())
	dialog.ShowError(err, u.win)
}

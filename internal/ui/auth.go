package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

type authView struct {
	ui       *UI
	register bool

	heading  *widget.Label
	email    *widget.Entry
	password *widget.Entry
	submit   *widget.Button
	toggle   *widget.Button
	demo     *widget.Button
}

func newAuthView(u *UI) *authView {
	v := &authView{
		ui:       u,
		heading:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		email:    widget.NewEntry(),
		password: widget.NewPasswordEntry(),
	}
	v.email.SetPlaceHolder("you@example.com")
	v.password.SetPlaceHolder("Your password")
	v.password.OnSubmitted = func(string) { v.doSubmit() }
	v.submit = widget.NewButton("", v.doSubmit)
	v.submit.Importance = widget.HighImportance
	v.toggle = widget.NewButton("", func() {
		v.register = !v.register
		v.render()
	})
	v.demo = widget.NewButton("Continue with Demo Account", func() {
		v.email.SetText(domain.DemoEmail)
		v.password.SetText(domain.DemoPassword)
		v.register = false
		v.render()
		v.doSubmit()
	})
	v.render()
	return v
}

func (v *authView) render() {
	if v.register {
		v.heading.SetText("Create an account")
		v.submit.SetText("Create Account")
		v.toggle.SetText("Already have an account? Sign in")
		return
	}
	v.heading.SetText("Welcome back!")
	v.submit.SetText("Sign In")
	v.toggle.SetText("Don't have an account? Create one")
}

func (v *authView) content() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Email", v.email),
		widget.NewFormItem("Password", v.password),
	)
	box := container.NewVBox(v.heading, form, v.submit, v.demo, v.toggle)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(380, box.MinSize().Height), box))
}

func (v *authView) doSubmit() {
	creds := domain.Credentials{Email: v.email.Text, Password: v.password.Text}
	sessions := v.ui.app.Sessions

	var (
		user *domain.User
		err  error
	)
	if v.register {
		user, err = sessions.Register(context.Background(), creds)
	} else {
		user, err = sessions.Login(context.Background(), creds)
	}
	if err != nil {
		title := "Login failed"
		if v.register {
			title = "Registration failed"
		}
		v.ui.fail(title, err)
		return
	}
	v.ui.signedIn(user)
}

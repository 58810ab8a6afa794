package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showAPIKeyDialog edits the key of the configured provider. The heuristic
// provider needs none, so only a notice is shown.
func showAPIKeyDialog(u *UI) {
	provider := u.app.Provider()
	if !provider.Delegated() {
		dialog.ShowInformation("API Settings", "Summaries are generated locally; no API key is needed.", u.win)
		return
	}

	current, err := u.app.APIKeys.APIKey(u.ctx, string(provider))
	if err != nil {
		u.fail("Could not read API key", err)
		return
	}
	entry := widget.NewPasswordEntry()
	entry.SetText(current)
	entry.SetPlaceHolder(fmt.Sprintf("Enter your %s API key", provider))

	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("%s API Key", provider), entry),
	}
	items[0].HintText = "Your API key is stored locally on this machine."

	dialog.ShowForm("API Settings", "Save API Key", "Cancel", items, func(ok bool) {
		if ok {
			saveAPIKey(u, entry.Text)
		}
	}, u.win)
}

func saveAPIKey(u *UI, key string) {
	provider := string(u.app.Provider())
	if err := u.app.APIKeys.SetAPIKey(u.ctx, provider, key); err != nil {
		u.fail("Could not save API key", err)
		return
	}
	if strings.TrimSpace(key) == "" {
		u.toast("API key removed", "")
		return
	}
	u.toast("API key saved successfully", "")
}

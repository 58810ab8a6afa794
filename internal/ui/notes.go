package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

const dateLayout = "Jan 02, 2006"

var noteColors = map[domain.Color]color.Color{
	domain.Yellow: color.NRGBA{R: 0xfe, G: 0xf7, B: 0xcd, A: 0xff},
	domain.Purple: color.NRGBA{R: 0xe5, G: 0xde, B: 0xff, A: 0xff},
	domain.Blue:   color.NRGBA{R: 0xd3, G: 0xe4, B: 0xfd, A: 0xff},
	domain.Pink:   color.NRGBA{R: 0xff, G: 0xde, B: 0xe2, A: 0xff},
	domain.Green:  color.NRGBA{R: 0xf2, G: 0xfc, B: 0xe2, A: 0xff},
}

type notesView struct {
	ui *UI

	search *widget.Entry
	grid   *fyne.Container
	empty  *widget.Label
	notes  []*domain.Note
}

func newNotesView(u *UI) *notesView {
	v := &notesView{
		ui:     u,
		search: widget.NewEntry(),
		grid:   container.NewGridWithColumns(3),
		empty:  widget.NewLabelWithStyle("No notes yet. Create your first note to get started!", fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	v.search.SetPlaceHolder("Search notes")
	v.search.OnChanged = func(string) { v.refresh() }
	return v
}

func (v *notesView) content() fyne.CanvasObject {
	newBtn := widget.NewButton("New Note", func() { v.edit(nil) })
	newBtn.Importance = widget.HighImportance
	settingsBtn := widget.NewButton("API Settings", func() { showAPIKeyDialog(v.ui) })
	logoutBtn := widget.NewButton("Logout", v.ui.logout)

	account := widget.NewLabel(v.ui.user.Email)
	header := container.NewBorder(nil, nil, account,
		container.NewHBox(newBtn, settingsBtn, logoutBtn), v.search)
	body := container.NewVScroll(container.NewVBox(v.empty, v.grid))
	return container.NewBorder(header, nil, nil, nil, body)
}

// refresh reloads the list from the store, applying the search filter.
func (v *notesView) refresh() {
	notes, err := v.ui.app.Notes.SearchNotes(v.ui.ctx, v.search.Text)
	if err != nil {
		v.ui.fail("Failed to load notes", err)
		return
	}
	v.notes = notes

	v.grid.Objects = nil
	for _, n := range notes {
		v.grid.Add(v.card(n))
	}
	if len(notes) == 0 {
		v.empty.Show()
	} else {
		v.empty.Hide()
	}
	v.grid.Refresh()
}

func (v *notesView) card(n *domain.Note) fyne.CanvasObject {
	bg := canvas.NewRectangle(noteColors[n.Color])
	bg.CornerRadius = 8

	title := widget.NewLabelWithStyle(n.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis
	preview := widget.NewLabel(n.Preview())
	preview.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{title, preview}
	if n.HasSummary() {
		summary := widget.NewLabel("AI Summary: " + n.SummaryText())
		summary.Wrapping = fyne.TextWrapWord
		summary.TextStyle = fyne.TextStyle{Italic: true}
		items = append(items, summary)
	}

	note := n
	edit := widget.NewButton("Edit", func() { v.edit(note) })
	del := widget.NewButton("Delete", func() { v.confirmDelete(note) })
	footer := container.NewHBox(widget.NewLabel(n.UpdatedAt.Local().Format(dateLayout)), layout.NewSpacer(), edit, del)
	items = append(items, layout.NewSpacer(), footer)

	return container.NewStack(bg, container.NewPadded(container.NewVBox(items...)))
}

func (v *notesView) edit(n *domain.Note) {
	newNoteEditor(v.ui, n, v.refresh).show()
}

func (v *notesView) confirmDelete(n *domain.Note) {
	msg := fmt.Sprintf("Delete %q? This cannot be undone.", n.Title)
	dialog.ShowConfirm("Delete Note", msg, func(confirm bool) {
		if confirm {
			v.delete(n.ID)
		}
	}, v.ui.win)
}

func (v *notesView) delete(id string) {
	if err := v.ui.app.Notes.DeleteNote(v.ui.ctx, id); err != nil {
		v.ui.fail("Failed to delete note", err)
		return
	}
	v.ui.toast("Note deleted", "Note deleted successfully")
	v.refresh()
}

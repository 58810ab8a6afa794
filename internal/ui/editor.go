package ui

import (
	"errors"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/usecase"
)

type noteEditor struct {
	ui    *UI
	note  *domain.Note
	saved func()

	title     *widget.Entry
	body      *widget.Entry
	color     *widget.Select
	summary   *widget.Label
	summarize *widget.Button
	pop       dialog.Dialog

	// mu guards summaryText, which the summary goroutine writes.
	mu          sync.Mutex
	summaryText *string
}

func newNoteEditor(u *UI, n *domain.Note, saved func()) *noteEditor {
	e := &noteEditor{
		ui:      u,
		note:    n,
		saved:   saved,
		title:   widget.NewEntry(),
		body:    widget.NewMultiLineEntry(),
		summary: widget.NewLabel(""),
	}
	e.title.SetPlaceHolder("Note title")
	e.body.SetPlaceHolder("Write your note here...")
	e.body.SetMinRowsVisible(10)
	e.body.Wrapping = fyne.TextWrapWord
	e.summary.Wrapping = fyne.TextWrapWord

	options := make([]string, len(domain.Colors))
	for i, c := range domain.Colors {
		options[i] = string(c)
	}
	e.color = widget.NewSelect(options, nil)
	e.color.SetSelected(string(domain.DefaultColor))

	if n != nil {
		e.title.SetText(n.Title)
		e.body.SetText(n.Content)
		e.color.SetSelected(string(n.Color))
		if n.HasSummary() {
			e.setSummary(n.SummaryText())
		}
	}

	e.summarize = widget.NewButton("Generate AI Summary", e.generateSummary)
	e.body.OnChanged = func(string) { e.updateSummarizeButton() }
	e.updateSummarizeButton()
	return e
}

func (e *noteEditor) show() {
	save := widget.NewButton("Save", func() {
		if e.save() {
			e.pop.Hide()
		}
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() { e.pop.Hide() })

	form := widget.NewForm(
		widget.NewFormItem("Title", e.title),
		widget.NewFormItem("Content", e.body),
		widget.NewFormItem("Color", e.color),
	)
	buttons := container.NewHBox(e.summarize, layout.NewSpacer(), cancel, save)
	content := container.NewVBox(form, e.summary, buttons)

	heading := "New Note"
	if e.note != nil {
		heading = "Edit Note"
	}
	e.pop = dialog.NewCustomWithoutButtons(heading, content, e.ui.win)
	e.pop.Resize(fyne.NewSize(640, 520))
	e.pop.Show()
}

func (e *noteEditor) setSummary(s string) {
	e.mu.Lock()
	e.summaryText = &s
	e.mu.Unlock()
	e.summary.SetText("AI Summary: " + s)
}

// summaryValue is the summary that will be saved with the note.
func (e *noteEditor) summaryValue() *string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.summaryText
}

func (e *noteEditor) updateSummarizeButton() {
	if len([]rune(e.body.Text)) < usecase.MinSummaryInput {
		e.summarize.Disable()
		return
	}
	e.summarize.Enable()
}

func (e *noteEditor) generateSummary() {
	text := e.body.Text
	e.summarize.Disable()
	e.summarize.SetText("Summarizing...")

	e.ui.async(func() {
		summary, err := e.ui.app.Notes.SummarizeText(e.ui.ctx, text)
		e.summarize.SetText("Generate AI Summary")
		e.updateSummarizeButton()
		if err != nil {
			if errors.Is(err, usecase.ErrContentTooShort) {
				e.ui.toast("Add more content first", "Your note needs more content to generate a meaningful summary.")
				return
			}
			// The fallback text is shown but never saved; a previous summary stays.
			e.summary.SetText(summary)
			e.ui.fail("Failed to generate summary", err)
			return
		}
		e.setSummary(summary)
		e.ui.toast("Summary generated!", "")
	})
}

// save creates or updates the note and reports whether the editor can close.
func (e *noteEditor) save() bool {
	if strings.TrimSpace(e.title.Text) == "" || strings.TrimSpace(e.body.Text) == "" {
		e.ui.fail("Cannot save note", errors.New("title and content are required"))
		return false
	}
	color := domain.Color(e.color.Selected)
	notes := e.ui.app.Notes

	if e.note == nil {
		_, err := notes.CreateNote(e.ui.ctx, domain.NoteInput{
			Title:   e.title.Text,
			Content: e.body.Text,
			Color:   color,
			Summary: e.summaryValue(),
		})
		if err != nil {
			e.ui.fail("Failed to create note", err)
			return false
		}
		e.ui.toast("Note created", "Note created successfully")
	} else {
		title, content := e.title.Text, e.body.Text
		_, err := notes.UpdateNote(e.ui.ctx, e.note.ID, domain.NotePatch{
			Title:   &title,
			Content: &content,
			Color:   &color,
			Summary: e.summaryValue(),
		})
		if err != nil {
			e.ui.fail("Failed to update note", err)
			return false
		}
		e.ui.toast("Note updated", "Note updated successfully")
	}

	if e.saved != nil {
		e.saved()
	}
	return true
}

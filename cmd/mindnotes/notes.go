package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AndrivA89/mindnotes/internal/app"
	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/usecase"
)

const dateLayout = "Jan 02, 2006"

var (
	noteTitle   string
	noteContent string
	noteColor   string
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes"},
	Short:   "Manage notes of the signed-in user",
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			notes, err := a.Notes.ListNotes(ctx)
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes)
		})
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find notes by title, content or summary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			notes, err := a.Notes.SearchNotes(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes)
		})
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			note, err := a.Notes.GetNote(ctx, args[0])
			if err != nil {
				return noteError(args[0], err)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		})
	},
}

var noteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			note, err := a.Notes.CreateNote(ctx, domain.NoteInput{
				Title:   noteTitle,
				Content: noteContent,
				Color:   domain.Color(noteColor),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		})
	},
}

var noteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the title, content or color of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch domain.NotePatch
		flags := cmd.Flags()
		if flags.Changed("title") {
			patch.Title = &noteTitle
		}
		if flags.Changed("content") {
			patch.Content = &noteContent
		}
		if flags.Changed("color") {
			color := domain.Color(noteColor)
			patch.Color = &color
		}
		if patch.Empty() {
			return fmt.Errorf("nothing to update, pass --title, --content or --color")
		}

		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			note, err := a.Notes.UpdateNote(ctx, args[0], patch)
			if err != nil {
				return noteError(args[0], err)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		})
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Notes.DeleteNote(ctx, args[0]); err != nil {
				return noteError(args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Note deleted.")
			return nil
		})
	},
}

var noteSummarizeCmd = &cobra.Command{
	Use:   "summarize <id>",
	Short: "Generate a summary and store it on the note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			note, err := a.Notes.SummarizeNote(ctx, args[0])
			if err != nil {
				return noteError(args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.SummaryText())
			return nil
		})
	},
}

func noteError(id string, err error) error {
	if usecase.IsNotFound(err) {
		return fmt.Errorf("note %s not found", id)
	}
	return err
}

func printNotes(w io.Writer, notes []*domain.Note) error {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes yet. Create your first note to get started!")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOLOR\tUPDATED\tTITLE")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Color, n.UpdatedAt.Local().Format(dateLayout), n.Title)
	}
	return tw.Flush()
}

func printNote(w io.Writer, n *domain.Note) {
	fmt.Fprintf(w, "%s [%s]\n", n.Title, n.Color)
	fmt.Fprintf(w, "Updated %s\n\n", n.UpdatedAt.Local().Format(dateLayout))
	fmt.Fprintln(w, n.Content)
	if n.HasSummary() {
		fmt.Fprintf(w, "\nAI Summary: %s\n", n.SummaryText())
	}
}

func init() {
	for _, c := range []*cobra.Command{noteCreateCmd, noteUpdateCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
		c.Flags().StringVarP(&noteContent, "content", "b", "", "Note content")
		c.Flags().StringVar(&noteColor, "color", "", "One of yellow, purple, blue, pink, green")
	}
	noteCmd.AddCommand(noteListCmd, noteSearchCmd, noteShowCmd, noteCreateCmd,
		noteUpdateCmd, noteDeleteCmd, noteSummarizeCmd)
	rootCmd.AddCommand(noteCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avaldes/coursehub/pkg/course"
	"github.com/avaldes/coursehub/pkg/media"
)

var (
	draftFile  string
	draftForce bool

	addText string
	addFile string
	addURL  string

	setFile string
	setURL  string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Work on the local course draft",
	Long: `Draft commands mutate a local working copy. Nothing reaches the shared
catalog until 'coursehub publish'; deleting the draft file discards the
session without publishing.`,
}

var draftNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Start a new draft",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(draftFile); err == nil && !draftForce {
			fatal("Draft already in progress", fmt.Errorf("%s exists (use --force to discard it)", draftFile))
		}
		d := course.NewDraft().Rename(strings.Join(args, " "))
		saveDraft(d)
		fmt.Printf("Draft started in %s.\n", draftFile)
	},
}

var draftAddCmd = &cobra.Command{
	Use:   "add [type]",
	Short: "Append a content element (h1, h2, p, code, image, video)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := course.ParseElementType(args[0])
		if err != nil {
			fatal("Invalid element type", err)
		}

		payload, err := resolvePayload(t, addText, addFile, addURL)
		if err != nil {
			fatal("Failed to prepare payload", err)
		}

		d := loadDraft().Add(t)
		el := d.Elements[len(d.Elements)-1]
		if payload != "" {
			d = d.Update(el.ID, payload)
		}
		saveDraft(d)
		fmt.Printf("Added %s element %s.\n", t, el.ID)
	},
}

var draftSetCmd = &cobra.Command{
	Use:   "set [id] [text...]",
	Short: "Replace an element's payload",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDraft()
		el, ok := d.Find(args[0])
		if !ok {
			fatal("Unknown element", fmt.Errorf("no element with id %q", args[0]))
		}

		payload := strings.Join(args[1:], " ")
		if setFile != "" || setURL != "" {
			resolved, err := resolvePayload(el.Type, payload, setFile, setURL)
			if err != nil {
				fatal("Failed to prepare payload", err)
			}
			payload = resolved
		}

		saveDraft(d.Update(args[0], payload))
		fmt.Printf("Updated element %s.\n", args[0])
	},
}

var draftRetypeCmd = &cobra.Command{
	Use:   "retype [id] [type]",
	Short: "Change an element's type, keeping its payload",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := course.ParseElementType(args[1])
		if err != nil {
			fatal("Invalid element type", err)
		}
		saveDraft(loadDraft().Retype(args[0], t))
		fmt.Printf("Element %s is now %s.\n", args[0], t)
	},
}

var draftRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete an element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		saveDraft(loadDraft().Remove(args[0]))
		fmt.Printf("Removed element %s.\n", args[0])
	},
}

var draftDupCmd = &cobra.Command{
	Use:   "dup [id]",
	Short: "Duplicate an element to the end of the draft",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDraft().Duplicate(args[0])
		saveDraft(d)
		if len(d.Elements) > 0 {
			fmt.Printf("Duplicated as %s.\n", d.Elements[len(d.Elements)-1].ID)
		}
	},
}

var draftRenameCmd = &cobra.Command{
	Use:   "rename [title...]",
	Short: "Set the working title",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		saveDraft(loadDraft().Rename(strings.Join(args, " ")))
		fmt.Println("Title updated.")
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the draft and its derived metrics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := loadDraft()
		title := d.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		fmt.Printf("Title: %s\n", title)
		fmt.Printf("Words: %d  Reading time: %d min\n", course.WordCount(d.Elements), course.EstimatedReadingMinutes(d.Elements))
		fmt.Printf("Description: %s\n\n", course.AutoDescription(d.Elements))

		if len(d.Elements) == 0 {
			fmt.Println("No elements yet.")
			return
		}
		for _, el := range d.Elements {
			preview := strings.ReplaceAll(el.Payload, "\n", " ")
			if r := []rune(preview); len(r) > 60 {
				preview = string(r[:60]) + "..."
			}
			fmt.Printf("%-14s %-6s %s\n", el.ID, el.Type, preview)
		}
	},
}

// resolvePayload turns the --text/--file/--url flags into an element payload.
// Media files are embedded as data URIs; URLs pass through as-is.
func resolvePayload(t course.ElementType, text, file, url string) (string, error) {
	switch {
	case file != "":
		if t != course.TypeImage && t != course.TypeVideo {
			return "", fmt.Errorf("--file applies to image and video elements only")
		}
		return media.IngestFile(file)
	case url != "":
		return url, nil
	default:
		return text, nil
	}
}

func loadDraft() course.Draft {
	data, err := os.ReadFile(draftFile)
	if os.IsNotExist(err) {
		fatal("No draft in progress", fmt.Errorf("run 'coursehub draft new' first"))
	}
	if err != nil {
		fatal("Failed to read draft", err)
	}
	var d course.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		fatal("Failed to parse draft", err)
	}
	return d
}

func saveDraft(d course.Draft) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		fatal("Failed to encode draft", err)
	}
	if err := os.WriteFile(draftFile, data, 0644); err != nil {
		fatal("Failed to write draft", err)
	}
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.PersistentFlags().StringVar(&draftFile, "draft", ".coursehub-draft.json", "Draft working file")

	draftNewCmd.Flags().BoolVar(&draftForce, "force", false, "Discard an existing draft")
	draftAddCmd.Flags().StringVar(&addText, "text", "", "Element text payload")
	draftAddCmd.Flags().StringVar(&addFile, "file", "", "Embed a local media file (image/video)")
	draftAddCmd.Flags().StringVar(&addURL, "url", "", "Reference an external media URL")
	draftSetCmd.Flags().StringVar(&setFile, "file", "", "Embed a local media file (image/video)")
	draftSetCmd.Flags().StringVar(&setURL, "url", "", "Reference an external media URL")

	draftCmd.AddCommand(draftNewCmd, draftAddCmd, draftSetCmd, draftRetypeCmd,
		draftRemoveCmd, draftDupCmd, draftRenameCmd, draftShowCmd)
}

package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: MsgGuideShort,
	Long:  `Render the quickstart guide for the staged project.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(renderMarkdown(guideContent))
	},
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when rendering is not possible.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

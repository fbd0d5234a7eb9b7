package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/projects"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate the content file and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.Load(appConfig.ContentFile)
		if err != nil {
			return err
		}
		summarize(cmd.OutOrStdout(), store)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func summarize(out io.Writer, store *content.Store) {
	p := store.Profile()
	fmt.Fprintln(out, headerStyle.Render(p.Name))
	fmt.Fprintln(out, mutedStyle.Render(p.Title))
	fmt.Fprintln(out)

	all := store.Projects()
	fmt.Fprintf(out, "Projects: %d (%d featured)\n", len(all), len(projects.Featured(all)))
	for _, c := range projects.Categories() {
		if c == projects.CategoryAll {
			continue
		}
		fmt.Fprintf(out, "  %-8s %d\n", c, len(projects.Filter(all, c)))
	}

	fmt.Fprintf(out, "Skills: %d in %d groups\n", len(store.Skills()), len(store.SkillGroups()))
	fmt.Fprintf(out, "Experience: %d entries\n", len(store.Experience()))
	fmt.Fprintf(out, "Social links: %d\n", len(store.SocialLinks()))
}

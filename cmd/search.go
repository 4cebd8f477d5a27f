package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the FAQ and the command reference",
	Long:  `Runs the docs browser's search filter from the command line and lists the matching entries with their page fragments.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("section", "", "restrict to one section: faq or commands")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

type searchResultJSON struct {
	Section     content.Kind `json:"section"`
	ID          string       `json:"id"`
	Fragment    string       `json:"fragment"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	section, _ := cmd.Flags().GetString("section")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	kinds := []content.Kind{content.KindCommand, content.KindFAQ}
	if section != "" {
		kind := content.Kind(section)
		if !kind.Valid() {
			return fmt.Errorf("unknown section %q: must be faq or commands", section)
		}
		kinds = []content.Kind{kind}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := loadContent(cfg)
	if err != nil {
		return err
	}

	var results []content.Entry
	for _, kind := range kinds {
		c := store.Collection(kind)
		for _, id := range browser.Search(c, query) {
			e, _ := c.Lookup(id)
			results = append(results, e)
		}
	}

	if jsonOutput {
		return printSearchResultsJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	printSearchResultsTable(results)
	return nil
}

func printSearchResultsJSON(results []content.Entry) error {
	out := []searchResultJSON{}
	for _, e := range results {
		out = append(out, searchResultJSON{
			Section:     e.Kind,
			ID:          e.ID,
			Fragment:    browser.Fragment(e.Kind, e.ID),
			Title:       e.Label,
			Description: e.Description,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSearchResultsTable(results []content.Entry) {
	fmt.Printf("Found %d results:\n\n", len(results))
	for i, e := range results {
		fmt.Printf("  %d. %s\n", i+1, e.Label)
		fmt.Printf("     #%s\n", browser.Fragment(e.Kind, e.ID))
		summary := e.Description
		if summary == "" {
			summary = e.Text
		}
		fmt.Printf("     %s\n\n", truncate(summary, 120))
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

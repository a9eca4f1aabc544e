package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/search/sources"
)

var (
	resultTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	excerptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Margin(0, 0, 0, 2)

	noResultsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search imported documentation data",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "scope",
				Usage: "Search scope: global or organization",
				Value: "global",
			},
			&cli.StringFlag{
				Name:  "organization",
				Usage: "Organization id (required with --scope organization)",
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "Restrict to specific result types. Can be used multiple times",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			return searchData(ctx, c.String("config"), query, c.String("scope"),
				c.String("organization"), c.StringSlice("type"), c.Int("limit"))
		},
	}
}

func searchData(ctx context.Context, configPath, query, scopeName, orgID string, typeNames []string, limit int) error {
	scope := core.Scope(scopeName)
	if scope != core.ScopeGlobal && scope != core.ScopeOrganization {
		return fmt.Errorf("invalid scope %q: must be global or organization", scopeName)
	}
	if scope == core.ScopeOrganization && orgID == "" {
		return fmt.Errorf("--organization is required with --scope organization")
	}

	var filters core.Filters
	for _, name := range typeNames {
		t := core.ResultType(name)
		if !t.Valid() {
			return fmt.Errorf("unknown result type %q", name)
		}
		filters.ContentTypes = append(filters.ContentTypes, t)
	}

	cfg, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close database: %v\n", err)
		}
	}()

	service := search.NewService(sources.All(store), search.NewCache(cfg.CacheTTL.Duration))
	results := service.Search(ctx, search.Params{
		Query:          query,
		Scope:          scope,
		OrganizationID: orgID,
		Filters:        filters,
		Limit:          limit,
	})

	if len(results) == 0 {
		fmt.Println(noResultsStyle.Render("No results found"))
		return nil
	}

	titleCaser := cases.Title(language.English)
	for i, r := range results {
		label := titleCaser.String(strings.ReplaceAll(string(r.Type), "_", " "))
		header := fmt.Sprintf("%d. %s %s",
			i+1,
			resultTitleStyle.Render(r.Title),
			typeStyle.Render("["+label+"]"))
		fmt.Println(header)

		if r.MatchedText != "" {
			fmt.Println(excerptStyle.Render(r.MatchedText))
		}

		meta := fmt.Sprintf("score %d", r.RelevanceScore)
		if r.OrganizationName != "" {
			meta += "  " + r.OrganizationName
		}
		if len(r.MatchedFields) > 0 {
			meta += "  matched: " + strings.Join(r.MatchedFields, ", ")
		}
		fmt.Println(metaStyle.Render("  " + meta))
		if i < len(results)-1 {
			fmt.Println()
		}
	}

	fmt.Printf("\nTotal: %d results\n", len(results))
	return nil
}

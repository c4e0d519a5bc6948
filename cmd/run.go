package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/internal/output"
	"github.com/sells-group/scout-cli/internal/pipeline"
	"github.com/sells-group/scout-cli/pkg/llm"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full discovery pipeline once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate(); err != nil {
			return err
		}

		st, err := initStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		client, err := llm.New(llm.Config{
			Provider:   cfg.LLM.Provider,
			APIKey:     cfg.LLM.Key(),
			Model:      cfg.LLM.Model,
			BaseURL:    cfg.LLM.BaseURL,
			MaxRetries: cfg.LLM.MaxRetries,
		})
		if err != nil {
			return err
		}

		writer, err := output.NewWriter(cfg.Output)
		if err != nil {
			return err
		}

		stats, err := pipeline.New(cfg, st, client, writer).Run(ctx)
		if err != nil {
			return err
		}

		formatRunSummary(os.Stdout, stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// formatRunSummary writes the per-stage funnel to w.
func formatRunSummary(out io.Writer, s *model.RunStats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Feed items:\t%d\n", s.FeedItems)
	_, _ = fmt.Fprintf(w, "New items:\t%d\n", s.NewItems)
	_, _ = fmt.Fprintf(w, "Articles fetched:\t%d\n", s.Articles)
	_, _ = fmt.Fprintf(w, "Relevant articles:\t%d\n", s.RelevantArticles)
	_, _ = fmt.Fprintf(w, "Companies found:\t%d\n", s.Companies)
	_, _ = fmt.Fprintf(w, "People from articles:\t%d\n", s.ArticlePeople)
	_, _ = fmt.Fprintf(w, "People from team pages:\t%d\n", s.TeamPeople)
	_, _ = fmt.Fprintf(w, "People vetted:\t%d\n", s.PeopleVetted)
	_, _ = fmt.Fprintf(w, "Failed vetting:\t%d\n", s.FailedVetting)
	_, _ = fmt.Fprintf(w, "Below response gate:\t%d\n", s.FailedResponseGate)
	_, _ = fmt.Fprintf(w, "Below score threshold:\t%d\n", s.FailedScoreThreshold)
	_, _ = fmt.Fprintf(w, "Accepted:\t%d\n", s.Accepted)
	_ = w.Flush()
}

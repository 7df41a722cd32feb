package main

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/audio-summary/internal/summarizer"
	"github.com/spf13/cobra"
)

var (
	summarizeDocxPath string
	summarizeJSON     bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <url>",
	Short: "Summarize a single video and print the result",
	Long: `Run the pipeline once for the given URL and print the summary markdown.

Example:
  audio-summary summarize https://www.instagram.com/reel/xyz
  audio-summary summarize https://youtu.be/abc --docx summary.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringVar(&summarizeDocxPath, "docx", "", "also write the summary to this .docx file")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "print the full result as JSON")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	res, err := a.pipeline.Run(ctx, args[0])
	if err != nil {
		return err
	}

	if summarizeDocxPath != "" {
		if err := summarizer.WriteDocx(res.Metadata, res.Summary, summarizeDocxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		log.Info(ctx, "Summary written to %s", summarizeDocxPath)
	}

	out := cmd.OutOrStdout()
	if summarizeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "# %s\n\n%s\n", res.Metadata.Title, res.Summary)
	return nil
}

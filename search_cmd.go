package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/giygas/clinicaltrials-api/dataset"
	"github.com/giygas/clinicaltrials-api/trials"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter a dataset file and print the matching titles as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")
			disease, _ := cmd.Flags().GetString("disease")
			therapy, _ := cmd.Flags().GetString("therapy")
			return runSearch(cmd.OutOrStdout(), path, disease, therapy)
		},
	}

	cmd.Flags().String("dataset", "ctg-studies.json", "Path to the dataset file")
	cmd.Flags().String("disease", "", "Disease query")
	cmd.Flags().String("therapy", "", "Therapy query")

	return cmd
}

func runSearch(out io.Writer, path, disease, therapy string) error {
	records, err := dataset.NewFileLoader(path).Load()
	if err != nil {
		return err
	}

	titles := trials.Filter(trials.Preprocess(records), disease, therapy)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(titles); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

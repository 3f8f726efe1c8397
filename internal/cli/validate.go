package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/usecase"
)

// newValidateCommand creates the validate command for checking the
// store file.
func newValidateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the store file for problems",
		Long: `Check the store file against the task schema and the domain rules:
valid JSON, the expected shape, calendar dates, known priorities and
non-blank descriptions.

A missing file is fine; the list just starts empty. Problems are
listed one per line and the command exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ValidateStoreUseCase().Execute(cmd.Context(), usecase.ValidateStoreInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			check := out.Check
			if check.Missing {
				_, _ = fmt.Fprintln(w, "store file does not exist yet; the list starts empty")
				return nil
			}
			if check.Valid() {
				_, _ = fmt.Fprintf(w, "store is valid (%d tasks)\n", check.Tasks)
				return nil
			}

			for _, p := range check.Problems {
				_, _ = fmt.Fprintf(w, "problem: %s\n", p)
			}
			return fmt.Errorf("store check found %d problems", len(check.Problems))
		},
	}
}

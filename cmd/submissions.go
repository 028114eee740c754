package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cbcberry/berrysite/internal/forms"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List recorded form submissions",
	Long:  `Lists contact messages and job applications recorded by the server, newest first.`,
	RunE:  runSubmissions,
}

func init() {
	submissionsCmd.Flags().String("kind", "", "filter by kind (contact, application)")
	submissionsCmd.Flags().String("status", "", "filter by delivery status (received, delivered, failed)")
	submissionsCmd.Flags().Duration("since", 0, "only show submissions newer than this (e.g. 72h)")
	submissionsCmd.Flags().Int("limit", 50, "maximum number of rows")
	submissionsCmd.Flags().Bool("json", false, "print JSON instead of a table")
	rootCmd.AddCommand(submissionsCmd)
}

func runSubmissions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")
	status, _ := cmd.Flags().GetString("status")
	since, _ := cmd.Flags().GetDuration("since")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	filter := forms.ListFilter{
		Kind:   forms.Kind(kind),
		Status: forms.Status(status),
		Limit:  limit,
	}
	if since > 0 {
		filter.Since = time.Now().Add(-since)
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	subs, err := forms.NewStore(database).List(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	}

	if len(subs) == 0 {
		fmt.Println("No submissions found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tKIND\tSTATUS\tNAME\tEMAIL\tSUBJECT")
	for _, s := range subs {
		subject := s.Company
		if s.Kind == forms.KindApplication {
			subject = s.Position
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.SubmittedAt.Local().Format("2006-01-02 15:04"), s.Kind, s.Status, s.Name, s.Email, subject)
	}
	return tw.Flush()
}

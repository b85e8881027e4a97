package main

import (
	"encoding/json"
	"fmt"

	"path-pilot/internal/linkcheck"

	"github.com/spf13/cobra"
)

var linkcheckCmd = &cobra.Command{
	Use:   "linkcheck",
	Short: "Visit every course URL and report dead links",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		failOnBroken, _ := cmd.Flags().GetBool("fail-on-broken")

		courses, err := loadCourses(cmd.Context(), false)
		if err != nil {
			return err
		}

		lg.Info("checking links", "courses", len(courses), "workers", cfg.LinkCheck.Workers, "rps", cfg.LinkCheck.RatePerSecond)
		rep, err := linkcheck.NewChecker(cfg.LinkCheck, lg).Check(cmd.Context(), courses)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "checked=%d skipped=%d broken=%d\n", rep.Checked, rep.Skipped, len(rep.Broken))
			for _, b := range rep.Broken {
				fmt.Fprintf(out, "  %s %s status=%d %s\n", b.CourseID, b.URL, b.StatusCode, b.Error)
			}
		}

		if failOnBroken && !rep.OK() {
			return errCheckFailed
		}
		return nil
	},
}

func init() {
	linkcheckCmd.Flags().Bool("json", false, "Print the report as JSON")
	linkcheckCmd.Flags().Bool("fail-on-broken", true, "Exit 1 when any link is broken")
}

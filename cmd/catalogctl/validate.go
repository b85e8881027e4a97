package main

import (
	"encoding/json"
	"fmt"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/pathing"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report duplicate ids, dangling prerequisites, cycles and bad durations",
	Long: "Validate loads the catalog and prints its structural report. It exits 1 when " +
		"the catalog has duplicate course ids or prerequisite cycles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		courses, err := loadCourses(cmd.Context(), false)
		if err != nil {
			return err
		}
		rep := catalog.New(courses).Validate(pathing.ParseHours)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(out, rep.String())
		}

		if !rep.OK() {
			return errCheckFailed
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("json", false, "Print the report as JSON")
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <course-id>",
	Short: "Delete all participation data for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be an integer, got %q", args[0])
		}

		tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		deleted, err := tracker.DeleteCourse(courseID)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Printf("No participation data for course %d\n", courseID)
			return nil
		}
		fmt.Printf("Deleted participation data for course %d\n", courseID)
		return nil
	},
}

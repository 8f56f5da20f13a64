package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var groupSizeCmd = &cobra.Command{
	Use:   "group-size <course-id> <size>",
	Short: "Set the assumed exercise-group size for a course",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be an integer, got %q", args[0])
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("group size must be an integer, got %q", args[1])
		}

		tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		if tracker.Course(courseID) == nil {
			fmt.Printf("Course %d is not tracked yet. Record a session first.\n", courseID)
			return nil
		}
		if err := tracker.SetGroupSize(courseID, size); err != nil {
			return err
		}

		fmt.Printf("Group size for course %d set to %d\n", courseID, tracker.Course(courseID).GroupSize)
		return nil
	},
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List tracked courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}

		courses := tracker.AllCourses()
		if len(courses) == 0 {
			fmt.Println("No courses tracked yet.")
			return nil
		}

		ids := make([]int, 0, len(courses))
		for id := range courses {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		for _, id := range ids {
			c := courses[id]
			called := 0
			for _, s := range c.Sessions {
				if s.WasCalled {
					called++
				}
			}
			fmt.Printf("%d  %s — %d sessions, called %d, group size %d\n",
				id, c.CourseName, len(c.Sessions), called, c.GroupSize)
		}
		return nil
	},
}

package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow/internal/stats"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show counts, completion rate, upcoming tasks and the weekly trend",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, err := a.commands.LoadCategories(cmd.Context()); err != nil {
		return err
	}
	if _, err := a.commands.LoadTasks(cmd.Context(), nil); err != nil {
		return err
	}

	now := time.Now()
	tasks := a.store.Tasks()
	counts := stats.CountByStatus(tasks)
	rate := stats.CompletionRate(tasks)

	bold := color.New(color.Bold)
	bold.Println("TaskFlow overview")
	fmt.Printf("  %s %d   %s %d   %s %d   (%d total)\n",
		color.YellowString("Pending"), counts.Pending,
		color.BlueString("In Progress"), counts.InProgress,
		color.GreenString("Completed"), counts.Completed,
		counts.Total)
	fmt.Printf("  Completion rate: %d%%\n", rate)

	weekly := stats.WeeklyTrend(tasks, now)
	trend := color.GreenString("+%d%%", weekly.TrendPercent)
	if weekly.TrendPercent < 0 {
		trend = color.RedString("%d%%", weekly.TrendPercent)
	}
	fmt.Printf("  This week: %d created, %d completed, trend %s\n",
		weekly.CreatedThisWeek, weekly.CompletedThisWeek, trend)

	upcoming := stats.Upcoming(tasks, now)
	if len(upcoming) > 0 {
		bold.Println("Upcoming")
		for _, u := range upcoming {
			fmt.Printf("  %4d  %-40s %s (%s)\n", u.ID, u.Title,
				u.DueDate.Format("2006-01-02"), u.Urgency)
		}
	}

	categories := a.store.Categories()
	if len(categories) > 0 {
		bold.Println("Categories")
		for _, c := range categories {
			rollup := stats.CategoryRollup(c.ID, tasks)
			fmt.Printf("  %-30s %d tasks, %d done\n", c.Name, rollup.TaskCount, rollup.CompletedTasks)
		}
	}
	return nil
}

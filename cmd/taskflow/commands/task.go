package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow/internal/api"
	"taskflow/internal/model"
	"taskflow/internal/stats"
)

var (
	taskCategoryID  uint
	taskDescription string
	taskPriority    string
	taskDue         string
	taskTitle       string
	taskFilter      string
	taskYes         bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks sorted by priority",
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task (status starts as Pending)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's title, description, priority or due date",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

var moveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: `Move a task to "Pending", "In Progress" or "Completed"`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	taskListCmd.Flags().UintVar(&taskCategoryID, "category", 0, "Only tasks in this category")
	taskListCmd.Flags().StringVar(&taskFilter, "priority", stats.PriorityAll, "Filter by priority (High, Medium, Low, All)")
	taskAddCmd.Flags().UintVar(&taskCategoryID, "category", 0, "Category id (required)")
	taskAddCmd.MarkFlagRequired("category")
	taskAddCmd.Flags().StringVar(&taskDescription, "desc", "", "Description")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "", "High, Medium or Low (default Medium)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date, YYYY-MM-DD")
	taskEditCmd.Flags().StringVar(&taskTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVar(&taskDescription, "desc", "", "New description")
	taskEditCmd.Flags().StringVar(&taskPriority, "priority", "", "New priority")
	taskEditCmd.Flags().StringVar(&taskDue, "due", "", "New due date, YYYY-MM-DD")
	taskRmCmd.Flags().BoolVar(&taskYes, "yes", false, "Skip the confirmation prompt")
	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskEditCmd, taskRmCmd)
	rootCmd.AddCommand(taskCmd, moveCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	var categoryID *uint
	if taskCategoryID != 0 {
		categoryID = &taskCategoryID
	}
	if _, err := a.commands.LoadTasks(cmd.Context(), categoryID); err != nil {
		return err
	}

	tasks := stats.SortByPriority(stats.FilterByPriority(a.store.Tasks(), taskFilter))
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			days := stats.DaysRemaining(*t.DueDate, time.Now())
			due = fmt.Sprintf("  due %s (%s)", t.DueDate.Format("2006-01-02"), stats.UrgencyFor(days))
		}
		fmt.Printf("%4d  %s  %-8s  %s%s\n", t.ID, statusBadge(t.Status), t.Priority, t.Title, due)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	req := api.TaskCreate{
		Title:       args[0],
		Description: taskDescription,
		CategoryID:  taskCategoryID,
		Priority:    model.Priority(taskPriority),
	}
	if taskDue != "" {
		due, err := time.ParseInLocation("2006-01-02", taskDue, time.Local)
		if err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", taskDue)
		}
		req.DueDate = &due
	}
	task, err := a.commands.CreateTask(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Printf("Created task %d: %s [%s]\n", task.ID, task.Title, task.Status)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	var patch api.TaskPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &taskTitle
	}
	if cmd.Flags().Changed("desc") {
		patch.Description = &taskDescription
	}
	if cmd.Flags().Changed("priority") {
		p := model.Priority(taskPriority)
		patch.Priority = &p
	}
	if cmd.Flags().Changed("due") {
		due, err := time.ParseInLocation("2006-01-02", taskDue, time.Local)
		if err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", taskDue)
		}
		patch.DueDate = &due
	}
	task, err := a.commands.UpdateTask(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated task %d: %s\n", task.ID, task.Title)
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	if !taskYes {
		if !confirm(fmt.Sprintf("Delete task %d?", id)) {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := a.commands.DeleteTask(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted task %d.\n", id)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	if _, err := a.commands.LoadTasks(cmd.Context(), nil); err != nil {
		return err
	}
	target := model.Status(args[1])
	if err := a.board.Transition(cmd.Context(), id, target); err != nil {
		return err
	}
	fmt.Printf("Task %d is now %s.\n", id, statusBadge(target))
	return nil
}

func statusBadge(s model.Status) string {
	switch s {
	case model.StatusPending:
		return color.YellowString(string(s))
	case model.StatusInProgress:
		return color.BlueString(string(s))
	case model.StatusCompleted:
		return color.GreenString(string(s))
	}
	return string(s)
}

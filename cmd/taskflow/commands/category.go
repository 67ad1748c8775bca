package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow/internal/api"
)

var (
	categoryColor string
	categoryName  string
	categoryYes   bool
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage task categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with task counts",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rename or recolor a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryEdit,
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category and all of its tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRm,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "Hex color like #4CAF50 (random when omitted)")
	categoryEditCmd.Flags().StringVar(&categoryName, "name", "", "New name")
	categoryEditCmd.Flags().StringVar(&categoryColor, "color", "", "New hex color")
	categoryRmCmd.Flags().BoolVar(&categoryYes, "yes", false, "Skip the confirmation prompt")
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryEditCmd, categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	categories, err := a.commands.LoadCategories(cmd.Context())
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories yet. Create one with: taskflow category add <name>")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%4d  %s %-30s %d tasks (%d done, %d in progress)\n",
			c.ID, color.New(color.Bold).Sprint("●"), c.Name,
			c.TaskCount, c.CompletedTasks, c.InProgressTasks)
	}
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	category, err := a.commands.CreateCategory(cmd.Context(), args[0], categoryColor)
	if err != nil {
		return err
	}
	fmt.Printf("Created category %d: %s (%s)\n", category.ID, category.Name, category.Color)
	return nil
}

func runCategoryEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	var patch api.CategoryPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &categoryName
	}
	if cmd.Flags().Changed("color") {
		patch.Color = &categoryColor
	}
	if patch.Name == nil && patch.Color == nil {
		return fmt.Errorf("nothing to change; pass --name and/or --color")
	}
	category, err := a.commands.UpdateCategory(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated category %d: %s (%s)\n", category.ID, category.Name, category.Color)
	return nil
}

func runCategoryRm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	if !categoryYes {
		if !confirm(fmt.Sprintf("Delete category %d and ALL of its tasks?", id)) {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := a.commands.DeleteCategory(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted category %d and its tasks.\n", id)
	return nil
}

func parseUint(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newCategoriesCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage event categories",
	}

	cmd.AddCommand(newCategoriesCreateCmd(dbPath))
	cmd.AddCommand(newCategoriesListCmd(dbPath))
	cmd.AddCommand(newCategoriesDeleteCmd(dbPath))

	return cmd
}

func newCategoriesCreateCmd(dbPath *string) *cobra.Command {
	var (
		id          string
		name        string
		description string
		colorHex    string
		iconName    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event category",
		Example: `  eventsctl categories create --id conference --name "Conference"
  eventsctl categories create --id workshop --name "Workshop" --color "#2A9D8F"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &domain.CreateEventCategoryRequest{
				ID:          id,
				Name:        name,
				Description: strPtrFlag(description),
				ColorHex:    strPtrFlag(colorHex),
				IconName:    strPtrFlag(iconName),
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.Categories.CreateCategory(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, c)
			}
			printTable(os.Stdout,
				[]string{"ID", "NAME", "COLOR", "ACTIVE"},
				[][]string{{c.ID, c.Name, orDash(c.ColorHex), fmt.Sprintf("%t", c.IsActive)}})
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Category identifier (slug)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&colorHex, "color", "", "Hex color, e.g. #2A9D8F")
	cmd.Flags().StringVar(&iconName, "icon", "", "Icon name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesListCmd(dbPath *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var categories []domain.EventCategory
			if all {
				categories, err = a.Categories.ListAllCategories(cmd.Context())
			} else {
				categories, err = a.Categories.ListCategories(cmd.Context())
			}
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, categories)
			}

			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{
					c.ID, c.Name, orDash(c.Description), orDash(c.ColorHex),
					fmt.Sprintf("%t", c.IsActive),
				})
			}
			printTable(os.Stdout, []string{"ID", "NAME", "DESCRIPTION", "COLOR", "ACTIVE"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include deactivated categories")

	return cmd
}

func newCategoriesDeleteCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category that no event uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Categories.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{"status": "deleted", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Category %s deleted\n", args[0])
			return nil
		},
	}
}

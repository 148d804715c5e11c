package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newUsersCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
	}

	cmd.AddCommand(newUsersCreateCmd(dbPath))
	cmd.AddCommand(newUsersGetCmd(dbPath))
	cmd.AddCommand(newUsersListCmd(dbPath))
	cmd.AddCommand(newUsersDeactivateCmd(dbPath))

	return cmd
}

func newUsersCreateCmd(dbPath *string) *cobra.Command {
	var (
		keycloakID string
		email      string
		name       string
		role       string
		companyID  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Example: `  eventsctl users create --keycloak-id kc-42 --email ola@sjomat.no --name "Ola Nordmann" --role participant
  eventsctl users create --keycloak-id kc-7 --email kari@havbruk.no --name "Kari Hansen" --role organizer --company <uuid>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &domain.CreateUserRequest{
				KeycloakID: keycloakID,
				Email:      email,
				Name:       name,
				Role:       domain.UserRole(role),
			}
			if companyID != "" {
				id, err := parseUUIDArg("company id", companyID)
				if err != nil {
					return err
				}
				req.CompanyID = &id
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			u, err := a.Users.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printUser(cmd, u)
		},
	}

	cmd.Flags().StringVar(&keycloakID, "keycloak-id", "", "Identity provider subject ID")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "participant", "Role: admin, organizer, participant")
	cmd.Flags().StringVar(&companyID, "company", "", "Company UUID the user belongs to")
	_ = cmd.MarkFlagRequired("keycloak-id")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUsersGetCmd(dbPath *string) *cobra.Command {
	var byKeycloak bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user by UUID or Keycloak ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var u *domain.User
			if byKeycloak {
				u, err = a.Users.GetUserByKeycloakID(cmd.Context(), args[0])
			} else {
				var id uuid.UUID
				id, err = parseUUIDArg("user id", args[0])
				if err != nil {
					return err
				}
				u, err = a.Users.GetUser(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			return printUser(cmd, u)
		},
	}

	cmd.Flags().BoolVar(&byKeycloak, "keycloak", false, "Look up by Keycloak ID instead of UUID")

	return cmd
}

func newUsersListCmd(dbPath *string) *cobra.Command {
	var offset, limit int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := domain.NewPaginationParams(offset, limit)
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			page, err := a.Users.ListUsers(cmd.Context(), params)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, page)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, u := range page.Items {
				rows = append(rows, []string{
					u.ID.String(), u.Email, u.Name, string(u.Role), fmt.Sprintf("%t", u.IsActive),
				})
			}
			printTable(os.Stdout, []string{"ID", "EMAIL", "NAME", "ROLE", "ACTIVE"}, rows)
			printPageFooter(os.Stdout, page.TotalCount, page.Offset, page.Limit, page.HasNext)
			return nil
		},
	}

	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of users to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of users to return")

	return cmd
}

func newUsersDeactivateCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("user id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Users.DeactivateUser(cmd.Context(), id); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{"status": "deactivated", "id": id.String()})
			}
			_, _ = fmt.Fprintf(os.Stdout, "User %s deactivated\n", id)
			return nil
		},
	}
}

func printUser(cmd *cobra.Command, u *domain.User) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, u)
	}
	company := "-"
	if u.CompanyID != nil {
		company = u.CompanyID.String()
	}
	printTable(os.Stdout,
		[]string{"ID", "EMAIL", "NAME", "ROLE", "COMPANY", "ACTIVE"},
		[][]string{{u.ID.String(), u.Email, u.Name, string(u.Role), company, fmt.Sprintf("%t", u.IsActive)}})
	return nil
}

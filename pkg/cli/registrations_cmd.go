package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newRegistrationsCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrations",
		Short: "Manage event registrations",
	}

	cmd.AddCommand(newRegistrationsCreateCmd(dbPath))
	cmd.AddCommand(newRegistrationsGetCmd(dbPath))
	cmd.AddCommand(newRegistrationsCancelCmd(dbPath))
	cmd.AddCommand(newRegistrationsCheckInCmd(dbPath))
	cmd.AddCommand(newRegistrationsNoShowCmd(dbPath))
	cmd.AddCommand(newRegistrationsListCmd(dbPath))

	return cmd
}

func newRegistrationsCreateCmd(dbPath *string) *cobra.Command {
	var (
		event      string
		user       string
		email      string
		name       string
		guestCount int
		guestNames []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a user or an external contact for an event",
		Example: `  eventsctl registrations create --event <uuid> --user <uuid>
  eventsctl registrations create --event <uuid> --email guest@example.com --name "Guest" --guests 1 --guest-name "Plus One"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventID, err := parseUUIDArg("event id", event)
			if err != nil {
				return err
			}

			req := &domain.CreateRegistrationRequest{
				EventID:         eventID,
				RegistrantEmail: strPtrFlag(email),
				RegistrantName:  strPtrFlag(name),
				GuestCount:      guestCount,
				GuestNames:      guestNames,
			}
			if user != "" {
				id, err := parseUUIDArg("user id", user)
				if err != nil {
					return err
				}
				req.UserID = &id
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			reg, err := a.Registrations.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printRegistration(cmd, reg)
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event UUID")
	cmd.Flags().StringVar(&user, "user", "", "Registering user UUID")
	cmd.Flags().StringVar(&email, "email", "", "Registrant email for external contacts")
	cmd.Flags().StringVar(&name, "name", "", "Registrant name for external contacts")
	cmd.Flags().IntVar(&guestCount, "guests", 0, "Number of guests brought along")
	cmd.Flags().StringArrayVar(&guestNames, "guest-name", nil, "Guest name, repeatable")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func newRegistrationsGetCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("registration id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			reg, err := a.Registrations.GetRegistration(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printRegistration(cmd, reg)
		},
	}
}

func newRegistrationsCancelCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a registration and promote the first waitlisted attendee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("registration id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			reg, err := a.Registrations.Cancel(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printRegistration(cmd, reg)
		},
	}
}

func newRegistrationsCheckInCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-in <id>",
		Short: "Mark a registered attendee as attended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("registration id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			reg, err := a.Registrations.CheckIn(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printRegistration(cmd, reg)
		},
	}
}

func newRegistrationsNoShowCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "no-show <id>",
		Short: "Mark a registered attendee as a no-show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("registration id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			reg, err := a.Registrations.MarkNoShow(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printRegistration(cmd, reg)
		},
	}
}

func newRegistrationsListCmd(dbPath *string) *cobra.Command {
	var (
		event         string
		user          string
		offset, limit int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registrations for an event or a user",
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

			var page *domain.PaginatedResult[domain.EventRegistration]
			switch {
			case event != "":
				eventID, perr := parseUUIDArg("event id", event)
				if perr != nil {
					return perr
				}
				page, err = a.Registrations.ListByEvent(cmd.Context(), eventID, params)
			case user != "":
				userID, perr := parseUUIDArg("user id", user)
				if perr != nil {
					return perr
				}
				page, err = a.Registrations.ListByUser(cmd.Context(), userID, params)
			default:
				return domain.ErrValidation("flags", "Either --event or --user is required")
			}
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, page)
			}

			rows := make([][]string, 0, len(page.Items))
			for i := range page.Items {
				rows = append(rows, registrationRow(&page.Items[i]))
			}
			printTable(os.Stdout, []string{"ID", "EVENT", "REGISTRANT", "STATUS", "SOURCE", "GUESTS", "WAITLIST POS"}, rows)
			printPageFooter(os.Stdout, page.TotalCount, page.Offset, page.Limit, page.HasNext)
			return nil
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event UUID")
	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of registrations to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of registrations to return")

	return cmd
}

func printRegistration(cmd *cobra.Command, reg *domain.EventRegistration) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, reg)
	}
	printTable(os.Stdout,
		[]string{"ID", "EVENT", "REGISTRANT", "STATUS", "SOURCE", "GUESTS", "WAITLIST POS"},
		[][]string{registrationRow(reg)})
	return nil
}

func registrationRow(reg *domain.EventRegistration) []string {
	registrant := orDash(reg.RegistrantEmail)
	if reg.UserID != nil {
		registrant = reg.UserID.String()
	}
	pos := "-"
	if reg.WaitlistPosition != nil {
		pos = strconv.Itoa(*reg.WaitlistPosition)
	}
	return []string{
		reg.ID.String(), reg.EventID.String(), registrant,
		string(reg.Status), string(reg.Source), strconv.Itoa(reg.GuestCount), pos,
	}
}

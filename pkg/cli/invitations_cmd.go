package cli

import (
	"os"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newInvitationsCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Manage event invitations",
	}

	cmd.AddCommand(newInvitationsCreateCmd(dbPath))
	cmd.AddCommand(newInvitationsGetCmd(dbPath))
	cmd.AddCommand(newInvitationsRespondCmd(dbPath))
	cmd.AddCommand(newInvitationsSendCmd(dbPath))
	cmd.AddCommand(newInvitationsListCmd(dbPath))

	return cmd
}

func newInvitationsCreateCmd(dbPath *string) *cobra.Command {
	var (
		event     string
		user      string
		email     string
		name      string
		inviter   string
		method    string
		message   string
		expiresIn int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Invite a user or an external contact to an event",
		Example: `  eventsctl invitations create --event <uuid> --inviter <uuid> --user <uuid>
  eventsctl invitations create --event <uuid> --inviter <uuid> --email guest@example.com --name "Guest" --expires-in 14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventID, err := parseUUIDArg("event id", event)
			if err != nil {
				return err
			}
			inviterID, err := parseUUIDArg("inviter id", inviter)
			if err != nil {
				return err
			}

			var m domain.InvitationMethod
			if method != "" {
				m, err = domain.ParseInvitationMethod(method)
				if err != nil {
					return err
				}
			}

			req := &domain.CreateInvitationRequest{
				EventID:          eventID,
				InvitedEmail:     strPtrFlag(email),
				InvitedName:      strPtrFlag(name),
				InviterID:        inviterID,
				InvitationMethod: m,
				PersonalMessage:  strPtrFlag(message),
				ExpiresInDays:    expiresIn,
			}
			if user != "" {
				id, err := parseUUIDArg("user id", user)
				if err != nil {
					return err
				}
				req.InvitedUserID = &id
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			inv, err := a.Invitations.CreateInvitation(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printInvitation(cmd, inv)
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event UUID")
	cmd.Flags().StringVar(&user, "user", "", "Invited user UUID")
	cmd.Flags().StringVar(&email, "email", "", "Invited email for external contacts")
	cmd.Flags().StringVar(&name, "name", "", "Invited name for external contacts")
	cmd.Flags().StringVar(&inviter, "inviter", "", "Inviting user UUID")
	cmd.Flags().StringVar(&method, "method", "", "Delivery method: email, sms, manual")
	cmd.Flags().StringVar(&message, "message", "", "Personal message included with the invitation")
	cmd.Flags().IntVar(&expiresIn, "expires-in", 0, "Days until the invitation expires, 0 for never")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("inviter")

	return cmd
}

func newInvitationsGetCmd(dbPath *string) *cobra.Command {
	var byToken bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an invitation by UUID or RSVP token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var inv *domain.EventInvitation
			if byToken {
				inv, err = a.Invitations.GetInvitationByToken(cmd.Context(), args[0])
			} else {
				id, perr := parseUUIDArg("invitation id", args[0])
				if perr != nil {
					return perr
				}
				inv, err = a.Invitations.GetInvitation(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			return printInvitation(cmd, inv)
		},
	}

	cmd.Flags().BoolVar(&byToken, "token", false, "Look up by RSVP token instead of UUID")

	return cmd
}

func newInvitationsRespondCmd(dbPath *string) *cobra.Command {
	var decline bool

	cmd := &cobra.Command{
		Use:   "respond <token>",
		Short: "Accept or decline an invitation by its RSVP token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			inv, err := a.Invitations.RespondToInvitation(cmd.Context(), args[0], !decline)
			if err != nil {
				return err
			}
			return printInvitation(cmd, inv)
		},
	}

	cmd.Flags().BoolVar(&decline, "decline", false, "Decline instead of accept")

	return cmd
}

func newInvitationsSendCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "send <id>",
		Short: "Mark a pending invitation as sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("invitation id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			inv, err := a.Invitations.MarkSent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printInvitation(cmd, inv)
		},
	}
}

func newInvitationsListCmd(dbPath *string) *cobra.Command {
	var (
		event         string
		user          string
		offset, limit int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invitations for an event, or pending invitations for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			switch {
			case event != "":
				eventID, err := parseUUIDArg("event id", event)
				if err != nil {
					return err
				}
				params, err := domain.NewPaginationParams(offset, limit)
				if err != nil {
					return err
				}
				page, err := a.Invitations.ListByEvent(cmd.Context(), eventID, params)
				if err != nil {
					return err
				}
				if getOutputFormat(cmd) == "json" {
					return printJSON(os.Stdout, page)
				}
				printInvitationTable(page.Items)
				printPageFooter(os.Stdout, page.TotalCount, page.Offset, page.Limit, page.HasNext)
				return nil
			case user != "":
				userID, err := parseUUIDArg("user id", user)
				if err != nil {
					return err
				}
				pending, err := a.Invitations.ListPendingForUser(cmd.Context(), userID)
				if err != nil {
					return err
				}
				if getOutputFormat(cmd) == "json" {
					return printJSON(os.Stdout, pending)
				}
				printInvitationTable(pending)
				return nil
			default:
				return domain.ErrValidation("flags", "Either --event or --user is required")
			}
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event UUID")
	cmd.Flags().StringVar(&user, "user", "", "User UUID for pending invitations")
	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of invitations to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of invitations to return")

	return cmd
}

func printInvitation(cmd *cobra.Command, inv *domain.EventInvitation) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, inv)
	}
	printInvitationTable([]domain.EventInvitation{*inv})
	return nil
}

func printInvitationTable(items []domain.EventInvitation) {
	rows := make([][]string, 0, len(items))
	for i := range items {
		inv := &items[i]
		invitee := orDash(inv.InvitedEmail)
		if inv.InvitedUserID != nil {
			invitee = inv.InvitedUserID.String()
		}
		rows = append(rows, []string{
			inv.ID.String(), inv.EventID.String(), invitee,
			string(inv.InvitationMethod), string(inv.Status), orDash(inv.InvitationToken),
		})
	}
	printTable(os.Stdout, []string{"ID", "EVENT", "INVITEE", "METHOD", "STATUS", "TOKEN"}, rows)
}

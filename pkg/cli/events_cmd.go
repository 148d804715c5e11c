package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newEventsCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
	}

	cmd.AddCommand(newEventsCreateCmd(dbPath))
	cmd.AddCommand(newEventsGetCmd(dbPath))
	cmd.AddCommand(newEventsPublishCmd(dbPath))
	cmd.AddCommand(newEventsCancelCmd(dbPath))
	cmd.AddCommand(newEventsDeleteCmd(dbPath))
	cmd.AddCommand(newEventsListCmd(dbPath))
	cmd.AddCommand(newEventsSearchCmd(dbPath))
	cmd.AddCommand(newEventsStatsCmd(dbPath))

	return cmd
}

func newEventsCreateCmd(dbPath *string) *cobra.Command {
	var (
		title        string
		description  string
		category     string
		start        string
		end          string
		timezone     string
		locationType string
		locationName string
		virtualLink  string
		organizer    string
		private      bool
		maxAttendees int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft event",
		Example: `  eventsctl events create --title "Salmon Health Seminar" --description "Sea lice mitigation" \
    --category seminar --start 2026-10-01T09:00:00Z --end 2026-10-01T16:00:00Z --organizer <uuid>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, err := parseTimeFlag("start date", start)
			if err != nil {
				return err
			}
			endDate, err := parseTimeFlag("end date", end)
			if err != nil {
				return err
			}
			organizerID, err := parseUUIDArg("organizer id", organizer)
			if err != nil {
				return err
			}

			var lt domain.LocationType
			if locationType != "" {
				lt, err = domain.ParseLocationType(locationType)
				if err != nil {
					return err
				}
			}

			req := &domain.CreateEventRequest{
				Title:        title,
				Description:  description,
				CategoryID:   category,
				StartDate:    startDate,
				EndDate:      endDate,
				Timezone:     timezone,
				LocationType: lt,
				LocationName: strPtrFlag(locationName),
				VirtualLink:  strPtrFlag(virtualLink),
				OrganizerID:  organizerID,
				IsPrivate:    private,
			}
			if maxAttendees > 0 {
				req.MaxAttendees = &maxAttendees
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			e, err := a.Events.CreateEvent(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printEvent(cmd, e)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&category, "category", "", "Category ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, defaults to UTC")
	cmd.Flags().StringVar(&locationType, "location-type", "", "Location type: physical, virtual, hybrid")
	cmd.Flags().StringVar(&locationName, "location", "", "Venue name")
	cmd.Flags().StringVar(&virtualLink, "link", "", "Virtual meeting link")
	cmd.Flags().StringVar(&organizer, "organizer", "", "Organizer user UUID")
	cmd.Flags().BoolVar(&private, "private", false, "Make the event invitation-only")
	cmd.Flags().IntVar(&maxAttendees, "max-attendees", 0, "Capacity limit, 0 for unlimited")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("organizer")

	return cmd
}

func newEventsGetCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("event id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			e, err := a.Events.GetEvent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printEvent(cmd, e)
		},
	}
}

func newEventsPublishCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("event id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			e, err := a.Events.PublishEvent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printEvent(cmd, e)
		},
	}
}

func newEventsCancelCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("event id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			e, err := a.Events.CancelEvent(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printEvent(cmd, e)
		},
	}
}

func newEventsDeleteCmd(dbPath *string) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event and its invitations and registrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("event id", args[0])
			if err != nil {
				return err
			}
			actorID, err := parseUUIDArg("actor id", actor)
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Events.DeleteEvent(cmd.Context(), actorID, id); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{"status": "deleted", "id": id.String()})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Event %s deleted\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "UUID of the user performing the deletion")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}

func newEventsListCmd(dbPath *string) *cobra.Command {
	var (
		organizer     string
		offset, limit int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming events, or an organizer's events",
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

			var page *domain.PaginatedResult[domain.Event]
			if organizer != "" {
				organizerID, err := parseUUIDArg("organizer id", organizer)
				if err != nil {
					return err
				}
				page, err = a.Events.ListByOrganizer(cmd.Context(), organizerID, params)
				if err != nil {
					return err
				}
			} else {
				page, err = a.Events.ListUpcoming(cmd.Context(), params)
				if err != nil {
					return err
				}
			}
			return printEventPage(cmd, page)
		},
	}

	cmd.Flags().StringVar(&organizer, "organizer", "", "Only events organized by this user UUID")
	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of events to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of events to return")

	return cmd
}

func newEventsSearchCmd(dbPath *string) *cobra.Command {
	var (
		title         string
		category      string
		status        string
		locationType  string
		from, to      string
		offset, limit int64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search events by title, category, status, location type, or date range",
		Example: `  eventsctl events search --title lice --category seminar
  eventsctl events search --status published --from 2026-10-01 --to 2026-12-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := domain.NewPaginationParams(offset, limit)
			if err != nil {
				return err
			}

			var filter domain.EventFilter
			filter.TitleContains = strPtrFlag(title)
			filter.CategoryID = strPtrFlag(category)
			if status != "" {
				s, err := domain.ParseEventStatus(status)
				if err != nil {
					return err
				}
				filter.Status = &s
			}
			if locationType != "" {
				lt, err := domain.ParseLocationType(locationType)
				if err != nil {
					return err
				}
				filter.LocationType = &lt
			}
			if from != "" {
				t, err := parseTimeFlag("from date", from)
				if err != nil {
					return err
				}
				filter.StartDateFrom = &t
			}
			if to != "" {
				t, err := parseTimeFlag("to date", to)
				if err != nil {
					return err
				}
				filter.StartDateTo = &t
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			page, err := a.Events.SearchEvents(cmd.Context(), filter, params)
			if err != nil {
				return err
			}
			return printEventPage(cmd, page)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Substring of the title")
	cmd.Flags().StringVar(&category, "category", "", "Category ID")
	cmd.Flags().StringVar(&status, "status", "", "Event status")
	cmd.Flags().StringVar(&locationType, "location-type", "", "Location type")
	cmd.Flags().StringVar(&from, "from", "", "Earliest start date")
	cmd.Flags().StringVar(&to, "to", "", "Latest start date")
	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of events to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of events to return")

	return cmd
}

func newEventsStatsCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Show registration counts for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("event id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.Events.GetEventStats(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, stats)
			}

			spots := "unlimited"
			if stats.AvailableSpots != nil {
				spots = strconv.Itoa(*stats.AvailableSpots)
			}
			printTable(os.Stdout,
				[]string{"EVENT", "STATUS", "REGISTERED", "WAITLISTED", "AVAILABLE"},
				[][]string{{
					stats.Event.Title, string(stats.Event.Status),
					strconv.Itoa(stats.ActiveCount),
					strconv.Itoa(stats.WaitlistCount),
					spots,
				}})
			return nil
		},
	}
}

func printEvent(cmd *cobra.Command, e *domain.Event) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, e)
	}
	printTable(os.Stdout,
		[]string{"ID", "TITLE", "CATEGORY", "STATUS", "START", "END", "LOCATION"},
		[][]string{eventRow(e)})
	return nil
}

func printEventPage(cmd *cobra.Command, page *domain.PaginatedResult[domain.Event]) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, page)
	}
	rows := make([][]string, 0, len(page.Items))
	for i := range page.Items {
		rows = append(rows, eventRow(&page.Items[i]))
	}
	printTable(os.Stdout, []string{"ID", "TITLE", "CATEGORY", "STATUS", "START", "END", "LOCATION"}, rows)
	printPageFooter(os.Stdout, page.TotalCount, page.Offset, page.Limit, page.HasNext)
	return nil
}

func eventRow(e *domain.Event) []string {
	location := string(e.LocationType)
	if e.LocationName != nil {
		location = fmt.Sprintf("%s (%s)", *e.LocationName, e.LocationType)
	}
	return []string{
		e.ID.String(), e.Title, e.CategoryID, string(e.Status),
		fmtTimeCell(e.StartDate), fmtTimeCell(e.EndDate), location,
	}
}

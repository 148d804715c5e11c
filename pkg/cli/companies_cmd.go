package cli

import (
	"os"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

func newCompaniesCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage companies",
	}

	cmd.AddCommand(newCompaniesCreateCmd(dbPath))
	cmd.AddCommand(newCompaniesGetCmd(dbPath))
	cmd.AddCommand(newCompaniesListCmd(dbPath))

	return cmd
}

func newCompaniesCreateCmd(dbPath *string) *cobra.Command {
	var (
		name      string
		orgNumber string
		location  string
		industry  string
		website   string
		phone     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		Example: `  eventsctl companies create --name "Havbruk AS" --org-number 987654321 --industry salmon_farming
  eventsctl companies create --name "Fjordtek" --industry technology --location "Bergen"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := domain.ParseIndustryType(industry)
			if err != nil {
				return err
			}
			c := &domain.Company{
				Name:         name,
				OrgNumber:    strPtrFlag(orgNumber),
				Location:     strPtrFlag(location),
				IndustryType: it,
				Website:      strPtrFlag(website),
				Phone:        strPtrFlag(phone),
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			created, err := a.Users.CreateCompany(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printCompany(cmd, created)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&orgNumber, "org-number", "", "Organization number")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&industry, "industry", "other", "Industry type")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCompaniesGetCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUIDArg("company id", args[0])
			if err != nil {
				return err
			}

			a, err := openApp(*dbPath)
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.Users.GetCompany(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printCompany(cmd, c)
		},
	}
}

func newCompaniesListCmd(dbPath *string) *cobra.Command {
	var offset, limit int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
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

			page, err := a.Users.ListCompanies(cmd.Context(), params)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, page)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, c := range page.Items {
				rows = append(rows, []string{
					c.ID.String(), c.Name, orDash(c.OrgNumber), string(c.IndustryType), orDash(c.Location),
				})
			}
			printTable(os.Stdout, []string{"ID", "NAME", "ORG NUMBER", "INDUSTRY", "LOCATION"}, rows)
			printPageFooter(os.Stdout, page.TotalCount, page.Offset, page.Limit, page.HasNext)
			return nil
		},
	}

	cmd.Flags().Int64Var(&offset, "offset", 0, "Number of companies to skip")
	cmd.Flags().Int64Var(&limit, "limit", 50, "Maximum number of companies to return")

	return cmd
}

func printCompany(cmd *cobra.Command, c *domain.Company) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, c)
	}
	printTable(os.Stdout,
		[]string{"ID", "NAME", "ORG NUMBER", "INDUSTRY", "LOCATION"},
		[][]string{{c.ID.String(), c.Name, orDash(c.OrgNumber), string(c.IndustryType), orDash(c.Location)}})
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// NewAccountsCommand creates the accounts command group
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the account and its subaccounts",
	}

	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsUpdateCommand())

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [ACCOUNT_SID]",
		Short: "Show account details",
		Long:  "Show details of the given account, or the configured account when no SID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			sid := ""
			if len(args) > 0 {
				sid = args[0]
			}

			account, err := client.Accounts().Get(context.Background(), sid)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			done, err := renderStructured(account)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("SID", account.Sid)
			_ = table.Append("Name", account.FriendlyName)
			_ = table.Append("Status", string(account.Status))
			_ = table.Append("Type", account.Type)
			_ = table.Append("Created", formatTime(account.DateCreated))
			_ = table.Render()

			return nil
		},
	}
}

func newAccountsListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the account and its subaccounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &twilio.AccountListOptions{}
			if status != "" {
				accountStatus := twilio.AccountStatus(status)
				opts.Status = &accountStatus
			}

			page, err := client.Accounts().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			done, err := renderStructured(page.Accounts)
			if done || err != nil {
				return err
			}

			if len(page.Accounts) == 0 {
				fmt.Println("No accounts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("SID", "Name", "Status", "Type")

			for _, account := range page.Accounts {
				_ = table.Append(account.Sid, account.FriendlyName, string(account.Status), account.Type)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by account status")

	return cmd
}

func newAccountsUpdateCommand() *cobra.Command {
	var (
		friendlyName string
		status       string
	)

	cmd := &cobra.Command{
		Use:   "update [ACCOUNT_SID]",
		Short: "Update an account",
		Long:  "Rename an account or change its status (active, suspended, closed)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			sid := ""
			if len(args) > 0 {
				sid = args[0]
			}

			params := twilio.NewAccountUpdate()
			if friendlyName != "" {
				params.WithFriendlyName(friendlyName)
			}

			if status != "" {
				params.WithStatus(twilio.AccountStatus(status))
			}

			account, err := client.Accounts().Update(context.Background(), sid, params)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			done, err := renderStructured(account)
			if done || err != nil {
				return err
			}

			fmt.Printf("Account %s updated (%s, %s)\n", account.Sid, account.FriendlyName, account.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&friendlyName, "friendly-name", "", "new account name")
	cmd.Flags().StringVar(&status, "status", "", "new account status")

	return cmd
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// NewCallsCommand creates the calls command group
func NewCallsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calls",
		Short: "Manage voice calls",
		Long:  "Place, list, inspect, redirect, and hang up voice calls",
	}

	cmd.AddCommand(newCallsListCommand())
	cmd.AddCommand(newCallsGetCommand())
	cmd.AddCommand(newCallsDialCommand())
	cmd.AddCommand(newCallsRedirectCommand())
	cmd.AddCommand(newCallsHangupCommand())
	cmd.AddCommand(newCallsDeleteCommand())

	return cmd
}

func newCallsListCommand() *cobra.Command {
	var (
		to       string
		from     string
		status   string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calls",
		Long:  "List calls on the account, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &twilio.CallListOptions{}
			if to != "" {
				opts.To = &to
			}

			if from != "" {
				opts.From = &from
			}

			if status != "" {
				callStatus := twilio.CallStatus(status)
				opts.Status = &callStatus
			}

			if pageSize > 0 {
				opts.PageSize = &pageSize
			}

			page, err := client.Calls().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list calls: %w", err)
			}

			done, err := renderStructured(page.Calls)
			if done || err != nil {
				return err
			}

			if len(page.Calls) == 0 {
				fmt.Println("No calls found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("SID", "From", "To", "Status", "Duration", "Started")

			for _, call := range page.Calls {
				_ = table.Append(call.Sid, call.From, call.To, string(call.Status),
					stringOr(call.Duration, NotAvailable), formatTime(call.StartTime))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			if page.HasNextPage() {
				fmt.Println("\nMore results available; narrow the filters or raise --page-size")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "filter by destination number")
	cmd.Flags().StringVar(&from, "from", "", "filter by origin number")
	cmd.Flags().StringVar(&status, "status", "", "filter by call status")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func newCallsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CALL_SID",
		Short: "Show call details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			call, err := client.Calls().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get call: %w", err)
			}

			done, err := renderStructured(call)
			if done || err != nil {
				return err
			}

			renderCallTable(call)

			return nil
		},
	}
}

func newCallsDialCommand() *cobra.Command {
	var (
		to       string
		from     string
		twimlURL string
		method   string
		timeout  int
		record   bool
	)

	cmd := &cobra.Command{
		Use:   "dial",
		Short: "Place an outbound call",
		Long:  "Place an outbound call that fetches its instructions from a TwiML URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return ErrToNumberRequired
			}

			if from == "" {
				return ErrFromNumberRequired
			}

			if twimlURL == "" {
				return ErrTwiMLURLRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := twilio.NewCallCreate(to, from).WithURLString(twimlURL)
			if method != "" {
				params.WithMethod(twilio.HTTPMethod(method))
			}

			if timeout > 0 {
				params.WithTimeout(timeout)
			}

			if record {
				params.WithRecord(true)
			}

			call, err := client.Calls().Create(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to place call: %w", err)
			}

			done, err := renderStructured(call)
			if done || err != nil {
				return err
			}

			fmt.Printf("Call %s queued (%s -> %s)\n", call.Sid, call.From, call.To)

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination number (E.164)")
	cmd.Flags().StringVar(&from, "from", "", "origin number owned by the account")
	cmd.Flags().StringVar(&twimlURL, "url", "", "TwiML URL with call instructions")
	cmd.Flags().StringVar(&method, "method", "", "HTTP method for the TwiML URL (GET or POST)")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "seconds to let the call ring")
	cmd.Flags().BoolVar(&record, "record", false, "record the call")

	return cmd
}

func newCallsRedirectCommand() *cobra.Command {
	var (
		twimlURL string
		method   string
	)

	cmd := &cobra.Command{
		Use:   "redirect CALL_SID",
		Short: "Redirect an in-progress call",
		Long:  "Point an in-progress call at a new TwiML URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if twimlURL == "" {
				return ErrTwiMLURLRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := twilio.NewCallUpdate().WithURLString(twimlURL)
			if method != "" {
				params.WithMethod(twilio.HTTPMethod(method))
			}

			call, err := client.Calls().Update(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to redirect call: %w", err)
			}

			done, err := renderStructured(call)
			if done || err != nil {
				return err
			}

			fmt.Printf("Call %s redirected (status: %s)\n", call.Sid, call.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&twimlURL, "url", "", "TwiML URL with new instructions")
	cmd.Flags().StringVar(&method, "method", "", "HTTP method for the TwiML URL (GET or POST)")

	return cmd
}

func newCallsHangupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hangup CALL_SID",
		Short: "Hang up a call",
		Long:  "Terminate an in-progress call by setting its status to completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := twilio.NewCallUpdate().WithStatus(twilio.CallStatusCompleted)

			call, err := client.Calls().Update(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to hang up call: %w", err)
			}

			fmt.Printf("Call %s hung up\n", call.Sid)

			return nil
		},
	}
}

func newCallsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CALL_SID",
		Short: "Delete a call record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Calls().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete call: %w", err)
			}

			fmt.Printf("Call %s deleted\n", args[0])

			return nil
		},
	}
}

func renderCallTable(call *twilio.Call) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("SID", call.Sid)
	_ = table.Append("From", call.From)
	_ = table.Append("To", call.To)
	_ = table.Append("Status", string(call.Status))
	_ = table.Append("Direction", string(call.Direction))
	_ = table.Append("Duration", stringOr(call.Duration, NotAvailable))
	_ = table.Append("Price", stringOr(call.Price, NotAvailable))
	_ = table.Append("Started", formatTime(call.StartTime))
	_ = table.Append("Ended", formatTime(call.EndTime))
	_ = table.Render()
}

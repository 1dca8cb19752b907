package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// NewMessagesCommand creates the messages command group
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage SMS and MMS messages",
	}

	cmd.AddCommand(newMessagesSendCommand())
	cmd.AddCommand(newMessagesListCommand())
	cmd.AddCommand(newMessagesGetCommand())
	cmd.AddCommand(newMessagesDeleteCommand())

	return cmd
}

func newMessagesSendCommand() *cobra.Command {
	var (
		to       string
		from     string
		body     string
		mediaURL string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long:  "Send an SMS, or an MMS when a media URL is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return ErrToNumberRequired
			}

			if from == "" {
				return ErrFromNumberRequired
			}

			if body == "" && mediaURL == "" {
				return ErrBodyOrMediaRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := twilio.NewMessageCreate(to, from)
			if body != "" {
				params.WithBody(body)
			}

			if mediaURL != "" {
				params.WithMediaURLString(mediaURL)
			}

			msg, err := client.Messages().Create(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			done, err := renderStructured(msg)
			if done || err != nil {
				return err
			}

			fmt.Printf("Message %s %s (%s -> %s)\n", msg.Sid, msg.Status, msg.From, msg.To)

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination number (E.164)")
	cmd.Flags().StringVar(&from, "from", "", "origin number owned by the account")
	cmd.Flags().StringVar(&body, "body", "", "message text")
	cmd.Flags().StringVar(&mediaURL, "media-url", "", "media URL to attach (MMS)")

	return cmd
}

func newMessagesListCommand() *cobra.Command {
	var (
		to       string
		from     string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &twilio.MessageListOptions{}
			if to != "" {
				opts.To = &to
			}

			if from != "" {
				opts.From = &from
			}

			if pageSize > 0 {
				opts.PageSize = &pageSize
			}

			page, err := client.Messages().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			done, err := renderStructured(page.Messages)
			if done || err != nil {
				return err
			}

			if len(page.Messages) == 0 {
				fmt.Println("No messages found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("SID", "From", "To", "Status", "Body", "Sent")

			for _, msg := range page.Messages {
				body := msg.Body
				if len(body) > 40 {
					body = body[:37] + "..."
				}

				_ = table.Append(msg.Sid, msg.From, msg.To, string(msg.Status), body, formatTime(msg.DateSent))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "filter by destination number")
	cmd.Flags().StringVar(&from, "from", "", "filter by origin number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func newMessagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MESSAGE_SID",
		Short: "Show message details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			msg, err := client.Messages().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get message: %w", err)
			}

			done, err := renderStructured(msg)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("SID", msg.Sid)
			_ = table.Append("From", msg.From)
			_ = table.Append("To", msg.To)
			_ = table.Append("Status", string(msg.Status))
			_ = table.Append("Body", msg.Body)
			_ = table.Append("Segments", msg.NumSegments)
			_ = table.Append("Price", stringOr(msg.Price, NotAvailable))
			_ = table.Append("Sent", formatTime(msg.DateSent))
			_ = table.Render()

			return nil
		},
	}
}

func newMessagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MESSAGE_SID",
		Short: "Delete a message record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Messages().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete message: %w", err)
			}

			fmt.Printf("Message %s deleted\n", args[0])

			return nil
		},
	}
}

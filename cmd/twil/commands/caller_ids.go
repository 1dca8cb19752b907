package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// NewCallerIDsCommand creates the caller-ids command group
func NewCallerIDsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caller-ids",
		Short: "Manage outgoing caller IDs",
	}

	cmd.AddCommand(newCallerIDsValidateCommand())

	return cmd
}

func newCallerIDsValidateCommand() *cobra.Command {
	var (
		friendlyName string
		extension    string
		callDelay    int
	)

	cmd := &cobra.Command{
		Use:   "validate PHONE_NUMBER",
		Short: "Validate a phone number as an outgoing caller ID",
		Long: `Start validation of a phone number for use as an outgoing caller ID.

The API places a call to the number and prints a validation code here;
answer the call and enter the code on the handset to complete validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := twilio.NewValidationRequestCreate(args[0])
			if friendlyName != "" {
				params.WithFriendlyName(friendlyName)
			}

			if extension != "" {
				params.WithExtension(extension)
			}

			if callDelay > 0 {
				params.WithCallDelay(callDelay)
			}

			result, err := client.ValidationRequests().Create(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to start validation: %w", err)
			}

			done, err := renderStructured(result)
			if done || err != nil {
				return err
			}

			fmt.Printf("Calling %s...\n", result.PhoneNumber)

			if result.ValidationCode != nil {
				fmt.Printf("Enter validation code %06d when prompted\n", *result.ValidationCode)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&friendlyName, "friendly-name", "", "descriptive name for the number")
	cmd.Flags().StringVar(&extension, "extension", "", "extension to dial after connecting")
	cmd.Flags().IntVar(&callDelay, "call-delay", 0, "seconds to wait before placing the validation call")

	return cmd
}

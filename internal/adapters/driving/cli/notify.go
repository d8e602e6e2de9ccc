package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/core/domain"
	"github.com/hireloop/screener/internal/extract"
)

var (
	notifyTo      string
	notifySubject string
	notifyBody    string
)

var notifyCmd = &cobra.Command{
	Use:   "notify [resume.pdf]",
	Short: "Email a candidate whose address appears in their resume",
	Long: `Extracts the first email address found in the resume and sends the
notification through the authenticated Gmail account. Pass --to to
override the extracted address, in which case the resume argument may be
omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().StringVar(&notifyTo, "to", "", "recipient address (skips extraction)")
	notifyCmd.Flags().StringVar(&notifySubject, "subject", "", "email subject")
	notifyCmd.Flags().StringVar(&notifyBody, "body", "", "email body")
	_ = notifyCmd.MarkFlagRequired("subject")
	_ = notifyCmd.MarkFlagRequired("body")
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	to := notifyTo
	if to == "" {
		if len(args) == 0 {
			return fmt.Errorf("provide a resume to extract the address from, or --to")
		}
		text, err := extract.TextFromPDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		addr, ok := extract.EmailFromText(text)
		if !ok {
			return fmt.Errorf("no email address found in %s", args[0])
		}
		to = addr
		cmd.Printf("Extracted address: %s\n", to)
	}

	if err := ensureMailer(cmd); err != nil {
		return err
	}

	id, err := mailer.Send(cmd.Context(), domain.EmailMessage{
		To:      to,
		From:    cfg.Google.SenderEmail,
		Subject: notifySubject,
		Body:    notifyBody,
	})
	if err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	cmd.Printf("Email sent to %s (message ID %s)\n", to, id)
	return nil
}

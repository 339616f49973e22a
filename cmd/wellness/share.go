// ABOUTME: CLI command for sharing a saved plan.
// ABOUTME: Posts it to the configured webhook or prints WhatsApp and email links.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/config"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/share"
)

var (
	shareWebhook    bool
	shareWebhookURL string
	shareWhatsApp   bool
	shareEmail      bool
	shareTo         string
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Share a saved plan",
	Long: `Share a saved plan by webhook, WhatsApp or email.

METHODS:

  --webhook    POST the plan as JSON to webhook_url from the config (or
               WELLNESS_WEBHOOK_URL, or --url). One attempt, 15s timeout.
  --whatsapp   Print a wa.me link prefilled with a plan summary
  --email      Print a mailto: link with the summary as the body

  With no method flags, both links are printed. Links go to the number and
  address on the submission unless --to is given.

EXAMPLES:

  wellness share abc123                       # Print WhatsApp and email links
  wellness share abc123 --whatsapp --to 9876543210
  wellness share abc123 --webhook
  wellness share abc123 --webhook --url https://example.com/hooks/plans`,
	Args:        cobra.ExactArgs(1),
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := repo.GetSubmission(args[0])
		if err != nil {
			return fmt.Errorf("failed to get submission: %w", err)
		}
		if sub.Plan == nil {
			return fmt.Errorf("submission %s has no plan", sub.ShortID())
		}
		out := cmd.OutOrStdout()

		if shareWebhook {
			target := shareWebhookURL
			if target == "" {
				target = cfg.WebhookURL
			}
			if target == "" {
				return fmt.Errorf("no webhook URL: set webhook_url in %s, WELLNESS_WEBHOOK_URL or --url", config.GetConfigPath())
			}
			hook, err := share.NewWebhook(target)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), share.DefaultTimeout)
			defer cancel()
			if err := hook.Send(ctx, sub.Plan); err != nil {
				return fmt.Errorf("failed to share plan: %w", err)
			}
			fmt.Fprintln(out, color.GreenString("✓ Sent plan %s to %s", sub.ShortID(), hook.URL))
		}

		showLinks := !shareWebhook && !shareWhatsApp && !shareEmail
		if shareWhatsApp || showLinks {
			mobile := sub.Form.MobileNumber
			if shareTo != "" {
				mobile = shareTo
			}
			fmt.Fprintf(out, "%s %s\n", padRight("WhatsApp", 9), share.WhatsAppLink(mobile, sub.Plan))
		}
		if shareEmail || showLinks {
			email := sub.Form.Email
			if shareTo != "" {
				email = shareTo
			}
			fmt.Fprintf(out, "%s %s\n", padRight("Email", 9), share.MailtoLink(email, sub.Plan))
		}

		return nil
	},
}

func init() {
	shareCmd.Flags().BoolVar(&shareWebhook, "webhook", false, "POST the plan to the webhook URL")
	shareCmd.Flags().StringVar(&shareWebhookURL, "url", "", "webhook URL (overrides config)")
	shareCmd.Flags().BoolVar(&shareWhatsApp, "whatsapp", false, "print a WhatsApp link")
	shareCmd.Flags().BoolVar(&shareEmail, "email", false, "print a mailto: link")
	shareCmd.Flags().StringVar(&shareTo, "to", "", "recipient number or address for links")
	rootCmd.AddCommand(shareCmd)
}

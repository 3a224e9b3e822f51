package ses

import (
	"context"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"printflow/internal/domain"
	"printflow/internal/port"
)

type sesDispatcher struct {
	client      *sesv2.Client
	userRepo    port.UserRepository
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESDispatcher creates an SES-backed NotificationDispatcher. Role
// targets are resolved to active user emails at dispatch time.
func NewSESDispatcher(region, fromAddress, fromName, frontendURL string, userRepo port.UserRepository) (port.NotificationDispatcher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesDispatcher{
		client:      sesv2.NewFromConfig(cfg),
		userRepo:    userRepo,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (d *sesDispatcher) Dispatch(ctx context.Context, n domain.Notification) error {
	recipients, err := d.resolveRecipients(ctx, n)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		log.Printf("sesDispatcher.Dispatch: no recipients for %s on dossier %s", n.Type, n.OrderNumber)
		return nil
	}

	subject := fmt.Sprintf("Atelier — dossier %s", n.OrderNumber)
	dossierURL := fmt.Sprintf("%s/dossiers/%s", d.frontendURL, n.DossierID)
	htmlBody := buildNotificationHTML(n.Message, dossierURL)
	textBody := fmt.Sprintf("%s\n\nVoir le dossier : %s\n", n.Message, dossierURL)
	from := fmt.Sprintf("%s <%s>", d.fromName, d.fromAddress)

	_, err = d.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: recipients,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// resolveRecipients expands role targets and explicit user ids into a
// deduplicated email list. The actor is excluded; nobody needs mail about
// their own click.
func (d *sesDispatcher) resolveRecipients(ctx context.Context, n domain.Notification) ([]string, error) {
	seen := make(map[string]bool)
	var emails []string

	add := func(u *domain.User) {
		if u.ID == n.ChangedBy || !u.IsActive || seen[u.Email] {
			return
		}
		seen[u.Email] = true
		emails = append(emails, u.Email)
	}

	if len(n.TargetRoles) > 0 {
		users, err := d.userRepo.ListByRoles(ctx, n.TargetRoles)
		if err != nil {
			return nil, fmt.Errorf("resolving role targets: %w", err)
		}
		for i := range users {
			add(&users[i])
		}
	}

	for _, id := range n.TargetUserIDs {
		user, err := d.userRepo.GetByID(ctx, id)
		if err != nil {
			log.Printf("sesDispatcher.resolveRecipients: user %s: %v", id, err)
			continue
		}
		add(user)
	}

	return emails, nil
}

func buildNotificationHTML(message, dossierURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Mise à jour d'un dossier</h2>
  <p>%s</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Voir le dossier</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Atelier — Gestion des commandes d'impression</p>
</body>
</html>`, message, dossierURL)
}

package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/utils"
)

const discordAPIBase = "https://discord.com/api/v10"

// DiscordService OAuth Discord + webhook du canal de support
type DiscordService struct {
	config *config.Config
	client *utils.APIClient
}

func NewDiscordService(cfg *config.Config) *DiscordService {
	return &DiscordService{
		config: cfg,
		client: utils.NewAPIClient(10 * time.Second),
	}
}

// AuthorizeURL URL de redirection vers l'écran d'autorisation Discord.
// state est un nonce anti-CSRF vérifié au retour.
func (s *DiscordService) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.config.DiscordClientID)
	params.Set("redirect_uri", s.config.DiscordRedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "identify")
	params.Set("state", state)
	return discordAPIBase + "/oauth2/authorize?" + params.Encode()
}

// ExchangeCode échange le code d'autorisation contre un jeton d'accès
func (s *DiscordService) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", s.config.DiscordClientID)
	form.Set("client_secret", s.config.DiscordClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.config.DiscordRedirectURL)

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.client.PostFormJSON(ctx, discordAPIBase+"/oauth2/token", form, &result); err != nil {
		return "", fmt.Errorf("échange du code Discord échoué : %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("réponse Discord sans jeton d'accès")
	}
	return result.AccessToken, nil
}

// FetchUser récupère le profil de l'utilisateur connecté
func (s *DiscordService) FetchUser(ctx context.Context, accessToken string) (*model.DiscordUser, error) {
	var user model.DiscordUser
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	if err := s.client.GetJSON(ctx, discordAPIBase+"/users/@me", headers, &user); err != nil {
		return nil, fmt.Errorf("lecture du profil Discord échouée : %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("profil Discord sans identifiant")
	}
	return &user, nil
}

// SendSupportMessage relaie un message de support vers le webhook Discord
func (s *DiscordService) SendSupportMessage(ctx context.Context, userID, username, subject, message string) error {
	if s.config.DiscordWebhookURL == "" {
		return fmt.Errorf("webhook Discord non configuré")
	}

	payload := map[string]interface{}{
		"embeds": []map[string]interface{}{
			{
				"title":       subject,
				"description": message,
				"footer": map[string]string{
					"text": fmt.Sprintf("%s (%s)", username, userID),
				},
			},
		},
	}
	return s.client.PostJSON(ctx, s.config.DiscordWebhookURL, payload)
}

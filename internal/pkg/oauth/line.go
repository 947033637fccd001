package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

// lineEndpoint is the LINE Login v2.1 OAuth2 endpoint.
var lineEndpoint = oauth2.Endpoint{
	AuthURL:  "https://access.line.me/oauth2/v2.1/authorize",
	TokenURL: "https://api.line.me/oauth2/v2.1/token",
}

type LineService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState(userAgent string) string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// VerifyToken exchanges the code for an OAuth2 token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches and verifies the LINE profile information.
	VerifyUser(ctx context.Context, token *oauth2.Token) (LineInformation, error)
}

type LineServiceImpl struct {
	config *oauth2.Config
}

func NewLineService(clientID string, clientSecret string, redirectURL string, scopes []string) LineService {
	if len(scopes) == 0 {
		scopes = []string{"profile"}
	}
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     lineEndpoint,
	}
	return &LineServiceImpl{config: config}
}

type LineInformation struct {
	LineUserID  string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// GenerateState generates a random state string for OAuth2 flows.
func (l *LineServiceImpl) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (l *LineServiceImpl) RedirectURL(state string) string {
	return l.config.AuthCodeURL(state)
}

func (l *LineServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := l.config.Exchange(ctx, code)
	if err != nil {
		return &oauth2.Token{}, err
	}
	return token, nil
}

func (l *LineServiceImpl) VerifyUser(ctx context.Context, token *oauth2.Token) (LineInformation, error) {
	var info LineInformation

	client := l.config.Client(ctx, token)

	resp, err := client.Get("https://api.line.me/v2/profile")
	if err != nil {
		return LineInformation{}, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return LineInformation{}, err
	}

	return info, nil
}

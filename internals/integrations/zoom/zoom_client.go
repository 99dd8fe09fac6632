// internals/integrations/zoom/zoom_client.go
package zoom

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const apiBase = "https://api.zoom.us/v2"

// Room is a provisioned Zoom meeting.
type Room struct {
	ID       string `json:"id"`
	JoinURL  string `json:"join_url"`
	StartURL string `json:"start_url"`
	Password string `json:"password"`
}

// Client talks to the Zoom API with server-to-server OAuth
// (account credentials grant). The access token is cached until expiry.
type Client struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	HostEmails   []string

	HTTP *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(accountID, clientID, clientSecret string, hostEmails []string) *Client {
	return &Client{
		AccountID:    accountID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HostEmails:   hostEmails,
		HTTP:         &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether credentials are configured.
func (z *Client) Enabled() bool {
	return z != nil && z.ClientID != "" && z.ClientSecret != "" && z.AccountID != ""
}

func (z *Client) token() (string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.accessToken != "" && time.Now().Before(z.tokenExpiry) {
		return z.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", z.AccountID)

	req, err := http.NewRequest(http.MethodPost, "https://zoom.us/oauth/token", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(z.ClientID + ":" + z.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := z.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("zoom oauth: status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	z.accessToken = body.AccessToken
	z.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return z.accessToken, nil
}

// FindAvailableHost returns the first configured host without an overlapping
// Zoom meeting in [start, start+duration). Empty string when every host is
// busy.
func (z *Client) FindAvailableHost(start time.Time, durationMinutes int) (string, error) {
	token, err := z.token()
	if err != nil {
		return "", err
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, host := range z.HostEmails {
		busy, err := z.hostBusy(token, host, start, end)
		if err != nil {
			return "", err
		}
		if !busy {
			return host, nil
		}
	}
	return "", nil
}

func (z *Client) hostBusy(token, host string, start, end time.Time) (bool, error) {
	u := fmt.Sprintf("%s/users/%s/meetings?type=upcoming&page_size=100", apiBase, url.PathEscape(host))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := z.HTTP.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("zoom list meetings for %s: status %d", host, resp.StatusCode)
	}

	var body struct {
		Meetings []struct {
			StartTime time.Time `json:"start_time"`
			Duration  int       `json:"duration"`
		} `json:"meetings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}

	for _, m := range body.Meetings {
		mEnd := m.StartTime.Add(time.Duration(m.Duration) * time.Minute)
		if m.StartTime.Before(end) && start.Before(mEnd) {
			return true, nil
		}
	}
	return false, nil
}

// CreateRoom schedules a Zoom meeting under hostID.
func (z *Client) CreateRoom(hostID, topic string, start time.Time, durationMinutes int) (*Room, error) {
	token, err := z.token()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"topic":      topic,
		"type":       2, // scheduled meeting
		"start_time": start.UTC().Format("2006-01-02T15:04:05Z"),
		"duration":   durationMinutes,
		"settings": map[string]interface{}{
			"join_before_host": true,
			"waiting_room":     false,
		},
	}
	raw, _ := json.Marshal(payload)

	u := fmt.Sprintf("%s/users/%s/meetings", apiBase, url.PathEscape(hostID))
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("zoom create meeting: status %d", resp.StatusCode)
	}

	var body struct {
		ID       int64  `json:"id"`
		JoinURL  string `json:"join_url"`
		StartURL string `json:"start_url"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &Room{
		ID:       fmt.Sprintf("%d", body.ID),
		JoinURL:  body.JoinURL,
		StartURL: body.StartURL,
		Password: body.Password,
	}, nil
}

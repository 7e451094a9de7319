package talentlms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"talentlms-sync/internal/httpx"
)

const contentTypeJSON = "application/json"

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New builds a TalentLMS v1 API client for the given tenant domain
// (e.g. "acme.talentlms.com"). Auth is HTTP basic with the API key as
// username and an empty password.
func New(domain, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	tr := &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		BaseURL: "https://" + strings.TrimSuffix(strings.TrimPrefix(domain, "https://"), "/") + "/api/v1",
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

/* -------- Types -------- */

// User is a TalentLMS account. The API returns ids as strings.
type User struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Password  string `json:"password"`
}

// Paged shape some tenants return from /users; most return a bare array.
type usersPage struct {
	Users []User `json:"users"`
	More  string `json:"more"`
}

/* -------- API -------- */

// ListUsers fetches all accounts from /users. Handles both response shapes
// seen in the wild: a bare JSON array (everything at once) and a paged object
// with "users" + "more" cursor.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	body, err := c.getRaw(ctx, c.BaseURL+"/users")
	if err != nil {
		return nil, err
	}

	var all []User
	if err := json.Unmarshal(body, &all); err == nil {
		return all, nil
	}

	var page usersPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("talentlms: list users: json parse error: %w body=%s", err, string(body))
	}
	all = append(all, page.Users...)

	next := strings.TrimSpace(page.More)
	for next != "" {
		if !strings.HasPrefix(next, "http") {
			next = c.BaseURL + "/" + strings.TrimPrefix(next, "/")
		}
		b, err := c.getRaw(ctx, next)
		if err != nil {
			return nil, err
		}
		var p usersPage
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("talentlms: list users: json parse error: %w body=%s", err, string(b))
		}
		all = append(all, p.Users...)
		next = strings.TrimSpace(p.More)
	}

	return all, nil
}

// CreateUser creates an account via /usersignup and returns it (incl. the id
// assigned by TalentLMS).
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.New("talentlms: create user: empty email")
	}

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var created User
	err = httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/usersignup", bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", contentTypeJSON)
			r.Header.Set("Accept", contentTypeJSON)
			r.SetBasicAuth(c.APIKey, "")
			return r, nil
		},
		&created,
	)
	if err != nil {
		return nil, fmt.Errorf("talentlms: create user failed: %w", err)
	}
	if created.ID == "" {
		return nil, errors.New("talentlms: create user: response carries no id")
	}
	return &created, nil
}

// AddUserToCourse enrolls an account into a course. Success/failure only.
func (c *Client) AddUserToCourse(ctx context.Context, userID, courseID int) error {
	payload := map[string]int{
		"user_id":   userID,
		"course_id": courseID,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, _, err = httpx.Do(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/addusertocourse", bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", contentTypeJSON)
			r.Header.Set("Accept", contentTypeJSON)
			r.SetBasicAuth(c.APIKey, "")
			return r, nil
		},
	)
	if err != nil {
		return fmt.Errorf("talentlms: add user %d to course %d failed: %w", userID, courseID, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, urlStr string) ([]byte, error) {
	_, body, err := httpx.Do(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
			if err != nil {
				return nil, err
			}
			r.Header.Set("Accept", contentTypeJSON)
			r.SetBasicAuth(c.APIKey, "")
			return r, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("talentlms: request failed: %w", err)
	}
	return body, nil
}

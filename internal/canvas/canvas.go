package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"

	"canvasnotes/internal/cnerrors"
	"canvasnotes/internal/models"
	"canvasnotes/internal/term"
)

const (
	coursesEndpoint = "api/v1/courses?enrollment_state=active&per_page=100"
	requestTimeout  = 30 * time.Second
)

// Fetcher lists active courses from a remote Canvas instance.
type Fetcher interface {
	FetchActiveCourses(ctx context.Context) ([]models.Course, error)
}

// Client talks to one Canvas instance with a fixed bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the instance URL the client was built with, without
// a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchActiveCourses fetches the caller's active enrollments and maps
// each raw record into a Course. An empty enrollment list is a valid
// success; transport failures and non-2xx statuses are returned as
// classified errors, never as an empty list.
func (c *Client) FetchActiveCourses(ctx context.Context) ([]models.Course, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, coursesEndpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building course request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("canvas request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var raw []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding course list: %w", err)
	}

	courses := make([]models.Course, 0, len(raw))
	for _, doc := range raw {
		var rec models.CourseRecord
		if err := mapstructure.Decode(doc, &rec); err != nil {
			glog.Warningf("skipping malformed course record: %v", err)
			continue
		}
		courses = append(courses, rec.Course(term.Extract(rec)))
	}
	return courses, nil
}

func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w (HTTP %s)", cnerrors.InvalidTokenError, resp.Status)
	case http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %s)", cnerrors.InsufficientPermissionError, resp.Status)
	case http.StatusNotFound:
		return fmt.Errorf("%w (HTTP %s)", cnerrors.WrongBaseURLError, resp.Status)
	}
	return fmt.Errorf("canvas returned HTTP %s", resp.Status)
}

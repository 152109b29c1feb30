// Package googletasks mirrors the local task collection into a Google
// Tasks list so the same tasks show up on a phone. The mirror is one-way:
// push never writes the local task file.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gtasks "google.golang.org/api/tasks/v1"

	"tasktrack/internal/config"
	"tasktrack/internal/task"
)

const (
	// APITimeout is the timeout for a single API call.
	APITimeout = 10 * time.Second

	// markerPrefix tags mirrored remote tasks with their local id.
	markerPrefix = "tasktrack-id:"

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"
)

// Client pushes task collections to Google Tasks.
type Client struct {
	svc *gtasks.Service
	log *log.Logger
}

// PushStats summarizes what a push changed remotely.
type PushStats struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}

// New creates a client from stored OAuth credentials.
// Requires oauth_client.json and token.json in the config directory.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source auto-refreshes expired access tokens.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	svc, err := gtasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}

	return &Client{svc: svc, log: logger}, nil
}

// Push mirrors tasks into the list named listName, creating the list if
// needed. Local tasks are matched to remote copies by an id marker kept
// in the remote task notes.
func (c *Client) Push(ctx context.Context, tasks []task.Task, listName string) (PushStats, error) {
	var stats PushStats

	listID, err := c.ensureList(ctx, listName)
	if err != nil {
		return stats, err
	}

	remote, err := c.listAll(ctx, listID)
	if err != nil {
		return stats, err
	}

	// Index remote copies by local id marker. Unmarked tasks in the list
	// were created by hand on the remote side and are left alone.
	byID := make(map[int]*gtasks.Task)
	for _, rt := range remote {
		if id, ok := parseMarker(rt.Notes); ok {
			byID[id] = rt
		}
	}

	local := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		local[t.ID] = true

		rt, ok := byID[t.ID]
		if !ok {
			if err := c.insert(ctx, listID, t); err != nil {
				return stats, err
			}
			stats.Created++
			continue
		}

		if rt.Title != t.Description || rt.Status != remoteStatus(t.Status) {
			if err := c.patch(ctx, listID, rt.Id, t); err != nil {
				return stats, err
			}
			stats.Updated++
		} else {
			stats.Unchanged++
		}
	}

	// Remote copies of locally deleted tasks go away.
	for id, rt := range byID {
		if local[id] {
			continue
		}
		if err := c.delete(ctx, listID, rt.Id); err != nil {
			return stats, err
		}
		stats.Deleted++
	}

	return stats, nil
}

// ensureList resolves the named list, creating it when missing.
func (c *Client) ensureList(ctx context.Context, name string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	nameLower := strings.ToLower(strings.TrimSpace(name))

	var listID string
	err := c.svc.Tasklists.List().MaxResults(100).Pages(callCtx, func(resp *gtasks.TaskLists) error {
		for _, l := range resp.Items {
			if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
				listID = l.Id
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}
	if listID != "" {
		return listID, nil
	}

	c.log.Debug("creating remote list", "name", name)
	created, err := c.svc.Tasklists.Insert(&gtasks.TaskList{Title: name}).Context(callCtx).Do()
	if err != nil {
		return "", wrapError(err)
	}
	return created.Id, nil
}

// listAll fetches every task in the list, completed and hidden included.
func (c *Client) listAll(ctx context.Context, listID string) ([]*gtasks.Task, error) {
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []*gtasks.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(100).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(callCtx, func(resp *gtasks.Tasks) error {
			result = append(result, resp.Items...)
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

func (c *Client) insert(ctx context.Context, listID string, t task.Task) error {
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, &gtasks.Task{
		Title:  t.Description,
		Notes:  marker(t.ID),
		Status: remoteStatus(t.Status),
	}).Context(callCtx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

func (c *Client) patch(ctx context.Context, listID, taskID string, t task.Task) error {
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patch := &gtasks.Task{
		Title:  t.Description,
		Notes:  marker(t.ID),
		Status: remoteStatus(t.Status),
	}
	// Patching back to needsAction must clear the completion time, or the
	// API keeps the task in the completed section.
	if patch.Status == "needsAction" {
		patch.NullFields = []string{"Completed"}
	}

	_, err := c.svc.Tasks.Patch(listID, taskID, patch).Context(callCtx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

func (c *Client) delete(ctx context.Context, listID, taskID string) error {
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err := c.svc.Tasks.Delete(listID, taskID).Context(callCtx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// remoteStatus maps a local status onto the two-state remote model.
// in-progress has no remote equivalent and maps to needsAction.
func remoteStatus(s task.Status) string {
	if s == task.StatusDone {
		return "completed"
	}
	return "needsAction"
}

// marker formats the notes tag linking a remote task to a local id.
func marker(id int) string {
	return fmt.Sprintf("%s%d", markerPrefix, id)
}

// parseMarker extracts a local id from remote task notes.
func parseMarker(notes string) (int, bool) {
	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, markerPrefix) {
			continue
		}
		var id int
		if _, err := fmt.Sscanf(line[len(markerPrefix):], "%d", &id); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/tr013432-design/spazio/internal/domain"
)

// resolveLeadID matches user input against active-board leads: exact ID
// first, then unique ID prefix. Lost leads are not resolvable here.
func resolveLeadID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("lead ID is required")
	}

	leads, err := app.Leads.ListActive(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
	}
	return matchID(ids, input, "lead")
}

// resolveProjectID matches user input against projects the same way.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return matchID(ids, input, "project")
}

func matchID(ids []string, input, kind string) (string, error) {
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q: %w", kind, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

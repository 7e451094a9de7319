package adp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"talentlms-sync/internal/domain"
	"talentlms-sync/internal/httpx"
)

// ADP caps /hr/v2/workers pages at 100 records.
const pageSize = 100

type workersResponse struct {
	Workers []domain.Worker `json:"workers"`
}

// ListAllWorkers fetches the full worker directory from /hr/v2/workers.
//
// Paging observed on real tenants:
// - $top/$skip query params, $top capped at 100
// - end of collection is signaled by HTTP 204 (empty body), not an empty array
// - $skip advances by the number of records actually received (some tenants
//   return short pages mid-collection)
func (c *Client) ListAllWorkers(ctx context.Context) ([]domain.Worker, error) {
	base, err := url.Parse(c.BaseURL + "/hr/v2/workers")
	if err != nil {
		return nil, fmt.Errorf("adp: invalid base url: %w", err)
	}

	all := make([]domain.Worker, 0, pageSize)
	skip := 0

	for {
		u := *base
		q := u.Query()
		q.Set("$top", strconv.Itoa(pageSize))
		q.Set("$skip", strconv.Itoa(skip))
		u.RawQuery = q.Encode()

		resp, body, err := httpx.Do(
			ctx,
			c.HTTP,
			func(ctx context.Context) (*http.Request, error) {
				r, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
				if err != nil {
					return nil, err
				}
				r.Header.Set("Accept", "application/json")
				return r, nil
			},
		)
		if err != nil {
			return nil, fmt.Errorf("adp: list workers failed: %w", err)
		}
		if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
			break
		}

		var wr workersResponse
		if err := json.Unmarshal(body, &wr); err != nil {
			return nil, fmt.Errorf("adp: list workers: json parse error: %w", err)
		}

		got := len(wr.Workers)
		if got == 0 {
			break
		}
		all = append(all, wr.Workers...)
		skip += got

		if got < pageSize {
			break
		}
	}

	return all, nil
}

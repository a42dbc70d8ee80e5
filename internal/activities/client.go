package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wandersoncferreira/marathon-tracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	activitiesPerPage = 100
	// the activity list barely changes between dashboard loads, one hour is plenty
	listCacheExpireSeconds = 60 * 60
)

// Client fetches activities from a Strava-shaped REST API:
// GET {base}/athlete/activities?after=...&before=...&page=...&per_page=...
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	cache       *freecache.Cache
}

func NewClient(baseURL, accessToken string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  httpClient,
		cache:       freecache.NewCache(10 * megabyte),
	}
}

// ListActivities returns all activities started within [from, to], paging
// through the platform API. Results are cached per-range for an hour.
func (c *Client) ListActivities(ctx context.Context, from, to time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activities.client.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.Format(time.RFC3339)))
	span.SetAttributes(attribute.String("to", to.Format(time.RFC3339)))

	cacheKey := fmt.Sprintf("activities::%d::%d", from.Unix(), to.Unix())
	if cachedBytes, cacheErr := c.cache.Get([]byte(cacheKey)); cacheErr == nil {
		var cached []Activity
		unmarshalErr := json.Unmarshal(cachedBytes, &cached)
		if unmarshalErr == nil {
			log.Tracef("found %d activities for range in cache", len(cached))
			span.SetAttributes(attribute.Bool("from-cache", true))
			return cached, nil
		}
		log.Errorf("failed to unmarshal cached activities: %s", unmarshalErr)
	}

	var all []Activity
	for page := 1; ; page++ {
		pageActivities, err := c.listPage(ctx, from, to, page)
		if err != nil {
			return nil, err
		}
		all = append(all, pageActivities...)
		if len(pageActivities) < activitiesPerPage {
			break
		}
	}

	if all == nil {
		all = []Activity{}
	}

	if allBytes, err := json.Marshal(all); err == nil {
		if err := c.cache.Set([]byte(cacheKey), allBytes, listCacheExpireSeconds); err != nil {
			log.Errorf("failed to cache activities list: %s", err)
		}
	}

	return all, nil
}

func (c *Client) listPage(ctx context.Context, from, to time.Time, page int) ([]Activity, error) {
	url := fmt.Sprintf(
		"%s/athlete/activities?after=%d&before=%d&page=%d&per_page=%d",
		c.baseURL, from.Unix(), to.Unix(), page, activitiesPerPage,
	)
	log.Debugf("calling activities api: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read activities response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activities api status %d: %s", resp.StatusCode, respBytes)
	}

	var pageActivities []Activity
	if err := json.Unmarshal(respBytes, &pageActivities); err != nil {
		return nil, fmt.Errorf("unmarshal activities response: %w", err)
	}

	return pageActivities, nil
}

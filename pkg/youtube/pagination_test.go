package youtube_test

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/mediakit-io/ytapi/pkg/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSource serves total sequential items, honoring maxResults and
// pageToken the way the real API does. The page token is the numeric offset
// of the next item.
type syntheticSource struct {
	total   int
	calls   int
	queries []url.Values
	failAt  int // fail on the n-th call (1-based); 0 disables
}

var errSyntheticPage = errors.New("synthetic page failure")

func (s *syntheticSource) fetch(ctx context.Context, params url.Values) (*youtube.ListResponse[int], error) {
	s.calls++
	s.queries = append(s.queries, youtube.CloneValues(params))

	if s.failAt > 0 && s.calls == s.failAt {
		return nil, errSyntheticPage
	}

	limit, err := strconv.Atoi(params.Get("maxResults"))
	if err != nil {
		return nil, err
	}

	start := 0
	if token := params.Get("pageToken"); token != "" {
		start, err = strconv.Atoi(token)
		if err != nil {
			return nil, err
		}
	}

	end := start + limit
	if end > s.total {
		end = s.total
	}

	items := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, i)
	}

	page := &youtube.ListResponse[int]{
		Kind:  "youtube#videoListResponse",
		Items: items,
	}
	if end < s.total {
		page.NextPageToken = strconv.Itoa(end)
	}

	return page, nil
}

func TestCollectPages_ExactCountAcrossPages(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 500}

	items, err := youtube.CollectPages(context.Background(), source.fetch, 120, nil)
	require.NoError(t, err)

	assert.Len(t, items, 120)
	assert.Equal(t, 3, source.calls)

	// Server order is preserved.
	for i, item := range items {
		assert.Equal(t, i, item)
	}

	// Page sizes are min(50, remaining): 50, 50, 20.
	assert.Equal(t, "50", source.queries[0].Get("maxResults"))
	assert.Equal(t, "50", source.queries[1].Get("maxResults"))
	assert.Equal(t, "20", source.queries[2].Get("maxResults"))
}

func TestCollectPages_ServerExhaustedBeforeCount(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 70}

	items, err := youtube.CollectPages(context.Background(), source.fetch, 120, nil)
	require.NoError(t, err)

	assert.Len(t, items, 70)
	assert.Equal(t, 2, source.calls)
}

func TestCollectPages_CountTooSmall(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 10}

	for _, desired := range []int{0, -1, -50} {
		items, err := youtube.CollectPages(context.Background(), source.fetch, desired, nil)
		require.ErrorIs(t, err, youtube.ErrCountTooSmall)
		assert.Nil(t, items)
	}

	// Validation failures issue no fetches at all.
	assert.Equal(t, 0, source.calls)
}

func TestCollectPages_StopsWhenCallerSatisfied(t *testing.T) {
	t.Parallel()

	// The server has 200 items and reports a next token after page 1, but a
	// request for exactly 50 is satisfied by that page, so the walk stops.
	source := &syntheticSource{total: 200}

	items, err := youtube.CollectPages(context.Background(), source.fetch, 50, nil)
	require.NoError(t, err)

	assert.Len(t, items, 50)
	assert.Equal(t, 1, source.calls)
}

func TestCollectPages_Unlimited(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 120}

	items, err := youtube.CollectPages(context.Background(), source.fetch, youtube.Unlimited, nil)
	require.NoError(t, err)

	assert.Len(t, items, 120)
	assert.Equal(t, 3, source.calls)
}

func TestCollectPages_FailureAbortsWalk(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 500, failAt: 2}

	items, err := youtube.CollectPages(context.Background(), source.fetch, 120, nil)
	require.ErrorIs(t, err, errSyntheticPage)

	// Items accumulated from the first page are discarded.
	assert.Nil(t, items)
	assert.Equal(t, 2, source.calls)
}

func TestCollectPages_OverridesCallerPagingKeys(t *testing.T) {
	t.Parallel()

	source := &syntheticSource{total: 500}

	params := url.Values{}
	params.Set("chart", "mostPopular")
	params.Set("maxResults", "99")
	params.Set("pageToken", "stale-token")

	items, err := youtube.CollectPages(context.Background(), source.fetch, 60, params)
	require.NoError(t, err)
	assert.Len(t, items, 60)

	// Caller parameters survive, but the collector owns paging keys.
	first := source.queries[0]
	assert.Equal(t, "mostPopular", first.Get("chart"))
	assert.Equal(t, "50", first.Get("maxResults"))
	assert.Empty(t, first.Get("pageToken"))

	second := source.queries[1]
	assert.Equal(t, "mostPopular", second.Get("chart"))
	assert.Equal(t, "10", second.Get("maxResults"))
	assert.Equal(t, "50", second.Get("pageToken"))

	// The caller's params map is never mutated.
	assert.Equal(t, "99", params.Get("maxResults"))
	assert.Equal(t, "stale-token", params.Get("pageToken"))
}

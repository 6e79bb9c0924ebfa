package airports_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/airports"
)

// pagedServer serves three single-airport pages. When limited is set the
// first request to page 2 answers 429.
func pagedServer(t *testing.T, limited bool, failPage int) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	var throttled int32
	ids := []string{"AAA", "BBB", "CCC"}

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		pageNo := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &pageNo)
		}
		if limited && pageNo == 2 && atomic.CompareAndSwapInt32(&throttled, 0, 1) {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		if pageNo == failPage {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		next := ""
		if pageNo < len(ids) {
			next = fmt.Sprintf("%s/api/airports?page=%d", srv.URL, pageNo+1)
		}
		last := fmt.Sprintf("%s/api/airports?page=%d", srv.URL, len(ids))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[{"id":%q,"type":"airport","attributes":{"city":"C%d","country":"X","latitude":"%d","longitude":"%d"}}],"links":{"next":%q,"last":%q}}`,
			ids[pageNo-1], pageNo, pageNo, pageNo, next, last)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func testClient() *airports.Client {
	c := airports.NewClient(nil, nil)
	c.RetryWait = time.Millisecond
	return c
}

func TestFetchAll_Pagination(t *testing.T) {
	srv, hits := pagedServer(t, false, 0)

	got, err := testClient().FetchAll(context.Background(), srv.URL+"/api/airports")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "AAA", got[0].ID)
	require.Equal(t, "CCC", got[2].ID)
	require.InDelta(t, 3.0, got[2].Latitude, 0)
	require.EqualValues(t, 3, atomic.LoadInt32(hits))
}

func TestFetchAll_StopsAtLast(t *testing.T) {
	srv, hits := pagedServer(t, false, 0)

	got, err := testClient().FetchAll(context.Background(), srv.URL+"/api/airports?page=3")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.EqualValues(t, 1, atomic.LoadInt32(hits))
}

func TestFetchAll_RetriesOn429(t *testing.T) {
	srv, hits := pagedServer(t, true, 0)

	got, err := testClient().FetchAll(context.Background(), srv.URL+"/api/airports")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.EqualValues(t, 4, atomic.LoadInt32(hits))
}

func TestFetchAll_RetryLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient()
	c.MaxRetries = 2
	got, err := c.FetchAll(context.Background(), srv.URL)
	require.Empty(t, got)
	require.True(t, errors.Is(err, airports.ErrRateLimited))
}

func TestFetchAll_UnexpectedStatusKeepsPartial(t *testing.T) {
	srv, _ := pagedServer(t, false, 2)

	got, err := testClient().FetchAll(context.Background(), srv.URL+"/api/airports")
	require.True(t, errors.Is(err, airports.ErrUnexpectedStatus))
	require.Len(t, got, 1)
	require.Equal(t, "AAA", got[0].ID)
}

func TestFetchAll_ContextCancelledDuringWait(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient()
	c.RetryWait = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchAll(ctx, srv.URL)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRefresh(t *testing.T) {
	srv, _ := pagedServer(t, false, 0)
	path := filepath.Join(t.TempDir(), "data", "airports.json")

	n, err := airports.Refresh(context.Background(), testClient(), srv.URL+"/api/airports", path)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	loaded, err := airports.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	require.Equal(t, "C2 (X) [BBB]", loaded[1].Label())
}

func TestRefresh_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	path := filepath.Join(t.TempDir(), "airports.json")

	n, err := airports.Refresh(context.Background(), testClient(), srv.URL, path)
	require.Zero(t, n)
	require.True(t, errors.Is(err, airports.ErrNoData))
	require.True(t, errors.Is(err, airports.ErrUnexpectedStatus))
	require.NoFileExists(t, path)
}

package category

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/common"
)

func testConfig(baseURL string) common.LookupConfig {
	return common.LookupConfig{
		BaseURL:  baseURL,
		APIKey:   "test-key",
		EngineID: "test-cx",
		Timeout:  5 * time.Second,
	}
}

func TestDetectResolvesCategory(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"title":"Samsung RT28T3743S8","snippet":"253L 3 Star double door refrigerator with digital inverter"},
			{"title":"Price comparison","snippet":"best fridge deals"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	got, err := c.Detect(context.Background(), "RT28T3743S8/HL")
	require.NoError(t, err)
	assert.Equal(t, constants.Refrigerator, got)
	assert.Equal(t, "RT28T3743S8/HL", gotQuery)
}

func TestDetectNoKeywordInResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"title":"unrelated","snippet":"nothing useful"}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	got, err := c.Detect(context.Background(), "XYZ-1")
	require.NoError(t, err)
	assert.Equal(t, constants.Category(""), got)
}

func TestDetectNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	got, err := c.Detect(context.Background(), "XYZ-1")
	assert.Error(t, err)
	assert.Equal(t, constants.Category(""), got)
}

func TestDetectDisabledClient(t *testing.T) {
	c := NewClient(common.LookupConfig{BaseURL: "http://unused.invalid"}, nil)

	assert.False(t, c.Enabled())

	got, err := c.Detect(context.Background(), "XYZ-1")
	require.NoError(t, err)
	assert.Equal(t, constants.Category(""), got)
}

func TestDetectEmptyModelSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty model number")
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)

	got, err := c.Detect(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, constants.Category(""), got)
}

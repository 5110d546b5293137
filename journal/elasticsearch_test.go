package journal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeES answers the handful of Elasticsearch endpoints the repository uses
type fakeES struct {
	mu       sync.Mutex
	index    string
	exists   bool
	creates  int
	failDocs bool
	docs     map[string]esDeal
}

func newFakeES(t *testing.T, index string) (*fakeES, *httptest.Server) {
	t.Helper()
	f := &fakeES{index: index, docs: make(map[string]esDeal)}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	docPrefix := "/" + f.index + "/_doc/"
	switch {
	case r.URL.Path == "/":
		w.Write([]byte(`{"version":{"number":"8.17.1"},"tagline":"You Know, for Search"}`))
	case r.URL.Path == "/"+f.index && r.Method == http.MethodHead:
		if !f.exists {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.URL.Path == "/"+f.index && r.Method == http.MethodPut:
		f.exists = true
		f.creates++
		w.Write([]byte(`{"acknowledged":true}`))
	case strings.HasPrefix(r.URL.Path, docPrefix):
		if f.failDocs {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		}
		var d esDeal
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.docs[strings.TrimPrefix(r.URL.Path, docPrefix)] = d
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"result":"created"}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (f *fakeES) update(fn func(*fakeES)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeES) counts() (creates, docs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates, len(f.docs)
}

func (f *fakeES) doc(id string) (esDeal, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	return d, ok
}

func TestElasticsearchRepository(t *testing.T) {
	fake, srv := newFakeES(t, "klondike_deals")

	repo, err := NewElasticsearchRepository(context.Background(), NewMemoryRepository(),
		&ElasticsearchConfig{URL: srv.URL})
	require.NoError(t, err)
	defer repo.Close()

	runRepositoryContract(t, repo)

	creates, docs := fake.counts()
	assert.Equal(t, 1, creates)
	assert.Equal(t, 3, docs)

	d, ok := fake.doc("b")
	require.True(t, ok)
	assert.Equal(t, "b", d.DealID)
	assert.Equal(t, "abandoned", d.Outcome)
	assert.Equal(t, int64(3*time.Minute/time.Millisecond), d.DurationMs)
	assert.True(t, start.Equal(d.StartedAt))
}

func TestElasticsearchRepositoryExistingIndex(t *testing.T) {
	fake, srv := newFakeES(t, "deals_test")
	fake.update(func(f *fakeES) { f.exists = true })

	repo, err := NewElasticsearchRepository(context.Background(), NewMemoryRepository(),
		&ElasticsearchConfig{URL: srv.URL, Index: "deals_test"})
	require.NoError(t, err)
	defer repo.Close()

	creates, _ := fake.counts()
	assert.Zero(t, creates)
}

func TestElasticsearchRepositoryIndexError(t *testing.T) {
	fake, srv := newFakeES(t, "klondike_deals")
	fake.update(func(f *fakeES) { f.failDocs = true })

	base := NewMemoryRepository()
	repo, err := NewElasticsearchRepository(context.Background(), base, &ElasticsearchConfig{URL: srv.URL})
	require.NoError(t, err)

	ctx := context.Background()
	assert.Error(t, repo.Save(ctx, entry("a", time.Minute, OutcomeWon)))

	got, err := base.Get(ctx, "a")
	require.NoError(t, err, "the base copy is written before indexing")
	assert.Equal(t, "a", got.ID)
}

func TestElasticsearchRepositoryBaseError(t *testing.T) {
	fake, srv := newFakeES(t, "klondike_deals")

	base := new(MockRepository)
	boom := errors.New("disk full")
	e := entry("a", time.Minute, OutcomeWon)
	base.On("Save", mock.Anything, e).Return(boom)
	base.On("Close").Return(nil)

	repo, err := NewElasticsearchRepository(context.Background(), base, &ElasticsearchConfig{URL: srv.URL})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Save(context.Background(), e), boom)
	_, indexed := fake.doc("a")
	assert.False(t, indexed)

	require.NoError(t, repo.Close())
	base.AssertExpectations(t)
}

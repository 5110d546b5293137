package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

const dealIndexMapping = `{
	"mappings": {
		"properties": {
			"deal_id": { "type": "keyword" },
			"draw_mode": { "type": "integer" },
			"started_at": { "type": "date" },
			"ended_at": { "type": "date" },
			"duration_ms": { "type": "long" },
			"outcome": { "type": "keyword" },
			"moves": { "type": "integer" },
			"draws": { "type": "integer" },
			"recycles": { "type": "integer" }
		}
	}
}`

// ElasticsearchConfig holds the connection settings for the search mirror
type ElasticsearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

// DefaultElasticsearchConfig returns the local single-node settings
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:   "http://localhost:9200",
		Index: "klondike_deals",
	}
}

// esDeal is the document indexed for each finished deal
type esDeal struct {
	DealID     string    `json:"deal_id"`
	DrawMode   int       `json:"draw_mode"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	DurationMs int64     `json:"duration_ms"`
	Outcome    string    `json:"outcome"`
	Moves      int       `json:"moves"`
	Draws      int       `json:"draws"`
	Recycles   int       `json:"recycles"`
}

func newESDeal(e *Entry) esDeal {
	return esDeal{
		DealID:     e.ID,
		DrawMode:   e.Mode,
		StartedAt:  e.StartedAt.UTC(),
		EndedAt:    e.EndedAt.UTC(),
		DurationMs: e.Duration().Milliseconds(),
		Outcome:    string(e.Outcome),
		Moves:      e.Moves,
		Draws:      e.Draws,
		Recycles:   e.Recycles,
	}
}

// ElasticsearchRepository mirrors every saved entry into an Elasticsearch index.
// Reads are served by the base repository.
type ElasticsearchRepository struct {
	base   Repository
	client *elasticsearch.Client
	index  string
}

// NewElasticsearchRepository wraps base and creates the deal index when missing
func NewElasticsearchRepository(ctx context.Context, base Repository, cfg *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.URL},
	}
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	index := cfg.Index
	if index == "" {
		index = DefaultElasticsearchConfig().Index
	}

	r := &ElasticsearchRepository{base: base, client: client, index: index}
	if err := r.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return r, nil
}

func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	if res.Body != nil {
		res.Body.Close()
	}

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("error checking if index exists: %s", res.String())
	}

	res, err = r.client.Indices.Create(
		r.index,
		r.client.Indices.Create.WithBody(strings.NewReader(dealIndexMapping)),
		r.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// Save stores the entry in the base repository, then indexes it by id
func (r *ElasticsearchRepository) Save(ctx context.Context, e *Entry) error {
	if err := r.base.Save(ctx, e); err != nil {
		return fmt.Errorf("error saving entry to base repository: %w", err)
	}
	return r.indexEntry(ctx, e)
}

func (r *ElasticsearchRepository) indexEntry(ctx context.Context, e *Entry) error {
	body, err := json.Marshal(newESDeal(e))
	if err != nil {
		return fmt.Errorf("error marshaling entry: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(body),
		r.client.Index.WithDocumentID(e.ID),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing entry: %s", res.String())
	}
	return nil
}

func (r *ElasticsearchRepository) Get(ctx context.Context, id string) (*Entry, error) {
	return r.base.Get(ctx, id)
}

func (r *ElasticsearchRepository) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	return r.base.Recent(ctx, limit)
}

func (r *ElasticsearchRepository) Summary(ctx context.Context) (Summary, error) {
	return r.base.Summary(ctx)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.base.Close()
}

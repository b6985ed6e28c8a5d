package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rowanmc/mccore/internal/layout"
)

// mojangVersionManifestURL lists every released version and its own
// manifest URL; it's the entry point when a caller only has a version id
// and nothing on disk yet.
const mojangVersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// catalogManifest is Mojang's all-versions discovery document, distinct
// from the per-version manifest internal/version resolves.
type catalogManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []catalogEntry `json:"versions"`
}

type catalogEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	ReleaseTime string `json:"releaseTime"`
}

// Catalog caches Mojang's version list for a short TTL so repeated
// FetchManifest calls in one CLI session don't refetch it per version.
type Catalog struct {
	httpClient *http.Client
	ttl        time.Duration

	cached   *catalogManifest
	cachedAt time.Time
}

// NewCatalog creates a Catalog with a 5 minute cache TTL.
func NewCatalog() *Catalog {
	return &Catalog{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		ttl:        5 * time.Minute,
	}
}

func (c *Catalog) manifest(ctx context.Context) (*catalogManifest, error) {
	if c.cached != nil && time.Since(c.cachedAt) < c.ttl {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mojangVersionManifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching version catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching version catalog: %d", resp.StatusCode)
	}

	var m catalogManifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding version catalog: %w", err)
	}
	c.cached = &m
	c.cachedAt = time.Now()
	return &m, nil
}

// LatestRelease returns the current release version id.
func (c *Catalog) LatestRelease(ctx context.Context) (string, error) {
	m, err := c.manifest(ctx)
	if err != nil {
		return "", err
	}
	return m.Latest.Release, nil
}

// LatestSnapshot returns the current snapshot version id.
func (c *Catalog) LatestSnapshot(ctx context.Context) (string, error) {
	m, err := c.manifest(ctx)
	if err != nil {
		return "", err
	}
	return m.Latest.Snapshot, nil
}

// find looks up id's catalog entry.
func (c *Catalog) find(ctx context.Context, id string) (*catalogEntry, error) {
	m, err := c.manifest(ctx)
	if err != nil {
		return nil, err
	}
	for i := range m.Versions {
		if m.Versions[i].ID == id {
			return &m.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("version not found in catalog: %s", id)
}

// FetchManifest downloads id's own manifest from the catalog entry's URL
// and writes it to {mcRoot}/versions/{id}/{id}.json, so version.Resolve
// has something to read. It does not follow inheritsFrom — a caller that
// needs a whole Forge/Fabric-style chain fetched must call FetchManifest
// once per id in the chain.
func (c *Catalog) FetchManifest(ctx context.Context, mcRoot, id string) error {
	entry, err := c.find(ctx, id)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, entry.URL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching manifest for %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status fetching manifest for %s: %d", id, resp.StatusCode)
	}

	lay := layout.New(mcRoot)
	if err := os.MkdirAll(lay.VersionRoot(id), 0755); err != nil {
		return fmt.Errorf("creating version directory: %w", err)
	}

	out, err := os.Create(lay.VersionJSON(id))
	if err != nil {
		return fmt.Errorf("creating manifest file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing manifest for %s: %w", id, err)
	}
	return nil
}

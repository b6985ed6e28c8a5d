package fetch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/rowanmc/mccore/internal/diagnose"
)

// Progress reports the state of an in-flight repair pass.
type Progress struct {
	TotalItems      int
	CompletedItems  int
	TotalBytes      int64
	DownloadedBytes int64
	CurrentItem     string
	Speed           float64
}

// SpeedString formats Speed (bytes/sec) the way the CLI prints it.
func (p Progress) SpeedString() string {
	return humanize.Bytes(uint64(p.Speed)) + "/s"
}

// Result summarizes a completed repair pass.
type Result struct {
	Completed int
	Failed    int
	Errors    []error
}

// Fetcher downloads repair items with bounded worker concurrency.
type Fetcher struct {
	httpClient  *http.Client
	workerCount int
}

// New creates a Fetcher with workerCount parallel downloads (default 4).
func New(workerCount int) *Fetcher {
	if workerCount <= 0 {
		workerCount = 4
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = nil

	retryClient.HTTPClient.Transport = &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	retryClient.HTTPClient.Timeout = 5 * time.Minute

	return &Fetcher{
		httpClient:  retryClient.StandardClient(),
		workerCount: workerCount,
	}
}

// Fetch downloads every item, reporting progress on progressChan if
// non-nil. An item already present on disk with a matching SHA1 is
// skipped without a network request.
func (f *Fetcher) Fetch(ctx context.Context, items []Item, progressChan chan<- Progress) (*Result, error) {
	if len(items) == 0 {
		return &Result{}, nil
	}

	var totalSize int64
	for _, item := range items {
		if item.Size > 0 {
			totalSize += item.Size
		}
	}

	work := make(chan Item, len(items))
	for _, item := range items {
		work <- item
	}
	close(work)

	var (
		completed       int64
		failed          int64
		downloadedBytes int64
		errMu           sync.Mutex
		errs            []error
	)

	done := make(chan struct{})
	progressDone := make(chan struct{})
	if progressChan != nil {
		go func() {
			defer close(progressDone)
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()

			var lastBytes int64
			lastTime := time.Now()
			for {
				select {
				case <-ctx.Done():
					return
				case <-done:
					return
				case <-ticker.C:
					now := time.Now()
					cur := atomic.LoadInt64(&downloadedBytes)
					elapsed := now.Sub(lastTime).Seconds()
					var speed float64
					if elapsed > 0 {
						speed = float64(cur-lastBytes) / elapsed
						lastBytes = cur
						lastTime = now
					}
					p := Progress{
						TotalItems:      len(items),
						CompletedItems:  int(atomic.LoadInt64(&completed)),
						TotalBytes:      totalSize,
						DownloadedBytes: cur,
						Speed:           speed,
					}
					select {
					case progressChan <- p:
					default:
					}
				}
			}
		}()
	} else {
		close(progressDone)
	}

	var wg sync.WaitGroup
	for i := 0; i < f.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if err := f.fetchItem(ctx, item, &downloadedBytes); err != nil {
					atomic.AddInt64(&failed, 1)
					errMu.Lock()
					errs = append(errs, fmt.Errorf("%s: %w", item.URL, err))
					errMu.Unlock()
				} else {
					atomic.AddInt64(&completed, 1)
				}
			}
		}()
	}
	wg.Wait()
	close(done)
	<-progressDone

	return &Result{Completed: int(completed), Failed: int(failed), Errors: errs}, nil
}

func (f *Fetcher) fetchItem(ctx context.Context, item Item, downloadedBytes *int64) error {
	if item.SHA1 != "" {
		if hash, err := hashFile(item.Path); err == nil && hash == item.SHA1 {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(item.Path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	tmpPath := item.Path + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	hasher := sha1.New()
	writer := io.MultiWriter(out, hasher)
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := writer.Write(buf[:n]); writeErr != nil {
				out.Close()
				os.Remove(tmpPath)
				return fmt.Errorf("writing file: %w", writeErr)
			}
			atomic.AddInt64(downloadedBytes, int64(n))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("reading response: %w", readErr)
		}
	}

	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing file: %w", err)
	}

	if item.SHA1 != "" {
		hash := hex.EncodeToString(hasher.Sum(nil))
		if hash != item.SHA1 {
			os.Remove(tmpPath)
			return fmt.Errorf("hash mismatch: expected %s, got %s", item.SHA1, hash)
		}
	}

	if err := os.Rename(tmpPath, item.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming file: %w", err)
	}
	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Repair is the convenience entry point a CLI reaches for: plan a
// diagnose.Report into download items and fetch them all. The returned
// issues are those Plan could not turn into a download (see Plan's doc
// comment on the versionJson case).
func (f *Fetcher) Repair(ctx context.Context, report *diagnose.Report, progressChan chan<- Progress) (*Result, []diagnose.Issue, error) {
	items, skipped := Plan(report)
	result, err := f.Fetch(ctx, items, progressChan)
	return result, skipped, err
}

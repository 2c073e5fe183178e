// Package audio fetches spoken audio for card text from a translate TTS
// endpoint and keeps the files in a size-bounded local cache.
package audio

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-resty/resty/v2"
)

const (
	defaultEndpoint = "https://translate.google.com/translate_tts"

	// DefaultMaxCacheSizeMB bounds the audio directory before eviction.
	DefaultMaxCacheSizeMB = 100
)

type Cache struct {
	rootDir  string
	maxBytes int64
	endpoint string
	client   *resty.Client

	mu sync.Mutex
}

func NewCache(rootDir string, maxSizeMB int) *Cache {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxCacheSizeMB
	}
	return &Cache{
		rootDir:  rootDir,
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
		endpoint: defaultEndpoint,
		client:   resty.New(),
	}
}

// SetEndpoint overrides the TTS endpoint, for tests.
func (cache *Cache) SetEndpoint(endpoint string) {
	cache.endpoint = endpoint
}

// TextForPlayback picks what to speak for a card. The example sentence
// gives the word in context when enrichment produced one.
func TextForPlayback(word, example string) string {
	if example != "" {
		return example
	}
	return word
}

func (cache *Cache) filePath(text, language string) string {
	sum := sha1.Sum([]byte(language + "\n" + text))
	return filepath.Join(cache.rootDir, "tts_"+hex.EncodeToString(sum[:])+".mp3")
}

// Fetch returns the path of the cached audio file for text, downloading
// it first on a cache miss. Concurrent calls for the same text fetch
// once; the last writer wins, which is harmless as the content is the
// same.
func (cache *Cache) Fetch(ctx context.Context, text, language string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("empty text")
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	localFilePath := cache.filePath(text, language)
	if _, err := os.Stat(localFilePath); err == nil {
		return localFilePath, nil
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll > %w", err)
	}

	contents, err := cache.fetchTTS(ctx, text, language)
	if err != nil {
		return "", fmt.Errorf("cache.fetchTTS > %w", err)
	}

	file, err := os.Create(localFilePath)
	if err != nil {
		return "", fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return "", fmt.Errorf("file.Write > %w", err)
	}

	if err := cache.trim(); err != nil {
		return localFilePath, fmt.Errorf("cache.trim > %w", err)
	}
	return localFilePath, nil
}

func (cache *Cache) fetchTTS(ctx context.Context, text, language string) ([]byte, error) {
	res, err := cache.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":     "UTF-8",
			"q":      text,
			"tl":     language,
			"client": "tw-ob",
		}).
		Get(cache.endpoint)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w, response %s", err, string(res.Body()))
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

type cacheFile struct {
	path    string
	size    int64
	modTime int64
}

// trim deletes the oldest files first until the directory fits the size
// cap again.
func (cache *Cache) trim() error {
	entries, err := os.ReadDir(cache.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("os.ReadDir > %w", err)
	}

	var totalSize int64
	var files []cacheFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mp3" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		totalSize += info.Size()
		files = append(files, cacheFile{
			path:    filepath.Join(cache.rootDir, entry.Name()),
			size:    info.Size(),
			modTime: info.ModTime().UnixNano(),
		})
	}
	if totalSize <= cache.maxBytes {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime < files[j].modTime
	})
	for _, f := range files {
		if totalSize <= cache.maxBytes {
			break
		}
		if err := os.Remove(f.path); err != nil {
			return fmt.Errorf("os.Remove(%s) > %w", f.path, err)
		}
		totalSize -= f.size
	}
	return nil
}

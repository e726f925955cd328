package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const fileMode = 0o600

// FileHolder persists the token as a single file under a base URL. Any afs
// supported scheme works; a plain path resolves to the local file system.
// It is a lightweight way to survive process restarts in CLI tools.
type FileHolder struct {
	mu  sync.Mutex
	fs  afs.Service
	URL string
}

// NewFile creates a Holder that persists the token at baseURL/auth_token.
func NewFile(baseURL string) *FileHolder {
	return &FileHolder{
		fs:  afs.New(),
		URL: url.Join(baseURL, TokenKey),
	}
}

func (f *FileHolder) Get(ctx context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return "", false, fmt.Errorf("failed to check token %v: %w", f.URL, err)
	}
	if !ok {
		return "", false, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return "", false, fmt.Errorf("failed to read token %v: %w", f.URL, err)
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

func (f *FileHolder) Set(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.URL + ".tmp"
	if err := f.fs.Upload(ctx, tmp, fileMode, bytes.NewReader([]byte(token))); err != nil {
		return fmt.Errorf("failed to write token %v: %w", tmp, err)
	}
	if err := f.fs.Move(ctx, tmp, f.URL); err != nil {
		return fmt.Errorf("failed to store token %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileHolder) Remove(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to check token %v: %w", f.URL, err)
	}
	if !ok {
		return nil
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to remove token %v: %w", f.URL, err)
	}
	return nil
}

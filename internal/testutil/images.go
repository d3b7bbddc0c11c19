package testutil

import (
	"context"
	"fmt"
	"sync"

	"foodgram/internal/utils/storage"
)

// Images records saved and deleted image references.
type Images struct {
	mu      sync.Mutex
	Saved   []string
	Deleted []string
}

func (i *Images) SaveImage(_ context.Context, encoded string) (string, error) {
	if _, _, err := storage.ParseDataURI(encoded); err != nil {
		return "", err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	ref := fmt.Sprintf("https://images.test/recipes/%d.png", len(i.Saved)+1)
	i.Saved = append(i.Saved, ref)
	return ref, nil
}

func (i *Images) DeleteImage(_ context.Context, ref string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Deleted = append(i.Deleted, ref)
	return nil
}

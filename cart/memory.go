package cart

import (
	"context"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

// memoryBackend holds cart lines in process memory. It backs anonymous
// sessions, where there is no durable identity to persist against, and is
// the obvious fake for Store tests. The ownerID argument is ignored; a
// memory backend belongs to exactly one session.
type memoryBackend struct {
	items []models.CartItem
}

// NewMemoryBackend returns an empty in-memory cart backend.
func NewMemoryBackend() Backend {
	return &memoryBackend{}
}

func (m *memoryBackend) Load(ctx context.Context, ownerID string) ([]models.CartItem, error) {
	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryBackend) Upsert(ctx context.Context, ownerID string, item models.CartItem) error {
	key := KeyOf(item)
	for i := range m.items {
		if KeyOf(m.items[i]) == key {
			m.items[i].Quantity += item.Quantity
			m.items[i].AddedAt = time.Now()
			return nil
		}
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memoryBackend) SetQuantity(ctx context.Context, ownerID string, key LineKey, quantity int) error {
	for i := range m.items {
		if KeyOf(m.items[i]) == key {
			m.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (m *memoryBackend) Remove(ctx context.Context, ownerID string, key LineKey) error {
	for i := range m.items {
		if KeyOf(m.items[i]) == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryBackend) Clear(ctx context.Context, ownerID string) error {
	m.items = nil
	return nil
}

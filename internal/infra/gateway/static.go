package gateway

import (
	"context"
	"maps"
	"sync"

	"booking-reconciler/internal/domain/checkout"
)

// Static serves transactions registered in memory. Used for local runs and end-to-end tests.
type Static struct {
	mu  sync.RWMutex
	txs map[string]checkout.PaymentTransaction
}

func NewStatic() *Static {
	return &Static{txs: make(map[string]checkout.PaymentTransaction)}
}

func (s *Static) Register(tx checkout.PaymentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.Metadata = maps.Clone(tx.Metadata)
	s.txs[tx.ID] = tx
}

func (s *Static) Lookup(_ context.Context, transactionID string) (*checkout.PaymentTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.txs[transactionID]
	if !ok {
		return nil, nil
	}
	tx.Metadata = maps.Clone(tx.Metadata)
	return &tx, nil
}

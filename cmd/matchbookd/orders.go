package main

import (
	"encoding/binary"

	"github.com/google/uuid"

	"matchbook/domain"
)

// idGenerator mints domain.IDs for orders submitted through this process.
// The matching core never allocates ids itself, since it takes
// caller-supplied ones, so any external entry point needs its own source;
// this harness uses uuid.New() truncated to its first 8 bytes rather than
// a bare counter, so ids stay unique across process restarts.
type idGenerator struct{}

func newIDGenerator() *idGenerator {
	return &idGenerator{}
}

func (idGenerator) Next() domain.ID {
	u := uuid.New()
	return domain.ID(binary.BigEndian.Uint64(u[:8]) & 0x7fffffffffffffff)
}

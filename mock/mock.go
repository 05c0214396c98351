// Package mock provides function-field mocks for the commitgen interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Forge = (*Forge)(nil)

// Forge is a mock implementation of commitgen.Forge.
type Forge struct {
	CreateRepositoryFn func(ctx context.Context, req commitgen.CreateRepoRequest) (*commitgen.Repository, error)
}

func (f *Forge) CreateRepository(ctx context.Context, req commitgen.CreateRepoRequest) (*commitgen.Repository, error) {
	return f.CreateRepositoryFn(ctx, req)
}

// Compile-time interface verification.
var _ commitgen.Picker = (*Picker)(nil)

// Picker is a mock implementation of commitgen.Picker.
type Picker struct {
	PickFn func(ctx context.Context, hunks []commitgen.DiffHunk) ([]commitgen.DiffHunk, error)
}

func (p *Picker) Pick(ctx context.Context, hunks []commitgen.DiffHunk) ([]commitgen.DiffHunk, error) {
	return p.PickFn(ctx, hunks)
}

// Compile-time interface verification.
var _ commitgen.PatchValidator = (*PatchValidator)(nil)

// PatchValidator is a mock implementation of commitgen.PatchValidator.
type PatchValidator struct {
	ValidateFn func(patch string) error
}

func (v *PatchValidator) Validate(patch string) error {
	return v.ValidateFn(patch)
}

// Compile-time interface verification.
var _ commitgen.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of commitgen.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// Compile-time interface verification.
var _ commitgen.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of commitgen.HistoryStore.
type HistoryStore struct {
	AppendFn func(path string, entry commitgen.HistoryEntry) error
	LoadFn   func(path string) ([]commitgen.HistoryEntry, error)
}

func (s *HistoryStore) Append(path string, entry commitgen.HistoryEntry) error {
	return s.AppendFn(path, entry)
}

func (s *HistoryStore) Load(path string) ([]commitgen.HistoryEntry, error) {
	return s.LoadFn(path)
}

// Package account owns everything persisted per user: the active session,
// the billing profile and the append-only document history.
//
// All of it lives in two keys of a storage.Store per document type:
// "<scope>.current_user" and "<scope>.users". The users key holds one JSON
// object for every user; each mutation reads the whole object, changes it in
// memory and writes it back before returning.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/storage"
)

// userRecord is the decoded form of one entry of the users blob.
type userRecord struct {
	Profile   models.Profile
	Documents []*models.Document
}

func newUserRecord() *userRecord {
	return &userRecord{Profile: models.NewProfile(), Documents: []*models.Document{}}
}

// usersBlob is the decoded users key. Records that cannot be read by this
// version are kept in raw and written back untouched.
type usersBlob struct {
	users map[string]*userRecord
	raw   map[string]json.RawMessage
}

// Registry serializes read-modify-write cycles on the users blob of one document type.
type Registry struct {
	store   storage.Store
	docType *models.DocType
	logger  *slog.Logger

	mu sync.Mutex
}

// NewRegistry creates a registry for docType backed by store.
func NewRegistry(store storage.Store, docType *models.DocType, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		store:   store,
		docType: docType,
		logger:  logger.With("doc_type", docType.Key),
	}
}

// DocType returns the descriptor the registry was built for.
func (r *Registry) DocType() *models.DocType { return r.docType }

// Users returns the ids of every stored user in sorted order.
func (r *Registry) Users(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(blob.users)+len(blob.raw))
	for id := range blob.users {
		ids = append(ids, id)
	}
	for id := range blob.raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// view runs fn against the stored record of id without writing anything back.
func (r *Registry) view(ctx context.Context, id string, fn func(*userRecord) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := r.load(ctx)
	if err != nil {
		return err
	}
	rec, err := blob.lookup(id)
	if err != nil {
		return err
	}
	return fn(rec)
}

// update runs fn against the record of id and persists the blob when fn
// reports a change. With create set, a missing user is created (and persisted
// even if fn changes nothing).
func (r *Registry) update(ctx context.Context, id string, create bool, fn func(*userRecord) (bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := r.load(ctx)
	if err != nil {
		return err
	}

	created := false
	rec, err := blob.lookup(id)
	if errors.Is(err, models.ErrNotFound) && create {
		rec = newUserRecord()
		blob.users[id] = rec
		created = true
	} else if err != nil {
		return err
	}

	changed, err := fn(rec)
	if err != nil {
		return err
	}
	if !changed && !created {
		return nil
	}
	return r.save(ctx, blob)
}

func (b *usersBlob) lookup(id string) (*userRecord, error) {
	if _, ok := b.raw[id]; ok {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrSchemaVersion)
	}
	rec, ok := b.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return rec, nil
}

// load reads and decodes the users blob. A missing or malformed blob is an
// empty one; only storage failures are returned.
func (r *Registry) load(ctx context.Context) (*usersBlob, error) {
	blob := &usersBlob{
		users: make(map[string]*userRecord),
		raw:   make(map[string]json.RawMessage),
	}

	data, err := r.store.Get(ctx, r.docType.UsersKey())
	if errors.Is(err, storage.ErrNotFound) {
		return blob, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("Resetting users store", "key", r.docType.UsersKey(),
			"error", fmt.Errorf("%w: %v", models.ErrStorageCorrupt, err))
		return blob, nil
	}

	for id, raw := range entries {
		rec, err := decodeRecord(id, raw, r.docType)
		switch {
		case errors.Is(err, models.ErrSchemaVersion):
			r.logger.Warn("Keeping user record from newer schema", "user_id", id)
			blob.raw[id] = raw
		case err != nil:
			r.logger.Warn("Dropping unreadable user record", "user_id", id, "error", err)
		default:
			blob.users[id] = rec
		}
	}
	return blob, nil
}

func (r *Registry) save(ctx context.Context, blob *usersBlob) error {
	entries := make(map[string]json.RawMessage, len(blob.users)+len(blob.raw))
	for id, raw := range blob.raw {
		entries[id] = raw
	}
	for id, rec := range blob.users {
		raw, err := encodeRecord(rec, r.docType)
		if err != nil {
			return fmt.Errorf("failed to encode user %s: %w", id, err)
		}
		entries[id] = raw
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Put(ctx, r.docType.UsersKey(), data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

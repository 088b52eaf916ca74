package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ashmarin/vault-serve/internal/crypto"
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/store"
	"github.com/ashmarin/vault-serve/models"
)

// vaultService implements [VaultService] over the encrypted cipher cache.
// It owns field-level decryption: records come out of the store ciphered
// and are opened here with the key the [KeyProvider] resolves for their
// owner (user or organization).
type vaultService struct {
	store    store.VaultStore
	keys     KeyProvider
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewVaultService constructs a [VaultService].
func NewVaultService(vaultStore store.VaultStore, keys KeyProvider, keychain crypto.KeyChainService, logger *logger.Logger) VaultService {
	return &vaultService{
		store:    vaultStore,
		keys:     keys,
		keychain: keychain,
		logger:   logger,
	}
}

// GetObject implements [VaultService].
func (s *vaultService) GetObject(ctx context.Context, kind models.ObjectKind, identifier string) (any, error) {
	switch kind {
	case models.KindItem:
		return resolveOne[models.VaultItem](ctx, s, kind, identifier)
	case models.KindFolder:
		return resolveOne[models.FolderRef](ctx, s, kind, identifier)
	case models.KindCollection:
		return resolveOne[models.CollectionRef](ctx, s, kind, identifier)
	case models.KindOrganization:
		return resolveOne[models.OrganizationRef](ctx, s, kind, identifier)
	case models.KindSend:
		return resolveOne[models.SendRef](ctx, s, kind, identifier)
	default:
		return nil, fmt.Errorf("%w: unknown object kind %q", ErrValidation, kind)
	}
}

// ListObjects implements [VaultService]. When search is non-empty the
// listing is narrowed with the same case-insensitive substring policy the
// resolver uses.
func (s *vaultService) ListObjects(ctx context.Context, kind models.ObjectKind, search string) (any, int, error) {
	switch kind {
	case models.KindItem:
		return listFiltered[models.VaultItem](ctx, s, kind, search)
	case models.KindFolder:
		return listFiltered[models.FolderRef](ctx, s, kind, search)
	case models.KindCollection:
		return listFiltered[models.CollectionRef](ctx, s, kind, search)
	case models.KindOrganization:
		return listFiltered[models.OrganizationRef](ctx, s, kind, search)
	case models.KindSend:
		return listFiltered[models.SendRef](ctx, s, kind, search)
	default:
		return nil, 0, fmt.Errorf("%w: unknown object kind %q", ErrValidation, kind)
	}
}

// CreateObject implements [VaultService].
func (s *vaultService) CreateObject(ctx context.Context, kind models.ObjectKind, body []byte) (any, error) {
	switch kind {
	case models.KindItem:
		var item models.VaultItem
		if err := decodeBody(body, &item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		return item, s.putObject(ctx, kind, item.ID, item.OrganizationID, item)
	case models.KindFolder:
		var folder models.FolderRef
		if err := decodeBody(body, &folder); err != nil {
			return nil, err
		}
		if folder.ID == "" {
			folder.ID = uuid.NewString()
		}
		return folder, s.putObject(ctx, kind, folder.ID, "", folder)
	case models.KindCollection:
		var collection models.CollectionRef
		if err := decodeBody(body, &collection); err != nil {
			return nil, err
		}
		if collection.ID == "" {
			collection.ID = uuid.NewString()
		}
		return collection, s.putObject(ctx, kind, collection.ID, collection.OrganizationID, collection)
	case models.KindSend:
		var send models.SendRef
		if err := decodeBody(body, &send); err != nil {
			return nil, err
		}
		if send.ID == "" {
			send.ID = uuid.NewString()
		}
		return send, s.putObject(ctx, kind, send.ID, "", send)
	default:
		return nil, fmt.Errorf("%w: cannot create objects of kind %q", ErrValidation, kind)
	}
}

// EditObject implements [VaultService]. The body is a full replacement;
// the id and ownership of the existing object win over whatever the body
// claims.
func (s *vaultService) EditObject(ctx context.Context, kind models.ObjectKind, identifier string, body []byte) (any, error) {
	switch kind {
	case models.KindItem:
		existing, err := resolveOne[models.VaultItem](ctx, s, kind, identifier)
		if err != nil {
			return nil, err
		}
		var item models.VaultItem
		if err := decodeBody(body, &item); err != nil {
			return nil, err
		}
		item.ID = existing.ID
		item.OrganizationID = existing.OrganizationID
		return item, s.putObject(ctx, kind, item.ID, item.OrganizationID, item)
	case models.KindFolder:
		existing, err := resolveOne[models.FolderRef](ctx, s, kind, identifier)
		if err != nil {
			return nil, err
		}
		var folder models.FolderRef
		if err := decodeBody(body, &folder); err != nil {
			return nil, err
		}
		folder.ID = existing.ID
		return folder, s.putObject(ctx, kind, folder.ID, "", folder)
	case models.KindCollection:
		existing, err := resolveOne[models.CollectionRef](ctx, s, kind, identifier)
		if err != nil {
			return nil, err
		}
		var collection models.CollectionRef
		if err := decodeBody(body, &collection); err != nil {
			return nil, err
		}
		collection.ID = existing.ID
		collection.OrganizationID = existing.OrganizationID
		return collection, s.putObject(ctx, kind, collection.ID, collection.OrganizationID, collection)
	case models.KindSend:
		existing, err := resolveOne[models.SendRef](ctx, s, kind, identifier)
		if err != nil {
			return nil, err
		}
		var send models.SendRef
		if err := decodeBody(body, &send); err != nil {
			return nil, err
		}
		send.ID = existing.ID
		return send, s.putObject(ctx, kind, send.ID, "", send)
	default:
		return nil, fmt.Errorf("%w: cannot edit objects of kind %q", ErrValidation, kind)
	}
}

// DeleteObject implements [VaultService] as a soft delete.
func (s *vaultService) DeleteObject(ctx context.Context, kind models.ObjectKind, identifier string) error {
	obj, err := s.GetObject(ctx, kind, identifier)
	if err != nil {
		return err
	}

	named, ok := obj.(Named)
	if !ok {
		return fmt.Errorf("%w: cannot delete objects of kind %q", ErrValidation, kind)
	}

	if err := s.store.SetDeleted(ctx, kind, named.GetID(), true); err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			return fmt.Errorf("%w: no %s with id %s", ErrNotFound, kind, named.GetID())
		}
		return err
	}

	return nil
}

// GetItem implements [VaultService].
func (s *vaultService) GetItem(ctx context.Context, identifier string) (models.VaultItem, error) {
	return resolveOne[models.VaultItem](ctx, s, models.KindItem, identifier)
}

// SaveItem implements [VaultService].
func (s *vaultService) SaveItem(ctx context.Context, item models.VaultItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: item id is required", ErrValidation)
	}
	return s.putObject(ctx, models.KindItem, item.ID, item.OrganizationID, item)
}

// RestoreItem implements [VaultService]. Trashed items are excluded from
// name listings, so restore takes the exact id only.
func (s *vaultService) RestoreItem(ctx context.Context, id string) error {
	normalized := strings.ToLower(strings.TrimSpace(id))
	if !isCanonicalID(normalized) {
		return fmt.Errorf("%w: restore requires the exact item id", ErrValidation)
	}

	if err := s.store.SetDeleted(ctx, models.KindItem, normalized, false); err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			return fmt.Errorf("%w: no item with id %s", ErrNotFound, normalized)
		}
		return err
	}

	return nil
}

// MoveItem implements [VaultService].
func (s *vaultService) MoveItem(ctx context.Context, itemIdentifier, organizationID string) (models.VaultItem, error) {
	if organizationID == "" {
		return models.VaultItem{}, fmt.Errorf("%w: organization id is required", ErrValidation)
	}

	item, err := resolveOne[models.VaultItem](ctx, s, models.KindItem, itemIdentifier)
	if err != nil {
		return models.VaultItem{}, err
	}

	// Resolving the org key up front also validates that the account is a
	// member of the target organization.
	orgKey, err := s.keys.SymmetricKey(ctx, organizationID)
	if err != nil {
		return models.VaultItem{}, err
	}

	item.OrganizationID = organizationID

	blob, err := s.keychain.EncryptData(item, orgKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("re-encrypting moved item failed")
		return models.VaultItem{}, ErrCrypto
	}

	if err := s.store.SetOrganization(ctx, item.ID, organizationID, blob); err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			return models.VaultItem{}, fmt.Errorf("%w: no item with id %s", ErrNotFound, item.ID)
		}
		return models.VaultItem{}, err
	}

	return item, nil
}

// putObject encrypts the object with its owner's key and upserts the
// cipher record.
func (s *vaultService) putObject(ctx context.Context, kind models.ObjectKind, id, organizationID string, object any) error {
	key, err := s.keys.SymmetricKey(ctx, organizationID)
	if err != nil {
		return err
	}

	blob, err := s.keychain.EncryptData(object, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("encrypting vault object failed")
		return ErrCrypto
	}

	return s.store.Upsert(ctx, models.CipherRecord{
		ID:             id,
		Kind:           kind,
		OrganizationID: organizationID,
		Data:           blob,
	})
}

// resolveOne runs the shared resolution policy for one kind and converts
// the outcome into the error taxonomy: NotFound and Ambiguous become
// errors the facade can report, Found yields the object.
func resolveOne[T Named](ctx context.Context, s *vaultService, kind models.ObjectKind, identifier string) (T, error) {
	var zero T

	res, err := Resolve(ctx, identifier, lookupRecord[T](s, kind), listRecords[T](s, kind))
	if err != nil {
		return zero, err
	}

	switch res.State {
	case Found:
		return res.Object, nil
	case Ambiguous:
		return zero, &AmbiguousError{CandidateIDs: res.CandidateIDs}
	default:
		return zero, fmt.Errorf("%w: no %s matching %q", ErrNotFound, kind, identifier)
	}
}

// lookupRecord adapts the cipher store's by-id lookup to the resolver's
// lookupByID collaborator for one kind.
func lookupRecord[T Named](s *vaultService, kind models.ObjectKind) func(ctx context.Context, id string) (T, bool, error) {
	return func(ctx context.Context, id string) (T, bool, error) {
		var zero T

		record, err := s.store.Get(ctx, kind, id)
		if err != nil {
			if errors.Is(err, store.ErrObjectNotFound) {
				return zero, false, nil
			}
			return zero, false, err
		}

		obj, err := decryptRecord[T](ctx, s, record)
		if err != nil {
			return zero, false, err
		}

		return obj, true, nil
	}
}

// listRecords adapts the cipher store's listing to the resolver's listAll
// collaborator for one kind.
func listRecords[T Named](s *vaultService, kind models.ObjectKind) func(ctx context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		records, err := s.store.List(ctx, kind)
		if err != nil {
			return nil, err
		}

		objects := make([]T, 0, len(records))
		for _, record := range records {
			obj, err := decryptRecord[T](ctx, s, record)
			if err != nil {
				return nil, err
			}
			objects = append(objects, obj)
		}

		return objects, nil
	}
}

func decryptRecord[T any](ctx context.Context, s *vaultService, record models.CipherRecord) (T, error) {
	var obj T

	key, err := s.keys.SymmetricKey(ctx, record.OrganizationID)
	if err != nil {
		return obj, err
	}

	if err := s.keychain.DecryptData(record.Data, key, &obj); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", record.ID).Msg("cipher record failed to decrypt")
		return obj, ErrCrypto
	}

	return obj, nil
}

func listFiltered[T Named](ctx context.Context, s *vaultService, kind models.ObjectKind, search string) (any, int, error) {
	all, err := listRecords[T](s, kind)(ctx)
	if err != nil {
		return nil, 0, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return all, len(all), nil
	}

	filtered := make([]T, 0, len(all))
	for _, candidate := range all {
		if strings.Contains(strings.ToLower(candidate.GetName()), needle) {
			filtered = append(filtered, candidate)
		}
	}

	return filtered, len(filtered), nil
}

func decodeBody(body []byte, target any) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: request body is required", ErrValidation)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

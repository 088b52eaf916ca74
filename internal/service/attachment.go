package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/internal/crypto"
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/store"
	"github.com/ashmarin/vault-serve/models"
)

// attachmentService implements [AttachmentService]: the resolve → select →
// authorize → fetch → decrypt → persist pipeline.
type attachmentService struct {
	vault    VaultService
	accounts store.AccountStore
	keys     KeyProvider
	gateway  adapter.Gateway
	keychain crypto.KeyChainService
}

// NewAttachmentService constructs an [AttachmentService].
func NewAttachmentService(vault VaultService, accounts store.AccountStore, keys KeyProvider, gateway adapter.Gateway, keychain crypto.KeyChainService) AttachmentService {
	return &attachmentService{
		vault:    vault,
		accounts: accounts,
		keys:     keys,
		gateway:  gateway,
		keychain: keychain,
	}
}

// Retrieve implements [AttachmentService].
//
// The entitlement gate runs strictly after selector matching: an ambiguous
// selector must surface as ambiguity, not as an entitlement failure, so the
// caller learns which attachment ids exist before hitting authorization.
func (a *attachmentService) Retrieve(ctx context.Context, itemIdentifier, attachmentSelector string) (models.AttachmentMeta, []byte, error) {
	log := logger.FromContext(ctx)

	if attachmentSelector == "" {
		return models.AttachmentMeta{}, nil, fmt.Errorf("%w: attachment id or file name is required", ErrValidation)
	}

	item, err := a.vault.GetItem(ctx, itemIdentifier)
	if err != nil {
		// NotFound and Ambiguous pass through verbatim.
		return models.AttachmentMeta{}, nil, err
	}

	if len(item.Attachments) == 0 {
		return models.AttachmentMeta{}, nil, ErrNoAttachments
	}

	meta, err := selectAttachment(item.Attachments, attachmentSelector)
	if err != nil {
		return models.AttachmentMeta{}, nil, err
	}

	account, err := a.accounts.Load(ctx)
	if err != nil {
		return models.AttachmentMeta{}, nil, err
	}

	// Organization-owned items are downloadable without premium. Flagged
	// for product review; reproduced as the upstream policy states it.
	if !account.Premium && item.OrganizationID == "" {
		return models.AttachmentMeta{}, nil, ErrEntitlementRequired
	}

	ciphertext, err := a.gateway.DownloadAttachment(ctx, meta.DownloadURL)
	if err != nil {
		log.Err(err).Str("attachment", meta.ID).Msg("attachment fetch failed")
		return models.AttachmentMeta{}, nil, err
	}

	key, err := a.keys.SymmetricKey(ctx, item.OrganizationID)
	if err != nil {
		return models.AttachmentMeta{}, nil, err
	}

	plaintext, err := a.keychain.DecryptBytes(ciphertext, key)
	if err != nil {
		log.Err(err).Str("attachment", meta.ID).Msg("attachment failed to decrypt")
		return models.AttachmentMeta{}, nil, ErrCrypto
	}

	return meta, plaintext, nil
}

// RetrieveToFile implements [AttachmentService].
func (a *attachmentService) RetrieveToFile(ctx context.Context, itemIdentifier, attachmentSelector, output string) (models.SavedFileResponse, error) {
	meta, plaintext, err := a.Retrieve(ctx, itemIdentifier, attachmentSelector)
	if err != nil {
		return models.SavedFileResponse{}, err
	}

	path, err := store.SaveAttachment(output, meta.FileName, plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("attachment", meta.ID).Msg("attachment persistence failed")
		return models.SavedFileResponse{}, fmt.Errorf("%w: %s", ErrPersistence, meta.FileName)
	}

	return models.SavedFileResponse{Path: path, Size: int64(len(plaintext))}, nil
}

// Upload implements [AttachmentService].
func (a *attachmentService) Upload(ctx context.Context, itemIdentifier, fileName string, content []byte) (models.VaultItem, error) {
	if fileName == "" {
		return models.VaultItem{}, fmt.Errorf("%w: file name is required", ErrValidation)
	}
	if len(content) == 0 {
		return models.VaultItem{}, fmt.Errorf("%w: file content is required", ErrValidation)
	}

	item, err := a.vault.GetItem(ctx, itemIdentifier)
	if err != nil {
		return models.VaultItem{}, err
	}

	key, err := a.keys.SymmetricKey(ctx, item.OrganizationID)
	if err != nil {
		return models.VaultItem{}, err
	}

	ciphertext, err := a.keychain.EncryptBytes(content, key)
	if err != nil {
		return models.VaultItem{}, ErrCrypto
	}

	meta, err := a.gateway.UploadAttachment(ctx, item.ID, fileName, ciphertext)
	if err != nil {
		return models.VaultItem{}, err
	}

	item.Attachments = append(item.Attachments, meta)
	if err := a.vault.SaveItem(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

// selectAttachment filters the item's attachments with the selector: an
// attachment matches when its id equals the selector (case-insensitive) or
// its file name contains it as a case-insensitive substring.
func selectAttachment(attachments []models.AttachmentMeta, selector string) (models.AttachmentMeta, error) {
	needle := strings.ToLower(selector)

	var matches []models.AttachmentMeta
	for _, meta := range attachments {
		if strings.ToLower(meta.ID) == needle || strings.Contains(strings.ToLower(meta.FileName), needle) {
			matches = append(matches, meta)
		}
	}

	switch len(matches) {
	case 0:
		return models.AttachmentMeta{}, fmt.Errorf("%w: no attachment matching %q", ErrNotFound, selector)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return models.AttachmentMeta{}, &AmbiguousError{CandidateIDs: ids}
	}
}

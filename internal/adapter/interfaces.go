package adapter

import (
	"context"

	"github.com/ashmarin/vault-serve/models"
)

// Gateway is the client of the remote vault server. It covers the calls
// the serve layer makes on behalf of the local user: password verification,
// attachment transfer, and organization membership actions.
type Gateway interface {
	// VerifyPassword submits the server key hash for the given account and
	// returns nil when the server accepts it. A rejected hash maps to
	// [ErrUnauthorized]; any other non-success response maps to a
	// [*StatusError].
	VerifyPassword(ctx context.Context, email, serverKeyHash string) error

	// DownloadAttachment fetches attachment ciphertext from its download
	// URL. A non-success transport status maps to a [*StatusError] carrying
	// the status code.
	DownloadAttachment(ctx context.Context, url string) ([]byte, error)

	// UploadAttachment pushes encrypted attachment content for an item and
	// returns the metadata the server assigned to it.
	UploadAttachment(ctx context.Context, itemID, fileName string, content []byte) (models.AttachmentMeta, error)

	// ConfirmOrgMember confirms an accepted member of an organization.
	ConfirmOrgMember(ctx context.Context, organizationID, memberID string) error
}

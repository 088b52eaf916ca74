package service

import (
	"context"
	"fmt"

	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/models"
)

// orgService implements [OrgService]. Membership actions are thin: the
// organization is resolved locally so name fragments work, then the remote
// server performs the actual mutation.
type orgService struct {
	vault   VaultService
	gateway adapter.Gateway
}

// NewOrgService constructs an [OrgService].
func NewOrgService(vault VaultService, gateway adapter.Gateway) OrgService {
	return &orgService{vault: vault, gateway: gateway}
}

// ConfirmMember implements [OrgService].
func (o *orgService) ConfirmMember(ctx context.Context, organizationIdentifier, memberID string) error {
	if memberID == "" {
		return fmt.Errorf("%w: member id is required", ErrValidation)
	}

	obj, err := o.vault.GetObject(ctx, models.KindOrganization, organizationIdentifier)
	if err != nil {
		return err
	}

	org, ok := obj.(models.OrganizationRef)
	if !ok {
		return fmt.Errorf("%w: unexpected organization payload", ErrValidation)
	}

	return o.gateway.ConfirmOrgMember(ctx, org.ID, memberID)
}

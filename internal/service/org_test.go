package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashmarin/vault-serve/internal/mock"
	"github.com/ashmarin/vault-serve/models"
)

// TestOrg_ConfirmMember_ResolvesOrgByName verifies that the organization
// identifier goes through local resolution before the remote confirm call.
func TestOrg_ConfirmMember_ResolvesOrgByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	gateway := mock.NewMockGateway(ctrl)
	ctx := context.Background()

	const orgID = "7f1a2b3c-4d5e-4f60-8a9b-0c1d2e3f4a5b"
	const memberID = "member-42"

	gomock.InOrder(
		vault.EXPECT().GetObject(ctx, models.KindOrganization, "acme").
			Return(models.OrganizationRef{ID: orgID, Name: "ACME Corp"}, nil),
		gateway.EXPECT().ConfirmOrgMember(ctx, orgID, memberID).Return(nil),
	)

	err := NewOrgService(vault, gateway).ConfirmMember(ctx, "acme", memberID)
	require.NoError(t, err)
}

func TestOrg_ConfirmMember_MissingMemberID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewOrgService(mock.NewMockVaultService(ctrl), mock.NewMockGateway(ctrl))

	err := svc.ConfirmMember(context.Background(), "acme", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrg_ConfirmMember_ResolutionErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	ctx := context.Background()

	vault.EXPECT().GetObject(ctx, models.KindOrganization, "nonexistent").Return(nil, ErrNotFound)

	err := NewOrgService(vault, mock.NewMockGateway(ctrl)).ConfirmMember(ctx, "nonexistent", "member-42")
	require.ErrorIs(t, err, ErrNotFound)
}

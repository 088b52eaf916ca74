package service

import (
	"github.com/ashmarin/vault-serve/internal/adapter"
	"github.com/ashmarin/vault-serve/internal/crypto"
	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/internal/session"
	"github.com/ashmarin/vault-serve/internal/store"
)

// Services aggregates every service the HTTP facade depends on.
type Services struct {
	AuthService       AuthService
	VaultService      VaultService
	AttachmentService AttachmentService
	OrgService        OrgService
}

// Deps are the collaborators the service layer is wired from. The session
// state is created by the composition root and shared with the HTTP layer,
// which adopts inbound session tokens into it.
type Deps struct {
	State     *session.SessionState
	Accounts  store.AccountStore
	KeyHashes store.KeyHashStore
	Vault     store.VaultStore
	Gateway   adapter.Gateway
	KeyChain  crypto.KeyChainService
	Logger    *logger.Logger
}

// NewServices wires the full service graph.
func NewServices(deps Deps) *Services {
	verifier := NewCredentialVerifier(deps.Accounts, deps.KeyHashes, deps.Gateway, deps.KeyChain)
	keys := NewKeyProvider(deps.State, deps.Accounts, deps.KeyChain)
	vault := NewVaultService(deps.Vault, keys, deps.KeyChain, deps.Logger)

	return &Services{
		AuthService:       NewAuthService(deps.State, verifier, deps.Accounts),
		VaultService:      vault,
		AttachmentService: NewAttachmentService(vault, deps.Accounts, keys, deps.Gateway, deps.KeyChain),
		OrgService:        NewOrgService(vault, deps.Gateway),
	}
}

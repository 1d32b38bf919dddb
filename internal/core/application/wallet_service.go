package application

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/keyfort/walletcore/internal/core/domain"
	"github.com/keyfort/walletcore/pkg/hdwallet"
)

var (
	// ErrNullWallet ...
	ErrNullWallet = errors.New("wallet must not be null")
	// ErrWalletNotFound ...
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletAlreadyAdded ...
	ErrWalletAlreadyAdded = errors.New("wallet already added")
)

// WalletService serializes access to domain wallets. Domain wallets have no
// internal locking, so the service keeps one mutex per wallet and runs
// every operation under it.
//
// Passwords and decrypted secrets are never logged.
type WalletService struct {
	mtx     sync.RWMutex
	wallets map[string]*guardedWallet
}

type guardedWallet struct {
	mtx    sync.Mutex
	wallet *domain.Wallet
}

// NewWalletService returns an empty service.
func NewWalletService() *WalletService {
	return &WalletService{
		wallets: map[string]*guardedWallet{},
	}
}

// AddWallet registers the wallet under its identifier.
func (s *WalletService) AddWallet(wallet *domain.Wallet) error {
	if wallet == nil {
		return ErrNullWallet
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.wallets[wallet.Identifier()]; ok {
		return ErrWalletAlreadyAdded
	}
	s.wallets[wallet.Identifier()] = &guardedWallet{wallet: wallet}

	log.WithFields(log.Fields{
		"wallet": wallet.Identifier(),
		"type":   wallet.Type().String(),
	}).Debug("wallet added")
	return nil
}

// GetAccount resolves the account of a single-key wallet.
func (s *WalletService) GetAccount(
	walletID, password string,
) (*domain.Account, error) {
	guarded, err := s.wallet(walletID)
	if err != nil {
		return nil, err
	}

	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()

	account, err := guarded.wallet.GetAccount(password)
	if err != nil {
		log.WithError(err).WithField("wallet", walletID).
			Debug("failed to get account")
		return nil, err
	}
	return account, nil
}

// GetAccounts resolves one account per derivation path for an HD wallet.
func (s *WalletService) GetAccounts(
	walletID string,
	chain hdwallet.Blockchain,
	paths []hdwallet.DerivationPath,
	password string,
) ([]*domain.Account, error) {
	guarded, err := s.wallet(walletID)
	if err != nil {
		return nil, err
	}

	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()

	accounts, err := guarded.wallet.GetAccounts(chain, paths, password)
	if err != nil {
		log.WithError(err).WithField("wallet", walletID).
			Debug("failed to get accounts")
		return nil, err
	}

	log.WithFields(log.Fields{
		"wallet":     walletID,
		"blockchain": chain.String(),
		"accounts":   len(accounts),
	}).Debug("accounts resolved")
	return accounts, nil
}

// ListAccounts returns the cached accounts of the wallet in insertion
// order.
func (s *WalletService) ListAccounts(walletID string) ([]*domain.Account, error) {
	guarded, err := s.wallet(walletID)
	if err != nil {
		return nil, err
	}

	guarded.mtx.Lock()
	defer guarded.mtx.Unlock()

	return guarded.wallet.Accounts(), nil
}

func (s *WalletService) wallet(walletID string) (*guardedWallet, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	guarded, ok := s.wallets[walletID]
	if !ok {
		return nil, ErrWalletNotFound
	}
	return guarded, nil
}

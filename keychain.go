package ark

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/luciorubeens/ark-tsc/config"
	"github.com/luciorubeens/ark-tsc/internal/logging"
	"github.com/luciorubeens/ark-tsc/network"
)

// Keychain binds the key operations to a network table, a default network
// and a logger. It holds no key material and is safe for concurrent use.
type Keychain struct {
	table   network.Table
	net     network.Network
	logger  *zap.Logger
	workers int
}

// Option configures a Keychain.
type Option func(*Keychain) error

// WithLogger sets the logger. Key material is never logged.
func WithLogger(lg *zap.Logger) Option {
	return func(k *Keychain) error {
		if lg == nil {
			return fmt.Errorf("ark: logger cannot be nil")
		}
		k.logger = lg
		return nil
	}
}

// WithNetwork selects the default network from the table.
func WithNetwork(t network.Type) Option {
	return func(k *Keychain) error {
		n, err := k.table.Lookup(t)
		if err != nil {
			return err
		}
		k.net = n
		return nil
	}
}

// WithWorkers bounds the number of goroutines used by SignBatch.
func WithWorkers(n int) Option {
	return func(k *Keychain) error {
		if n <= 0 {
			return fmt.Errorf("ark: workers must be positive, got %d", n)
		}
		k.workers = n
		return nil
	}
}

// NewKeychain creates a Keychain over table, defaulting to the table's
// default network, a no-op logger and GOMAXPROCS batch workers.
func NewKeychain(table network.Table, opts ...Option) (*Keychain, error) {
	k := &Keychain{
		table:   table,
		net:     table.Default(),
		logger:  logging.Nop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// NewKeychainFromConfig builds the network table and logger described by cfg.
func NewKeychainFromConfig(cfg *config.Config, opts ...Option) (*Keychain, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	lg, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	return NewKeychain(table, append([]Option{WithLogger(lg)}, opts...)...)
}

// Network returns the default network.
func (k *Keychain) Network() network.Network {
	return k.net
}

// Table returns the network table.
func (k *Keychain) Table() network.Table {
	return k.table
}

// FromPassphrase derives a key pair on the default network.
func (k *Keychain) FromPassphrase(passphrase string) (*KeyPair, error) {
	kp, err := KeysFromPassphrase(passphrase, k.net)
	if err != nil {
		k.logger.Debug("passphrase derivation failed", zap.String("network", k.net.Name), zap.Error(err))
		return nil, err
	}

	k.logger.Debug("derived key pair",
		zap.String("network", k.net.Name),
		zap.String("address", kp.Address()),
	)
	return kp, nil
}

// FromWIF decodes a WIF string for the default network.
func (k *Keychain) FromWIF(s string) (*KeyPair, error) {
	kp, err := KeysFromWIF(s, k.net)
	if err != nil {
		k.logger.Debug("wif import failed", zap.String("network", k.net.Name), zap.Error(err))
		return nil, err
	}

	k.logger.Debug("imported wif",
		zap.String("network", k.net.Name),
		zap.String("address", kp.Address()),
	)
	return kp, nil
}

// Address derives the address of pub on pub.Network.
func (k *Keychain) Address(pub PublicKey) string {
	return Address(pub)
}

// Sign signs a 32-byte digest with kp.
func (k *Keychain) Sign(digest []byte, kp *KeyPair) (Signature, error) {
	if kp == nil {
		return nil, ErrNilKeyPair
	}

	sig, err := Sign(digest, kp.privateKey)
	if err != nil {
		return nil, WrapKeyError("sign", kp.Network(), err)
	}

	k.logger.Debug("signed digest", zap.String("public_key", kp.publicKey.Hex()))
	return sig, nil
}

// Verify checks sig over digest against pub.
func (k *Keychain) Verify(sig Signature, digest []byte, pub PublicKey) (bool, error) {
	ok, err := Verify(sig, digest, pub)
	if err != nil {
		k.logger.Debug("signature rejected", zap.String("public_key", pub.Hex()), zap.Error(err))
		return false, err
	}
	return ok, nil
}

// SignBatch signs every request concurrently, bounded by the worker count.
// Results keep request order; a failed request sets only its own Error.
// Requests not yet started when ctx is done fail with ctx.Err().
func (k *Keychain) SignBatch(ctx context.Context, requests []BatchSignRequest) []BatchSignResult {
	if len(requests) == 0 {
		return nil
	}

	results := make([]BatchSignResult, len(requests))

	var g errgroup.Group
	g.SetLimit(k.workers)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			res := &results[i]
			res.ID = req.ID

			if err := ctx.Err(); err != nil {
				res.Error = err
				return nil
			}
			if req.Key == nil {
				res.Error = ErrNilKeyPair
				return nil
			}

			res.PublicKey = req.Key.publicKey
			res.Signature, res.Error = k.Sign(req.Digest, req.Key)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}
	k.logger.Debug("signed batch", zap.Int("requests", len(requests)), zap.Int("failed", failed))

	return results
}

package store

import (
	"context"
	"time"

	"github.com/nikmy/txnkit/internal/ledger"
	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/logger"
)

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendMongo  Backend = "mongo"
)

type Config struct {
	Backend Backend     `yaml:"backend"`
	Mongo   MongoConfig `yaml:"mongo"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Collections struct {
		Accounts  string `yaml:"accounts"`
		Transfers string `yaml:"transfers"`
	} `yaml:"collections"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

// New builds ledger storage for the configured backend. An empty
// backend means in-memory.
func New(ctx context.Context, log logger.Logger, cfg Config) (ledger.Storage, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendMongo:
		return NewMongo(ctx, log, cfg.Mongo)
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

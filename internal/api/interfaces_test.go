package api

import (
	"github.com/nikmy/txnkit/internal/ledger"
)

type ledgerAPI interface {
	ledger.API
}

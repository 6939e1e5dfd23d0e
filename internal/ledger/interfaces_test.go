package ledger

type storageImpl interface {
	Storage
}

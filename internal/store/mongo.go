package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/txnkit/internal/ledger"
	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/logger"
	"github.com/nikmy/txnkit/pkg/mongotools"
	"github.com/nikmy/txnkit/pkg/mongotxn"
	"github.com/nikmy/txnkit/pkg/txn"
)

const (
	fieldBalance = "balance"
	fieldFrom    = "from"
	fieldTo      = "to"
	fieldAt      = "at"
)

// NewMongo connects to MongoDB and returns storage over the accounts
// and transfers collections.
func NewMongo(ctx context.Context, log logger.Logger, cfg MongoConfig) (*Mongo, error) {
	client, err := mongo.Connect(
		ctx,
		options.Client().
			ApplyURI(cfg.URL).
			SetTimeout(cfg.Timeout).
			SetAuth(options.Credential{
				Username: cfg.Auth.Username,
				Password: cfg.Auth.Password,
			}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)

	return &Mongo{
		log:       log.With("mongo_store"),
		client:    client,
		accounts:  db.Collection(cfg.Collections.Accounts),
		transfers: db.Collection(cfg.Collections.Transfers),
		src:       mongotxn.NewSource(client),
	}, nil
}

type Mongo struct {
	log       logger.Logger
	client    *mongo.Client
	accounts  *mongo.Collection
	transfers *mongo.Collection
	src       *mongotxn.Source
}

// accountDoc is the stored form of an account. Balances are kept as
// canonical decimal strings, mongo has no codec for decimal.Decimal.
type accountDoc struct {
	ID      string `bson:"_id"`
	Owner   string `bson:"owner"`
	Balance string `bson:"balance"`
}

type transferDoc struct {
	ID     string    `bson:"_id"`
	From   string    `bson:"from"`
	To     string    `bson:"to"`
	Amount string    `bson:"amount"`
	At     time.Time `bson:"at"`
}

func (m *Mongo) ChangeSets() txn.Runner[*txn.TxnChangeSet] {
	return txn.NewTxnChangeSetRunner(mongotxn.Accessors(m.src))
}

func (m *Mongo) InsertAccount(ctx context.Context, acc ledger.Account) error {
	_, err := m.accounts.InsertOne(ctx, toDoc(acc))
	if mongo.IsDuplicateKeyError(err) {
		return ledger.ErrAccountExists
	}

	return errors.WrapFail(err, "insert account")
}

func (m *Mongo) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	r := m.accounts.FindOne(ctx, mongotools.FilterByID(id))

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ledger.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find account by id")
	}

	var doc accountDoc
	if err = r.Decode(&doc); err != nil {
		return nil, errors.WrapFail(err, "decode account")
	}

	return fromDoc(doc)
}

func (m *Mongo) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	c, err := m.accounts.Find(ctx, mongotools.All())
	if err != nil {
		return nil, errors.WrapFail(err, "select accounts")
	}

	docs, err := mongotools.Collect[accountDoc](ctx, c)
	if err != nil {
		return nil, errors.WrapFail(err, "read accounts")
	}

	accs := make([]ledger.Account, 0, len(docs))
	for _, doc := range docs {
		acc, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}

		accs = append(accs, *acc)
	}

	return accs, nil
}

// UpdateBalance reads, checks and writes the balance in three steps.
// Callers needing atomicity run it inside a transaction, the session
// on ctx makes all three steps part of it.
func (m *Mongo) UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	acc, err := m.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	next := acc.Balance.Add(delta)
	if next.IsNegative() {
		return ledger.ErrInsufficientFunds
	}

	balance := next.String()
	res, err := m.accounts.UpdateOne(
		ctx,
		mongotools.FilterByID(id),
		mongotools.SetAll(mongotools.Field(fieldBalance, &balance)),
	)
	if err != nil {
		return errors.WrapFail(err, "update balance")
	}
	if res.MatchedCount == 0 {
		return ledger.ErrAccountNotFound
	}

	return nil
}

func (m *Mongo) InsertTransfer(ctx context.Context, t ledger.Transfer) error {
	_, err := m.transfers.InsertOne(ctx, transferDoc{
		ID:     t.ID,
		From:   t.From,
		To:     t.To,
		Amount: t.Amount.String(),
		At:     t.At,
	})

	return errors.WrapFail(err, "insert transfer")
}

func (m *Mongo) ListTransfers(ctx context.Context, accountID string) ([]ledger.Transfer, error) {
	c, err := m.transfers.Find(
		ctx,
		bson.M{"$or": bson.A{
			bson.M{fieldFrom: accountID},
			bson.M{fieldTo: accountID},
		}},
		options.Find().SetSort(bson.D{{Key: fieldAt, Value: -1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "select transfers")
	}

	docs, err := mongotools.Collect[transferDoc](ctx, c)
	if err != nil {
		return nil, errors.WrapFail(err, "read transfers")
	}

	ts := make([]ledger.Transfer, 0, len(docs))
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.Amount)
		if err != nil {
			return nil, errors.WrapFail(err, "parse transfer amount")
		}

		ts = append(ts, ledger.Transfer{
			ID:     doc.ID,
			From:   doc.From,
			To:     doc.To,
			Amount: amount,
			At:     doc.At,
		})
	}

	return ts, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return errors.WrapFail(m.client.Disconnect(ctx), "disconnect mongo client")
}

func toDoc(acc ledger.Account) accountDoc {
	return accountDoc{
		ID:      acc.ID,
		Owner:   acc.Owner,
		Balance: acc.Balance.String(),
	}
}

func fromDoc(doc accountDoc) (*ledger.Account, error) {
	balance, err := decimal.NewFromString(doc.Balance)
	if err != nil {
		return nil, errors.WrapFail(err, "parse account balance")
	}

	return &ledger.Account{
		ID:      doc.ID,
		Owner:   doc.Owner,
		Balance: balance,
	}, nil
}

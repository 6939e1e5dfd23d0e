package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/nikmy/txnkit/internal/ledger"
	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, accounts ledger.API) Server {
	serveLog := log.With("ledger_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		accounts: accounts,
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	accounts ledger.API
	http     *fiber.App
	addr     string
	log      logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.accounts.Close(ctx); err != nil {
		errs = append(errs, errors.WrapFail(err, "close ledger"))
	}

	if err := s.http.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	return errors.Collapse(errs)
}

func (s *server) setupRoutes() {
	s.http.Post("/accounts", s.handleCreate)
	s.http.Get("/accounts", s.handleList)
	s.http.Get("/accounts/:id", s.handleGet)
	s.http.Get("/accounts/:id/transfers", s.handleListTransfers)
	s.http.Post("/accounts/:id/deposit", s.handleDeposit)
	s.http.Post("/transfer", s.handleTransfer)
}

type createAccountRequest struct {
	Owner   string          `json:"owner"`
	Initial decimal.Decimal `json:"initial"`
}

func (s *server) handleCreate(c *fiber.Ctx) error {
	var req createAccountRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal create account payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	acc, err := s.accounts.CreateAccount(c.Context(), req.Owner, req.Initial)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(acc)
}

func (s *server) handleList(c *fiber.Ctx) error {
	accs, err := s.accounts.ListAccounts(c.Context())
	if err != nil {
		return errors.WrapFail(err, "list accounts")
	}

	return c.Status(http.StatusOK).JSON(accs)
}

func (s *server) handleGet(c *fiber.Ctx) error {
	acc, err := s.accounts.GetAccount(c.Context(), c.Params("id"))
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(acc)
}

func (s *server) handleListTransfers(c *fiber.Ctx) error {
	ts, err := s.accounts.ListTransfers(c.Context(), c.Params("id"))
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ts)
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (s *server) handleDeposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal deposit payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	acc, err := s.accounts.Deposit(c.Context(), c.Params("id"), req.Amount)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(acc)
}

type transferRequest struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

func (s *server) handleTransfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal transfer payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	err := s.accounts.Transfer(c.Context(), req.From, req.To, req.Amount)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) sendDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return s.sendError(c, http.StatusNotFound, "account not found")
	case errors.Is(err, ledger.ErrAccountExists):
		return s.sendError(c, http.StatusConflict, "account already exists")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return s.sendError(c, http.StatusUnprocessableEntity, "insufficient funds")
	case errors.Is(err, ledger.ErrBadAmount):
		return s.sendError(c, http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, ledger.ErrSameAccount):
		return s.sendError(c, http.StatusBadRequest, "accounts must differ")
	case errors.Is(err, ledger.ErrNoOwner):
		return s.sendError(c, http.StatusBadRequest, "owner must be set")
	}

	// anything else reaches the fiber error handler and becomes a 500
	return err
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

package handlers

import (
	"context"
	"errors"
	"time"

	"dwallet/internal/middleware"
	"dwallet/internal/models"
	"dwallet/internal/services/wallet"
	"dwallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func ownerID(c *fiber.Ctx) (string, error) {
	owner, ok := c.Locals(middleware.OwnerIDKey).(string)
	if !ok || owner == "" {
		return "", fiber.ErrUnauthorized
	}
	return owner, nil
}

// respondError translates engine error kinds into status codes and stable
// machine-readable codes.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrWalletNotFound):
		return response.NotFound(c, "wallet.not.found", "wallet not found")
	case errors.Is(err, wallet.ErrTargetWalletNotFound):
		return response.NotFound(c, "targetWallet.not.found", "target wallet not found")
	case errors.Is(err, wallet.ErrWalletAlreadyExists):
		return response.BadRequest(c, "wallet.already.exists", "wallet already exists")
	case errors.Is(err, wallet.ErrInvalidName):
		return response.BadRequest(c, "wallet.invalid.name", "wallet name must not be empty")
	case errors.Is(err, wallet.ErrInvalidCurrency):
		return response.BadRequest(c, "currency.not.supported", "unsupported currency")
	case errors.Is(err, wallet.ErrInvalidAmount):
		return response.BadRequest(c, "amount.invalid", "amount must be positive with at most two decimals")
	case errors.Is(err, wallet.ErrInvalidRange):
		return response.BadRequest(c, "filter.invalid.range", "invalid filter range or paging")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return response.BadRequest(c, "insufficient.funds", "insufficient funds")
	case errors.Is(err, wallet.ErrCurrencyMismatch):
		return response.BadRequest(c, "currency.mismatch", "wallet currencies do not match")
	case errors.Is(err, wallet.ErrSelfTransfer):
		return response.BadRequest(c, "transfer.self", "cannot transfer to the same wallet")
	case errors.Is(err, wallet.ErrConflict):
		return response.Conflict(c, "conflict", "operation conflicted with concurrent updates, retry")
	default:
		return response.ServerError(c, "internal error")
	}
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		Name     string          `json:"name"`
		Currency models.Currency `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "request.invalid", "invalid request body")
	}

	w, err := h.walletService.CreateWallet(c.Context(), owner, input.Name, input.Currency)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, w)
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	wallets, err := h.walletService.ListWallets(c.Context(), owner)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, wallets)
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid wallet id")
	}

	w, err := h.walletService.GetWallet(c.Context(), owner, uint(walletID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, w)
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid wallet id")
	}

	balance, err := h.walletService.GetBalance(c.Context(), owner, uint(walletID))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.Map{
		"wallet_id": walletID,
		"balance":   balance,
	})
}

func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	return h.mutateBalance(c, h.walletService.Deposit)
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	return h.mutateBalance(c, h.walletService.Withdraw)
}

func (h *WalletHandler) mutateBalance(c *fiber.Ctx, op func(ctx context.Context, owner string, walletID uint, amount decimal.Decimal) error) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid wallet id")
	}

	var input struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "request.invalid", "invalid request body")
	}

	if err := op(c.Context(), owner, uint(walletID), input.Amount); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.Map{"wallet_id": walletID})
}

func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid wallet id")
	}

	var input struct {
		ToWalletID uint            `json:"to_wallet_id"`
		Amount     decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "request.invalid", "invalid request body")
	}
	if input.ToWalletID == 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid target wallet id")
	}

	if err := h.walletService.Transfer(c.Context(), owner, uint(walletID), input.ToWalletID, input.Amount); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.Map{
		"from_wallet_id": walletID,
		"to_wallet_id":   input.ToWalletID,
	})
}

func (h *WalletHandler) FilterTransactions(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "wallet.invalid.id", "invalid wallet id")
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return response.BadRequest(c, "filter.invalid.range", "from must be RFC3339")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return response.BadRequest(c, "filter.invalid.range", "to must be RFC3339")
	}

	filter := wallet.TransactionFilter{
		From:     from,
		To:       to,
		Page:     c.QueryInt("page", 0),
		PageSize: c.QueryInt("size", 20),
	}

	page, err := h.walletService.FilterTransactions(c.Context(), owner, uint(walletID), filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, page)
}

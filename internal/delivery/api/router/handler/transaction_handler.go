package handler

import (
	"dcars/internal/delivery/api/response"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves checkouts and payment history.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(transactionUC usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// Checkout creates a pending transaction for the client to pay.
func (h *TransactionHandler) Checkout(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var input usecase.CheckoutInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	txn, err := h.transactionUC.CreateCheckout(c.Request().Context(), profile.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, txn)
}

// ListMine lists the caller's payments; ?as=seller lists payments received.
func (h *TransactionHandler) ListMine(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	asSeller := c.QueryParam("as") == "seller"

	result, err := h.transactionUC.ListMine(c.Request().Context(), profile.ID, asSeller, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Get returns a transaction the caller is party to.
func (h *TransactionHandler) Get(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	txn, err := h.transactionUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, txn)
}

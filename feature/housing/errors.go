package housing

import (
	"errors"
	"net/http"

	"housing-manager/feature/gamedata"
	"housing-manager/feature/housing/inventory"
)

var (
	ErrPermissionDenied = errors.New("permission denied")

	ErrNotAvailable    = errors.New("land is not available")
	ErrNotEnoughFunds  = errors.New("not enough funds")
	ErrAlreadyOwnsLand = errors.New("character already owns land")
	ErrHouseStanding   = errors.New("a house is standing on the land")
	ErrNoHouse         = errors.New("no house on the land")
	ErrInvalidPreset   = errors.New("invalid housing preset")
	ErrEstateNotEmpty  = errors.New("estate still has placed items")
	ErrInvalidText     = errors.New("invalid estate text")

	ErrNoFreeSlot           = inventory.ErrNoFreeSlot
	ErrInvalidSlot          = inventory.ErrInvalidSlot
	ErrNotFound             = errors.New("item not found")
	ErrUnsupportedContainer = errors.New("container not supported for this operation")

	ErrInternal = errors.New("internal housing error")
	ErrStore    = errors.New("housing store failure")
)

// PurchaseMode selects the ownership model of a purchase.
type PurchaseMode uint8

const (
	PurchaseFreeCompany PurchaseMode = 1
	PurchasePrivate     PurchaseMode = 2
)

var messages = []struct {
	err    error
	text   string
	status int
}{
	{ErrPermissionDenied, "You do not have permission to do that.", http.StatusForbidden},
	{ErrNotAvailable, "This plot is not available for purchase.", http.StatusConflict},
	{ErrNotEnoughFunds, "You do not have enough gil.", http.StatusPaymentRequired},
	{ErrAlreadyOwnsLand, "You may not own more than one private estate.", http.StatusConflict},
	{ErrHouseStanding, "The house must be demolished first.", http.StatusConflict},
	{ErrNoHouse, "There is no house on this plot.", http.StatusConflict},
	{ErrInvalidPreset, "That construction permit cannot be used.", http.StatusBadRequest},
	{gamedata.ErrUnknownItem, "That construction permit cannot be used.", http.StatusBadRequest},
	{gamedata.ErrUnknownPreset, "That construction permit cannot be used.", http.StatusBadRequest},
	{ErrEstateNotEmpty, "Remove all furnishings before demolishing.", http.StatusConflict},
	{ErrInvalidText, "That text cannot be used.", http.StatusBadRequest},
	{ErrNoFreeSlot, "There is no room left.", http.StatusConflict},
	{ErrInvalidSlot, "Invalid item slot.", http.StatusBadRequest},
	{ErrNotFound, "The item could not be found.", http.StatusNotFound},
	{ErrUnsupportedContainer, "The inventory you are using is not supported.", http.StatusBadRequest},
	{ErrStore, "The housing service is temporarily unavailable.", http.StatusServiceUnavailable},
	{ErrInternal, "An internal error occurred.", http.StatusInternalServerError},
}

// Message maps an operation error to the text shown to the player.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return "An internal error occurred."
}

// Status maps an operation error to an HTTP status code.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// IsDenial reports whether err is a user-visible refusal rather than a failure.
func IsDenial(err error) bool {
	return err != nil && !errors.Is(err, ErrInternal) && !errors.Is(err, ErrStore) && Status(err) < http.StatusInternalServerError
}

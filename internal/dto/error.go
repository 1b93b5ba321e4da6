package dto

import "kintacos/internal/errors"

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Details []errors.ValidationDetail `json:"details,omitempty"`
}

package dto

import "kintacos/internal/domain"

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

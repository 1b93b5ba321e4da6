package order

import (
	"go.uber.org/zap"

	"kintacos/internal/order/controller"
	"kintacos/internal/order/repository"
)

// NewModule wires a provider into the order module and returns its HTTP
// controller. The repository is built once here and handed down; nothing in
// the module holds package-level state.
func NewModule(provider repository.Provider, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewOrderRepository(provider)
	return controller.NewOrderController(repo, logger)
}

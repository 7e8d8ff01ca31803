package orders

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// PDFUseCase genera el comprobante PDF de un pedido.
type PDFUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, generator: generator}
}

// Generate carga el pedido con sus líneas y devuelve los bytes del PDF.
func (uc *PDFUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	if orderID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetWithItems(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateOrderPDF(ctx, order)
}

package pedidos

import (
	"context"

	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con un PedidoRepository
// atado a la tx. Si fn retorna error se hace rollback completo: la cabecera
// y las líneas aterrizan juntas o no aterriza nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(pedidoRepo repository.PedidoRepository) error) error
}

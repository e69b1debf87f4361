package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventasve/pedidos-api/internal/application/auth"
	"github.com/ventasve/pedidos-api/internal/application/pedidos"
	"github.com/ventasve/pedidos-api/internal/application/usecase"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	AsesorUC        *usecase.AsesorUseCase
	ProductoUC      *usecase.ProductoUseCase
	ClienteUC       *usecase.ClienteUseCase
	EmpresaUC       *usecase.EmpresaUseCase
	PedidoUC        *pedidos.PedidoUseCase
	DetallePedidoUC *usecase.DetallePedidoUseCase
	UserRepo        repository.UserRepository
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/token", authHandler.Token)
	app.Post("/users/", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token de un usuario activo)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	asesores := protected.Group("/asesores")
	asesorHandler := NewAsesorHandler(deps.AsesorUC)
	asesores.Post("/", asesorHandler.Create)
	asesores.Get("/", asesorHandler.List)
	asesores.Get("/:id", asesorHandler.GetByID)
	asesores.Put("/:id", asesorHandler.Update)
	asesores.Delete("/:id", asesorHandler.Delete)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)

	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Put("/:id", pedidoHandler.Update)
	pedidosGroup.Delete("/:id", pedidoHandler.Delete)

	detalles := protected.Group("/detalle_pedidos")
	detalleHandler := NewDetallePedidoHandler(deps.DetallePedidoUC)
	detalles.Post("/", detalleHandler.Create)
	detalles.Get("/", detalleHandler.List)
	detalles.Get("/:id", detalleHandler.GetByID)
	detalles.Put("/:id", detalleHandler.Update)
	detalles.Delete("/:id", detalleHandler.Delete)
}

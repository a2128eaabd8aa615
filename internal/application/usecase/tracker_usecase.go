package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/domain"
	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/repository"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
	"github.com/jhoicas/salespulse-api/pkg/logger"
)

// TrackerUseCase es el dueño único del estado en memoria. Toda mutación pasa
// por aquí: se deriva el estado siguiente con las funciones puras de tracker,
// se persiste el blob completo y solo entonces se reemplaza el valor en
// memoria. Si la persistencia falla, el estado visible no cambia.
//
// El mutex serializa a los escritores concurrentes del servidor HTTP; el
// modelo lógico sigue siendo un solo escritor sobre un solo blob.
type TrackerUseCase struct {
	mu    sync.Mutex
	state entity.AppState
	repo  repository.StateRepository
	log   *logger.Logger
}

// NewTrackerUseCase construye el contenedor cargando el estado inicial del
// repositorio (que siembra datos demo si no hay nada guardado).
func NewTrackerUseCase(ctx context.Context, repo repository.StateRepository, log *logger.Logger) (*TrackerUseCase, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("tracker: cargar estado inicial: %w", err)
	}
	return &TrackerUseCase{state: state, repo: repo, log: log}, nil
}

// Snapshot devuelve el estado actual. El lock solo cubre la lectura del
// valor; las mutaciones nunca modifican las slices ya publicadas, así que el
// snapshot devuelto es seguro de recorrer mientras llegan escrituras nuevas.
func (uc *TrackerUseCase) Snapshot() entity.AppState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// AddCustomer crea un cliente y lo agrega al final de la secuencia.
func (uc *TrackerUseCase) AddCustomer(ctx context.Context, in dto.CreateCustomerRequest) (entity.Customer, error) {
	if in.Name == "" || in.Email == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}

	customer := entity.Customer{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Company:  in.Company,
		JoinedAt: time.Now().UTC(),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := tracker.AddCustomer(uc.state, customer)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Customer{}, err
	}

	uc.log.Info().Str("customer_id", customer.ID).Str("name", customer.Name).Msg("cliente creado")
	return customer, nil
}

// UpdateCustomer edita los datos de contacto del cliente indicado.
// El motor de mutación trata un ID inexistente como no-op silencioso; esta
// frontera sí lo reporta como ErrCustomerNotFound para que el caller lo vea.
func (uc *TrackerUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (entity.Customer, error) {
	if in.Name == "" || in.Email == "" {
		return entity.Customer{}, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := findCustomer(uc.state.Customers, id); !ok {
		uc.log.Debug().Str("customer_id", id).Msg("update de cliente inexistente, sin efecto")
		return entity.Customer{}, domain.ErrCustomerNotFound
	}

	next := tracker.UpdateCustomer(uc.state, entity.Customer{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
	})
	if err := uc.commit(ctx, next); err != nil {
		return entity.Customer{}, err
	}

	updated, _ := findCustomer(uc.state.Customers, id)
	return updated, nil
}

// AddProduct crea un producto y lo agrega al final del catálogo.
func (uc *TrackerUseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (entity.Product, error) {
	if in.Name == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}

	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	sku := in.SKU
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", rand.Intn(1000))
	}

	product := entity.Product{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Category: category,
		Price:    in.Price,
		Stock:    in.Stock,
		SKU:      sku,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := tracker.AddProduct(uc.state, product)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Product{}, err
	}

	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return product, nil
}

// RecordSale arma la venta con snapshots denormalizados (nombre del cliente,
// nombre y precio de cada producto al momento de la venta) y la registra con
// sus tres efectos: descuento de stock, inserción al frente y avance de metas.
// La sobreventa no se rechaza; solo se deja constancia en el log.
func (uc *TrackerUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (entity.Sale, error) {
	if len(in.Items) == 0 {
		return entity.Sale{}, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	customer, ok := findCustomer(uc.state.Customers, in.CustomerID)
	if !ok {
		return entity.Sale{}, domain.ErrCustomerNotFound
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return entity.Sale{}, domain.ErrInvalidInput
		}
		product, ok := findProduct(uc.state.Products, line.ProductID)
		if !ok {
			return entity.Sale{}, domain.ErrProductNotFound
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(line.Quantity))
		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: product.Price,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)

		if product.Stock-line.Quantity < 0 {
			uc.log.Warn().
				Str("product_id", product.ID).
				Int64("stock", product.Stock).
				Int64("quantity", line.Quantity).
				Msg("venta deja el stock en negativo")
		}
	}

	sale := entity.Sale{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  total,
		Date:         time.Now().UTC(),
		Status:       entity.SaleStatusCompleted,
	}

	next := tracker.RecordSale(uc.state, sale)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Sale{}, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("customer", sale.CustomerName).
		Str("total", sale.TotalAmount.String()).
		Int("items", len(sale.Items)).
		Msg("venta registrada")
	return sale, nil
}

// AddGoal crea una meta con progreso inicial 0 (sin backfill del histórico).
func (uc *TrackerUseCase) AddGoal(ctx context.Context, in dto.CreateGoalRequest) (entity.Goal, error) {
	if in.Title == "" {
		return entity.Goal{}, domain.ErrInvalidInput
	}
	if in.Type != entity.GoalTypeRevenue && in.Type != entity.GoalTypeSalesCount {
		return entity.Goal{}, domain.ErrInvalidInput
	}
	deadline, err := time.Parse("2006-01-02", in.Deadline)
	if err != nil {
		return entity.Goal{}, domain.ErrInvalidInput
	}

	goal := entity.Goal{
		ID:            uuid.New().String(),
		Title:         in.Title,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Type:          in.Type,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := tracker.AddGoal(uc.state, goal)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Goal{}, err
	}

	uc.log.Info().Str("goal_id", goal.ID).Str("type", goal.Type).Msg("meta creada")
	return goal, nil
}

// ListCustomers devuelve los clientes en orden de inserción.
func (uc *TrackerUseCase) ListCustomers() dto.CustomerListResponse {
	state := uc.Snapshot()
	return dto.CustomerListResponse{Items: state.Customers, Total: len(state.Customers)}
}

// ListProducts devuelve el catálogo en orden de inserción.
func (uc *TrackerUseCase) ListProducts() dto.ProductListResponse {
	state := uc.Snapshot()
	return dto.ProductListResponse{Items: state.Products, Total: len(state.Products)}
}

// ListSales devuelve las ventas, más reciente primero.
func (uc *TrackerUseCase) ListSales() dto.SaleListResponse {
	state := uc.Snapshot()
	return dto.SaleListResponse{Items: state.Sales, Total: len(state.Sales)}
}

// ListGoals devuelve las metas con su porcentaje de avance calculado.
func (uc *TrackerUseCase) ListGoals() dto.GoalListResponse {
	state := uc.Snapshot()
	items := make([]dto.GoalResponse, 0, len(state.Goals))
	for _, g := range state.Goals {
		items = append(items, dto.GoalResponse{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
			Type:          g.Type,
			Progress:      tracker.GoalProgress(g),
		})
	}
	return dto.GoalListResponse{Items: items, Total: len(items)}
}

// commit persiste el estado siguiente y, solo si la escritura tuvo éxito,
// lo publica en memoria. Caller debe sostener el mutex.
func (uc *TrackerUseCase) commit(ctx context.Context, next entity.AppState) error {
	if err := uc.repo.Save(ctx, next); err != nil {
		uc.log.Error().Err(err).Msg("persistir estado")
		return fmt.Errorf("tracker: guardar estado: %w", err)
	}
	uc.state = next
	return nil
}

func findCustomer(customers []entity.Customer, id string) (entity.Customer, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

func findProduct(products []entity.Product, id string) (entity.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

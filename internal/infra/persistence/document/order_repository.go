package document

import (
	"context"
	"sort"
	"time"

	"workforce/internal/domain/entity"
	domainerrors "workforce/internal/domain/errors"
	"workforce/internal/domain/repository"
	"workforce/internal/infra/docstore"
)

type orderRepository struct {
	store *docstore.Store
}

// NewOrderRepository creates an OrderRepository backed by the document
// store.
func NewOrderRepository(store *docstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Find(ctx context.Context, id string) (*entity.Order, error) {
	var found *entity.Order
	err := r.store.View(func(doc *entity.Document) error {
		order, ok := doc.Orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound
		}
		found = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List returns all orders, newest first.
func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.store.View(func(doc *entity.Document) error {
		orders = make([]*entity.Order, 0, len(doc.Orders))
		for _, order := range doc.Orders {
			orders = append(orders, order)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// Create stores a pending order and counts it against today's totals.
func (r *orderRepository) Create(ctx context.Context, intake repository.OrderIntake) (*entity.Order, error) {
	var stored *entity.Order
	err := r.store.Update(func(doc *entity.Document) error {
		now := nowUTC()
		id := entity.NewOrderID(now)
		// Millisecond ids can collide under bursts of intake; nudge forward
		// until the id is free.
		for _, exists := doc.Orders[id]; exists; _, exists = doc.Orders[id] {
			now = now.Add(time.Millisecond)
			id = entity.NewOrderID(now)
		}

		quantity := intake.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		order := &entity.Order{
			ID:             id,
			CustomerName:   intake.CustomerName,
			CustomerPhone:  intake.CustomerPhone,
			AlternatePhone: intake.AlternatePhone,
			Product:        intake.Product,
			Quantity:       quantity,
			Status:         entity.OrderStatusPending,
			CreatedAt:      now,
			Comments:       []entity.OrderComment{},
		}
		doc.Orders[id] = order

		doc.Statistics.OrdersToday++
		doc.WebsiteStats.DailyOrders[entity.DayKey(now)]++

		stored = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Assign records a responsible worker. The status stays where it is;
// re-assignment overwrites the previous assignment.
func (r *orderRepository) Assign(ctx context.Context, id, assignedTo, assignedBy string) error {
	return r.store.Update(func(doc *entity.Document) error {
		order, ok := doc.Orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound
		}

		now := nowUTC()
		order.AssignedTo = assignedTo
		order.AssignedBy = assignedBy
		order.AssignedAt = &now

		return nil
	})
}

// Process flips the order to processing and credits the worker's monthly
// processed counter.
func (r *orderRepository) Process(ctx context.Context, id, processedBy string) error {
	return r.store.Update(func(doc *entity.Document) error {
		order, ok := doc.Orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(entity.OrderStatusProcessing) {
			return domainerrors.ErrOrderTransition
		}

		now := nowUTC()
		order.Status = entity.OrderStatusProcessing
		order.ProcessedBy = processedBy
		order.ProcessedAt = &now

		if worker, ok := doc.Workers[processedBy]; ok {
			worker.MonthlyStats.OrdersProcessed++
		}

		return nil
	})
}

// Deliver flips the order to delivered and credits the worker's monthly
// delivered counter. Delivering straight from pending is allowed; going
// backwards is not.
func (r *orderRepository) Deliver(ctx context.Context, id, deliveredBy string) error {
	return r.store.Update(func(doc *entity.Document) error {
		order, ok := doc.Orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(entity.OrderStatusDelivered) {
			return domainerrors.ErrOrderTransition
		}

		now := nowUTC()
		order.Status = entity.OrderStatusDelivered
		order.DeliveredBy = deliveredBy
		order.DeliveredAt = &now

		if worker, ok := doc.Workers[deliveredBy]; ok {
			worker.MonthlyStats.OrdersDelivered++
		}

		return nil
	})
}

func (r *orderRepository) AddComment(ctx context.Context, id, comment, commentedBy string) error {
	return r.store.Update(func(doc *entity.Document) error {
		order, ok := doc.Orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound
		}

		order.Comments = append(order.Comments, entity.OrderComment{
			Comment:     comment,
			CommentedBy: commentedBy,
			Timestamp:   nowUTC(),
		})

		return nil
	})
}

package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/query"
)

type Dashboard struct {
	orders     OrderService
	users      UserService
	deliveries DeliveryService
	courses    CourseService
}

func New(orders OrderService, users UserService, deliveries DeliveryService, courses CourseService) *Dashboard {
	return &Dashboard{
		orders:     orders,
		users:      users,
		deliveries: deliveries,
		courses:    courses,
	}
}

// collections is what a dashboard counts over; unused lists stay nil.
type collections struct {
	orders     []entities.Order
	users      []entities.User
	deliveries []entities.Delivery
	courses    []entities.Course
}

func (d *Dashboard) Summary(ctx context.Context, role entities.Role) (*entities.DashboardSummary, error) {
	var (
		c        collections
		counters []entities.DashboardCounter
		err      error
	)

	switch role {
	case entities.RoleAdmin:
		c, err = d.load(ctx, true, true, true, false)
		counters = adminCounters(c)
	case entities.RoleCarrier:
		c, err = d.load(ctx, false, false, true, true)
		counters = carrierCounters(c)
	case entities.RoleShipper:
		c, err = d.load(ctx, true, false, false, false)
		counters = shipperCounters(c)
	default:
		return nil, fmt.Errorf("%q: %w", role, ErrUnknownRole)
	}
	if err != nil {
		return nil, err
	}

	return &entities.DashboardSummary{
		Role:     role,
		Counters: counters,
	}, nil
}

func (d *Dashboard) load(ctx context.Context, orders, users, deliveries, courses bool) (collections, error) {
	var c collections
	g, ctx := errgroup.WithContext(ctx)

	if orders {
		g.Go(func() error {
			var err error
			c.orders, err = d.orders.List(ctx, entities.Query{})
			if err != nil {
				return fmt.Errorf("orders: %w", err)
			}
			return nil
		})
	}
	if users {
		g.Go(func() error {
			var err error
			c.users, err = d.users.List(ctx, entities.Query{})
			if err != nil {
				return fmt.Errorf("users: %w", err)
			}
			return nil
		})
	}
	if deliveries {
		g.Go(func() error {
			var err error
			c.deliveries, err = d.deliveries.List(ctx, entities.Query{})
			if err != nil {
				return fmt.Errorf("deliveries: %w", err)
			}
			return nil
		})
	}
	if courses {
		g.Go(func() error {
			var err error
			c.courses, err = d.courses.List(ctx, entities.Query{})
			if err != nil {
				return fmt.Errorf("courses: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return collections{}, fmt.Errorf("load dashboard: %w", err)
	}
	return c, nil
}

func byStatus(status string) entities.Query {
	return entities.Query{}.WithFilter(entities.FilterKeyStatus, status)
}

func adminCounters(c collections) []entities.DashboardCounter {
	counters := []entities.DashboardCounter{
		{Key: "orders_total", Label: "Commandes totales", Value: len(c.orders)},
		{
			Key:   "carriers_active",
			Label: "Transporteurs actifs",
			Value: query.Count(c.users, byStatus(entities.UserActive.String()).
				WithFilter(entities.FilterKeyRole, entities.RoleCarrier.String())),
		},
		{
			Key:   "deliveries_delayed",
			Label: "Colis en retard",
			Value: query.Count(c.deliveries, byStatus(entities.DeliveryDelayed.String())),
		},
	}

	for _, status := range entities.OrderStatuses {
		counters = append(counters, entities.DashboardCounter{
			Key:   "orders_" + status.String(),
			Label: status.Label(),
			Value: query.Count(c.orders, byStatus(status.String())),
		})
	}
	return counters
}

func carrierCounters(c collections) []entities.DashboardCounter {
	active := 0
	for _, status := range []entities.DeliveryStatusType{entities.DeliveryAssigned, entities.DeliveryPickup, entities.DeliveryEnRoute} {
		active += query.Count(c.deliveries, byStatus(status.String()))
	}

	return []entities.DashboardCounter{
		{Key: "courses_available", Label: "Courses disponibles", Value: len(c.courses)},
		{
			Key:   "courses_urgent",
			Label: "Courses urgentes",
			Value: query.Count(c.courses, entities.Query{}.WithFilter(entities.FilterKeyUrgency, entities.PriorityUrgent.String())),
		},
		{Key: "deliveries_active", Label: "Livraisons actives", Value: active},
		{
			Key:   "deliveries_delivered",
			Label: "Terminées",
			Value: query.Count(c.deliveries, byStatus(entities.DeliveryDelivered.String())),
		},
		{
			Key:   "deliveries_delayed",
			Label: "En retard",
			Value: query.Count(c.deliveries, byStatus(entities.DeliveryDelayed.String())),
		},
	}
}

func shipperCounters(c collections) []entities.DashboardCounter {
	active := query.Count(c.orders, byStatus(entities.OrderAssigned.String())) +
		query.Count(c.orders, byStatus(entities.OrderEnRoute.String()))

	return []entities.DashboardCounter{
		{Key: "orders_active", Label: "Commandes actives", Value: active},
		{
			Key:   "orders_pending",
			Label: "En attente",
			Value: query.Count(c.orders, byStatus(entities.OrderPending.String())),
		},
		{
			Key:   "orders_delivered",
			Label: "Livrées",
			Value: query.Count(c.orders, byStatus(entities.OrderDelivered.String())),
		},
	}
}

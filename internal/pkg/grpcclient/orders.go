package grpcclient

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const OrdersServiceName = "orders.v1.OrdersService"

const (
	acceptOrderMethod  = "/" + OrdersServiceName + "/AcceptOrder"
	getOrderByIDMethod = "/" + OrdersServiceName + "/GetOrderById"
)

// OrdersClient calls the order service with google.protobuf.Struct payloads.
type OrdersClient struct {
	conn grpc.ClientConnInterface
}

func NewOrdersClient(conn grpc.ClientConnInterface) *OrdersClient {
	return &OrdersClient{conn: conn}
}

func (c *OrdersClient) AcceptOrder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, acceptOrderMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *OrdersClient) GetOrderById(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, getOrderByIDMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package grpc

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит доменную ошибку в gRPC-статус. Текст внутренних ошибок наружу не отдаётся.
func GRPCErrorResponse(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, e.ErrShoeNotFound):
		return status.Error(codes.NotFound, e.ErrShoeNotFound.Error())
	case errors.Is(err, e.ErrInvalidVariant), errors.Is(err, e.ErrSlugRequired), errors.Is(err, e.ErrStatusBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// errorInterceptor логирует ошибки обработчиков и приводит их к gRPC-статусам.
func errorInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			log.Errorf(err, "%s", info.FullMethod)
			return nil, GRPCErrorResponse(err)
		}
		return resp, nil
	}
}

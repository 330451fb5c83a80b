package catalog_service_api

import (
	"context"

	"github.com/Domenick1991/camrent/internal/apperrors"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/service/booking"
	"github.com/Domenick1991/camrent/internal/service/cameras"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements CatalogServiceServer on top of the camera and booking use cases.
type Server struct {
	cameras  cameras.CameraUseCase
	bookings booking.BookingUseCase
}

func NewServer(cameras cameras.CameraUseCase, bookings booking.BookingUseCase) *Server {
	return &Server{cameras: cameras, bookings: bookings}
}

func (s *Server) ListCameras(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	list, err := s.cameras.List(ctx)
	if err != nil {
		return nil, apperrors.Status(err)
	}
	resp := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(list))}
	for i := range list {
		resp.Values = append(resp.Values, structpb.NewStructValue(toPBCamera(&list[i])))
	}
	return resp, nil
}

func (s *Server) GetCamera(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	camera, err := s.cameras.GetByID(ctx, int(req.GetValue()))
	if err != nil {
		return nil, apperrors.Status(err)
	}
	return toPBCamera(camera), nil
}

func (s *Server) SubmitBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	payload, err := protojson.Marshal(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "encode booking: %v", err)
	}
	ack, err := s.bookings.Accept(ctx, payload)
	if err != nil {
		return nil, apperrors.Status(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"success":   structpb.NewBoolValue(ack.Success),
		"message":   structpb.NewStringValue(ack.Message),
		"bookingId": structpb.NewStringValue(ack.BookingID),
	}}, nil
}

func toPBCamera(c *domain.Camera) *structpb.Struct {
	if c == nil {
		return nil
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":          structpb.NewNumberValue(float64(c.ID)),
		"name":        structpb.NewStringValue(c.Name),
		"specs":       structpb.NewStringValue(c.Specs),
		"description": structpb.NewStringValue(c.Description),
		"price":       structpb.NewNumberValue(float64(c.Price)),
		"image":       structpb.NewStringValue(c.Image),
	}}
}

var _ CatalogServiceServer = (*Server)(nil)

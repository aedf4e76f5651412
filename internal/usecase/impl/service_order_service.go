package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/policy"
	"scoop/internal/domain/repository"
	"scoop/internal/domain/service"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type serviceOrderService struct {
	userRepo    repository.UserRepository
	memberRepo  repository.MemberRepository
	creamRepo   repository.CreamRepository
	toppingRepo repository.ToppingRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	pickupCodes service.PickupCodeService
	metrics     service.MetricsRecorder
	now         func() time.Time
	logger      *slog.Logger
}

// ServiceOrderServiceParams holds dependencies for ServiceOrderService, injected by Fx.
type ServiceOrderServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MemberRepo  repository.MemberRepository
	CreamRepo   repository.CreamRepository
	ToppingRepo repository.ToppingRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	PickupCodes service.PickupCodeService
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewServiceOrderService is the constructor for serviceOrderService.
func NewServiceOrderService(params ServiceOrderServiceParams) usecase.ServiceOrderUsecase {
	return &serviceOrderService{
		userRepo:    params.UserRepo,
		memberRepo:  params.MemberRepo,
		creamRepo:   params.CreamRepo,
		toppingRepo: params.ToppingRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		pickupCodes: params.PickupCodes,
		metrics:     params.Metrics,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *serviceOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place prices the order from the catalog, publishes it and returns a
// pickup code. Nothing is persisted.
func (srv *serviceOrderService) Place(ctx context.Context, caller usecase.Caller, req usecase.PlaceOrder) (*usecase.OrderReceipt, error) {
	if err := policy.Authorize(caller.Role, policy.OrderPlace, false); err != nil {
		return nil, err
	}
	if !req.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("paymentMethod must be one of [CASH CREDIT_CARD DEBIT_CARD PIX]")
	}
	if req.ProductID == nil && len(req.CreamIDs) == 0 && len(req.ToppingIDs) == 0 && len(req.Extras) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("order must contain at least one item")
	}

	user, err := callerUser(ctx, srv.userRepo, caller)
	if err != nil {
		return nil, err
	}

	order := &entity.ServiceOrder{
		ID:            uuid.New(),
		UserID:        user.ID,
		ClientID:      user.ClientID,
		Extras:        make([]entity.OrderExtra, 0, len(req.Extras)),
		PaymentMethod: req.PaymentMethod,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     srv.now().UTC(),
	}
	if order.ClientID == nil && user.MemberID != nil {
		member, err := srv.memberRepo.FindByID(ctx, *user.MemberID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve member client")
		}
		order.ClientID = &member.ClientID
	}

	if req.ProductID != nil {
		product, err := srv.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.ErrValidationFailed.WithMessage("product " + req.ProductID.String() + " does not exist")
			}

			return nil, err
		}
		line, err := orderLine(product)
		if err != nil {
			return nil, err
		}
		order.Product = &line
	}

	if order.Creams, err = resolveLines(ctx, srv.creamRepo, "cream", req.CreamIDs); err != nil {
		return nil, err
	}
	if order.Toppings, err = resolveLines(ctx, srv.toppingRepo, "topping", req.ToppingIDs); err != nil {
		return nil, err
	}

	for _, extra := range req.Extras {
		if strings.TrimSpace(extra.Name) == "" || extra.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithMessage("extras must have a name and a non-negative price")
		}
		order.Extras = append(order.Extras, extra)
	}
	order.TotalPrice = roundCents(order.Total())

	event := &service.ServiceOrderEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		Order:     order,
	}
	err = srv.publisher.PublishServiceOrder(ctx, event)
	srv.metrics.RecordServiceOrder(order.TotalPrice, err)
	if err != nil {
		srv.log(ctx).Error("Failed to publish service order", slog.Any("order_id", order.ID), slog.Any("error", err))

		return nil, domainerrors.ErrOrderPublishFailed.WrapMessage(err.Error())
	}

	png, err := srv.pickupCodes.GeneratePickupCode(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}
	srv.log(ctx).Info("Service order placed",
		slog.Any("order_id", order.ID),
		slog.Float64("total_price", order.TotalPrice),
		slog.String("payment_method", string(order.PaymentMethod)),
	)

	return &usecase.OrderReceipt{
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
		PickupCode: base64.StdEncoding.EncodeToString(png),
		Order:      order,
	}, nil
}

// resolveLines prices the requested ids in request order. Repeated ids
// are charged once per occurrence.
func resolveLines[T entity.Cataloged](
	ctx context.Context,
	repo repository.CatalogRepository[T],
	kind string,
	ids []uuid.UUID,
) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(ids))
	if len(ids) == 0 {
		return lines, nil
	}

	items, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %ss", kind)
	}
	byID := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		byID[item.Item().ID] = item
	}

	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithMessage(kind + " " + id.String() + " does not exist")
		}
		line, err := orderLine(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func orderLine(item entity.Cataloged) (entity.OrderLine, error) {
	fields := item.Item()
	if !fields.Available {
		return entity.OrderLine{}, domainerrors.ErrItemUnavailable.WithMessage(fields.Name + " is not available")
	}

	return entity.OrderLine{ID: fields.ID, Name: fields.Name, Price: fields.Price}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

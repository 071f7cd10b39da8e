package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bagService "bookstore-web/internal/domains/bag/service"
	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/domains/checkout/repository"
	profileModel "bookstore-web/internal/domains/profile/model"
	profileService "bookstore-web/internal/domains/profile/service"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
	"bookstore-web/pkg/logger"
)

type checkoutService struct {
	repo     repository.RepositoryInterface
	bag      bagService.ServiceInterface
	profiles profileService.ServiceInterface
}

func NewCheckoutService(
	repo repository.RepositoryInterface,
	bag bagService.ServiceInterface,
	profiles profileService.ServiceInterface,
) ServiceInterface {
	return &checkoutService{repo: repo, bag: bag, profiles: profiles}
}

func (s *checkoutService) NewOrderForm(ctx context.Context, userID *uuid.UUID, email, fullName string) model.OrderForm {
	form := model.OrderForm{FullName: fullName, Email: email}
	if userID == nil {
		return form
	}

	p, err := s.profiles.GetProfile(ctx, *userID)
	if err != nil {
		logger.Warn("checkout without profile", map[string]interface{}{"user_id": userID.String(), "error": err.Error()})
		return form
	}

	form.PhoneNumber = p.DefaultPhoneNumber
	form.Country = p.DefaultCountry
	form.Postcode = p.DefaultPostcode
	form.TownOrCity = p.DefaultTownOrCity
	form.AddressLine1 = p.DefaultAddressLine1
	form.AddressLine2 = p.DefaultAddressLine2
	form.County = p.DefaultCounty
	return form
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sess *session.Session, userID *uuid.UUID, form model.OrderForm) (*model.Order, error) {
	contents, err := s.bag.Contents(ctx, sess)
	if err != nil {
		return nil, err
	}
	if contents.IsEmpty() {
		return nil, model.ErrEmptyBag
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	order := &model.Order{OrderNumber: utils.NewOrderNumber()}
	form.ApplyTo(order)

	snapshot := make(map[string]int, len(contents.Items))
	for _, item := range contents.Items {
		order.LineItems = append(order.LineItems, model.OrderLineItem{
			BookID:        item.Book.ID,
			BookTitle:     item.Book.Title,
			Quantity:      item.Quantity,
			LineitemTotal: item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
		snapshot[strconv.FormatInt(item.Book.ID, 10)] = item.Quantity
	}
	order.UpdateTotals(contents.Delivery)

	bag, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode bag: %w", err)
	}
	order.OriginalBag = string(bag)

	if userID != nil {
		if p, err := s.profiles.GetProfile(ctx, *userID); err == nil {
			order.UserProfileID = &p.ID
		}
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	if userID != nil && form.ShouldSaveInfo() {
		if _, err := s.profiles.UpdateProfile(ctx, *userID, profileForm(form)); err != nil {
			logger.Warn("failed to save delivery info to profile", map[string]interface{}{
				"order_number": order.OrderNumber,
				"error":        err.Error(),
			})
		}
	}

	s.bag.Clear(sess)

	logger.Info("order placed", map[string]interface{}{
		"order_number": order.OrderNumber,
		"items":        len(order.LineItems),
		"grand_total":  order.GrandTotal.StringFixed(2),
	})

	return order, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, orderNumber string) (*model.Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *checkoutService) ListOrders(ctx context.Context, profileID int64) ([]model.Order, error) {
	return s.repo.ListByProfile(ctx, profileID)
}

func profileForm(f model.OrderForm) profileModel.UserProfileForm {
	return profileModel.UserProfileForm{
		DefaultPhoneNumber:  f.PhoneNumber,
		DefaultPostcode:     f.Postcode,
		DefaultTownOrCity:   f.TownOrCity,
		DefaultAddressLine1: f.AddressLine1,
		DefaultAddressLine2: f.AddressLine2,
		DefaultCounty:       f.County,
		DefaultCountry:      f.Country,
	}
}

package cart

import (
	"context"
	"fmt"

	"gharseva/models"
	"gharseva/utils"

	"go.uber.org/zap"
)

// GetCart returns the user's cart, creating nothing: users without a cart get
// an empty one back.
func (s *DefaultCartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart: failed to load cart for user %s: %w", userID, err)
	}
	if c == nil {
		c = &models.Cart{UserID: userID}
	}
	return c, nil
}

// AddItem is the generic add-to-cart path: adding the same service again
// increments its quantity without bound.
func (s *DefaultCartService) AddItem(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	return s.add(ctx, userID, serviceID, false)
}

// AddPackage is the package add-to-cart path: quantity is hard-capped at one.
// This differs from AddItem's unbounded increment; both observed behaviors
// are kept as-is, and hitting the cap is logged so the asymmetry stays
// visible instead of being silently unified.
func (s *DefaultCartService) AddPackage(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	return s.add(ctx, userID, serviceID, true)
}

func (s *DefaultCartService) add(ctx context.Context, userID, serviceID string, packagePath bool) (*models.Cart, error) {
	record, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service %s: %w", serviceID, err)
	}
	if record == nil {
		return nil, ErrServiceNotFound
	}

	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ServiceID == serviceID {
			found = true
			if packagePath {
				utils.GetLogger().Warn("cart: package quantity capped at 1",
					zap.String("userId", userID),
					zap.String("serviceId", serviceID))
			} else {
				c.Items[i].Quantity++
			}
			break
		}
	}
	if !found {
		c.Items = append(c.Items, models.CartItem{
			ServiceID:   record.ID,
			PackageName: record.PackageName,
			PriceAmount: record.PriceAmount,
			Quantity:    1,
			IsPackage:   record.IsPackage,
		})
	}

	if err := s.Repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("cart: failed to save cart for user %s: %w", userID, err)
	}
	return c, nil
}

// RemoveItem drops a line from the cart entirely.
func (s *DefaultCartService) RemoveItem(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range c.Items {
		if c.Items[i].ServiceID == serviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	if err := s.Repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("cart: failed to save cart for user %s: %w", userID, err)
	}
	return c, nil
}

// DecrementItem lowers a line's quantity by one, removing the line when it
// reaches zero.
func (s *DefaultCartService) DecrementItem(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range c.Items {
		if c.Items[i].ServiceID == serviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	if c.Items[idx].Quantity > 1 {
		c.Items[idx].Quantity--
	} else {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}

	if err := s.Repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("cart: failed to save cart for user %s: %w", userID, err)
	}
	return c, nil
}

// SetAddOns replaces the cart's selected add-ons.
func (s *DefaultCartService) SetAddOns(ctx context.Context, userID string, addOns []models.AddOn) (*models.Cart, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.AddOns = addOns

	if err := s.Repo.Save(ctx, *c); err != nil {
		return nil, fmt.Errorf("cart: failed to save cart for user %s: %w", userID, err)
	}
	return c, nil
}

// Summary computes the checkout breakdown for the user's current cart. A
// coupon code is validated first; an ineligible coupon fails the call with a
// typed error rather than silently pricing without it.
func (s *DefaultCartService) Summary(ctx context.Context, userID, couponCode string) (*models.CartSummary, error) {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var applied *models.Coupon
	if couponCode != "" {
		subtotal := Subtotal(c.Items, c.AddOns)
		applied, err = s.CouponSvc.Validate(ctx, couponCode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	summary := Summarize(c.Items, c.AddOns, applied)
	return &summary, nil
}

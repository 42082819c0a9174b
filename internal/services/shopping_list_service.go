package services

import (
	"context"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"compatron/internal/models"
)

type ShoppingListService struct {
	Lists    ShoppingListStore
	Currency string
}

func NewShoppingListService(lists ShoppingListStore, currency string) *ShoppingListService {
	if currency == "" {
		currency = money.USD
	}
	return &ShoppingListService{Lists: lists, Currency: currency}
}

func (s *ShoppingListService) CreateList(ctx context.Context, user models.SessionUser, req models.CreateShoppingListRequest) (models.ShoppingList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.ShoppingList{}, models.Invalid("Name is required")
	}
	items := req.Items
	if items == nil {
		items = []models.ShoppingListItem{}
	}
	total := s.estimate(items)
	list, err := s.Lists.CreateList(ctx, models.ShoppingList{
		Name:               name,
		Items:              items,
		TotalEstimatedCost: total.AsMajorUnits(),
		OwnerID:            user.ID,
		Username:           user.Username,
	})
	if err != nil {
		return models.ShoppingList{}, err
	}
	list.TotalDisplay = total.Display()
	return list, nil
}

func (s *ShoppingListService) ListLists(ctx context.Context, user models.SessionUser) ([]models.ShoppingList, error) {
	lists, err := s.Lists.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		lists[i].TotalDisplay = s.display(lists[i].TotalEstimatedCost)
	}
	return lists, nil
}

func (s *ShoppingListService) GetList(ctx context.Context, user models.SessionUser, id int64) (models.ShoppingList, error) {
	list, err := s.Lists.GetList(ctx, id, user.ID)
	if err != nil {
		return models.ShoppingList{}, err
	}
	list.TotalDisplay = s.display(list.TotalEstimatedCost)
	return list, nil
}

// UpdateList applies the fields present in req. The total is recomputed
// whenever items are replaced.
func (s *ShoppingListService) UpdateList(ctx context.Context, user models.SessionUser, id int64, req models.UpdateShoppingListRequest) (models.ShoppingList, error) {
	list, err := s.Lists.GetList(ctx, id, user.ID)
	if err != nil {
		return models.ShoppingList{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.ShoppingList{}, models.Invalid("Name is required")
		}
		list.Name = name
	}
	if req.Items != nil {
		list.Items = *req.Items
		if list.Items == nil {
			list.Items = []models.ShoppingListItem{}
		}
		list.TotalEstimatedCost = s.estimate(list.Items).AsMajorUnits()
	}

	updated, err := s.Lists.UpdateList(ctx, list)
	if err != nil {
		return models.ShoppingList{}, err
	}
	updated.TotalDisplay = s.display(updated.TotalEstimatedCost)
	return updated, nil
}

func (s *ShoppingListService) DeleteList(ctx context.Context, user models.SessionUser, id int64) error {
	return s.Lists.DeleteList(ctx, id, user.ID)
}

// estimate sums estimated prices in minor units; entries without one count as zero.
func (s *ShoppingListService) estimate(items []models.ShoppingListItem) *money.Money {
	total := money.New(0, s.Currency)
	for _, it := range items {
		if it.EstimatedPrice == nil {
			continue
		}
		sum, err := total.Add(s.toMoney(*it.EstimatedPrice))
		if err != nil {
			continue
		}
		total = sum
	}
	return total
}

func (s *ShoppingListService) toMoney(amount float64) *money.Money {
	cur := money.GetCurrency(s.Currency)
	fraction := int32(2)
	if cur != nil {
		fraction = int32(cur.Fraction)
	}
	minor := decimal.NewFromFloat(amount).Shift(fraction).Round(0).IntPart()
	return money.New(minor, s.Currency)
}

func (s *ShoppingListService) display(amount float64) string {
	return s.toMoney(amount).Display()
}

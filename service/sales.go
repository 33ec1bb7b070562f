package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/models"
)

type SaleItemInput struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type SaleCreateInput struct {
	Number       string          `json:"number" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
	CustomerID   uint            `json:"customer_id" binding:"required"`
	CustomerName string          `json:"customer_name" binding:"required"`
	BranchID     uint            `json:"branch_id" binding:"required"`
	BranchName   string          `json:"branch_name" binding:"required"`
	Items        []SaleItemInput `json:"items" binding:"required,min=1,dive"`
}

type SaleUpdateInput struct {
	Number       string          `json:"number" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
	CustomerID   uint            `json:"customer_id" binding:"required"`
	CustomerName string          `json:"customer_name" binding:"required"`
	BranchID     uint            `json:"branch_id" binding:"required"`
	BranchName   string          `json:"branch_name" binding:"required"`
	Items        []SaleItemInput `json:"items" binding:"required,min=1,dive"`
	Cancelled    bool            `json:"cancelled"`
}

type SaleListFilter struct {
	From      *time.Time
	To        *time.Time
	Customer  string
	Branch    string
	MinTotal  *float64
	MaxTotal  *float64
	Cancelled *bool
	Order     string
	Page      int
	Size      int
}

// SalesService owns the sale aggregate: every mutation runs in one primary
// store transaction and, after commit, pushes the new state to the read
// model projector.
type SalesService struct {
	db        *gorm.DB
	projector SaleProjector
}

func NewSalesService(db *gorm.DB, projector SaleProjector) *SalesService {
	return &SalesService{db: db, projector: projector}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildSaleItems validates the supplied items, derives each discount and
// line total, and returns the aggregate total over all of them. Any invalid
// item fails the whole batch.
func buildSaleItems(items []SaleItemInput) ([]models.SaleItem, float64, error) {
	out := make([]models.SaleItem, 0, len(items))
	var total float64
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, 0, Validation("quantity must be greater than zero", fmt.Sprintf("product_id=%d", it.ProductID))
		}
		if it.UnitPrice <= 0 {
			return nil, 0, Validation("unit price must be greater than zero", fmt.Sprintf("product_id=%d", it.ProductID))
		}
		rate, err := DiscountForQuantity(it.Quantity)
		if err != nil {
			return nil, 0, Validation(err.Error(), fmt.Sprintf("product_id=%d quantity=%d", it.ProductID, it.Quantity))
		}
		line := round2(float64(it.Quantity) * it.UnitPrice * (1 - rate))
		out = append(out, models.SaleItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: rate,
			LineTotal:       line,
		})
		total += line
	}
	return out, round2(total), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *SalesService) Create(ctx context.Context, in SaleCreateInput) (*models.Sale, error) {
	items, total, err := buildSaleItems(in.Items)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		Number:       in.Number,
		Date:         in.Date,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		BranchID:     in.BranchID,
		BranchName:   in.BranchName,
		Total:        total,
		Items:        items,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Sale{}).Where("number = ?", in.Number).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict(fmt.Sprintf("sale number '%s' already exists", in.Number), "number="+in.Number)
		}
		if err := tx.Create(sale).Error; err != nil {
			// two creates racing on the same number: the unique index wins
			if isUniqueViolation(err) {
				return Conflict(fmt.Sprintf("sale number '%s' already exists", in.Number), "number="+in.Number)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SaleCreated] %s total=%.2f", sale.Number, sale.Total)
	s.project(ctx, sale)
	return sale, nil
}

// Update replaces the whole sale, items included. The old item collection is
// discarded rather than merged, and the cancelled flag is taken from the
// caller as ordinary data.
func (s *SalesService) Update(ctx context.Context, id uint, in SaleUpdateInput) (*models.Sale, error) {
	items, total, err := buildSaleItems(in.Items)
	if err != nil {
		return nil, err
	}

	var sale models.Sale
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("sale not found", fmt.Sprintf("id=%d", id))
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Sale{}).Where("number = ? AND id <> ?", in.Number, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict(fmt.Sprintf("sale number '%s' already exists", in.Number), "number="+in.Number)
		}

		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}

		sale.Number = in.Number
		sale.Date = in.Date
		sale.CustomerID = in.CustomerID
		sale.CustomerName = in.CustomerName
		sale.BranchID = in.BranchID
		sale.BranchName = in.BranchName
		sale.Cancelled = in.Cancelled
		sale.Total = total
		sale.Items = items
		return tx.Save(&sale).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SaleModified] %s total=%.2f", sale.Number, sale.Total)
	s.project(ctx, &sale)
	return &sale, nil
}

// CancelSale flips the sale-level cancelled flag. Items and the total are
// left alone.
func (s *SalesService) CancelSale(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("sale not found", fmt.Sprintf("id=%d", id))
			}
			return err
		}
		sale.Cancelled = true
		return tx.Model(&sale).Update("cancelled", true).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SaleCancelled] %s", sale.Number)
	s.project(ctx, &sale)
	return &sale, nil
}

// CancelItem cancels one line item and recomputes the sale total over the
// remaining non-cancelled items. Item cancellation is one-way.
func (s *SalesService) CancelItem(ctx context.Context, saleID, itemID uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("sale not found", fmt.Sprintf("id=%d", saleID))
			}
			return err
		}

		var item *models.SaleItem
		for i := range sale.Items {
			if sale.Items[i].ID == itemID {
				item = &sale.Items[i]
				break
			}
		}
		if item == nil {
			return NotFound("sale item not found", fmt.Sprintf("sale_id=%d item_id=%d", saleID, itemID))
		}

		item.Cancelled = true
		var total float64
		for _, it := range sale.Items {
			if !it.Cancelled {
				total += it.LineTotal
			}
		}
		sale.Total = round2(total)

		if err := tx.Model(&models.SaleItem{}).Where("id = ?", itemID).Update("cancelled", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Sale{}).Where("id = ?", saleID).Update("total", sale.Total).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ItemCancelled] sale=%s item=%d", sale.Number, itemID)
	s.project(ctx, &sale)
	return &sale, nil
}

// GetByID returns the sale with its items, or nil when absent.
func (s *SalesService) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).Preload("Items").First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

var saleSortFields = map[string]func(a, b models.Sale) int{
	"id":           func(a, b models.Sale) int { return cmp.Compare(a.ID, b.ID) },
	"number":       func(a, b models.Sale) int { return strings.Compare(a.Number, b.Number) },
	"date":         func(a, b models.Sale) int { return a.Date.Compare(b.Date) },
	"customername": func(a, b models.Sale) int { return strings.Compare(a.CustomerName, b.CustomerName) },
	"branchname":   func(a, b models.Sale) int { return strings.Compare(a.BranchName, b.BranchName) },
	"total":        func(a, b models.Sale) int { return cmp.Compare(a.Total, b.Total) },
}

// List queries the primary store; the read model is never involved here.
func (s *SalesService) List(ctx context.Context, f SaleListFilter) (PagedResult[models.Sale], error) {
	q := s.db.WithContext(ctx).Model(&models.Sale{}).Preload("Items")
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", f.To.Add(24*time.Hour-time.Nanosecond))
	}
	if f.Customer != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(f.Customer)+"%")
	}
	if f.Branch != "" {
		q = q.Where("LOWER(branch_name) LIKE ?", "%"+strings.ToLower(f.Branch)+"%")
	}
	if f.MinTotal != nil {
		q = q.Where("total >= ?", *f.MinTotal)
	}
	if f.MaxTotal != nil {
		q = q.Where("total <= ?", *f.MaxTotal)
	}
	if f.Cancelled != nil {
		q = q.Where("cancelled = ?", *f.Cancelled)
	}

	var sales []models.Sale
	if err := q.Order("id").Find(&sales).Error; err != nil {
		return PagedResult[models.Sale]{}, err
	}

	sales = ApplyOrder(sales, saleSortFields, f.Order)
	page, size := ClampPage(f.Page, f.Size)
	return Paginate(sales, page, size), nil
}

// project pushes the post-commit state to the read model. A failure here is
// logged and swallowed: the primary write already committed.
func (s *SalesService) project(ctx context.Context, sale *models.Sale) {
	if s.projector == nil {
		return
	}
	doc := SaleDocument{
		ID:           sale.ID,
		Number:       sale.Number,
		Date:         sale.Date,
		CustomerID:   sale.CustomerID,
		CustomerName: sale.CustomerName,
		BranchID:     sale.BranchID,
		BranchName:   sale.BranchName,
		Total:        sale.Total,
		Cancelled:    sale.Cancelled,
	}
	if err := s.projector.UpsertSale(ctx, doc); err != nil {
		log.Printf("read model upsert failed for sale %d: %v", sale.ID, err)
	}
}

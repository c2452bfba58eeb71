package order

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nhongkham198/SGdelivery/internal/core"
)

var (
	ErrMissingFields = errors.New("customer name, phone, and address are required")
	ErrEmptyCart     = errors.New("order has no lines")
	ErrBadSlipType   = errors.New("slip must be a jpg, png, or webp image")
	ErrBadStatus     = errors.New("unknown order status")
)

var allowedSlipExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var validStatus = map[string]bool{
	StatusNew:          true,
	StatusSlipUploaded: true,
	StatusConfirmed:    true,
	StatusDelivered:    true,
	StatusCancelled:    true,
}

// Storage persists payment-slip images.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	menu    core.MenuReader
	storage Storage
}

func NewService(repo Repository, menu core.MenuReader, storage Storage) *Service {
	return &Service{repo: repo, menu: menu, storage: storage}
}

// PlaceRequest is the inbound cart. Prices are deliberately absent: the
// server prices every line from the live menu so a stale or tampered client
// total never reaches the order log.
type PlaceRequest struct {
	CustomerName string        `json:"customer_name"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	Note         string        `json:"note"`
	Lines        []LineRequest `json:"lines"`
}

type LineRequest struct {
	ItemName string            `json:"item_name"`
	Quantity int               `json:"quantity"`
	Choices  []ChoiceSelection `json:"choices"`
}

// --------------------------------------------------
// Place Order (PRICED FROM MENU SNAPSHOT)
// --------------------------------------------------
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, ErrMissingFields
	}
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	lines := make([]Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}

		refs := make([]core.ChoiceRef, 0, len(l.Choices))
		for _, c := range l.Choices {
			refs = append(refs, core.ChoiceRef{Group: c.Group, Choice: c.Choice})
		}

		unit, err := s.menu.PriceItem(ctx, l.ItemName, refs)
		if err != nil {
			return nil, err
		}

		lines = append(lines, Line{
			ItemName:  l.ItemName,
			Quantity:  qty,
			Choices:   l.Choices,
			UnitPrice: unit,
		})
		total += unit * float64(qty)
	}

	o := &Order{
		ID:           uuid.New().String(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		Note:         strings.TrimSpace(req.Note),
		Lines:        lines,
		Total:        total,
		Status:       StatusNew,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// --------------------------------------------------
// Attach Payment Slip
// --------------------------------------------------
func (s *Service) AttachSlip(
	ctx context.Context,
	orderID string,
	file multipart.File,
	filename string,
) (string, error) {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedSlipExt[ext] {
		return "", ErrBadSlipType
	}

	key := fmt.Sprintf("slips/%s/%s%s", orderID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetSlip(ctx, orderID, url); err != nil {
		return "", err
	}
	if err := s.repo.UpdateStatus(ctx, orderID, StatusSlipUploaded); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// Owner views the order log
// --------------------------------------------------
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Owner moves an order through its lifecycle
// --------------------------------------------------
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if !validStatus[status] {
		return ErrBadStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

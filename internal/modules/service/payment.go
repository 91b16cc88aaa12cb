package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

const paymentsTable = "payments"

type PaymentService interface {
	Create(ctx context.Context, projectID uuid.UUID, in CreatePaymentInput) (*model.Payment, error)
	List(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	r      repo.PaymentRepo
	access Authorizer
}

func NewPaymentService(r repo.PaymentRepo, access Authorizer) PaymentService {
	return &paymentService{r: r, access: access}
}

type CreatePaymentInput struct {
	Amount        string
	PaymentDate   string
	PaymentMethod string
	Notes         string
}

func (s *paymentService) Create(ctx context.Context, projectID uuid.UUID, in CreatePaymentInput) (*model.Payment, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return nil, err
	}
	date := today()
	if in.PaymentDate != "" {
		if date, err = parseDate("payment_date", in.PaymentDate); err != nil {
			return nil, err
		}
	}

	if err := s.access.Authorize(ctx, paymentsTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	p := &model.Payment{
		ProjectID:     projectID,
		Amount:        amount,
		PaymentDate:   date,
		PaymentMethod: optionalText(in.PaymentMethod),
		Notes:         optionalText(in.Notes),
		CreatedBy:     uid,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error) {
	if err := s.access.Authorize(ctx, paymentsTable, policy.Select, uuid.Nil); err != nil {
		return nil, err
	}
	return s.r.ListByProject(ctx, projectID)
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.access.Authorize(ctx, paymentsTable, policy.Delete, uuid.Nil); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"donationrecords/internal/domain"

	"github.com/shopspring/decimal"
)

// DonationRecorder receives notifications about persisted donations (metrics).
type DonationRecorder interface {
	DonationCreated(amount decimal.Decimal)
	DonationDeleted()
}

type noopRecorder struct{}

func (noopRecorder) DonationCreated(decimal.Decimal) {}
func (noopRecorder) DonationDeleted()                {}

type donationService struct {
	repo           domain.DonationRepository
	emailService   domain.EmailService
	recorder       DonationRecorder
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewDonationService returns a DonationService backed by repo. emailService and recorder may be nil.
// A zero timeout leaves the caller's context deadline untouched.
func NewDonationService(repo domain.DonationRepository, emailService domain.EmailService, recorder DonationRecorder, logger *slog.Logger, timeout time.Duration) domain.DonationService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &donationService{
		repo:           repo,
		emailService:   emailService,
		recorder:       recorder,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *donationService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.contextTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.contextTimeout)
}

func (s *donationService) Create(ctx context.Context, in domain.DonationInput) (*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "creating donation", "cpf", domain.MaskCPF(in.DonorCPF))
	if err := domain.ValidateDonation(in); err != nil {
		return nil, err
	}

	d := domain.NewDonation(in, s.now())
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save donation: %w", err)
	}
	s.recorder.DonationCreated(d.Amount)
	s.logger.InfoContext(ctx, "donation created", "id", d.ID)

	s.sendReceipt(ctx, d)
	return d.View(), nil
}

// sendReceipt emails the donor when an address was given. Failures are logged only;
// the donation is already stored.
func (s *donationService) sendReceipt(ctx context.Context, d *domain.Donation) {
	if s.emailService == nil || d.DonorEmail == nil || *d.DonorEmail == "" {
		return
	}
	err := s.emailService.SendDonationReceipt(ctx, &domain.DonationReceiptEmailData{
		Email:      *d.DonorEmail,
		DonorName:  d.DonorName,
		DonationID: d.ID,
		Amount:     d.Amount.StringFixed(2),
		DonatedAt:  d.DonatedAt.Format("2006-01-02 15:04"),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "donation receipt not sent", "id", d.ID, "err", err)
	}
}

func views(donations []*domain.Donation) []*domain.DonationView {
	out := make([]*domain.DonationView, 0, len(donations))
	for _, d := range donations {
		out = append(out, d.View())
	}
	return out
}

func (s *donationService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "listing donations", "page", params.Page, "page_size", params.PageSize)
	donations, err := s.repo.List(ctx, domain.ListOptions{Sort: domain.SortDonatedAtDesc, Pagination: params})
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return views(donations), nil
}

func (s *donationService) GetByID(ctx context.Context, id int64) (*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "getting donation", "id", id)
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("donation %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get donation %d: %w", id, err)
	}
	return d.View(), nil
}

func (s *donationService) ListByCPF(ctx context.Context, cpf string) ([]*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "listing donations by cpf", "cpf", domain.MaskCPF(cpf))
	donations, err := s.repo.ListByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("list donations by cpf: %w", err)
	}
	return views(donations), nil
}

func (s *donationService) ListByName(ctx context.Context, name string) ([]*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "listing donations by name", "name", name)
	donations, err := s.repo.ListByNameContains(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list donations by name: %w", err)
	}
	return views(donations), nil
}

func (s *donationService) ListByMinAmount(ctx context.Context, min decimal.Decimal) ([]*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "listing donations by min amount", "min", min.StringFixed(2))
	donations, err := s.repo.ListByMinAmount(ctx, min)
	if err != nil {
		return nil, fmt.Errorf("list donations by min amount: %w", err)
	}
	return views(donations), nil
}

func (s *donationService) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.DonationView, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if to.Before(from) {
		return nil, domain.NewValidationError("to", "end of period must not be before its start")
	}
	s.logger.InfoContext(ctx, "listing donations by period", "from", from, "to", to)
	donations, err := s.repo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list donations by period: %w", err)
	}
	return views(donations), nil
}

func (s *donationService) SumByCPF(ctx context.Context, cpf string) (decimal.Decimal, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "summing donations by cpf", "cpf", domain.MaskCPF(cpf))
	total, err := s.repo.SumAmountByCPF(ctx, cpf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum donations by cpf: %w", err)
	}
	return total, nil
}

func (s *donationService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.logger.InfoContext(ctx, "deleting donation", "id", id)
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("donation %d: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("delete donation %d: %w", id, err)
	}
	s.recorder.DonationDeleted()
	s.logger.InfoContext(ctx, "donation deleted", "id", id)
	return nil
}

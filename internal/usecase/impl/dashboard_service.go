package impl

import (
	"context"
	"log/slog"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardMonths  = 12
	topListingsLimit = 5
	monthLayout      = "2006-01"
)

type dashboardService struct {
	dashboardRepo    repository.DashboardRepository
	conversationRepo repository.ConversationRepository
	logger           *slog.Logger
	now              func() time.Time
}

// NewDashboardService creates the dashboard use case.
func NewDashboardService(dashboardRepo repository.DashboardRepository, conversationRepo repository.ConversationRepository, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo:    dashboardRepo,
		conversationRepo: conversationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Seller aggregates a seller's listings, engagement and sales. Parts are fetched in parallel.
func (srv *dashboardService) Seller(ctx context.Context, sellerID uuid.UUID) (*entity.SellerDashboard, error) {
	dashboard := &entity.SellerDashboard{}
	since := seriesStart(srv.now(), dashboardMonths)

	var amounts []entity.DatedAmount

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		counts, err := srv.dashboardRepo.ListingStatusCounts(gctx, &sellerID)
		dashboard.ListingsByStatus = counts

		return errors.Wrap(err, "listing status counts")
	})
	group.Go(func() error {
		views, favorites, err := srv.dashboardRepo.ListingTotals(gctx, sellerID)
		dashboard.TotalViews, dashboard.TotalFavorites = views, favorites

		return errors.Wrap(err, "listing totals")
	})
	group.Go(func() error {
		top, err := srv.dashboardRepo.TopListings(gctx, sellerID, topListingsLimit)
		dashboard.TopListings = top

		return errors.Wrap(err, "top listings")
	})
	group.Go(func() error {
		count, err := srv.dashboardRepo.ConversationCount(gctx, sellerID)
		dashboard.Conversations = count

		return errors.Wrap(err, "conversation count")
	})
	group.Go(func() error {
		unread, err := srv.conversationRepo.CountUnread(gctx, sellerID)
		dashboard.UnreadMessages = unread

		return errors.Wrap(err, "unread messages")
	})
	group.Go(func() error {
		count, revenue, err := srv.dashboardRepo.CompletedSales(gctx, &sellerID)
		dashboard.SalesCount, dashboard.RevenueMinor = count, revenue

		return errors.Wrap(err, "completed sales")
	})
	group.Go(func() error {
		var err error
		amounts, err = srv.dashboardRepo.CompletedAmountsSince(gctx, &sellerID, since)

		return errors.Wrap(err, "revenue series")
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build seller dashboard")
	}

	dashboard.MonthlyRevenue = buildMonthlySeries(since, dashboardMonths, amounts)
	if dashboard.ListingsByStatus == nil {
		dashboard.ListingsByStatus = []entity.StatusCount{}
	}
	if dashboard.TopListings == nil {
		dashboard.TopListings = []entity.ListingViews{}
	}

	return dashboard, nil
}

// Admin aggregates marketplace-wide counts and volume.
func (srv *dashboardService) Admin(ctx context.Context) (*entity.AdminDashboard, error) {
	dashboard := &entity.AdminDashboard{}
	since := seriesStart(srv.now(), dashboardMonths)

	var (
		amounts []entity.DatedAmount
		signups []time.Time
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		counts, err := srv.dashboardRepo.UserRoleCounts(gctx)
		dashboard.UsersByRole = counts

		return errors.Wrap(err, "user role counts")
	})
	group.Go(func() error {
		counts, err := srv.dashboardRepo.ListingStatusCounts(gctx, nil)
		dashboard.ListingsByStatus = counts

		return errors.Wrap(err, "listing status counts")
	})
	group.Go(func() error {
		counts, err := srv.dashboardRepo.TransactionStatusCounts(gctx)
		dashboard.TransactionsByStatus = counts

		return errors.Wrap(err, "transaction status counts")
	})
	group.Go(func() error {
		_, volume, err := srv.dashboardRepo.CompletedSales(gctx, nil)
		dashboard.GrossVolumeMinor = volume

		return errors.Wrap(err, "gross volume")
	})
	group.Go(func() error {
		var err error
		amounts, err = srv.dashboardRepo.CompletedAmountsSince(gctx, nil, since)

		return errors.Wrap(err, "volume series")
	})
	group.Go(func() error {
		var err error
		signups, err = srv.dashboardRepo.ProfilesCreatedSince(gctx, since)

		return errors.Wrap(err, "signup series")
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build admin dashboard")
	}

	dashboard.MonthlyVolume = buildMonthlySeries(since, dashboardMonths, amounts)

	signupAmounts := make([]entity.DatedAmount, 0, len(signups))
	for _, at := range signups {
		signupAmounts = append(signupAmounts, entity.DatedAmount{At: at})
	}
	dashboard.MonthlyNewUsers = buildMonthlySeries(since, dashboardMonths, signupAmounts)

	return dashboard, nil
}

// seriesStart is the first day of the oldest month in a series of months ending with now's month.
func seriesStart(now time.Time, months int) time.Time {
	now = now.UTC()

	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
}

// buildMonthlySeries buckets amounts by UTC month. Every month from start is present, empty months as zero.
func buildMonthlySeries(start time.Time, months int, amounts []entity.DatedAmount) []entity.MonthlyAmount {
	series := make([]entity.MonthlyAmount, months)
	index := make(map[string]int, months)
	for i := range months {
		month := start.AddDate(0, i, 0).Format(monthLayout)
		series[i] = entity.MonthlyAmount{Month: month}
		index[month] = i
	}

	for _, amount := range amounts {
		i, ok := index[amount.At.UTC().Format(monthLayout)]
		if !ok {
			continue
		}
		series[i].Amount += amount.Amount
		series[i].Count++
	}

	return series
}

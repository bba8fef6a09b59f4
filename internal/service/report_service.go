package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/snapshot"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const reportsCollection = "reports"

type ReportService interface {
	CreateReport(ctx context.Context, userID uint64, req *dto.ReportCreateDTO) (*model.Report, error)
	ListReports(ctx context.Context) []model.Report
	GetReport(ctx context.Context, id string) (*model.Report, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Report, error)
}

type reportServiceImpl struct {
	reports  *snapshot.Collection[model.Report]
	userRepo repository.UserRepo
	media    MediaService
	now      func() time.Time
}

func NewReportService(ctx context.Context, store *snapshot.Store, userRepo repository.UserRepo, media MediaService) (ReportService, error) {
	reports, err := snapshot.NewCollection[model.Report](ctx, store, reportsCollection, nil)
	if err != nil {
		return nil, err
	}
	return &reportServiceImpl{reports: reports, userRepo: userRepo, media: media, now: time.Now}, nil
}

// CreateReport 新举报排在最前，初始状态 pending
func (s *reportServiceImpl) CreateReport(ctx context.Context, userID uint64, req *dto.ReportCreateDTO) (*model.Report, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	report := model.Report{
		ID:          "rep-" + uuid.NewString(),
		UserID:      user.ID,
		Username:    user.Username,
		UserAvatar:  user.AvatarURL,
		Subject:     req.Subject,
		Description: req.Description,
		Images:      images,
		Status:      model.ReportPending,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	}
	err = s.reports.Mutate(ctx, func(items []model.Report) ([]model.Report, error) {
		return append([]model.Report{report}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	s.media.Claim(ctx, images...)
	log.InfoContext(ctx, "report created", "report_id", report.ID, "user_id", userID)
	return &report, nil
}

func (s *reportServiceImpl) ListReports(ctx context.Context) []model.Report {
	return s.reports.All()
}

func (s *reportServiceImpl) GetReport(ctx context.Context, id string) (*model.Report, error) {
	r, ok := s.reports.Find(func(r model.Report) bool { return r.ID == id })
	if !ok {
		return nil, ErrReportNotFound
	}
	return &r, nil
}

func (s *reportServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Report, error) {
	if status != model.ReportReviewed && status != model.ReportResolved {
		return nil, ErrParamInvalid
	}
	var updated model.Report
	err := s.reports.Mutate(ctx, func(items []model.Report) ([]model.Report, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrReportNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

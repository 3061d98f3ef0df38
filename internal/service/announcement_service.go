package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/model"
	"uni-manage/backend/internal/repository"
)

// AnnouncementService 公告业务接口
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
	// List 指定院系时返回该院系公告与全局公告的并集
	List(ctx context.Context, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:      deref(req.Title),
		Content:    deref(req.Content),
		AuthorID:   deref(req.AuthorID),
		Department: req.Department,
		Important:  req.Important,
		Semester:   req.Semester,
	}

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("创建公告失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以获取作者信息
	created, err := s.repo.Announcement.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Error("重新加载公告失败", zap.String("id", a.ID), zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(created), nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("查询公告失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toAnnouncementResponse(a), nil
}

func (s *announcementService) List(ctx context.Context, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, error) {
	filters := &repository.AnnouncementListFilters{Department: req.Department}

	list, err := s.repo.Announcement.List(ctx, filters, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出公告失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAnnouncementResponse(&list[i]))
	}
	return result, nil
}

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

// AssignmentService 作业业务接口
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	a := &model.Assignment{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		DueDate:     deref(req.DueDate),
		Department:  deref(req.Department),
		Subject:     deref(req.Subject),
		AuthorID:    deref(req.AuthorID),
		Attachments: req.Attachments,
		Semester:    deref(req.Semester),
	}

	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		s.logger.Error("创建作业失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Assignment.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Error("重新加载作业失败", zap.String("id", a.ID), zap.Error(err))
		return nil, err
	}

	return toAssignmentResponse(created), nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, error) {
	filters := &repository.AssignmentListFilters{
		Department: req.Department,
		Semester:   req.Semester,
	}

	list, err := s.repo.Assignment.List(ctx, filters, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出作业失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAssignmentResponse(&list[i]))
	}
	return result, nil
}

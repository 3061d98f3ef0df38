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

// LectureService 讲座业务接口
type LectureService interface {
	Create(ctx context.Context, req *dto.CreateLectureRequest) (*dto.LectureResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LectureResponse, error)
	List(ctx context.Context, req *dto.LectureListRequest) ([]dto.LectureResponse, error)
}

type lectureService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLectureService 创建 LectureService 实例
func NewLectureService(repo *repository.Repository, logger *zap.Logger) LectureService {
	return &lectureService{repo: repo, logger: logger}
}

func (s *lectureService) Create(ctx context.Context, req *dto.CreateLectureRequest) (*dto.LectureResponse, error) {
	l := &model.Lecture{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		Date:        deref(req.Date),
		StartTime:   deref(req.StartTime),
		EndTime:     deref(req.EndTime),
		Location:    deref(req.Location),
		Department:  deref(req.Department),
		Subject:     deref(req.Subject),
		ProfessorID: deref(req.ProfessorID),
		Materials:   req.Materials,
		Semester:    deref(req.Semester),
	}

	if err := s.repo.Lecture.Create(ctx, l); err != nil {
		s.logger.Error("创建讲座失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Lecture.GetByID(ctx, l.ID)
	if err != nil {
		s.logger.Error("重新加载讲座失败", zap.String("id", l.ID), zap.Error(err))
		return nil, err
	}

	return toLectureResponse(created), nil
}

func (s *lectureService) GetByID(ctx context.Context, id string) (*dto.LectureResponse, error) {
	l, err := s.repo.Lecture.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLectureNotFound
		}
		s.logger.Error("查询讲座失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toLectureResponse(l), nil
}

func (s *lectureService) List(ctx context.Context, req *dto.LectureListRequest) ([]dto.LectureResponse, error) {
	filters := &repository.LectureListFilters{
		Department: req.Department,
		Semester:   req.Semester,
		Date:       req.Date,
	}

	list, err := s.repo.Lecture.List(ctx, filters, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出讲座失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LectureResponse, 0, len(list))
	for i := range list {
		result = append(result, *toLectureResponse(&list[i]))
	}
	return result, nil
}

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

// SubjectService 科目业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, error)
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// Create 不做插入前校验；科目代码冲突按存储层错误处理
func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := &model.Subject{
		Name:          deref(req.Name),
		Code:          deref(req.Code),
		Department:    deref(req.Department),
		ProfessorID:   deref(req.ProfessorID),
		Description:   deref(req.Description),
		Semester:      deref(req.Semester),
		Credits:       req.Credits,
		Prerequisites: req.Prerequisites,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("创建科目失败", zap.String("code", subject.Code), zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Subject.GetByID(ctx, subject.ID)
	if err != nil {
		s.logger.Error("重新加载科目失败", zap.String("id", subject.ID), zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(created), nil
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, error) {
	filters := &repository.SubjectListFilters{
		Department: req.Department,
		Semester:   req.Semester,
	}

	list, err := s.repo.Subject.List(ctx, filters, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubjectResponse, 0, len(list))
	for i := range list {
		result = append(result, *toSubjectResponse(&list[i]))
	}
	return result, nil
}

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

// ChatGroupService 群聊业务接口
type ChatGroupService interface {
	Create(ctx context.Context, req *dto.CreateChatGroupRequest) (*dto.ChatGroupResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ChatGroupResponse, error)
	ListForTeacher(ctx context.Context, teacherID string, req *dto.ChatGroupListRequest) ([]dto.ChatGroupResponse, error)
	// ListForStudent 学生不存在时返回 ErrStudentNotFound；学期始终取学生本人的学期
	ListForStudent(ctx context.Context, studentID string, req *dto.ChatGroupListRequest) ([]dto.ChatGroupResponse, error)
}

type chatGroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChatGroupService 创建 ChatGroupService 实例
func NewChatGroupService(repo *repository.Repository, logger *zap.Logger) ChatGroupService {
	return &chatGroupService{repo: repo, logger: logger}
}

func (s *chatGroupService) Create(ctx context.Context, req *dto.CreateChatGroupRequest) (*dto.ChatGroupResponse, error) {
	g := &model.ChatGroup{
		Name:      deref(req.Name),
		SubjectID: deref(req.SubjectID),
		TeacherID: deref(req.TeacherID),
		Semester:  deref(req.Semester),
	}

	if err := s.repo.ChatGroup.Create(ctx, g); err != nil {
		s.logger.Error("创建群聊失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.ChatGroup.GetByID(ctx, g.ID)
	if err != nil {
		s.logger.Error("重新加载群聊失败", zap.String("id", g.ID), zap.Error(err))
		return nil, err
	}

	return toChatGroupResponse(created), nil
}

func (s *chatGroupService) GetByID(ctx context.Context, id string) (*dto.ChatGroupResponse, error) {
	g, err := s.repo.ChatGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatGroupNotFound
		}
		s.logger.Error("查询群聊失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toChatGroupResponse(g), nil
}

func (s *chatGroupService) ListForTeacher(ctx context.Context, teacherID string, req *dto.ChatGroupListRequest) ([]dto.ChatGroupResponse, error) {
	list, err := s.repo.ChatGroup.ListByTeacher(ctx, teacherID, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出教师群聊失败", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}
	return toChatGroupResponses(list), nil
}

func (s *chatGroupService) ListForStudent(ctx context.Context, studentID string, req *dto.ChatGroupListRequest) ([]dto.ChatGroupResponse, error) {
	// 先确认学生存在，未知学生对外表现为 404
	if _, err := s.repo.User.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	list, err := s.repo.ChatGroup.ListForStudent(ctx, studentID, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出学生群聊失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toChatGroupResponses(list), nil
}

func toChatGroupResponses(list []model.ChatGroup) []dto.ChatGroupResponse {
	result := make([]dto.ChatGroupResponse, 0, len(list))
	for i := range list {
		result = append(result, *toChatGroupResponse(&list[i]))
	}
	return result
}

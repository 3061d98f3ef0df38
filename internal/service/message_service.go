package service

import (
	"context"

	"go.uber.org/zap"

	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/model"
	"uni-manage/backend/internal/repository"
)

// MessageService 群聊消息业务接口（客户端轮询拉取，无实时推送）
type MessageService interface {
	Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	ListByChatGroup(ctx context.Context, chatGroupID string, req *dto.MessageListRequest) ([]dto.MessageResponse, error)
}

type messageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMessageService 创建 MessageService 实例
func NewMessageService(repo *repository.Repository, logger *zap.Logger) MessageService {
	return &messageService{repo: repo, logger: logger}
}

func (s *messageService) Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	m := &model.Message{
		Content:     deref(req.Content),
		SenderID:    deref(req.SenderID),
		ChatGroupID: deref(req.ChatGroupID),
	}

	if err := s.repo.Message.Create(ctx, m); err != nil {
		s.logger.Error("发送消息失败", zap.String("chat_group_id", m.ChatGroupID), zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Message.GetByID(ctx, m.ID)
	if err != nil {
		s.logger.Error("重新加载消息失败", zap.String("id", m.ID), zap.Error(err))
		return nil, err
	}

	return toMessageResponse(created), nil
}

func (s *messageService) ListByChatGroup(ctx context.Context, chatGroupID string, req *dto.MessageListRequest) ([]dto.MessageResponse, error) {
	list, err := s.repo.Message.ListByChatGroup(ctx, chatGroupID, req.Skip, req.Limit)
	if err != nil {
		s.logger.Error("列出消息失败", zap.String("chat_group_id", chatGroupID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MessageResponse, 0, len(list))
	for i := range list {
		result = append(result, *toMessageResponse(&list[i]))
	}
	return result, nil
}

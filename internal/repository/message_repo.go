package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	Create(ctx context.Context, m *model.Message) error
	GetByID(ctx context.Context, id string) (*model.Message, error)
	// ListByChatGroup 按 created_at 升序分页
	ListByChatGroup(ctx context.Context, chatGroupID string, offset, limit int) ([]model.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepo 创建 MessageRepository 实例
func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var m model.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) ListByChatGroup(ctx context.Context, chatGroupID string, offset, limit int) ([]model.Message, error) {
	list := make([]model.Message, 0)
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("messages.chat_group_id = ?", chatGroupID).
		Scopes(CreationOrder("messages"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

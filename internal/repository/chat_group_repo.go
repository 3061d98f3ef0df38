package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// ChatGroupRepository 群聊数据访问接口
type ChatGroupRepository interface {
	Create(ctx context.Context, g *model.ChatGroup) error
	GetByID(ctx context.Context, id string) (*model.ChatGroup, error)
	ListByTeacher(ctx context.Context, teacherID string, offset, limit int) ([]model.ChatGroup, error)
	// ListForStudent 按学生所在院系 + 学期匹配群聊；学生不存在时返回空列表而非错误
	ListForStudent(ctx context.Context, studentID string, offset, limit int) ([]model.ChatGroup, error)
}

type chatGroupRepo struct {
	db *gorm.DB
}

// NewChatGroupRepo 创建 ChatGroupRepository 实例
func NewChatGroupRepo(db *gorm.DB) ChatGroupRepository {
	return &chatGroupRepo{db: db}
}

func (r *chatGroupRepo) Create(ctx context.Context, g *model.ChatGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *chatGroupRepo) GetByID(ctx context.Context, id string) (*model.ChatGroup, error) {
	var g model.ChatGroup
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *chatGroupRepo) ListByTeacher(ctx context.Context, teacherID string, offset, limit int) ([]model.ChatGroup, error) {
	list := make([]model.ChatGroup, 0)
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("chat_groups.teacher_id = ?", teacherID).
		Scopes(CreationOrder("chat_groups"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

// ListForStudent
//
// chat_groups ⋈ subjects ON chat_groups.subject_id = subjects.id
// WHERE subjects.department = 学生院系 AND chat_groups.semester = 学生学期
//
// 学生未设置学期时没有任何群聊能匹配，直接返回空列表。
func (r *chatGroupRepo) ListForStudent(ctx context.Context, studentID string, offset, limit int) ([]model.ChatGroup, error) {
	list := make([]model.ChatGroup, 0)

	var student model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", studentID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return list, nil
		}
		return nil, err
	}
	if student.Semester == nil {
		return list, nil
	}

	err = r.db.WithContext(ctx).
		Preload("Teacher").
		Joins("JOIN subjects ON subjects.id = chat_groups.subject_id").
		Where("subjects.department = ?", student.Department).
		Where("chat_groups.semester = ?", *student.Semester).
		Scopes(CreationOrder("chat_groups"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// AnnouncementListFilters 公告列表筛选条件
type AnnouncementListFilters struct {
	// Department 非空时返回该院系公告 + 全局公告（department IS NULL）
	Department string
}

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	List(ctx context.Context, filters *AnnouncementListFilters, offset, limit int) ([]model.Announcement, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, filters *AnnouncementListFilters, offset, limit int) ([]model.Announcement, error) {
	preds := Predicates{}
	if filters != nil {
		preds = preds.EqOrNull("announcements.department", filters.Department)
	}

	list := make([]model.Announcement, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(preds.Apply, CreationOrder("announcements"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

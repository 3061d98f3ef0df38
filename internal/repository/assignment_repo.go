package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// AssignmentListFilters 作业列表筛选条件，空字段不参与过滤
type AssignmentListFilters struct {
	Department string
	Semester   string
}

// AssignmentRepository 作业数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	List(ctx context.Context, filters *AssignmentListFilters, offset, limit int) ([]model.Assignment, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) List(ctx context.Context, filters *AssignmentListFilters, offset, limit int) ([]model.Assignment, error) {
	preds := Predicates{}
	if filters != nil {
		preds = preds.
			Eq("assignments.department", filters.Department).
			Eq("assignments.semester", filters.Semester)
	}

	list := make([]model.Assignment, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(preds.Apply, CreationOrder("assignments"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

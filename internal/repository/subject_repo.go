package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// SubjectListFilters 科目列表筛选条件，空字段不参与过滤
type SubjectListFilters struct {
	Department string
	Semester   string
}

// SubjectRepository 科目数据访问接口
type SubjectRepository interface {
	Create(ctx context.Context, s *model.Subject) error
	GetByID(ctx context.Context, id string) (*model.Subject, error)
	List(ctx context.Context, filters *SubjectListFilters, offset, limit int) ([]model.Subject, error)
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo 创建 SubjectRepository 实例
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, s *model.Subject) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	var s model.Subject
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subjectRepo) List(ctx context.Context, filters *SubjectListFilters, offset, limit int) ([]model.Subject, error) {
	preds := Predicates{}
	if filters != nil {
		preds = preds.
			Eq("subjects.department", filters.Department).
			Eq("subjects.semester", filters.Semester)
	}

	list := make([]model.Subject, 0)
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Scopes(preds.Apply, CreationOrder("subjects"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

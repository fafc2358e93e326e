package model

type Tag struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_name"`
}

func (Tag) TableName() string {
	return "tags"
}

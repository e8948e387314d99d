package models

type Comment struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	VideoID    int64  `json:"video_id" gorm:"not null;index"`
	OwnerEmail string `json:"owner_email" gorm:"not null"`
	Body       string `json:"body" gorm:"not null;type:text"`
	Reported   bool   `json:"reported" gorm:"not null;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

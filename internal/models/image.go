package models

// Image is an uploaded file. Link is empty while the file is still being
// written to disk and filled in once the write succeeded.
type Image struct {
	Base
	FileName string `json:"fileName" gorm:"type:varchar(255)"`
	Link     string `json:"link" gorm:"type:varchar(1024)"`
}

func (Image) TableName() string { return "images" }

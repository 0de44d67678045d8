// Package models chứa model profile (singleton) của portfolio.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MainKey là giá trị singletonKey của profile duy nhất
const MainKey = "main"

// Profile chứa các nội dung hiển thị của trang portfolio.
// Chỉ có một document, được ràng buộc bởi unique index trên singletonKey.
type Profile struct {
	ID           primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	SingletonKey string             `json:"-" bson:"singletonKey,omitempty" index:"unique,sparse"`

	// Identity
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role" bson:"role"`
	HomeLogo string `json:"homeLogo" bson:"homeLogo"`

	// Hero
	HeroImage       string `json:"heroImage" bson:"heroImage"`
	TotalProjects   string `json:"totalProjects" bson:"totalProjects"`
	YearsExperience string `json:"yearsExperience" bson:"yearsExperience"`
	ResumeURL       string `json:"resumeUrl" bson:"resumeUrl"`

	// About
	Bio         string `json:"bio" bson:"bio"`
	AboutImage1 string `json:"aboutImage1" bson:"aboutImage1"`
	AboutImage2 string `json:"aboutImage2" bson:"aboutImage2"`
	StatsValue  string `json:"statsValue" bson:"statsValue"`
	StatsLabel  string `json:"statsLabel" bson:"statsLabel"`
	Feature1    string `json:"feature1" bson:"feature1"`
	Feature2    string `json:"feature2" bson:"feature2"`

	// Social & contact
	SocialLinkedin  string `json:"socialLinkedin" bson:"socialLinkedin"`
	SocialBehance   string `json:"socialBehance" bson:"socialBehance"`
	SocialInstagram string `json:"socialInstagram" bson:"socialInstagram"`
	Email           string `json:"email" bson:"email"`
	CopyrightYear   string `json:"copyrightYear" bson:"copyrightYear"`

	CreatedAt time.Time `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

// DefaultProfile trả về profile với giá trị mặc định, dùng khi chưa có dữ liệu
func DefaultProfile() Profile {
	return Profile{
		Name:            "Nobel",
		Role:            "UX & UI Designer",
		TotalProjects:   "20",
		YearsExperience: "2",
		Bio:             "I am a UX/UI Designer...",
		StatsValue:      "100",
		StatsLabel:      "User-focused screens created...",
		Feature1:        "Agency & startup experience...",
		Feature2:        "Strong UX fundamentals...",
		CopyrightYear:   "2026",
	}
}

// FieldNames là tên (json/bson) các field nội dung client được phép cập nhật
var FieldNames = []string{
	"name", "role", "homeLogo",
	"heroImage", "totalProjects", "yearsExperience", "resumeUrl",
	"bio", "aboutImage1", "aboutImage2", "statsValue", "statsLabel", "feature1", "feature2",
	"socialLinkedin", "socialBehance", "socialInstagram", "email", "copyrightYear",
}

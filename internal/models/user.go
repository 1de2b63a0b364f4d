package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Profile fields
	Avatar     string   `json:"avatar,omitempty"`
	Bio        string   `gorm:"size:500" json:"bio,omitempty"`
	Skills     []string `gorm:"serializer:json" json:"skills"`
	University string   `json:"university,omitempty"`
	Github     string   `json:"github,omitempty"`
	Linkedin   string   `json:"linkedin,omitempty"`
	Portfolio  string   `json:"portfolio,omitempty"`

	// SkillScore is assigned by the recruiter-side AI evaluation;
	// SkillScoreDetail keeps the last raw breakdown.
	SkillScore       int            `gorm:"default:0" json:"skillScore"`
	SkillScoreDetail datatypes.JSON `json:"-"`

	// Single slot for the currently valid refresh token. Issuing a new
	// one overwrites it; nil means no active session.
	RefreshToken *string `json:"-"`

	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}

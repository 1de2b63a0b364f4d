package dto

// UpdateProfileRequest carries the whitelisted profile fields. Pointers
// distinguish "not sent" from "set to empty".
type UpdateProfileRequest struct {
	Name       *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Bio        *string   `json:"bio" validate:"omitempty,max=500"`
	Skills     *[]string `json:"skills"`
	University *string   `json:"university" validate:"omitempty,max=200"`
	Github     *string   `json:"github" validate:"omitempty,max=200"`
	Linkedin   *string   `json:"linkedin" validate:"omitempty,max=200"`
	Avatar     *string   `json:"avatar" validate:"omitempty,max=500"`
}

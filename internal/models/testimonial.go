package models

type Testimonial struct {
	ID              int    `json:"id"`
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerType    string `json:"customerType"`
	TestimonialText string `json:"testimonialText" validate:"required"`
	Rating          int    `json:"rating" validate:"min=1,max=5"`
	AvatarLetter    string `json:"avatarLetter"`
	IsActive        bool   `json:"isActive"`
	SortOrder       int    `json:"sortOrder"`
}

package dto

// UpdateProfileReq represents the request body for PATCH /me.
// All fields are optional; absent fields leave the stored value untouched.
// Campus is restricted to the three MSU campuses.
type UpdateProfileReq struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	FirstName      *string `json:"firstName" binding:"omitempty,min=1"`
	LastName       *string `json:"lastName" binding:"omitempty,min=1"`
	Campus         *string `json:"campus" binding:"omitempty,oneof='Gweru Main' 'Harare' 'Zvishavane'"`
	Major          *string `json:"major"`
	GraduationYear *string `json:"graduationYear"`
	PhoneNumber    *string `json:"phoneNumber"`
	Bio            *string `json:"bio" binding:"omitempty,max=1000"`
}

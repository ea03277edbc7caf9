package request

// ListReservationsQuery binds the keyset pagination parameters of a user listing.
type ListReservationsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}

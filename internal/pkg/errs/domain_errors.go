package errs

// Sentinel errors shared by the usecase and handler layers
var (
	// Purchase errors
	ErrInvalidPurchaseAttempt = New("invalid purchase attempt")

	// Reservation errors
	ErrReservationNotFound  = New("reservation not found")
	ErrReservationNotActive = New("reservation is not active")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

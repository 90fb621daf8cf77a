package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth middleware
	ContextKeyStaffID   = "staff_id"
	ContextKeyBrandID   = "brand_id"
	ContextKeyStaffRole = "staff_role"
	ContextKeySubject   = "subject"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableBrands = "brands"
	TableStaff  = "staff"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgSubscriptionLocked  = "subscription expired, please renew to continue"
)

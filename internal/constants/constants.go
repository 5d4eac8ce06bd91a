package constants

const (
	AuthHeaderRequired          = "Authorization header is required"
	AuthTokenInvalidOrExpired   = "Invalid or expired token"
	AuthTokenInvalid            = "Invalid token"
	AuthUserRoleNotFound        = "User role not found"
	AuthInvalidUserRoleFormat   = "Invalid user role format"
	AuthInsufficientPermissions = "Admin access only"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)
